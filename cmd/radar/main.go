// cmd/radar/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const (
	screenWidth  = 960
	screenHeight = 960
)

type AppGame struct {
	radar          *Radar
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.radar.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.radar.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	a := cli.NewApp()
	a.Name = "radar"
	a.Usage = "Top-down arena view with mouse and keyboard controls"
	a.Flags = []cli.Flag{
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 keeps the configured one"},
		cli.StringFlag{Name: "config", Value: "", Usage: "TOML file with tunables"},
		cli.StringFlag{Name: "layout", Value: "", Usage: "YAML arena layout"},
		cli.StringFlag{Name: "log-level", Value: "", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: "pprof", Value: "", Usage: "Serve pprof on this address, e.g. localhost:6060"},
		cli.BoolFlag{Name: "invulnerable", Usage: "Ignore enemy contact"},
		cli.BoolFlag{Name: "autopilot", Usage: "Let the autopilot drive"},
	}
	a.Action = run
	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	graph := scene.NewMemoryGraph()
	sim, logger, err := app.Setup(app.Options{
		ConfigPath:   c.String("config"),
		LayoutPath:   c.String("layout"),
		Seed:         c.Int64("seed"),
		Invulnerable: c.Bool("invulnerable"),
		LogLevel:     c.String("log-level"),
		Development:  true,
	}, graph)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if addr := c.String("pprof"); addr != "" {
		go func() {
			logger.Warn("pprof stopped", zap.Error(http.ListenAndServe(addr, nil)))
		}()
	}

	game := &AppGame{
		radar:          NewRadar(sim, graph, c.Bool("autopilot"), screenWidth, screenHeight),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Arena Radar")
	return ebiten.RunGame(game)
}
