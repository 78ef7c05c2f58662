// cmd/arena-sim/main.go
package main

import (
	"fmt"
	"os"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/scene"

	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	a := cli.NewApp()
	a.Name = "arena-sim"
	a.Usage = "Run an arena session headless under the autopilot"
	a.Flags = []cli.Flag{
		cli.IntFlag{Name: "ticks", Value: 60 * 120, Usage: "Number of frames to simulate"},
		cli.Float64Flag{Name: "dt", Value: 1.0 / 60.0, Usage: "Frame time in seconds"},
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 keeps the configured one"},
		cli.StringFlag{Name: "config", Value: "", Usage: "TOML file with tunables"},
		cli.StringFlag{Name: "layout", Value: "", Usage: "YAML arena layout"},
		cli.StringFlag{Name: "log-level", Value: "", Usage: "debug, info, warn or error"},
		cli.BoolFlag{Name: "invulnerable", Usage: "Ignore enemy contact"},
		cli.BoolFlag{Name: "tui", Usage: "Draw the arena in the terminal while running"},
	}
	a.Action = func(c *cli.Context) error {
		dt := c.Float64("dt")
		if dt <= 0 {
			return cli.NewExitError(fmt.Sprintf("--dt must be positive, got %v", dt), 2)
		}
		opts := app.Options{
			ConfigPath:   c.String("config"),
			LayoutPath:   c.String("layout"),
			Seed:         c.Int64("seed"),
			Invulnerable: c.Bool("invulnerable"),
			LogLevel:     c.String("log-level"),
		}
		if c.Bool("tui") {
			// логи в терминал поверх экрана не пишем
			if opts.LogLevel == "" {
				opts.LogLevel = "error"
			}
			return runTUI(opts, dt)
		}
		return runHeadless(opts, c.Int("ticks"), dt)
	}
	return a
}

func runHeadless(opts app.Options, ticks int, dt float64) error {
	graph := scene.NewMemoryGraph()
	sim, logger, err := app.Setup(opts, graph)
	if err != nil {
		return err
	}
	defer logger.Sync()

	pilot := app.NewAutopilot(sim)
	frames := 0
	for ; frames < ticks && !sim.Over(); frames++ {
		pilot.Step(dt)
		sim.Update(dt)
	}

	st := sim.ProjectileSystem.Stats()
	logger.Info("session finished",
		zap.Stringer("session", sim.Ctx.SessionID),
		zap.Int("frames", frames),
		zap.Float64("time", sim.Ctx.Now),
		zap.Bool("game_over", sim.Over()),
		zap.Int("balance", sim.Ctx.Score.Balance()),
		zap.Int("kills_player", sim.PlayerSystem.Kills(event.SourcePlayer)),
		zap.Int("kills_turret", sim.PlayerSystem.Kills(event.SourceTurret)),
		zap.Int("spawners", len(sim.SpawnSystem.Spawners)),
		zap.Int("enemies", len(sim.SpawnSystem.Enemies)),
		zap.Int("turrets", len(sim.TurretSystem.Turrets)),
		zap.Int("projectiles_created", st.Created),
		zap.Int("projectile_hits", st.Hits),
		zap.Int("nodes", graph.Len()))
	return nil
}
