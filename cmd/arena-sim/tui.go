package main

import (
	"fmt"
	"image/color"
	"time"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/scene"
	"go-arena-combat/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var kindRunes = map[scene.Kind]rune{
	scene.KindPlayer:     '@',
	scene.KindEnemy:      'e',
	scene.KindSpawner:    'S',
	scene.KindProjectile: '*',
	scene.KindTurret:     'T',
	scene.KindPreview:    '+',
	scene.KindObstacle:   '#',
}

// drawOrder puts the player and shots on top.
var drawOrder = []scene.Kind{
	scene.KindObstacle,
	scene.KindSpawner,
	scene.KindTurret,
	scene.KindEnemy,
	scene.KindProjectile,
	scene.KindPreview,
	scene.KindPlayer,
}

type terminal struct {
	screen tcell.Screen
	sim    *app.Simulation
	graph  *scene.MemoryGraph
	pilot  *app.Autopilot
	paused bool
	width  int
	height int
}

func runTUI(opts app.Options, dt float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	defer screen.Fini()

	graph := scene.NewMemoryGraph()
	sim, logger, err := app.Setup(opts, graph)
	if err != nil {
		return err
	}
	defer logger.Sync()

	t := &terminal{screen: screen, sim: sim, graph: graph, pilot: app.NewAutopilot(sim)}
	t.width, t.height = screen.Size()
	t.run(dt)
	return nil
}

func (t *terminal) run(dt float64) {
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !t.paused {
				t.pilot.Step(dt)
				t.sim.Update(dt)
			}
			t.draw()
		}
	}
}

func (t *terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				t.paused = !t.paused
			case 'r':
				t.sim.Reset()
				t.pilot = app.NewAutopilot(t.sim)
			}
		}
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

// cell maps the ground plane onto the screen below the status line.
func (t *terminal) cell(x, z float64) (int, int, bool) {
	b := t.sim.Layout.Bounds
	rows := t.height - 1
	if t.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	cx := int((x - b.Min[0]) / (b.Max[0] - b.Min[0]) * float64(t.width))
	cy := 1 + int((b.Max[1]-z)/(b.Max[1]-b.Min[1])*float64(rows))
	if cx < 0 || cx >= t.width || cy < 1 || cy >= t.height {
		return 0, 0, false
	}
	return cx, cy, true
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *terminal) draw() {
	t.screen.Clear()
	palette := render.DefaultColors

	for _, kind := range drawOrder {
		r := kindRunes[kind]
		st := style(palette.KindColor(kind))
		t.graph.Each(kind, func(n *scene.MemoryNode) {
			if !n.Visible {
				return
			}
			if x, y, ok := t.cell(n.Position.X(), n.Position.Z()); ok {
				t.screen.SetContent(x, y, r, nil, st)
			}
		})
	}
	for _, e := range t.sim.ExplosionSystem.Explosions {
		for _, p := range e.Particles {
			if x, y, ok := t.cell(p.Position.X(), p.Position.Z()); ok {
				t.screen.SetContent(x, y, '.', nil, style(p.Color))
			}
		}
	}

	ctx := t.sim.Ctx
	status := fmt.Sprintf(" %s  t=%5.1fs  $%d  mode=%s  spawners=%d enemies=%d turrets=%d ",
		ctx.SessionID, ctx.Now, ctx.Score.Balance(), t.sim.Player.Mode.Current(),
		len(t.sim.SpawnSystem.Spawners), len(t.sim.SpawnSystem.Enemies), len(t.sim.TurretSystem.Turrets))
	if t.sim.Over() {
		status += fmt.Sprintf(" GAME OVER: %s (r to restart) ", ctx.GameOver.Reason())
	} else if t.paused {
		status += " paused "
	}
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	for i, r := range status {
		if i >= t.width {
			break
		}
		t.screen.SetContent(i, 0, r, nil, statusStyle)
	}
	t.screen.Show()
}
