// cmd/radar/radar.go
package main

import (
	"fmt"
	"image/color"
	"math"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/scene"
	"go-arena-combat/pkg/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	eyeHeight  = 10.0
)

// Radar - вид сверху на арену и управление мышью и клавиатурой.
type Radar struct {
	sim      *app.Simulation
	graph    *scene.MemoryGraph
	pilot    *app.Autopilot
	palette  render.ArenaColors
	fontFace font.Face

	width, height int
	scale         float64 // pixels per world unit
	selected      int     // turret id for upgrade/remove
}

func NewRadar(sim *app.Simulation, graph *scene.MemoryGraph, autopilot bool, width, height int) *Radar {
	r := &Radar{
		sim:      sim,
		graph:    graph,
		palette:  render.DefaultColors,
		fontFace: basicfont.Face7x13,
		width:    width,
		height:   height,
	}
	if autopilot {
		r.pilot = app.NewAutopilot(sim)
	}
	b := sim.Layout.Bounds
	r.scale = math.Min(float64(width)/(b.Max[0]-b.Min[0]), float64(height)/(b.Max[1]-b.Min[1]))
	return r
}

// toScreen maps the ground plane, +Z up the screen.
func (r *Radar) toScreen(p mgl64.Vec3) (float32, float32) {
	b := r.sim.Layout.Bounds
	return float32((p.X() - b.Min[0]) * r.scale), float32((b.Max[1] - p.Z()) * r.scale)
}

func (r *Radar) toWorld(x, y int) mgl64.Vec3 {
	b := r.sim.Layout.Bounds
	return mgl64.Vec3{b.Min[0] + float64(x)/r.scale, 0, b.Max[1] - float64(y)/r.scale}
}

func (r *Radar) Update(deltaTime float64) {
	sim := r.sim
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		sim.Reset()
		r.selected = 0
		if r.pilot != nil {
			r.pilot = app.NewAutopilot(sim)
		}
	}
	if r.pilot != nil {
		r.pilot.Step(deltaTime)
	} else {
		r.handleInput()
	}
	sim.Update(deltaTime)
}

func (r *Radar) handleInput() {
	sim := r.sim
	var v mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		v[2]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		v[2]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		v[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		v[0]--
	}
	if v.Len() > 0 {
		v = v.Normalize().Mul(sim.Player.Speed)
	}
	sim.SetPlayerVelocity(v)

	mx, my := ebiten.CursorPosition()
	cursor := r.toWorld(mx, my)
	sim.SetAim(cursor.Sub(sim.Player.Position()))
	sim.RequestCombat(ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		sim.StartDragging()
	}
	if sim.TurretSystem.Dragging() {
		sim.UpdateDrag(mgl64.Vec3{cursor.X(), eyeHeight, cursor.Z()}, mgl64.Vec3{0, -1, 0})
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			sim.PlaceCube()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			sim.CancelDragging()
		}
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		sim.FireShot()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		r.selected = r.turretAt(cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) && r.selected != 0 {
		sim.UpgradeTurret(r.selected)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) && r.selected != 0 {
		sim.RemoveTurret(r.selected)
		r.selected = 0
	}
}

func (r *Radar) turretAt(p mgl64.Vec3) int {
	for _, t := range r.sim.TurretSystem.Turrets {
		d := t.Position().Sub(p)
		if d.X()*d.X()+d.Z()*d.Z() < 1 {
			return t.ID
		}
	}
	return 0
}

func (r *Radar) Draw(screen *ebiten.Image) {
	screen.Fill(r.palette.BackgroundColor)
	r.drawGround(screen)

	sim := r.sim
	r.graph.Each(scene.KindObstacle, func(n *scene.MemoryNode) {
		x, y := r.toScreen(n.Position)
		w, h := float32(n.Scale.X()*r.scale), float32(n.Scale.Z()*r.scale)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, r.palette.ObstacleColor, true)
	})
	r.graph.Each(scene.KindRangeRing, func(n *scene.MemoryNode) {
		x, y := r.toScreen(n.Position)
		vector.StrokeCircle(screen, x, y, float32(n.Scale.X()*r.scale), 1, r.palette.RangeRingColor, true)
	})
	r.circles(screen, scene.KindSpawner, sim.Config.Spawner.Radius)
	r.graph.Each(scene.KindHealthBar, func(n *scene.MemoryNode) {
		if !n.Visible {
			return
		}
		x, y := r.toScreen(n.Position)
		w := float32(n.Scale.X() * r.scale)
		vector.DrawFilledRect(screen, x-w/2, y-float32(sim.Config.Spawner.Radius*r.scale)-6, w, 4, r.palette.HealthBarColor, false)
	})
	r.circles(screen, scene.KindTurret, 0.5)
	r.circles(screen, scene.KindEnemy, sim.Config.Enemy.Radius)
	r.circles(screen, scene.KindProjectile, 0.15)
	r.circles(screen, scene.KindPreview, 0.5)

	r.drawPlayer(screen)
	r.drawParticles(screen)
	r.drawLastShot(screen)
	r.drawStatus(screen)
}

func (r *Radar) drawGround(screen *ebiten.Image) {
	b := r.sim.Layout.Bounds
	x0, y0 := r.toScreen(mgl64.Vec3{b.Min[0], 0, b.Max[1]})
	x1, y1 := r.toScreen(mgl64.Vec3{b.Max[0], 0, b.Min[1]})
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, r.palette.GroundColor, false)
	step := 5.0
	for x := math.Ceil(b.Min[0]/step) * step; x <= b.Max[0]; x += step {
		sx, _ := r.toScreen(mgl64.Vec3{x, 0, 0})
		vector.StrokeLine(screen, sx, y0, sx, y1, 1, r.palette.GridColor, false)
	}
	for z := math.Ceil(b.Min[1]/step) * step; z <= b.Max[1]; z += step {
		_, sy := r.toScreen(mgl64.Vec3{0, 0, z})
		vector.StrokeLine(screen, x0, sy, x1, sy, 1, r.palette.GridColor, false)
	}
}

func (r *Radar) circles(screen *ebiten.Image, kind scene.Kind, radius float64) {
	clr := r.palette.KindColor(kind)
	r.graph.Each(kind, func(n *scene.MemoryNode) {
		if !n.Visible {
			return
		}
		x, y := r.toScreen(n.Position)
		vector.DrawFilledCircle(screen, x, y, float32(radius*r.scale), clr, true)
	})
}

func (r *Radar) drawPlayer(screen *ebiten.Image) {
	p := r.sim.Player
	minB, maxB := p.Bounds()
	x0, y0 := r.toScreen(mgl64.Vec3{minB.X(), 0, maxB.Z()})
	x1, y1 := r.toScreen(mgl64.Vec3{maxB.X(), 0, minB.Z()})
	clr := r.palette.PlayerColor
	if !p.Mode.CanMove() {
		clr = render.DarkenColor(clr)
	}
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, clr, true)

	cx, cy := r.toScreen(p.Position())
	tx, ty := r.toScreen(p.Position().Add(p.Aim.Mul(1.5)))
	vector.StrokeLine(screen, cx, cy, tx, ty, 2, r.palette.TextLightColor, true)
}

func (r *Radar) drawParticles(screen *ebiten.Image) {
	for _, e := range r.sim.ExplosionSystem.Explosions {
		for _, p := range e.Particles {
			clr := render.Fade(p.Color, p.Opacity)
			if p.Type == component.ParticleSpark && len(p.Trail) > 1 {
				for i := 1; i < len(p.Trail); i++ {
					ax, ay := r.toScreen(p.Trail[i-1])
					bx, by := r.toScreen(p.Trail[i])
					vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
				}
			}
			x, y := r.toScreen(p.Position)
			vector.DrawFilledCircle(screen, x, y, float32(math.Max(p.Size*r.scale, 1)), clr, true)
		}
	}
}

func (r *Radar) drawLastShot(screen *ebiten.Image) {
	shot := r.sim.LastShot
	if !shot.Fired {
		return
	}
	x0, y0 := r.toScreen(r.sim.Player.Muzzle())
	x1, y1 := r.toScreen(shot.Point)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.RGBA{255, 255, 255, 90}, true)
}

func (r *Radar) drawStatus(screen *ebiten.Image) {
	sim := r.sim
	ctx := sim.Ctx
	lines := []string{
		fmt.Sprintf("session %s  t=%.1fs", ctx.SessionID, ctx.Now),
		fmt.Sprintf("balance %d  mode %s  last shot %s", ctx.Score.Balance(), sim.Player.Mode.Current(), sim.LastShot.Target),
		fmt.Sprintf("spawners %d  enemies %d  turrets %d  particles %d",
			len(sim.SpawnSystem.Spawners), len(sim.SpawnSystem.Enemies), len(sim.TurretSystem.Turrets), sim.ExplosionSystem.Particles()),
	}
	if r.selected != 0 {
		if t := sim.TurretSystem.Find(r.selected); t != nil {
			lines = append(lines, fmt.Sprintf("turret %d  level %d  range %.1f  (U upgrade, X remove)", t.ID, t.Level, t.Combat.Range))
		}
	}
	for _, k := range sim.PlayerSystem.Feed() {
		lines = append(lines, fmt.Sprintf("+%d  %s kill", k.Reward, k.Source))
	}
	if sim.Over() {
		lines = append(lines, fmt.Sprintf("GAME OVER (%s)  press R", sim.Ctx.GameOver.Reason()))
	}
	for i, l := range lines {
		text.Draw(screen, l, r.fontFace, 8, 18+i*lineHeight, r.palette.TextLightColor)
	}
}
