package main

import (
	"fmt"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/scene"
	"go-arena-combat/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

func drawScene(sim *app.Simulation, graph *scene.MemoryGraph, palette render.ArenaColors) {
	b := sim.Layout.Bounds
	size := rl.NewVector2(float32(b.Max[0]-b.Min[0]), float32(b.Max[1]-b.Min[1]))
	center := rl.NewVector3(float32(b.Min[0]+b.Max[0])/2, 0, float32(b.Min[1]+b.Max[1])/2)
	rl.DrawPlane(center, size, rlColor(palette.GroundColor))
	rl.DrawGrid(int32(size.X), 1)

	color := func(k scene.Kind) rl.Color { return rlColor(palette.KindColor(k)) }

	graph.Each(scene.KindObstacle, func(n *scene.MemoryNode) {
		pos, s := toRL(n.Position), n.Scale
		rl.DrawCube(pos, float32(s.X()), float32(s.Y()), float32(s.Z()), color(scene.KindObstacle))
		rl.DrawCubeWires(pos, float32(s.X()), float32(s.Y()), float32(s.Z()), rl.DarkGray)
	})

	minB, maxB := sim.Player.Bounds()
	box := maxB.Sub(minB)
	mid := toRL(minB.Add(box.Mul(0.5)))
	playerColor := palette.PlayerColor
	if !sim.Player.Mode.CanMove() {
		playerColor = render.DarkenColor(playerColor)
	}
	rl.DrawCube(mid, float32(box.X()), float32(box.Y()), float32(box.Z()), rlColor(playerColor))
	muzzle := sim.Player.Muzzle()
	rl.DrawLine3D(toRL(muzzle), toRL(muzzle.Add(sim.Player.Aim.Mul(2))), rl.White)

	spawnerR := float32(sim.Config.Spawner.Radius)
	graph.Each(scene.KindSpawner, func(n *scene.MemoryNode) {
		pos := toRL(n.Position)
		pos.Y += spawnerR
		rl.DrawSphere(pos, spawnerR, color(scene.KindSpawner))
	})
	graph.Each(scene.KindHealthBar, func(n *scene.MemoryNode) {
		if n.Visible {
			s := n.Scale
			rl.DrawCube(toRL(n.Position), float32(s.X()), float32(s.Y()), float32(s.Z()), color(scene.KindHealthBar))
		}
	})
	enemyR := float32(sim.Config.Enemy.Radius)
	graph.Each(scene.KindEnemy, func(n *scene.MemoryNode) {
		if n.Visible {
			rl.DrawSphere(toRL(n.Position), enemyR, color(scene.KindEnemy))
		}
	})
	graph.Each(scene.KindTurret, func(n *scene.MemoryNode) {
		rl.DrawCube(toRL(n.Position), 1, 1, 1, color(scene.KindTurret))
	})
	graph.Each(scene.KindRangeRing, func(n *scene.MemoryNode) {
		rl.DrawCircle3D(toRL(n.Position), float32(n.Scale.X()), rl.NewVector3(1, 0, 0), 90, color(scene.KindRangeRing))
	})
	graph.Each(scene.KindProjectile, func(n *scene.MemoryNode) {
		if n.Visible {
			rl.DrawSphere(toRL(n.Position), 0.15, color(scene.KindProjectile))
		}
	})
	graph.Each(scene.KindPreview, func(n *scene.MemoryNode) {
		if n.Visible {
			pos := toRL(n.Position.Add(mgl64.Vec3{0, 0.5, 0}))
			rl.DrawCubeWires(pos, 1, 1, 1, color(scene.KindPreview))
		}
	})

	for _, e := range sim.ExplosionSystem.Explosions {
		for _, p := range e.Particles {
			c := rlColor(render.Fade(p.Color, p.Opacity))
			if p.Type == component.ParticleSpark {
				for i := 1; i < len(p.Trail); i++ {
					rl.DrawLine3D(toRL(p.Trail[i-1]), toRL(p.Trail[i]), c)
				}
			}
			rl.DrawSphere(toRL(p.Position), float32(p.Size), c)
		}
	}

	if shot := sim.LastShot; shot.Fired {
		rl.DrawLine3D(toRL(muzzle), toRL(shot.Point), rl.Fade(rl.White, 0.3))
	}
}

func drawHUD(sim *app.Simulation, selected int) {
	ctx := sim.Ctx
	rl.DrawText(fmt.Sprintf("balance %d   mode %s   t=%.1fs", ctx.Score.Balance(), sim.Player.Mode.Current(), ctx.Now), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("spawners %d  enemies %d  turrets %d", len(sim.SpawnSystem.Spawners), len(sim.SpawnSystem.Enemies), len(sim.TurretSystem.Turrets)), 10, 34, 20, rl.White)
	y := int32(58)
	if t := sim.TurretSystem.Find(selected); t != nil {
		rl.DrawText(fmt.Sprintf("turret %d level %d (U upgrade, X remove)", t.ID, t.Level), 10, y, 20, rl.Gold)
		y += 24
	}
	for _, k := range sim.PlayerSystem.Feed() {
		rl.DrawText(fmt.Sprintf("+%d %s kill", k.Reward, k.Source), 10, y, 18, rl.LightGray)
		y += 20
	}
	if sim.Over() {
		rl.DrawText(fmt.Sprintf("GAME OVER (%s) - press R", sim.Ctx.GameOver.Reason()), screenWidth/2-200, screenHeight/2, 32, rl.Red)
	}
	rl.DrawFPS(screenWidth-90, 10)
}
