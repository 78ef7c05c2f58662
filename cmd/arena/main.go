// cmd/arena/main.go
package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/ui"
	"go-arena-combat/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/urfave/cli"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func toRL(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func fromRL(v rl.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func main() {
	a := cli.NewApp()
	a.Name = "arena"
	a.Usage = "3D arena viewer"
	a.Flags = []cli.Flag{
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 keeps the configured one"},
		cli.StringFlag{Name: "config", Value: "", Usage: "TOML file with tunables"},
		cli.StringFlag{Name: "layout", Value: "", Usage: "YAML arena layout"},
		cli.StringFlag{Name: "log-level", Value: "", Usage: "debug, info, warn or error"},
		cli.BoolFlag{Name: "invulnerable", Usage: "Ignore enemy contact"},
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

	palette := render.DefaultColors
	background := rlColor(palette.BackgroundColor)

	rl.InitWindow(screenWidth, screenHeight, "Arena | WASD drive, RMB combat, LMB fire, B build, Q/E rotate")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	// Камера следует за игроком; колесо мыши меняет угол между изометрией и видом сверху
	isoOffset := rl.NewVector3(0, 22, -22)
	topDownOffset := rl.NewVector3(0, 40, -0.1)
	isoFovy := float32(55.0)
	topDownFovy := float32(45.0)
	cameraAngleT := float32(0.3)
	selected := 0

	pause := ui.NewPauseButtonRL(screenWidth-40, screenHeight-40, 12, palette.TextLightColor, palette.TurretColor)
	build := ui.NewButton(rl.NewRectangle(screenWidth-300, screenHeight-60, 110, 40), "Build")
	upgrade := ui.NewButton(rl.NewRectangle(screenWidth-180, screenHeight-60, 110, 40), "Upgrade")
	indicator := ui.NewModeIndicatorRL(30, screenHeight-40, 14)

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}

		// Вращение
		if rl.IsKeyDown(rl.KeyQ) {
			isoOffset = rl.Vector3RotateByAxisAngle(isoOffset, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoOffset = rl.Vector3RotateByAxisAngle(isoOffset, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0 {
				cameraAngleT = 0
			}
		}
		focus := toRL(sim.Player.Position())
		focus.Y = 0
		camera.Position = rl.Vector3Add(focus, Vector3Lerp(isoOffset, topDownOffset, cameraAngleT))
		camera.Target = focus
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		// --- Управление ---
		ray := rl.GetMouseRay(rl.GetMousePosition(), camera)
		origin, dir := fromRL(ray.Position), fromRL(ray.Direction)
		forward := fromRL(rl.Vector3Subtract(camera.Target, camera.Position))
		forward[1] = 0
		if forward.Len() > 1e-6 {
			forward = forward.Normalize()
		}
		right := mgl64.Vec3{-forward.Z(), 0, forward.X()}

		var v mgl64.Vec3
		if rl.IsKeyDown(rl.KeyW) {
			v = v.Add(forward)
		}
		if rl.IsKeyDown(rl.KeyS) {
			v = v.Sub(forward)
		}
		if rl.IsKeyDown(rl.KeyD) {
			v = v.Add(right)
		}
		if rl.IsKeyDown(rl.KeyA) {
			v = v.Sub(right)
		}
		if v.Len() > 0 {
			v = v.Normalize().Mul(sim.Player.Speed)
		}
		sim.SetPlayerVelocity(v)
		sim.RequestCombat(rl.IsMouseButtonDown(rl.MouseButtonRight))

		var cursor mgl64.Vec3
		onGround := false
		if math.Abs(dir.Y()) > 1e-9 {
			if t := -origin.Y() / dir.Y(); t > 0 {
				cursor, onGround = origin.Add(dir.Mul(t)), true
			}
		}
		if onGround {
			sim.SetAim(cursor.Sub(sim.Player.Position()))
		}

		if rl.IsKeyPressed(rl.KeyR) {
			sim.Reset()
			selected = 0
		}
		mouse := rl.GetMousePosition()
		cfg := sim.Config.Turret
		build.Enabled = sim.Ctx.Score.Balance() >= cfg.Cost
		upgrade.Enabled = selected != 0 && sim.Ctx.Score.Balance() >= cfg.UpgradeCost
		overHUD := build.Hovered(mouse) || upgrade.Hovered(mouse)
		switch {
		case pause.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyP):
			pause.TogglePause()
		case build.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyB):
			sim.StartDragging()
		case upgrade.IsClicked(mouse):
			sim.UpgradeTurret(selected)
		}
		switch {
		case overHUD:
			// клики по HUD не стреляют и не строят
		case sim.TurretSystem.Dragging():
			sim.UpdateDrag(origin, dir)
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				sim.PlaceCube()
			}
			if rl.IsKeyPressed(rl.KeyX) {
				sim.CancelDragging()
			}
		default:
			if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
				sim.FireShot()
			}
			if rl.IsMouseButtonPressed(rl.MouseButtonMiddle) && onGround {
				selected = 0
				for _, t := range sim.TurretSystem.Turrets {
					d := t.Position().Sub(cursor)
					if d.X()*d.X()+d.Z()*d.Z() < 1 {
						selected = t.ID
					}
				}
			}
			if rl.IsKeyPressed(rl.KeyU) && selected != 0 {
				sim.UpgradeTurret(selected)
			}
			if rl.IsKeyPressed(rl.KeyX) && selected != 0 {
				sim.RemoveTurret(selected)
				selected = 0
			}
		}

		if !pause.IsPaused {
			sim.Update(dt)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.BeginMode3D(camera)
		drawScene(sim, graph, palette)
		rl.EndMode3D()
		drawHUD(sim, selected)
		pause.Draw()
		build.Draw(mouse)
		upgrade.Draw(mouse)
		indicator.Draw(sim.Player.Mode)
		rl.EndDrawing()
	}
	return nil
}
