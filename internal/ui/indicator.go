// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-arena-combat/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModeColors - цвет индикатора для каждого режима машины.
var ModeColors = map[state.Mode]color.RGBA{
	state.ModeDrive:      {80, 170, 255, 255},
	state.ModeDeploying:  {255, 200, 60, 255},
	state.ModeCombat:     {230, 60, 60, 255},
	state.ModeRetracting: {255, 140, 40, 255},
}

// ModeIndicatorRL показывает режим боя и пульсирует при каждой смене режима.
type ModeIndicatorRL struct {
	X, Y        float32
	Radius      float32
	lastChanges int
	lastChange  time.Time
}

func NewModeIndicatorRL(x, y, radius float32) *ModeIndicatorRL {
	return &ModeIndicatorRL{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор; progress заполняет дугу во время перехода.
func (i *ModeIndicatorRL) Draw(mode *state.CombatMode) {
	if mode.Changes() != i.lastChanges {
		i.lastChanges = mode.Changes()
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	c := ModeColors[mode.Current()]
	center := rl.NewVector2(i.X, i.Y)
	rl.DrawCircleV(center, r, colorToRL(c))
	if cur := mode.Current(); cur == state.ModeDeploying || cur == state.ModeRetracting {
		rl.DrawRing(center, r+2, r+5, -90, -90+360*float32(mode.Progress()), 32, rl.White)
	}
	rl.DrawCircleLines(int32(i.X), int32(i.Y), r, rl.White)
	rl.DrawText(mode.Current().String(), int32(i.X+i.Radius+10), int32(i.Y-8), 16, rl.White)
}
