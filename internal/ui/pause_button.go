// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButtonRL - кнопка паузы симуляции
type PauseButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButtonRL(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButtonRL {
	return &PauseButtonRL{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButtonRL) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		c := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-rectSize, b.Y-rectSize*1.2)
		p2 := rl.NewVector2(b.X-rectSize, b.Y+rectSize*1.2)
		p3 := rl.NewVector2(b.X+rectSize, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}
	// Два прямоугольника (pause)
	c := colorToRL(b.PauseColor)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
	rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), c)
}

func (b *PauseButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5) &&
		rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

func (b *PauseButtonRL) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

// colorToRL преобразует color.RGBA в rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
