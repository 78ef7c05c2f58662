// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button - кнопка HUD. Недоступная кнопка рисуется тусклой и не нажимается.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	FontSize   int32
	Enabled    bool
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.Black,
		BgColor:    rl.LightGray,
		HoverColor: rl.Gray,
		FontSize:   18,
		Enabled:    true,
	}
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Enabled && b.Hovered(mousePos) && rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if b.Enabled && b.Hovered(mousePos) {
		bgColor = b.HoverColor
	}
	if !b.Enabled {
		bgColor = rl.Fade(bgColor, 0.4)
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := b.Rect.X + (b.Rect.Width-float32(textWidth))/2
	textY := b.Rect.Y + (b.Rect.Height-float32(b.FontSize))/2
	rl.DrawText(b.Text, int32(textX), int32(textY), b.FontSize, b.TextColor)
}
