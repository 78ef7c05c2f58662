package render

import (
	"image/color"
	"testing"

	"go-arena-combat/internal/scene"

	"github.com/stretchr/testify/assert"
)

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0}
	b := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, a, LerpColor(a, b, 0))
	assert.Equal(t, b, LerpColor(a, b, 1))
	assert.Equal(t, b, LerpColor(a, b, 3))
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, LerpColor(a, b, 0.5))
}

func TestFadeAndDarken(t *testing.T) {
	c := color.RGBA{200, 100, 50, 200}
	assert.Equal(t, uint8(100), Fade(c, 0.5).A)
	assert.Equal(t, uint8(0), Fade(c, -1).A)
	assert.Equal(t, color.RGBA{100, 50, 25, 200}, DarkenColor(c))
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, DefaultColors.EnemyColor, DefaultColors.KindColor(scene.KindEnemy))
	assert.Equal(t, DefaultColors.TurretColor, DefaultColors.KindColor(scene.KindHitbox))
	assert.Equal(t, DefaultColors.TextLightColor, DefaultColors.KindColor(scene.Kind(99)))
}
