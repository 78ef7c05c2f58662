// pkg/render/color.go
package render

import (
	"image/color"

	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/utils"
)

// ArenaColors holds the colors both viewers use for the arena and its nodes.
type ArenaColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	GridColor       color.RGBA
	ObstacleColor   color.RGBA
	PlayerColor     color.RGBA
	EnemyColor      color.RGBA
	SpawnerColor    color.RGBA
	HealthBarColor  color.RGBA
	ProjectileColor color.RGBA
	TurretColor     color.RGBA
	RangeRingColor  color.RGBA
	PreviewColor    color.RGBA
	TextLightColor  color.RGBA
	TextDarkColor   color.RGBA
}

// DefaultColors - палитра карьера.
var DefaultColors = ArenaColors{
	BackgroundColor: color.RGBA{10, 10, 20, 255},
	GroundColor:     color.RGBA{70, 80, 70, 255},
	GridColor:       color.RGBA{90, 100, 90, 255},
	ObstacleColor:   color.RGBA{120, 110, 100, 255},
	PlayerColor:     color.RGBA{80, 170, 255, 255},
	EnemyColor:      color.RGBA{200, 60, 60, 255},
	SpawnerColor:    color.RGBA{150, 60, 200, 255},
	HealthBarColor:  color.RGBA{90, 220, 90, 255},
	ProjectileColor: color.RGBA{255, 230, 90, 255},
	TurretColor:     color.RGBA{220, 180, 60, 255},
	RangeRingColor:  color.RGBA{220, 180, 60, 80},
	PreviewColor:    color.RGBA{120, 255, 120, 140},
	TextLightColor:  color.RGBA{230, 230, 230, 255},
	TextDarkColor:   color.RGBA{20, 20, 20, 255},
}

// KindColor returns the base color of a scene node kind.
func (c ArenaColors) KindColor(kind scene.Kind) color.RGBA {
	switch kind {
	case scene.KindPlayer:
		return c.PlayerColor
	case scene.KindEnemy:
		return c.EnemyColor
	case scene.KindSpawner:
		return c.SpawnerColor
	case scene.KindHealthBar:
		return c.HealthBarColor
	case scene.KindProjectile:
		return c.ProjectileColor
	case scene.KindTurret, scene.KindHitbox:
		return c.TurretColor
	case scene.KindRangeRing:
		return c.RangeRingColor
	case scene.KindPreview:
		return c.PreviewColor
	case scene.KindObstacle:
		return c.ObstacleColor
	}
	return c.TextLightColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor выполняет линейную интерполяцию между двумя цветами.
func LerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 { return uint8(utils.Lerp(float64(a), float64(b), t)) }
	return color.RGBA{mix(c1.R, c2.R), mix(c1.G, c2.G), mix(c1.B, c2.B), mix(c1.A, c2.A)}
}

// Fade scales alpha by opacity, used for particles.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	c.A = uint8(float64(c.A) * utils.Clamp(opacity, 0, 1))
	return c
}
