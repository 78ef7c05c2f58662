// internal/component/turret.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Aim отвечает за вращение "головы" турели.
type Aim struct {
	// Facing - текущий угол поворота в радианах (вокруг оси Y).
	Facing float64
	// LastAimed - последний угол на цель; сохраняется, когда цели нет.
	LastAimed float64
	// TurnSpeed - коэффициент сглаживания поворота, 1/с.
	TurnSpeed float64
	// TargetID - ID цели, 0 если цели нет.
	TargetID int
}

// Wander is an idle roaming state shared by enemies and turrets.
type Wander struct {
	Target    mgl64.Vec3
	Timer     float64
	HasTarget bool
	Rerolls   int
}
