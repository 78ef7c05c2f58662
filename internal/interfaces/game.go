package interfaces

import "github.com/go-gl/mathgl/mgl64"

// Controls is the input surface a driver (viewer, autopilot) uses to steer a session.
type Controls interface {
	SetPlayerVelocity(v mgl64.Vec3)
	SetAim(dir mgl64.Vec3)
	RequestCombat(on bool)
	FireShot() bool
	StartDragging() bool
	UpdateDrag(origin, dir mgl64.Vec3)
	PlaceCube() bool
	CancelDragging()
	UpgradeTurret(id int) bool
	RemoveTurret(id int) bool
}
