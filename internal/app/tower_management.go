// internal/app/tower_management.go
package app

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SetPlayerVelocity requests a horizontal velocity for the vehicle.
func (s *Simulation) SetPlayerVelocity(v mgl64.Vec3) {
	s.PlayerSystem.SetVelocity(v)
}

// SetAim points the player's gun.
func (s *Simulation) SetAim(dir mgl64.Vec3) {
	s.Player.SetAim(dir)
}

// RequestCombat asks to deploy (true) or retract (false) the weapon.
func (s *Simulation) RequestCombat(on bool) {
	s.Player.Mode.Request(on)
}

// FireShot fires the player's gun and reports whether a shot left the muzzle.
func (s *Simulation) FireShot() bool {
	s.LastShot = s.CombatSystem.FireShot(s.Ctx, s.Player)
	return s.LastShot.Fired
}

// StartDragging begins staging a turret if the balance covers it.
func (s *Simulation) StartDragging() bool {
	return s.TurretSystem.StartDragging(s.Ctx)
}

// UpdateDrag moves the staged turret to where the pointer ray meets the ground.
func (s *Simulation) UpdateDrag(origin, dir mgl64.Vec3) {
	s.TurretSystem.UpdateDrag(origin, dir)
}

// PlaceCube builds the staged turret.
func (s *Simulation) PlaceCube() bool {
	return s.TurretSystem.PlaceCube(s.Ctx)
}

// CancelDragging drops the staged turret.
func (s *Simulation) CancelDragging() {
	s.TurretSystem.CancelDragging()
}

// UpgradeTurret upgrades the turret with the given id.
func (s *Simulation) UpgradeTurret(id int) bool {
	return s.TurretSystem.Upgrade(s.Ctx, id)
}

// RemoveTurret removes the turret with the given id.
func (s *Simulation) RemoveTurret(id int) bool {
	return s.TurretSystem.Remove(s.Ctx, id)
}
