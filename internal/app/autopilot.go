package app

import (
	"math"

	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	autopilotTurnRate    = 0.35 // rad/s while cruising
	autopilotCruise      = 0.6  // fraction of player speed
	autopilotDanger      = 4.0  // enemies closer than this make the vehicle flee
	autopilotBuildPeriod = 6.0
	autopilotBuildAhead  = 3.0
)

// Autopilot drives a session without a human: it cruises the arena, fights what comes
// into range and spends money on turrets.
type Autopilot struct {
	sim        *Simulation
	heading    float64
	buildTimer float64
}

func NewAutopilot(sim *Simulation) *Autopilot {
	return &Autopilot{sim: sim}
}

// Step issues this frame's commands. Call it before Simulation.Update.
func (a *Autopilot) Step(dt float64) {
	sim := a.sim
	pos := sim.Player.Position()

	target, dist, ok := a.nearestTarget(pos)
	switch {
	case ok && dist < autopilotDanger:
		// back off while keeping the gun on it
		away := utils.Horizontal(pos.Sub(target))
		if l := away.Len(); l > 1e-6 {
			away = away.Mul(sim.Player.Speed / l)
		}
		sim.SetAim(target.Sub(pos))
		sim.SetPlayerVelocity(away)
		sim.RequestCombat(true)
		sim.FireShot()
	case ok:
		sim.SetAim(target.Sub(pos))
		sim.SetPlayerVelocity(mgl64.Vec3{})
		sim.RequestCombat(true)
		sim.FireShot()
	default:
		sim.RequestCombat(false)
		sim.SetPlayerVelocity(a.cruise(dt, pos))
	}

	a.buildTimer += dt
	if a.buildTimer >= autopilotBuildPeriod {
		a.buildTimer = 0
		a.build(pos)
	}
}

// nearestTarget returns the closest targetable enemy or spawner within shot range.
func (a *Autopilot) nearestTarget(pos mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	sim := a.sim
	best := sim.Player.ShotRange
	var target mgl64.Vec3
	found := false
	for _, e := range sim.SpawnSystem.Enemies {
		if !e.Targetable() {
			continue
		}
		p := e.Position()
		if d := utils.Horizontal(p.Sub(pos)).Len(); d < best {
			best, target, found = d, p, true
		}
	}
	for _, sp := range sim.SpawnSystem.Spawners {
		if d := utils.Horizontal(sp.Position.Sub(pos)).Len(); d < best {
			best, target, found = d, sp.Position, true
		}
	}
	return target, best, found
}

// cruise turns slowly and steers back toward the middle near the arena edge.
func (a *Autopilot) cruise(dt float64, pos mgl64.Vec3) mgl64.Vec3 {
	b := a.sim.Layout.Bounds
	cx, cz := (b.Min[0]+b.Max[0])/2, (b.Min[1]+b.Max[1])/2
	hx, hz := (b.Max[0]-b.Min[0])/2, (b.Max[1]-b.Min[1])/2
	if math.Abs(pos.X()-cx) > 0.7*hx || math.Abs(pos.Z()-cz) > 0.7*hz {
		a.heading = utils.EaseAngle(a.heading, utils.Bearing(cx-pos.X(), cz-pos.Z()), 2, dt)
	} else {
		a.heading = utils.NormalizeAngle(a.heading + autopilotTurnRate*dt)
	}
	dir := mgl64.Vec3{math.Sin(a.heading), 0, math.Cos(a.heading)}
	return dir.Mul(a.sim.Player.Speed * autopilotCruise)
}

// build places a turret a few units ahead of the vehicle, or upgrades one when rich.
func (a *Autopilot) build(pos mgl64.Vec3) {
	sim := a.sim
	cfg := sim.Config.Turret
	balance := sim.Ctx.Score.Balance()

	if balance >= cfg.Cost+cfg.UpgradeCost {
		for _, t := range sim.TurretSystem.Turrets {
			if t.Level < cfg.MaxLevel {
				sim.UpgradeTurret(t.ID)
				return
			}
		}
	}
	if !sim.StartDragging() {
		return
	}
	spot := pos.Add(sim.Player.Aim.Mul(autopilotBuildAhead))
	eye := mgl64.Vec3{spot.X(), 10, spot.Z()}
	sim.UpdateDrag(eye, mgl64.Vec3{0, -1, 0})
	if !sim.PlaceCube() {
		sim.CancelDragging()
	}
}
