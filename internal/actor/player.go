package actor

import (
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/state"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Player is the core's view of the vehicle: a body, a box and a combat mode.
// Steering comes from outside (input or autopilot).
type Player struct {
	Body      *physics.Body
	Node      scene.Node
	BoxMin    mgl64.Vec3 // offsets from the body center, not symmetric
	BoxMax    mgl64.Vec3
	ShotRange float64
	Speed     float64
	Mode      *state.CombatMode
	Aim       mgl64.Vec3 // unit, horizontal

	shotCooldown float64
	lastShot     float64
	hasShot      bool
}

// NewPlayer creates the player body at pos.
func NewPlayer(world *physics.World, graph scene.Graph, pos mgl64.Vec3, cfg config.PlayerConfig) *Player {
	min := mgl64.Vec3(cfg.BoxMin)
	max := mgl64.Vec3(cfg.BoxMax)
	if pos.Y() < -min.Y() {
		pos[1] = -min.Y()
	}
	body := world.CreateBody(physics.BodyDef{
		Kind:          physics.Dynamic,
		Position:      pos,
		Min:           min,
		Max:           max,
		Density:       4,
		Damping:       4,
		FixedRotation: true,
		Category:      physics.CategoryPlayer,
		Mask:          physics.CategoryObstacle | physics.CategoryTurret,
	})
	p := &Player{
		Body:         body,
		Node:         scene.Spawn(graph, scene.KindPlayer),
		BoxMin:       min,
		BoxMax:       max,
		ShotRange:    cfg.ShotRange,
		Speed:        cfg.Speed,
		Mode:         state.NewCombatMode(cfg.DeployTime, cfg.RetractTime),
		Aim:          mgl64.Vec3{0, 0, 1},
		shotCooldown: cfg.ShotCooldown,
	}
	p.Sync()
	return p
}

func (p *Player) Position() mgl64.Vec3 {
	return p.Body.Position()
}

// Bounds returns the world-space box.
func (p *Player) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	pos := p.Body.Position()
	return pos.Add(p.BoxMin), pos.Add(p.BoxMax)
}

// Drive sets the horizontal velocity if the mode allows moving.
func (p *Player) Drive(v mgl64.Vec3) {
	if !p.Mode.CanMove() {
		v = mgl64.Vec3{}
	}
	cur := p.Body.Velocity()
	p.Body.SetVelocity(mgl64.Vec3{v.X(), cur.Y(), v.Z()})
}

// SetAim points the gun; zero vectors are ignored.
func (p *Player) SetAim(dir mgl64.Vec3) {
	dir[1] = 0
	if l := dir.Len(); l > 1e-9 {
		p.Aim = dir.Mul(1 / l)
	}
}

// Muzzle is where player shots start.
func (p *Player) Muzzle() mgl64.Vec3 {
	return p.Body.Position().Add(mgl64.Vec3{0, p.BoxMax.Y() * 0.5, 0})
}

// TryShoot consumes the shot cooldown if the player may fire at time now.
func (p *Player) TryShoot(now float64) bool {
	if !p.Mode.CanFire() {
		return false
	}
	if p.hasShot && now-p.lastShot < p.shotCooldown {
		return false
	}
	p.lastShot = now
	p.hasShot = true
	return true
}

// Sync pushes the body transform into the node.
func (p *Player) Sync() {
	if p.Node == nil {
		return
	}
	p.Node.SetPosition(p.Body.Position())
	p.Node.SetRotation(mgl64.QuatRotate(utils.Bearing(p.Aim.X(), p.Aim.Z()), mgl64.Vec3{0, 1, 0}))
}
