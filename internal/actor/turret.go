package actor

import (
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Launcher fires pooled projectiles.
type Launcher interface {
	Launch(origin, direction mgl64.Vec3, speed, maxRange float64, source int)
}

// TurretParams describes a turret to place.
type TurretParams struct {
	ID              int
	Position        mgl64.Vec3
	RotationSpeed   float64
	WanderSpeed     float64
	ProjectileSpeed float64
	ProjectileRange float64
	Muzzle          mgl64.Vec3 // offset from the body center when facing +Z
}

const turretRadius = 0.5

// Turret is a placed autonomous defender.
type Turret struct {
	ID              int
	Level           int
	Body            *physics.Body
	Combat          component.Combat
	Aim             component.Aim
	Wander          component.Wander
	Engaged         bool
	WanderSpeed     float64
	ProjectileSpeed float64
	ProjectileRange float64
	Muzzle          mgl64.Vec3

	Node      scene.Node
	RangeRing scene.Node
	Hitbox    scene.Node

	idle     bool
	disposed bool
	world    *physics.World
	graph    scene.Graph
}

// NewTurret places a turret on the ground at p.Position.
func NewTurret(world *physics.World, graph scene.Graph, p TurretParams) *Turret {
	pos := p.Position
	pos[1] = turretRadius
	t := &Turret{
		ID:              p.ID,
		Level:           1,
		Combat:          component.Combat{Range: config.TurretRange, Cooldown: config.TurretCooldown},
		Aim:             component.Aim{TurnSpeed: p.RotationSpeed},
		WanderSpeed:     p.WanderSpeed,
		ProjectileSpeed: p.ProjectileSpeed,
		ProjectileRange: p.ProjectileRange,
		Muzzle:          p.Muzzle,
		world:           world,
		graph:           graph,
	}
	t.Body = world.CreateBody(physics.BodyDef{
		Kind:     physics.Kinematic,
		Position: pos,
		Radius:   turretRadius,
		Category: physics.CategoryTurret,
		UserData: t,
	})
	t.Node = scene.Spawn(graph, scene.KindTurret)
	t.RangeRing = scene.Spawn(graph, scene.KindRangeRing)
	t.Hitbox = scene.Spawn(graph, scene.KindHitbox)
	t.Sync()
	return t
}

func (t *Turret) Position() mgl64.Vec3 {
	return t.Body.Position()
}

func (t *Turret) Disposed() bool { return t.disposed }

// Update retargets, aims, fires and wanders when idle.
func (t *Turret) Update(ctx *session.GameContext, dt float64, enemies []*Enemy, launcher Launcher) {
	if t.disposed {
		return
	}
	pos := t.Body.Position()
	target := t.Nearest(enemies)

	if target != nil {
		t.Engaged = true
		t.idle = false
		tp := target.Position()
		t.Aim.TargetID = target.ID
		t.Aim.LastAimed = utils.Bearing(tp.X()-pos.X(), tp.Z()-pos.Z())
		t.Aim.Facing = utils.EaseAngle(t.Aim.Facing, t.Aim.LastAimed, t.Aim.TurnSpeed, dt)

		if t.Combat.Ready(ctx.Now) && launcher != nil {
			muzzle := t.MuzzlePosition()
			launcher.Launch(muzzle, tp.Sub(muzzle), t.ProjectileSpeed, t.ProjectileRange, t.ID)
			t.Combat.Stamp(ctx.Now)
		}
	} else {
		t.Engaged = false
		t.Aim.TargetID = 0
		// the last bearing stays; keep easing toward it
		t.Aim.Facing = utils.EaseAngle(t.Aim.Facing, t.Aim.LastAimed, t.Aim.TurnSpeed, dt)
		t.wander(ctx, dt, pos)
	}
	t.Sync()
}

// Nearest returns the closest targetable enemy in range; ties keep the first one found.
func (t *Turret) Nearest(enemies []*Enemy) *Enemy {
	pos := t.Body.Position()
	best := t.Combat.Range * t.Combat.Range
	var found *Enemy
	for _, e := range enemies {
		if !e.Targetable() {
			continue
		}
		d := e.Position().Sub(pos)
		dsq := d.Dot(d)
		if dsq > best {
			continue
		}
		if found == nil || dsq < best {
			found = e
			best = dsq
		}
	}
	return found
}

// MuzzlePosition is the muzzle offset rotated by the current facing.
func (t *Turret) MuzzlePosition() mgl64.Vec3 {
	q := mgl64.QuatRotate(t.Aim.Facing, mgl64.Vec3{0, 1, 0})
	return t.Body.Position().Add(q.Rotate(t.Muzzle))
}

func (t *Turret) wander(ctx *session.GameContext, dt float64, pos mgl64.Vec3) {
	t.Wander.Timer += dt
	if !t.idle || !t.Wander.HasTarget || t.Wander.Timer >= config.TurretWanderInterval {
		half := config.TurretWanderBox / 2
		t.Wander.Target = mgl64.Vec3{
			pos.X() + ctx.Rng.Range(-half, half),
			pos.Y(),
			pos.Z() + ctx.Rng.Range(-half, half),
		}
		t.Wander.HasTarget = true
		t.Wander.Timer = 0
		t.Wander.Rerolls++
	}
	t.idle = true

	to := utils.Horizontal(t.Wander.Target.Sub(pos))
	l := to.Len()
	if l <= config.TurretWanderArrival {
		return
	}
	step := t.WanderSpeed * dt
	if step > l {
		step = l
	}
	t.Body.SetPosition(pos.Add(to.Mul(step / l)))
}

// Upgrade raises the level: longer range, shorter cooldown.
func (t *Turret) Upgrade() {
	t.Level++
	t.Combat.Range += 1
	t.Combat.Cooldown *= 0.85
}

// Dispose removes the body and every visual. Safe to call twice.
func (t *Turret) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	scene.Remove(t.graph, t.Node)
	scene.Remove(t.graph, t.RangeRing)
	scene.Remove(t.graph, t.Hitbox)
	t.Node, t.RangeRing, t.Hitbox = nil, nil, nil
	t.world.RemoveBody(t.Body)
}

// Sync keeps the mesh, range ring and hitbox on the body.
func (t *Turret) Sync() {
	if t.disposed {
		return
	}
	pos := t.Body.Position()
	t.Body.SetYaw(t.Aim.Facing)
	if t.Node != nil {
		t.Node.SetPosition(pos)
		t.Node.SetRotation(t.Body.Quaternion())
	}
	if t.RangeRing != nil {
		t.RangeRing.SetPosition(mgl64.Vec3{pos.X(), 0.02, pos.Z()})
		r := t.Combat.Range
		t.RangeRing.SetScale(mgl64.Vec3{r, 1, r})
	}
	if t.Hitbox != nil {
		t.Hitbox.SetPosition(pos)
		t.Hitbox.SetScale(mgl64.Vec3{turretRadius * 2, turretRadius * 2, turretRadius * 2})
	}
}
