package actor

import (
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// EnemyParams describes an enemy to create.
type EnemyParams struct {
	ID         int
	Archetype  string
	Position   mgl64.Vec3
	Radius     float64
	Policy     component.AIPolicy
	Reward     int
	Damping    float64
	ImpulseMin float64 // upward speed range given by a hit
	ImpulseMax float64
}

// Enemy is an autonomous hostile. Its transform lives in a physics body.
type Enemy struct {
	ID        int
	Archetype string
	Body      *physics.Body
	Node      scene.Node
	Radius    float64
	Policy    component.AIPolicy
	Reward    int
	State     component.EnemyState
	Wander    component.Wander

	sinceHit   float64
	wandering  bool
	ambient    bool
	bobPhase   float64
	impulseMin float64
	impulseMax float64
	lastPos    mgl64.Vec3

	world *physics.World
	graph scene.Graph
}

// NewEnemy creates an enemy resting on the ground at p.Position.
func NewEnemy(world *physics.World, graph scene.Graph, p EnemyParams) *Enemy {
	pos := p.Position
	pos[1] = p.Radius
	e := &Enemy{
		ID:         p.ID,
		Archetype:  p.Archetype,
		Radius:     p.Radius,
		Policy:     p.Policy,
		Reward:     p.Reward,
		State:      component.EnemyWander,
		ambient:    true,
		impulseMin: p.ImpulseMin,
		impulseMax: p.ImpulseMax,
		lastPos:    pos,
		world:      world,
		graph:      graph,
	}
	e.Body = world.CreateBody(physics.BodyDef{
		Kind:          physics.Dynamic,
		Position:      pos,
		Radius:        p.Radius,
		Density:       1,
		Damping:       p.Damping,
		FixedRotation: true,
		Category:      physics.CategoryEnemy,
		Mask:          physics.CategoryObstacle | physics.CategoryEnemy | physics.CategoryTurret,
		UserData:      e,
	})
	e.Node = scene.Spawn(graph, scene.KindEnemy)
	e.Sync()
	return e
}

func (e *Enemy) Position() mgl64.Vec3 {
	if e.State == component.EnemyDisposed {
		return e.lastPos
	}
	return e.Body.Position()
}

// Targetable is false once the enemy has been hit.
func (e *Enemy) Targetable() bool {
	return e.State == component.EnemyWander || e.State == component.EnemyChase
}

func (e *Enemy) Dying() bool    { return e.State == component.EnemyDying }
func (e *Enemy) Disposed() bool { return e.State == component.EnemyDisposed }

// SinceHit returns seconds since the hit and whether the enemy has been hit at all.
func (e *Enemy) SinceHit() (float64, bool) {
	if e.Targetable() {
		return 0, false
	}
	return e.sinceHit, true
}

// Ambient reports whether the idle bob animation is running.
func (e *Enemy) Ambient() bool { return e.ambient }

// Update runs one tick of AI: pick a state from the distance to the player,
// write the body velocity, then test contact with the player box.
func (e *Enemy) Update(ctx *session.GameContext, dt float64, player *Player) {
	switch e.State {
	case component.EnemyDisposed:
		return
	case component.EnemyDying:
		e.sinceHit += dt
		if e.sinceHit > config.EnemyDisposeDelay {
			e.Dispose()
			ctx.Log.Debug("enemy disposed", zap.Int("enemy", e.ID))
		}
		return
	}

	e.bobPhase += dt
	pos := e.Body.Position()
	offset := utils.Horizontal(player.Position().Sub(pos))

	// no hysteresis: the state follows the distance every frame
	if e.Policy.Chases() && utils.LenSq(offset) < e.Policy.ChaseRadius*e.Policy.ChaseRadius {
		e.State = component.EnemyChase
	} else {
		e.State = component.EnemyWander
	}

	var v mgl64.Vec3
	if e.State == component.EnemyChase {
		e.wandering = false
		if l := offset.Len(); l > 1e-9 {
			v = offset.Mul(e.Policy.ChaseSpeed / l)
		}
	} else {
		v = e.wanderVelocity(ctx, dt, pos, player)
	}
	cur := e.Body.Velocity()
	e.Body.SetVelocity(mgl64.Vec3{v.X(), cur.Y(), v.Z()})

	if e.touches(pos, player) {
		ctx.TriggerGameOver("enemy contact")
	}
}

func (e *Enemy) wanderVelocity(ctx *session.GameContext, dt float64, pos mgl64.Vec3, player *Player) mgl64.Vec3 {
	e.Wander.Timer += dt
	if !e.wandering || !e.Wander.HasTarget || e.Wander.Timer >= config.EnemyWanderInterval {
		e.pickWanderTarget(ctx, pos, player)
	}
	e.wandering = true

	to := utils.Horizontal(e.Wander.Target.Sub(pos))
	l := to.Len()
	if l <= config.EnemyWanderArrival {
		return mgl64.Vec3{}
	}
	return to.Mul(e.Policy.WanderSpeed / l)
}

// pickWanderTarget rolls a point in a box around pos, never inside the player's shot range.
// When every attempt lands too close the previous target is kept.
func (e *Enemy) pickWanderTarget(ctx *session.GameContext, pos mgl64.Vec3, player *Player) {
	e.Wander.Timer = 0
	half := config.EnemyWanderBox / 2
	pp := player.Position()
	minSq := player.ShotRange * player.ShotRange
	for i := 0; i < config.EnemyWanderAttempts; i++ {
		c := mgl64.Vec3{
			pos.X() + ctx.Rng.Range(-half, half),
			pos.Y(),
			pos.Z() + ctx.Rng.Range(-half, half),
		}
		if utils.LenSq(utils.Horizontal(c.Sub(pp))) < minSq {
			continue
		}
		e.Wander.Target = c
		e.Wander.HasTarget = true
		e.Wander.Rerolls++
		return
	}
	if !e.Wander.HasTarget {
		e.Wander.Target = pos
		e.Wander.HasTarget = true
	}
}

func (e *Enemy) touches(pos mgl64.Vec3, player *Player) bool {
	min, max := player.Bounds()
	d := pos.Sub(physics.ClosestPointOnBox(pos, min, max))
	return d.Dot(d) < e.Radius*e.Radius
}

// HitByShot starts the death sequence. It returns false if the enemy was already hit.
func (e *Enemy) HitByShot(ctx *session.GameContext) bool {
	if !e.Targetable() {
		return false
	}
	e.State = component.EnemyDying
	e.sinceHit = 0
	e.ambient = false

	angle := ctx.Rng.Angle()
	out := ctx.Rng.Range(0.3, 1.0) * e.impulseMin
	up := ctx.Rng.Range(e.impulseMin, e.impulseMax)
	m := e.Body.Mass()
	e.Body.Wake()
	e.Body.ApplyImpulse(mgl64.Vec3{math.Cos(angle) * out * m, up * m, math.Sin(angle) * out * m})
	return true
}

// Dispose frees the node and the body. Safe to call twice.
func (e *Enemy) Dispose() {
	if e.State == component.EnemyDisposed {
		return
	}
	e.lastPos = e.Body.Position()
	scene.Remove(e.graph, e.Node)
	e.Node = nil
	e.world.RemoveBody(e.Body)
	e.State = component.EnemyDisposed
}

// Sync pushes the body transform into the node.
func (e *Enemy) Sync() {
	if e.Node == nil || e.State == component.EnemyDisposed {
		return
	}
	pos := e.Body.Position()
	if e.ambient {
		pos[1] += math.Sin(e.bobPhase*config.EnemyAmbientBobSpeed) * config.EnemyAmbientBobRange
	}
	e.Node.SetPosition(pos)
	e.Node.SetRotation(e.Body.Quaternion())
}
