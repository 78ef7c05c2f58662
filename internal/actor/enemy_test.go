package actor

import (
	"testing"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyHitByShotIsIdempotent(t *testing.T) {
	r := newRig(t)
	e := r.enemy(1, mgl64.Vec3{20, 0, 0}, hunter)

	require.True(t, e.HitByShot(r.ctx))
	assert.Equal(t, component.EnemyDying, e.State)
	assert.False(t, e.Ambient())
	assert.False(t, e.Targetable())
	v := e.Body.Velocity()
	assert.Greater(t, v.Y(), 0.0)

	r.ctx.Advance(0.5)
	e.Update(r.ctx, 0.5, r.player)
	since, hit := e.SinceHit()
	require.True(t, hit)

	assert.False(t, e.HitByShot(r.ctx))
	assert.Equal(t, v, e.Body.Velocity())
	again, _ := e.SinceHit()
	assert.Equal(t, since, again)
}

func TestEnemyDisposesOnceAfterDelay(t *testing.T) {
	r := newRig(t)
	e := r.enemy(1, mgl64.Vec3{20, 0, 0}, hunter)
	bodies := r.world.BodyCount()
	require.Equal(t, 1, r.graph.Count(scene.KindEnemy))

	e.HitByShot(r.ctx)
	dt := 1.0 / 30.0
	for i := 0; i < 149; i++ {
		e.Update(r.ctx, dt, r.player)
	}
	assert.Equal(t, component.EnemyDying, e.State)

	for i := 0; i < 3; i++ {
		e.Update(r.ctx, dt, r.player)
	}
	assert.True(t, e.Disposed())
	assert.Equal(t, bodies-1, r.world.BodyCount())
	assert.Zero(t, r.graph.Count(scene.KindEnemy))

	assert.NotPanics(t, func() {
		e.Dispose()
		e.Update(r.ctx, dt, r.player)
	})
	assert.Equal(t, bodies-1, r.world.BodyCount())
}

func TestEnemyChaseIsHorizontal(t *testing.T) {
	r := newRig(t)
	e := r.enemy(1, mgl64.Vec3{5, 0, 0}, hunter)
	e.Body.SetVelocity(mgl64.Vec3{0, 2, 0})

	e.Update(r.ctx, 1.0/60.0, r.player)

	assert.Equal(t, component.EnemyChase, e.State)
	v := e.Body.Velocity()
	assert.InDelta(t, -3, v.X(), 1e-9)
	assert.InDelta(t, 0, v.Z(), 1e-9)
	assert.InDelta(t, 2, v.Y(), 1e-9)
}

func TestEnemyStateFollowsDistanceWithoutHysteresis(t *testing.T) {
	r := newRig(t)
	e := r.enemy(1, mgl64.Vec3{9.99, 0, 0}, hunter)
	e.Update(r.ctx, 1.0/60.0, r.player)
	assert.Equal(t, component.EnemyChase, e.State)

	e.Body.SetPosition(mgl64.Vec3{10.01, 0.5, 0})
	e.Update(r.ctx, 1.0/60.0, r.player)
	assert.Equal(t, component.EnemyWander, e.State)

	e.Body.SetPosition(mgl64.Vec3{9.99, 0.5, 0})
	e.Update(r.ctx, 1.0/60.0, r.player)
	assert.Equal(t, component.EnemyChase, e.State)
}

func TestDrifterNeverChases(t *testing.T) {
	r := newRig(t)
	drifter := component.AIPolicy{Kind: component.PolicyDrifter, ChaseRadius: 50, ChaseSpeed: 3, WanderSpeed: 1}
	e := r.enemy(1, mgl64.Vec3{3, 0, 0}, drifter)
	e.Update(r.ctx, 1.0/60.0, r.player)
	assert.Equal(t, component.EnemyWander, e.State)
}

func TestWanderTargetAvoidsShotRange(t *testing.T) {
	r := newRig(t)
	pos := mgl64.Vec3{25, 0, 0}
	e := r.enemy(1, pos, hunter)

	rangeSq := r.player.ShotRange * r.player.ShotRange
	for i := 0; i < 40; i++ {
		e.pickWanderTarget(r.ctx, e.Body.Position(), r.player)
		tgt := e.Wander.Target
		assert.GreaterOrEqual(t, tgt.X()*tgt.X()+tgt.Z()*tgt.Z(), rangeSq)
		assert.LessOrEqual(t, tgt.X(), pos.X()+20)
		assert.GreaterOrEqual(t, tgt.X(), pos.X()-20)
		assert.LessOrEqual(t, tgt.Z(), 20.0)
		assert.GreaterOrEqual(t, tgt.Z(), -20.0)
	}
}

func TestWanderRerollsOnInterval(t *testing.T) {
	r := newRig(t)
	e := r.enemy(1, mgl64.Vec3{40, 0, 0}, hunter)

	e.Update(r.ctx, 0.1, r.player)
	assert.Equal(t, component.EnemyWander, e.State)
	first := e.Wander.Rerolls
	assert.Equal(t, 1, first)

	for i := 0; i < 49; i++ {
		e.Update(r.ctx, 0.1, r.player)
	}
	assert.Equal(t, first, e.Wander.Rerolls)
	e.Update(r.ctx, 0.11, r.player)
	assert.Equal(t, first+1, e.Wander.Rerolls)
}

func TestPlayerContactFiresGameOverOnce(t *testing.T) {
	r := newRig(t)
	fired := 0
	r.ctx.Events.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { fired++ }))

	// box max x is 1.0; a sphere of radius 0.5 at x=1.2 overlaps it
	a := r.enemy(1, mgl64.Vec3{1.2, 0, 0}, hunter)
	b := r.enemy(2, mgl64.Vec3{-1.2, 0, 0}, hunter)
	a.Update(r.ctx, 1.0/60.0, r.player)
	b.Update(r.ctx, 1.0/60.0, r.player)
	a.Update(r.ctx, 1.0/60.0, r.player)

	assert.True(t, r.ctx.Over())
	assert.Equal(t, 1, fired)
}

func TestPlayerContactUsesAsymmetricBox(t *testing.T) {
	r := newRig(t)
	// front face at z=+1.4, back face at z=-1.8
	front := r.enemy(1, mgl64.Vec3{0, 0, 1.95}, hunter)
	front.Update(r.ctx, 1.0/60.0, r.player)
	assert.False(t, r.ctx.Over())

	back := r.enemy(2, mgl64.Vec3{0, 0, -2.25}, hunter)
	back.Update(r.ctx, 1.0/60.0, r.player)
	assert.True(t, r.ctx.Over())
}

func TestInvulnerableSuppressesContact(t *testing.T) {
	r := newRig(t)
	r.ctx.Invulnerable = true
	e := r.enemy(1, mgl64.Vec3{1.2, 0, 0}, hunter)
	e.Update(r.ctx, 1.0/60.0, r.player)
	assert.False(t, r.ctx.Over())
}
