package system

import (
	"testing"

	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	eye  = mgl64.Vec3{0, 10, 0}
	down = mgl64.Vec3{0.31, -1, 0.52} // lands on (3.1, 0, 5.2)
)

func TestStartDraggingNeedsFunds(t *testing.T) {
	f := newFixture(t, 10)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)

	assert.False(t, s.StartDragging(f.ctx))
	assert.False(t, s.Dragging())
	assert.Equal(t, 10, f.ctx.Score.Balance())
	assert.Zero(t, f.graph.Count(scene.KindPreview))
}

func TestDragAndPlace(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)

	require.True(t, s.StartDragging(f.ctx))
	assert.Equal(t, 1, f.graph.Count(scene.KindPreview))

	s.UpdateDrag(eye, down)
	p, ok := s.Preview()
	require.True(t, ok)
	assert.InDelta(t, 3, p.X(), 1e-9)
	assert.InDelta(t, 5, p.Z(), 1e-9)

	require.True(t, s.PlaceCube(f.ctx))
	assert.Equal(t, 100-f.cfg.Turret.Cost, f.ctx.Score.Balance())
	require.Len(t, s.Turrets, 1)
	pos := s.Turrets[0].Position()
	assert.InDelta(t, 3, pos.X(), 1e-9)
	assert.InDelta(t, 5, pos.Z(), 1e-9)
	assert.False(t, s.Dragging())
	assert.Zero(t, f.graph.Count(scene.KindPreview))
	assert.Equal(t, 1, f.events[event.TurretPlaced])

	// staging is over; another place does nothing
	assert.False(t, s.PlaceCube(f.ctx))
	assert.Len(t, s.Turrets, 1)
}

func TestPlaceNeedsValidPreview(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)
	f.world.AddObstacle(mgl64.Vec3{3, 1, 5}, mgl64.Vec3{1, 1, 1})

	require.True(t, s.StartDragging(f.ctx))
	assert.False(t, s.PlaceCube(f.ctx))

	s.UpdateDrag(eye, mgl64.Vec3{0, 1, 0}) // looking at the sky
	assert.False(t, s.PlaceCube(f.ctx))

	s.UpdateDrag(eye, down) // into the obstacle
	_, ok := s.Preview()
	assert.False(t, ok)
	assert.False(t, s.PlaceCube(f.ctx))

	assert.True(t, s.Dragging())
	assert.Equal(t, 100, f.ctx.Score.Balance())
	assert.Empty(t, s.Turrets)
}

func TestCancelDraggingCostsNothing(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)

	require.True(t, s.StartDragging(f.ctx))
	s.UpdateDrag(eye, down)
	s.CancelDragging()
	assert.False(t, s.Dragging())
	assert.Equal(t, 100, f.ctx.Score.Balance())
	assert.Empty(t, s.Turrets)
	assert.Zero(t, f.graph.Count(scene.KindPreview))
}

func TestPlaceFailsWhenFundsRanOut(t *testing.T) {
	f := newFixture(t, 40)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)

	require.True(t, s.StartDragging(f.ctx))
	s.UpdateDrag(eye, down)
	require.True(t, f.ctx.Score.AddScore(-20))

	assert.False(t, s.PlaceCube(f.ctx))
	assert.Equal(t, 20, f.ctx.Score.Balance())
	assert.True(t, s.Dragging())
}

func placeTurret(t *testing.T, f *fixture, s *TurretSystem) *actor.Turret {
	t.Helper()
	require.True(t, s.StartDragging(f.ctx))
	s.UpdateDrag(eye, down)
	require.True(t, s.PlaceCube(f.ctx))
	return s.Turrets[len(s.Turrets)-1]
}

func TestUpgradeTurret(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)
	tur := placeTurret(t, f, s)

	require.True(t, s.Upgrade(f.ctx, tur.ID))
	assert.Equal(t, 2, tur.Level)
	assert.Equal(t, 30, f.ctx.Score.Balance())

	// 30 left, upgrade costs 40
	rng := tur.Combat.Range
	assert.False(t, s.Upgrade(f.ctx, tur.ID))
	assert.Equal(t, 2, tur.Level)
	assert.Equal(t, rng, tur.Combat.Range)
	assert.Equal(t, 30, f.ctx.Score.Balance())

	f.ctx.Score.AddScore(1000)
	require.True(t, s.Upgrade(f.ctx, tur.ID))
	assert.Equal(t, f.cfg.Turret.MaxLevel, tur.Level)
	balance := f.ctx.Score.Balance()
	assert.False(t, s.Upgrade(f.ctx, tur.ID))
	assert.Equal(t, balance, f.ctx.Score.Balance())

	assert.False(t, s.Upgrade(f.ctx, 999))
	assert.Equal(t, 2, f.events[event.TurretUpgraded])
}

func TestRemoveTurret(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)
	tur := placeTurret(t, f, s)
	bodies := f.world.BodyCount()

	assert.True(t, s.Remove(f.ctx, tur.ID))
	assert.False(t, s.Remove(f.ctx, tur.ID))
	assert.True(t, tur.Disposed())
	assert.Empty(t, s.Turrets)
	assert.Equal(t, bodies-1, f.world.BodyCount())
	assert.Zero(t, f.graph.Count(scene.KindTurret))
	assert.Equal(t, 1, f.events[event.TurretRemoved])
}

func TestTurretsFireThroughPool(t *testing.T) {
	f := newFixture(t, 100)
	s := NewTurretSystem(f.world, f.graph, f.cfg.Turret, f.log)
	pool := NewProjectilePool(f.graph, f.log)
	tur := placeTurret(t, f, s)
	e := f.enemy(1, tur.Position().Add(mgl64.Vec3{0, 0, 3}))
	enemies := []*actor.Enemy{e}

	const dt = 1.0 / 60.0
	for i := 0; i < 60 && e.Targetable(); i++ {
		f.ctx.Advance(dt)
		pool.Update(f.ctx, dt, enemies, f.world)
		s.Update(f.ctx, dt, enemies, pool)
	}
	assert.True(t, e.Dying())
	assert.Equal(t, 1, pool.Stats().Hits)
	assert.Equal(t, 1, tur.Combat.Shots)
}
