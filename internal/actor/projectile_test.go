package actor

import (
	"math"
	"testing"

	"go-arena-combat/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point mgl64.Vec3

func (p point) Position() mgl64.Vec3 { return mgl64.Vec3(p) }

func TestProjectileExpiresAtRange(t *testing.T) {
	for _, dt := range []float64{1.0 / 60.0, 1.0 / 30.0, 0.1, 0.25} {
		var p Projectile
		p.Reset(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 3, 11)

		elapsed := 0.0
		last := 0.0
		for p.Advance(dt) {
			elapsed += dt
			assert.GreaterOrEqual(t, p.Traveled, last)
			assert.Less(t, p.Traveled, 11.0)
			last = p.Traveled
			require.Less(t, elapsed, 10.0)
		}
		elapsed += dt

		assert.False(t, p.Alive)
		assert.True(t, p.Expired)
		assert.GreaterOrEqual(t, p.Traveled, 11.0)
		assert.GreaterOrEqual(t, elapsed, 11.0/3.0-1e-9, "dt=%v", dt)
		assert.InDelta(t, p.Traveled, p.Position.Z(), 1e-9)
	}
}

func TestProjectileResetNormalizesAndClears(t *testing.T) {
	var p Projectile
	p.Reset(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 5, 1)
	p.Advance(1)
	require.False(t, p.Alive)

	p.Reset(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 0, 4}, 2, 10)
	assert.True(t, p.Alive)
	assert.False(t, p.Expired)
	assert.Zero(t, p.Traveled)
	assert.InDelta(t, 1, p.Direction.Len(), 1e-12)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, p.Previous)
}

func TestProjectileActorCollision(t *testing.T) {
	var p Projectile
	p.Reset(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 1, 10)

	assert.False(t, p.TestActorCollision(point{0, 0, 0.5}), "boundary is not a hit")
	assert.True(t, p.Alive)
	assert.True(t, p.TestActorCollision(point{0, 0.3, 0.3}))
	assert.False(t, p.Alive)
	// dead projectiles are never tested again
	assert.False(t, p.TestActorCollision(point{0, 0, 0}))
}

func TestProjectileTerrainCollision(t *testing.T) {
	world := physics.NewWorld(9.8)
	world.AddObstacle(mgl64.Vec3{0, 1, 3}, mgl64.Vec3{2, 1, 0.1})

	var p Projectile
	p.Reset(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 1}, 10, 20)

	hit := false
	for i := 0; i < 60 && p.Advance(1.0/60.0); i++ {
		if p.TestTerrainCollision(world) {
			hit = true
			break
		}
	}
	require.True(t, hit)
	assert.False(t, p.Alive)
	assert.False(t, p.Expired)
	assert.InDelta(t, 2.9, p.Position.Z(), 1e-6)
	assert.False(t, p.TestTerrainCollision(world))
}

func TestProjectileTerrainCullsFarObstacles(t *testing.T) {
	world := physics.NewWorld(9.8)
	world.AddObstacle(mgl64.Vec3{10, 1, 0}, mgl64.Vec3{1, 1, 1})

	var p Projectile
	p.Reset(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 1}, 10, 20)
	p.Advance(0.1)
	assert.False(t, p.TestTerrainCollision(world))
	assert.True(t, p.Alive)
	assert.False(t, p.TestTerrainCollision(nil))
	assert.False(t, math.IsNaN(p.Position.Z()))
}
