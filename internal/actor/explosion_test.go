package actor

import (
	"testing"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

type fakeBody struct {
	pos     mgl64.Vec3
	dynamic bool
	impulse mgl64.Vec3
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }
func (b *fakeBody) IsDynamic() bool      { return b.dynamic }
func (b *fakeBody) ApplyImpulse(i mgl64.Vec3) {
	b.impulse = b.impulse.Add(i)
}

func countType(ps []component.Particle, typ component.ParticleType) int {
	n := 0
	for _, p := range ps {
		if p.Type == typ {
			n++
		}
	}
	return n
}

func TestExplosionParticleCounts(t *testing.T) {
	type testCase struct {
		Name   string
		Radius float64
		Fire   int
		Spark  int
	}
	cases := []testCase{
		{Name: "tiny", Radius: 0.01, Fire: 1, Spark: 1},
		{Name: "one", Radius: 1, Fire: 6, Spark: 10},
		{Name: "large", Radius: 5, Fire: config.ExplosionMaxFire, Spark: config.ExplosionMaxSpark},
	}
	rng := utils.NewPRNGService(3)
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			e := NewExplosion(mgl64.Vec3{}, tc.Radius, 12, 6, rng)
			assert.Equal(t, tc.Fire, countType(e.Particles, component.ParticleFire))
			assert.Equal(t, tc.Spark, countType(e.Particles, component.ParticleSpark))
		})
	}
}

func TestExplosionBlastFalloff(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 1, 12, 6, utils.NewPRNGService(1))
	near := &fakeBody{pos: mgl64.Vec3{2, 0, 0}, dynamic: true}
	edge := &fakeBody{pos: mgl64.Vec3{0, 0, 6}, dynamic: true}
	static := &fakeBody{pos: mgl64.Vec3{1, 0, 0}}

	pushed := e.ApplyBlast([]physics.Impulsable{near, edge, static})
	assert.Equal(t, 1, pushed)
	assert.InDelta(t, 8, near.impulse.X(), 1e-9)
	assert.InDelta(t, 0, near.impulse.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{}, edge.impulse)
	assert.Equal(t, mgl64.Vec3{}, static.impulse)
}

func TestExplosionBlastScalesWithRadius(t *testing.T) {
	rng := utils.NewPRNGService(1)
	puff := NewExplosion(mgl64.Vec3{}, 0.3, 12, 6, rng)
	blast := NewExplosion(mgl64.Vec3{}, 2.0, 12, 6, rng)
	assert.InDelta(t, 3.6, puff.Force, 1e-9)
	assert.InDelta(t, 1.8, puff.ForceRadius, 1e-9)
	assert.InDelta(t, 24, blast.Force, 1e-9)
	assert.InDelta(t, 12, blast.ForceRadius, 1e-9)

	a := &fakeBody{pos: mgl64.Vec3{3, 0, 0}, dynamic: true}
	b := &fakeBody{pos: mgl64.Vec3{3, 0, 0}, dynamic: true}
	assert.Equal(t, 0, puff.ApplyBlast([]physics.Impulsable{a}))
	assert.Equal(t, 1, blast.ApplyBlast([]physics.Impulsable{b}))
	assert.Equal(t, mgl64.Vec3{}, a.impulse)
	// 24 * (1 - 3/12)
	assert.InDelta(t, 18, b.impulse.X(), 1e-9)

	c := &fakeBody{pos: mgl64.Vec3{1, 0, 0}, dynamic: true}
	d := &fakeBody{pos: mgl64.Vec3{1, 0, 0}, dynamic: true}
	puff.ApplyBlast([]physics.Impulsable{c})
	blast.ApplyBlast([]physics.Impulsable{d})
	assert.Greater(t, d.impulse.X(), c.impulse.X())
}

func TestExplosionBlastAtCenterPushesUp(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{1, 1, 1}, 1, 12, 6, utils.NewPRNGService(1))
	b := &fakeBody{pos: mgl64.Vec3{1, 1, 1}, dynamic: true}
	e.ApplyBlast([]physics.Impulsable{b})
	assert.Equal(t, mgl64.Vec3{0, 12, 0}, b.impulse)
}

func TestExplosionFinishes(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 2, 12, 6, utils.NewPRNGService(9))
	assert.False(t, e.IsFinished())
	for i := 0; i < 120 && !e.IsFinished(); i++ {
		e.Update(1.0 / 60.0)
	}
	assert.True(t, e.IsFinished())
	assert.Empty(t, e.Particles)
}

func TestExplosionFireDrag(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 1, 12, 6, utils.NewPRNGService(5))
	first := e.Particles[0]
	assert.Equal(t, component.ParticleFire, first.Type)

	e.Update(1.0 / 60.0)
	p := e.Particles[0]
	assert.InDelta(t, first.Velocity.Len()*config.ExplosionFireDrag, p.Velocity.Len(), 1e-9)
	assert.InDelta(t, config.ExplosionFireFade, p.Opacity, 1e-9)
}

func TestExplosionSparkGravityAndFade(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 1, 12, 6, utils.NewPRNGService(5))
	// six fire particles come first
	first := e.Particles[6]
	assert.Equal(t, component.ParticleSpark, first.Type)

	const dt = 1.0 / 60.0
	e.Update(dt)
	p := e.Particles[6]
	assert.Equal(t, component.ParticleSpark, p.Type)
	assert.InDelta(t, first.Velocity.Y()-config.ExplosionSparkGravity*dt, p.Velocity.Y(), 1e-9)
	assert.InDelta(t, first.Velocity.X(), p.Velocity.X(), 1e-9)
	assert.InDelta(t, first.Velocity.Z(), p.Velocity.Z(), 1e-9)
	assert.InDelta(t, config.ExplosionSparkFade, p.Opacity, 1e-9)
}

func TestExplosionDropsFadedParticles(t *testing.T) {
	e := &Explosion{Particles: []component.Particle{
		{Type: component.ParticleFire, Lifetime: 10, Opacity: 1},
		{Type: component.ParticleFire, Lifetime: 10, Opacity: 0.0205},
		{Type: component.ParticleSpark, Lifetime: 10, Opacity: 0.021},
	}}
	e.Update(1.0 / 60.0)
	// 0.0205*0.97 and 0.021*0.93 are both under the floor, long before their lifetime
	assert.Len(t, e.Particles, 1)
	assert.InDelta(t, config.ExplosionFireFade, e.Particles[0].Opacity, 1e-9)
	assert.False(t, e.IsFinished())
}

func TestExplosionTrailsEveryThirdTick(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 1, 12, 6, utils.NewPRNGService(5))
	e.Update(0.001)
	e.Update(0.001)
	for _, p := range e.Particles {
		assert.Empty(t, p.Trail)
	}
	e.Update(0.001)
	assert.Equal(t, 3, e.Ticks())
	trails := 0
	for _, p := range e.Particles {
		if p.Trails {
			assert.Len(t, p.Trail, 1)
			trails++
		} else {
			assert.Empty(t, p.Trail)
		}
	}
	assert.Equal(t, 5, trails)
}

func TestExplosionDispose(t *testing.T) {
	e := NewExplosion(mgl64.Vec3{}, 1, 12, 6, utils.NewPRNGService(5))
	e.Dispose()
	assert.True(t, e.IsFinished())
}
