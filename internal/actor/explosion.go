package actor

import (
	"image/color"
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	fireColors = []color.RGBA{
		{255, 120, 20, 255},
		{255, 170, 40, 255},
		{230, 60, 20, 255},
	}
	sparkColor = color.RGBA{255, 240, 180, 255}
)

// Explosion is a particle burst that pushed nearby bodies once when it was created.
type Explosion struct {
	Center      mgl64.Vec3
	Radius      float64
	Force       float64
	ForceRadius float64
	Particles   []component.Particle

	ticks int
}

// NewExplosion creates the particles. Counts grow with radius up to fixed caps.
// force and forceRadius describe a unit blast; both scale linearly with radius.
func NewExplosion(center mgl64.Vec3, radius, force, forceRadius float64, rng *utils.PRNGService) *Explosion {
	fire := particleCount(6*radius, config.ExplosionMaxFire)
	spark := particleCount(10*radius, config.ExplosionMaxSpark)

	e := &Explosion{
		Center:      center,
		Radius:      radius,
		Force:       force * radius,
		ForceRadius: forceRadius * radius,
		Particles:   make([]component.Particle, 0, fire+spark),
	}
	for i := 0; i < fire; i++ {
		dir := randomDirection(rng, 0.2)
		e.Particles = append(e.Particles, component.Particle{
			Type:     component.ParticleFire,
			Color:    fireColors[rng.Intn(len(fireColors))],
			Size:     rng.Range(0.3, 0.6) * radius,
			Position: center,
			Velocity: dir.Mul(rng.Range(1, 3) * radius),
			Lifetime: rng.Range(0.5, 1.0),
			Opacity:  1,
		})
	}
	for i := 0; i < spark; i++ {
		dir := randomDirection(rng, 0.4)
		e.Particles = append(e.Particles, component.Particle{
			Type:     component.ParticleSpark,
			Color:    sparkColor,
			Size:     0.08,
			Position: center,
			Velocity: dir.Mul(rng.Range(4, 8)),
			Lifetime: rng.Range(0.4, 0.9),
			Opacity:  1,
			Trails:   i%2 == 0,
		})
	}
	return e
}

func particleCount(n float64, max int) int {
	c := int(math.Ceil(n))
	if c < 1 {
		c = 1
	}
	if c > max {
		c = max
	}
	return c
}

// randomDirection returns a unit vector biased upward by lift.
func randomDirection(rng *utils.PRNGService, lift float64) mgl64.Vec3 {
	a := rng.Angle()
	y := rng.Range(-0.2, 1.0) + lift
	v := mgl64.Vec3{math.Cos(a), y, math.Sin(a)}
	return v.Normalize()
}

// ApplyBlast pushes every dynamic body closer than ForceRadius away from the center,
// with a magnitude falling linearly to zero at ForceRadius. It returns how many were pushed.
func (e *Explosion) ApplyBlast(bodies []physics.Impulsable) int {
	pushed := 0
	for _, b := range bodies {
		if !b.IsDynamic() {
			continue
		}
		d := b.Position().Sub(e.Center)
		dist := d.Len()
		if dist >= e.ForceRadius {
			continue
		}
		dir := mgl64.Vec3{0, 1, 0}
		if dist > 1e-9 {
			dir = d.Mul(1 / dist)
		}
		b.ApplyImpulse(dir.Mul(e.Force * (1 - dist/e.ForceRadius)))
		pushed++
	}
	return pushed
}

// Update integrates particles and drops the dead ones.
func (e *Explosion) Update(dt float64) {
	e.ticks++
	frames := dt * config.ExplosionFrameRate
	fireDrag := math.Pow(config.ExplosionFireDrag, frames)
	fireFade := math.Pow(config.ExplosionFireFade, frames)
	sparkFade := math.Pow(config.ExplosionSparkFade, frames)

	for i := len(e.Particles) - 1; i >= 0; i-- {
		p := &e.Particles[i]
		switch p.Type {
		case component.ParticleFire:
			p.Velocity = p.Velocity.Mul(fireDrag)
			p.Opacity *= fireFade
		case component.ParticleSpark:
			p.Velocity[1] -= config.ExplosionSparkGravity * dt
			p.Opacity *= sparkFade
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Age += dt
		if p.Age > p.Lifetime || p.Opacity < config.ExplosionFadeFloor {
			e.Particles = append(e.Particles[:i], e.Particles[i+1:]...)
		}
	}

	// trails are refreshed one tick in three
	if e.ticks%config.ExplosionTrailEvery == 0 {
		for i := range e.Particles {
			if e.Particles[i].Trails {
				e.Particles[i].PushTrail(e.Particles[i].Position, config.ExplosionTrailLength)
			}
		}
	}
}

// Ticks returns how many updates have run.
func (e *Explosion) Ticks() int { return e.ticks }

// IsFinished is true exactly when no particles remain.
func (e *Explosion) IsFinished() bool {
	return len(e.Particles) == 0
}

// Dispose drops all particles.
func (e *Explosion) Dispose() {
	e.Particles = nil
}
