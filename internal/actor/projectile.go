package actor

import (
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Terrain is the collision view projectiles test against.
type Terrain interface {
	Nearby(p mgl64.Vec3, radius float64) []*physics.Obstacle
	RayCast(from, to mgl64.Vec3, colliders []*physics.Obstacle) []physics.RayHit
}

// Positioned is anything a projectile can hit.
type Positioned interface {
	Position() mgl64.Vec3
}

// Projectile is a single straight-flying shot.
type Projectile struct {
	Position  mgl64.Vec3
	Previous  mgl64.Vec3
	Direction mgl64.Vec3 // unit
	Speed     float64
	MaxRange  float64
	Traveled  float64
	Alive     bool
	Expired   bool // ran out of range rather than hitting something
	Source    int  // id of the turret that fired it, 0 for none

	Node scene.Node
}

// Reset re-initializes every mutable field for a new flight. The node is kept.
func (p *Projectile) Reset(origin, direction mgl64.Vec3, speed, maxRange float64) {
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1 / l)
	} else {
		direction = mgl64.Vec3{0, 0, 1}
	}
	p.Position = origin
	p.Previous = origin
	p.Direction = direction
	p.Speed = speed
	p.MaxRange = maxRange
	p.Traveled = 0
	p.Alive = true
	p.Expired = false
	p.Source = 0
	if p.Node != nil {
		p.Node.SetPosition(origin)
		p.Node.SetVisible(true)
	}
}

// Advance moves the projectile and reports whether it is still alive.
func (p *Projectile) Advance(dt float64) bool {
	if !p.Alive {
		return false
	}
	step := p.Speed * dt
	p.Previous = p.Position
	p.Position = p.Position.Add(p.Direction.Mul(step))
	p.Traveled += step
	if p.Traveled >= p.MaxRange {
		p.Alive = false
		p.Expired = true
	}
	scene.Place(p.Node, p.Position)
	return p.Alive
}

// TestActorCollision is a sphere test on squared distance.
func (p *Projectile) TestActorCollision(target Positioned) bool {
	if !p.Alive {
		return false
	}
	d := target.Position().Sub(p.Position)
	if d.Dot(d) < config.ProjectileHitSq {
		p.Alive = false
		return true
	}
	return false
}

// TestTerrainCollision culls obstacles farther than TerrainCullRange, then ray casts
// the last step against the rest. A hit kills the projectile at the hit point.
func (p *Projectile) TestTerrainCollision(terrain Terrain) bool {
	if !p.Alive || terrain == nil {
		return false
	}
	nearby := terrain.Nearby(p.Position, config.TerrainCullRange)
	if len(nearby) == 0 {
		return false
	}
	hits := terrain.RayCast(p.Previous, p.Position, nearby)
	if len(hits) == 0 {
		return false
	}
	p.Position = hits[0].Point
	p.Alive = false
	scene.Place(p.Node, p.Position)
	return true
}
