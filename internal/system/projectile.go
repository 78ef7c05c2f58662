// internal/system/projectile.go
package system

import (
	"math"

	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Handle addresses a projectile slot. A handle goes stale when its slot is reused.
type Handle struct {
	index int
	gen   int
}

// Valid is false for the zero handle.
func (h Handle) Valid() bool { return h.gen > 0 }

type slotState int

const (
	slotVacant slotState = iota // no projectile, index reusable
	slotActive
	slotFree // pooled, waiting for Spawn
)

type slot struct {
	p     *actor.Projectile
	gen   int
	state slotState
}

// ProjectileStats are diagnostics counters.
type ProjectileStats struct {
	Active   int
	Free     int
	Created  int
	Released int
	Hits     int
	Misses   int
	Expired  int
}

// HitFunc is called after a projectile has hit an enemy.
type HitFunc func(p *actor.Projectile, e *actor.Enemy)

// ProjectilePool владеет всеми снарядами: активными, свободными и освобождёнными.
type ProjectilePool struct {
	slots  []slot
	active []int
	free   []int
	vacant []int

	graph scene.Graph
	log   *zap.Logger
	onHit HitFunc
	stats ProjectileStats
}

func NewProjectilePool(graph scene.Graph, logger *zap.Logger) *ProjectilePool {
	return &ProjectilePool{
		graph: graph,
		log:   logger,
	}
}

// OnHit sets the callback run after each enemy hit.
func (s *ProjectilePool) OnHit(fn HitFunc) {
	s.onHit = fn
}

// Spawn activates a projectile, reusing a pooled one when there is one.
func (s *ProjectilePool) Spawn(origin, direction mgl64.Vec3, speed, maxRange float64) Handle {
	var idx int
	switch {
	case len(s.free) > 0:
		idx = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	case len(s.vacant) > 0:
		idx = s.vacant[len(s.vacant)-1]
		s.vacant = s.vacant[:len(s.vacant)-1]
		s.slots[idx].p = s.construct()
	default:
		idx = len(s.slots)
		s.slots = append(s.slots, slot{p: s.construct()})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.state = slotActive
	sl.p.Reset(origin, direction, speed, maxRange)
	s.active = append(s.active, idx)
	return Handle{index: idx, gen: sl.gen}
}

// Launch spawns a projectile fired by source.
func (s *ProjectilePool) Launch(origin, direction mgl64.Vec3, speed, maxRange float64, source int) {
	h := s.Spawn(origin, direction, speed, maxRange)
	s.slots[h.index].p.Source = source
}

func (s *ProjectilePool) construct() *actor.Projectile {
	s.stats.Created++
	return &actor.Projectile{Node: scene.Spawn(s.graph, scene.KindProjectile)}
}

// Update splits deltaTime into ceil(deltaTime/ProjectileStep) equal sub-steps. In each one
// every active projectile moves, then is tested against terrain, then against enemies in order.
func (s *ProjectilePool) Update(ctx *session.GameContext, deltaTime float64, enemies []*actor.Enemy, terrain actor.Terrain) {
	if deltaTime <= 0 || len(s.active) == 0 {
		return
	}
	steps := SubSteps(deltaTime)
	h := deltaTime / float64(steps)
	for n := 0; n < steps; n++ {
		s.step(ctx, h, enemies, terrain)
	}
}

// SubSteps returns how many equal projectile sub-steps cover dt.
func SubSteps(dt float64) int {
	if dt <= 0 {
		return 0
	}
	n := int(math.Ceil(dt/config.ProjectileStep - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

func (s *ProjectilePool) step(ctx *session.GameContext, dt float64, enemies []*actor.Enemy, terrain actor.Terrain) {
	// backward, retire removes in place
	for i := len(s.active) - 1; i >= 0; i-- {
		idx := s.active[i]
		p := s.slots[idx].p

		if !p.Advance(dt) {
			s.stats.Expired++
			s.retire(i)
			continue
		}
		if p.TestTerrainCollision(terrain) {
			s.stats.Misses++
			s.retire(i)
			continue
		}
		for _, e := range enemies {
			if !e.Targetable() {
				continue
			}
			if p.TestActorCollision(e) {
				e.HitByShot(ctx)
				s.stats.Hits++
				if s.onHit != nil {
					s.onHit(p, e)
				}
				s.retire(i)
				break
			}
		}
	}
}

// retire takes active[i] out of flight: back to the free list while there is room, released otherwise.
func (s *ProjectilePool) retire(i int) {
	idx := s.active[i]
	s.active = append(s.active[:i], s.active[i+1:]...)
	sl := &s.slots[idx]
	sl.p.Alive = false

	if len(s.free) < config.ProjectilePool {
		sl.state = slotFree
		if sl.p.Node != nil {
			sl.p.Node.SetVisible(false)
		}
		s.free = append(s.free, idx)
		return
	}

	scene.Remove(s.graph, sl.p.Node)
	sl.p = nil
	sl.state = slotVacant
	s.vacant = append(s.vacant, idx)
	s.stats.Released++
	s.log.Debug("projectile released", zap.Int("slot", idx), zap.Int("free", len(s.free)))
}

// Lookup returns the projectile behind h while it is still in flight.
func (s *ProjectilePool) Lookup(h Handle) (*actor.Projectile, bool) {
	if !h.Valid() || h.index >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.index]
	if sl.gen != h.gen || sl.state != slotActive {
		return nil, false
	}
	return sl.p, true
}

// Active returns the projectiles in flight.
func (s *ProjectilePool) Active() []*actor.Projectile {
	out := make([]*actor.Projectile, 0, len(s.active))
	for _, idx := range s.active {
		out = append(out, s.slots[idx].p)
	}
	return out
}

func (s *ProjectilePool) Stats() ProjectileStats {
	st := s.stats
	st.Active = len(s.active)
	st.Free = len(s.free)
	return st
}

// Slots returns the size of the slot arena.
func (s *ProjectilePool) Slots() int { return len(s.slots) }

// Clear releases every projectile and resets the counters.
func (s *ProjectilePool) Clear() {
	for _, sl := range s.slots {
		if sl.p != nil {
			scene.Remove(s.graph, sl.p.Node)
		}
	}
	s.slots = nil
	s.active = nil
	s.free = nil
	s.vacant = nil
	s.stats = ProjectileStats{}
}
