package actor

import (
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// EnemyFactory builds an enemy standing at pos.
type EnemyFactory func(pos mgl64.Vec3) *Enemy

// Spawner is a stationary generator that emits enemies on its own timer.
type Spawner struct {
	ID          int
	Position    mgl64.Vec3
	Radius      float64
	SpawnRadius float64
	Health      component.Health
	Active      bool
	LastSpawn   float64
	Interval    float64 // [SpawnerMinInterval, SpawnerMaxInterval)
	Emitted     int

	Node      scene.Node
	HealthBar scene.Node

	graph    scene.Graph
	destroys int
}

// NewSpawner places a spawner; its first emission is one interval after now.
func NewSpawner(graph scene.Graph, rng *utils.PRNGService, id int, pos mgl64.Vec3, now, radius, spawnRadius float64) *Spawner {
	s := &Spawner{
		ID:          id,
		Position:    pos,
		Radius:      radius,
		SpawnRadius: spawnRadius,
		Health:      component.Health{Value: config.SpawnerMaxHealth, Max: config.SpawnerMaxHealth},
		Active:      true,
		LastSpawn:   now,
		Interval:    rng.Range(config.SpawnerMinInterval, config.SpawnerMaxInterval),
		graph:       graph,
	}
	s.Node = scene.Spawn(graph, scene.KindSpawner)
	scene.Place(s.Node, pos)
	s.HealthBar = scene.Spawn(graph, scene.KindHealthBar)
	scene.Place(s.HealthBar, pos.Add(mgl64.Vec3{0, radius*2 + 0.5, 0}))
	s.refreshHealthBar()
	return s
}

// SpawnEnemy emits one enemy on the spawn ring when the interval has elapsed.
// The caller owns the returned enemy.
func (s *Spawner) SpawnEnemy(ctx *session.GameContext, factory EnemyFactory) *Enemy {
	if !s.Active || ctx.Now-s.LastSpawn < s.Interval {
		return nil
	}
	angle := ctx.Rng.Angle()
	pos := mgl64.Vec3{
		s.Position.X() + math.Cos(angle)*s.SpawnRadius,
		0,
		s.Position.Z() + math.Sin(angle)*s.SpawnRadius,
	}
	e := factory(pos)
	if e == nil {
		return nil
	}
	s.LastSpawn = ctx.Now
	s.Emitted++
	return e
}

// Hit takes one point of health and reports whether this hit destroyed the spawner.
func (s *Spawner) Hit() bool {
	if !s.Active {
		return false
	}
	s.Health.Value--
	s.refreshHealthBar()
	if s.Health.Value <= 0 {
		s.Destroy()
		return true
	}
	return false
}

// Destroy deactivates the spawner and removes its visuals. Safe to call twice.
func (s *Spawner) Destroy() {
	if s.destroys > 0 {
		return
	}
	s.destroys++
	s.Active = false
	scene.Remove(s.graph, s.Node)
	scene.Remove(s.graph, s.HealthBar)
	s.Node = nil
	s.HealthBar = nil
}

// Destroys counts effective Destroy calls; it never exceeds one.
func (s *Spawner) Destroys() int {
	return s.destroys
}

func (s *Spawner) refreshHealthBar() {
	if s.HealthBar == nil {
		return
	}
	f := s.Health.Fraction()
	s.HealthBar.SetScale(mgl64.Vec3{f * s.Radius * 2, 0.15, 0.15})
	s.HealthBar.SetVisible(f > 0)
}
