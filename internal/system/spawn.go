// internal/system/spawn.go
package system

import (
	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// SpawnOrchestrator владеет списками генераторов и врагов и раз в 30 секунд ставит новый генератор.
type SpawnOrchestrator struct {
	Spawners []*actor.Spawner
	Enemies  []*actor.Enemy

	world    *physics.World
	graph    scene.Graph
	layout   *defs.Layout
	spawner  config.SpawnerConfig
	enemy    config.EnemyConfig
	log      *zap.Logger
	weights  []int
	policies []component.AIPolicy

	creationTimer float64
	nextSpawnerID int
	nextEnemyID   int
	skipped       int
}

func NewSpawnOrchestrator(world *physics.World, graph scene.Graph, layout *defs.Layout, cfg *config.Config, logger *zap.Logger) *SpawnOrchestrator {
	s := &SpawnOrchestrator{
		world:   world,
		graph:   graph,
		layout:  layout,
		spawner: cfg.Spawner,
		enemy:   cfg.Enemy,
		log:     logger,
		weights: layout.EnemyWeights(),
	}
	for _, def := range layout.Enemies {
		s.policies = append(s.policies, policyFor(def))
	}
	return s
}

func policyFor(def defs.EnemyDefinition) component.AIPolicy {
	p := component.AIPolicy{
		Kind:        component.PolicyHunter,
		ChaseRadius: def.ChaseRadius,
		ChaseSpeed:  def.ChaseSpeed,
		WanderSpeed: def.WanderSpeed,
	}
	if def.Policy == defs.PolicyDrifter {
		p.Kind = component.PolicyDrifter
	}
	return p
}

// Init places the starting spawners, each with up to SpawnerInitialAttempts tries.
func (s *SpawnOrchestrator) Init(ctx *session.GameContext, player *actor.Player) {
	for i := 0; i < s.spawner.InitialCount; i++ {
		s.TryPlace(ctx, player, config.SpawnerInitialAttempts)
	}
	s.log.Info("spawners placed",
		zap.Stringer("session", ctx.SessionID),
		zap.Int("count", len(s.Spawners)),
		zap.Int("requested", s.spawner.InitialCount))
}

// Update runs the creation timer, drops disposed enemies, updates the rest
// and collects what the spawners emit this tick.
func (s *SpawnOrchestrator) Update(ctx *session.GameContext, deltaTime float64, player *actor.Player) {
	s.creationTimer += deltaTime
	if s.creationTimer >= config.SpawnerCreationInterval {
		s.creationTimer -= config.SpawnerCreationInterval
		s.TryPlace(ctx, player, config.SpawnerPeriodicAttempts)
	}

	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !e.Disposed() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = alive

	for _, e := range s.Enemies {
		e.Update(ctx, deltaTime, player)
	}

	factory := s.EnemyFactory(ctx)
	for _, sp := range s.Spawners {
		if e := sp.SpawnEnemy(ctx, factory); e != nil {
			s.Enemies = append(s.Enemies, e)
		}
	}
}

// TryPlace tries up to attempts random positions inside the arena. Positions too close to
// the player, overlapping an obstacle or another spawner are rejected. It returns nil when
// every attempt failed.
func (s *SpawnOrchestrator) TryPlace(ctx *session.GameContext, player *actor.Player, attempts int) *actor.Spawner {
	b := s.layout.Bounds
	margin := s.spawner.Radius
	minSq := s.spawner.MinPlayerDistance * s.spawner.MinPlayerDistance
	var pp mgl64.Vec3
	if player != nil {
		pp = player.Position()
	}

	for i := 0; i < attempts; i++ {
		pos := mgl64.Vec3{
			ctx.Rng.Range(b.Min[0]+margin, b.Max[0]-margin),
			0,
			ctx.Rng.Range(b.Min[1]+margin, b.Max[1]-margin),
		}
		if player != nil && utils.LenSq(utils.Horizontal(pos.Sub(pp))) < minSq {
			continue
		}
		if len(s.world.Nearby(pos, margin)) > 0 {
			continue
		}
		if s.crowded(pos) {
			continue
		}

		s.nextSpawnerID++
		sp := actor.NewSpawner(s.graph, ctx.Rng, s.nextSpawnerID, pos, ctx.Now, s.spawner.Radius, s.spawner.SpawnRadius)
		s.Spawners = append(s.Spawners, sp)
		ctx.Events.Dispatch(event.Event{Type: event.SpawnerPlaced, Data: event.SpawnerData{SpawnerID: sp.ID, Position: pos}})
		s.log.Debug("spawner placed", zap.Int("spawner", sp.ID), zap.Int("attempt", i+1))
		return sp
	}

	s.skipped++
	s.log.Debug("spawner placement skipped", zap.Int("attempts", attempts))
	return nil
}

func (s *SpawnOrchestrator) crowded(pos mgl64.Vec3) bool {
	gap := 2 * s.spawner.Radius
	for _, sp := range s.Spawners {
		if utils.LenSq(utils.Horizontal(sp.Position.Sub(pos))) < gap*gap {
			return true
		}
	}
	return false
}

// HitBox forwards one hit to sp. The spawner leaves the roster only when the hit destroyed it.
func (s *SpawnOrchestrator) HitBox(ctx *session.GameContext, sp *actor.Spawner) bool {
	if !sp.Hit() {
		return false
	}
	for i, other := range s.Spawners {
		if other == sp {
			s.Spawners = append(s.Spawners[:i], s.Spawners[i+1:]...)
			break
		}
	}
	ctx.Events.Dispatch(event.Event{Type: event.SpawnerDestroyed, Data: event.SpawnerData{SpawnerID: sp.ID, Position: sp.Position}})
	s.log.Info("spawner destroyed",
		zap.Stringer("session", ctx.SessionID),
		zap.Int("spawner", sp.ID),
		zap.Int("emitted", sp.Emitted),
		zap.Int("remaining", len(s.Spawners)))
	return true
}

// EnemyFactory builds enemies of a weighted random archetype.
func (s *SpawnOrchestrator) EnemyFactory(ctx *session.GameContext) actor.EnemyFactory {
	return func(pos mgl64.Vec3) *actor.Enemy {
		i := ctx.Rng.ChooseWeighted(s.weights)
		if i < 0 {
			return nil
		}
		def := s.layout.Enemies[i]
		s.nextEnemyID++
		return actor.NewEnemy(s.world, s.graph, actor.EnemyParams{
			ID:         s.nextEnemyID,
			Archetype:  def.ID,
			Position:   pos,
			Radius:     s.enemy.Radius,
			Policy:     s.policies[i],
			Reward:     def.Reward,
			Damping:    s.enemy.Damping,
			ImpulseMin: s.enemy.HitImpulseMin,
			ImpulseMax: s.enemy.HitImpulseMax,
		})
	}
}

// Skipped counts placement cycles that ran out of attempts.
func (s *SpawnOrchestrator) Skipped() int { return s.skipped }

// CreationTimer returns seconds since the last periodic placement.
func (s *SpawnOrchestrator) CreationTimer() float64 { return s.creationTimer }

// Clear disposes every enemy and spawner and resets the timers.
func (s *SpawnOrchestrator) Clear() {
	for _, e := range s.Enemies {
		e.Dispose()
	}
	for _, sp := range s.Spawners {
		sp.Destroy()
	}
	s.Enemies = nil
	s.Spawners = nil
	s.creationTimer = 0
	s.nextSpawnerID = 0
	s.nextEnemyID = 0
	s.skipped = 0
}
