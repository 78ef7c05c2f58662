package system

import (
	"testing"

	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

type fixture struct {
	cfg    *config.Config
	layout *defs.Layout
	world  *physics.World
	graph  *scene.MemoryGraph
	ctx    *session.GameContext
	player *actor.Player
	events map[event.EventType]int
	log    *zap.Logger
}

func newFixture(t *testing.T, balance int) *fixture {
	t.Helper()
	cfg := config.Default()
	world := physics.NewWorld(cfg.Simulation.Gravity)
	graph := scene.NewMemoryGraph()
	f := &fixture{
		cfg:    cfg,
		layout: defs.DefaultLayout(),
		world:  world,
		graph:  graph,
		ctx:    session.New(session.Options{Seed: 7, StartingBalance: balance}),
		player: actor.NewPlayer(world, graph, mgl64.Vec3{}, cfg.Player),
		events: make(map[event.EventType]int),
		log:    zap.NewNop(),
	}
	f.ctx.Events.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		f.events[e.Type]++
	}))
	return f
}

func (f *fixture) enemy(id int, pos mgl64.Vec3) *actor.Enemy {
	return actor.NewEnemy(f.world, f.graph, actor.EnemyParams{
		ID:         id,
		Archetype:  "test",
		Position:   pos,
		Radius:     0.5,
		Policy:     component.AIPolicy{Kind: component.PolicyHunter, ChaseRadius: 10, ChaseSpeed: 3, WanderSpeed: 1},
		Reward:     10,
		ImpulseMin: 2,
		ImpulseMax: 4,
	})
}

// deploy puts the player into full combat mode.
func (f *fixture) deploy() {
	f.player.Mode.Request(true)
	f.player.Mode.Update(f.cfg.Player.DeployTime + 0.01)
}

func (f *fixture) loadObstacles() {
	for _, o := range f.layout.Obstacles {
		f.world.AddObstacle(mgl64.Vec3(o.Center), mgl64.Vec3(o.Half))
	}
}

func (f *fixture) orchestrator() *SpawnOrchestrator {
	return NewSpawnOrchestrator(f.world, f.graph, f.layout, f.cfg, f.log)
}
