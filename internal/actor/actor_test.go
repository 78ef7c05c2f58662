package actor

import (
	"testing"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"

	"github.com/go-gl/mathgl/mgl64"
)

type rig struct {
	world  *physics.World
	graph  *scene.MemoryGraph
	ctx    *session.GameContext
	player *Player
}

func newRig(t *testing.T) *rig {
	t.Helper()
	world := physics.NewWorld(9.8)
	graph := scene.NewMemoryGraph()
	return &rig{
		world:  world,
		graph:  graph,
		ctx:    session.New(session.Options{Seed: 42, StartingBalance: 100}),
		player: NewPlayer(world, graph, mgl64.Vec3{}, config.Default().Player),
	}
}

func (r *rig) enemy(id int, pos mgl64.Vec3, policy component.AIPolicy) *Enemy {
	return NewEnemy(r.world, r.graph, EnemyParams{
		ID:         id,
		Archetype:  "test",
		Position:   pos,
		Radius:     0.5,
		Policy:     policy,
		Reward:     10,
		ImpulseMin: 2,
		ImpulseMax: 4,
	})
}

var hunter = component.AIPolicy{Kind: component.PolicyHunter, ChaseRadius: 10, ChaseSpeed: 3, WanderSpeed: 1.5}
