package app

import (
	"testing"

	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/interfaces"
	"go-arena-combat/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSim(t *testing.T) (*Simulation, *scene.MemoryGraph) {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Seed = 11
	cfg.Simulation.Invulnerable = true
	graph := scene.NewMemoryGraph()
	return NewSimulation(cfg, defs.DefaultLayout(), graph, zap.NewNop()), graph
}

func TestNewSimulation(t *testing.T) {
	sim, graph := newSim(t)
	assert.Len(t, sim.SpawnSystem.Spawners, sim.Config.Spawner.InitialCount)
	assert.Equal(t, 1, graph.Count(scene.KindPlayer))
	assert.Equal(t, len(sim.Layout.Obstacles), graph.Count(scene.KindObstacle))
	assert.Equal(t, sim.Config.Economy.StartingBalance, sim.Ctx.Score.Balance())
}

func TestUpdateClampsDelta(t *testing.T) {
	sim, _ := newSim(t)

	sim.Update(1.0)
	assert.InDelta(t, config.MaxDeltaTime, sim.Ctx.Now, 1e-12)
	assert.Equal(t, 2, sim.PhysicsSteps())

	sim.Update(0)
	sim.Update(-1)
	assert.InDelta(t, config.MaxDeltaTime, sim.Ctx.Now, 1e-12)
	assert.Equal(t, uint64(1), sim.Ctx.Tick)
}

func TestPhysicsAccumulator(t *testing.T) {
	sim, _ := newSim(t)
	steps := 0
	for i := 0; i < 10; i++ {
		sim.Update(1.0 / 120.0)
		steps += sim.PhysicsSteps()
		assert.LessOrEqual(t, sim.PhysicsSteps(), config.MaxPhysicsSteps)
	}
	assert.InDelta(t, 5, steps, 1)
}

func TestControlsDrivePlayer(t *testing.T) {
	sim, _ := newSim(t)
	start := sim.Player.Position()

	sim.SetPlayerVelocity(mgl64.Vec3{1, 0, 0})
	for i := 0; i < 60; i++ {
		sim.Update(1.0 / 60.0)
	}
	assert.Greater(t, sim.Player.Position().X(), start.X()+0.5)

	assert.False(t, sim.FireShot())
	sim.RequestCombat(true)
	for i := 0; i < 60; i++ {
		sim.Update(1.0 / 60.0)
	}
	assert.True(t, sim.FireShot())
	assert.True(t, sim.LastShot.Fired)
}

func TestTurretControls(t *testing.T) {
	sim, _ := newSim(t)
	var c interfaces.Controls = sim
	require.True(t, c.StartDragging())
	c.UpdateDrag(mgl64.Vec3{2, 10, -3}, mgl64.Vec3{0, -1, 0})
	require.True(t, c.PlaceCube())
	require.Len(t, sim.TurretSystem.Turrets, 1)
	id := sim.TurretSystem.Turrets[0].ID

	balance := sim.Ctx.Score.Balance()
	assert.Equal(t, sim.Config.Economy.StartingBalance-sim.Config.Turret.Cost, balance)
	assert.False(t, c.UpgradeTurret(id)) // 30 < 40
	assert.True(t, c.RemoveTurret(id))
	assert.False(t, c.RemoveTurret(id))
	assert.Empty(t, sim.TurretSystem.Turrets)
}

func TestResetStartsOver(t *testing.T) {
	sim, graph := newSim(t)
	id := sim.Ctx.SessionID
	ap := NewAutopilot(sim)
	for i := 0; i < 600; i++ {
		ap.Step(1.0 / 60.0)
		sim.Update(1.0 / 60.0)
	}

	sim.Reset()
	assert.NotEqual(t, id, sim.Ctx.SessionID)
	assert.Zero(t, sim.Ctx.Now)
	assert.Equal(t, sim.Config.Economy.StartingBalance, sim.Ctx.Score.Balance())
	assert.Empty(t, sim.TurretSystem.Turrets)
	assert.Empty(t, sim.SpawnSystem.Enemies)
	assert.Empty(t, sim.ExplosionSystem.Explosions)
	assert.Len(t, sim.SpawnSystem.Spawners, sim.Config.Spawner.InitialCount)
	assert.Equal(t, 1, graph.Count(scene.KindPlayer))
	assert.Equal(t, len(sim.Layout.Obstacles), graph.Count(scene.KindObstacle))
	assert.Zero(t, graph.Count(scene.KindProjectile))
	assert.Zero(t, graph.Count(scene.KindTurret))
}

func TestAutopilotSmoke(t *testing.T) {
	sim, _ := newSim(t)
	kills := 0
	sim.Events.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))
	ap := NewAutopilot(sim)

	const dt = 1.0 / 60.0
	assert.NotPanics(t, func() {
		for i := 0; i < 60*90; i++ {
			ap.Step(dt)
			sim.Update(dt)
		}
	})
	assert.InDelta(t, 90, sim.Ctx.Now, 1e-6)
	assert.False(t, sim.Over())
	assert.Equal(t, kills, sim.CombatSystem.Kills())
	assert.GreaterOrEqual(t, sim.Ctx.Score.Balance(), 0)

	assert.Equal(t, kills, sim.PlayerSystem.Kills(event.SourcePlayer)+sim.PlayerSystem.Kills(event.SourceTurret))
	st := sim.ProjectileSystem.Stats()
	assert.LessOrEqual(t, st.Free, config.ProjectilePool)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	sim, logger, err := Setup(Options{Seed: 5, Invulnerable: true, LogLevel: "error"}, scene.NewMemoryGraph())
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, int64(5), sim.Config.Simulation.Seed)
	assert.True(t, sim.Ctx.Invulnerable)
	assert.Equal(t, "quarry", sim.Layout.Name)

	_, _, err = Setup(Options{ConfigPath: "does-not-exist.toml"}, nil)
	assert.Error(t, err)
	_, _, err = Setup(Options{LogLevel: "loud"}, nil)
	assert.Error(t, err)
}
