// internal/app/game.go
package app

import (
	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/interfaces"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/system"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var _ interfaces.Controls = (*Simulation)(nil)

// Simulation holds the session state and runs the tick in a fixed order.
type Simulation struct {
	Config *config.Config
	Layout *defs.Layout
	Ctx    *session.GameContext
	Events *event.Dispatcher
	Graph  scene.Graph
	World  *physics.World
	Player *actor.Player

	PlayerSystem     *system.PlayerSystem
	SpawnSystem      *system.SpawnOrchestrator
	ProjectileSystem *system.ProjectilePool
	TurretSystem     *system.TurretSystem
	ExplosionSystem  *system.ExplosionSystem
	CombatSystem     *system.CombatSystem

	LastShot system.ShotResult

	log          *zap.Logger
	obstacles    []scene.Node
	accumulator  float64
	physicsSteps int
}

// NewSimulation builds a session from tunables and an arena layout.
func NewSimulation(cfg *config.Config, layout *defs.Layout, graph scene.Graph, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	events := event.NewDispatcher()
	s := &Simulation{
		Config: cfg,
		Layout: layout,
		Events: events,
		Graph:  graph,
		log:    logger,
	}
	s.Ctx = session.New(session.Options{
		Seed:            cfg.Simulation.Seed,
		StartingBalance: cfg.Economy.StartingBalance,
		Invulnerable:    cfg.Simulation.Invulnerable,
		Events:          events,
		Log:             logger.Named("session"),
	})
	s.build()
	s.PlayerSystem = system.NewPlayerSystem(s.Player, events)
	events.SubscribeAll(&GameEventListener{sim: s})
	s.SpawnSystem.Init(s.Ctx, s.Player)
	return s
}

// build creates the world, the arena and every system around a fresh player.
func (s *Simulation) build() {
	s.World = physics.NewWorld(s.Config.Simulation.Gravity)
	for _, o := range s.Layout.Obstacles {
		box := s.World.AddObstacle(mgl64.Vec3(o.Center), mgl64.Vec3(o.Half))
		if n := scene.Spawn(s.Graph, scene.KindObstacle); n != nil {
			n.SetPosition(box.Center())
			n.SetScale(box.HalfExtents().Mul(2))
			s.obstacles = append(s.obstacles, n)
		}
	}
	s.log.Debug("arena built", zap.Float64("gravity", s.World.Gravity()), zap.Int("obstacles", len(s.Layout.Obstacles)))
	s.Player = actor.NewPlayer(s.World, s.Graph, mgl64.Vec3(s.Layout.PlayerStart), s.Config.Player)

	s.SpawnSystem = system.NewSpawnOrchestrator(s.World, s.Graph, s.Layout, s.Config, s.log.Named("spawn"))
	s.ProjectileSystem = system.NewProjectilePool(s.Graph, s.log.Named("projectile"))
	s.TurretSystem = system.NewTurretSystem(s.World, s.Graph, s.Config.Turret, s.log.Named("turret"))
	s.ExplosionSystem = system.NewExplosionSystem(s.World, s.Config.Explosion, s.log.Named("explosion"))
	s.CombatSystem = system.NewCombatSystem(s.World, s.SpawnSystem, s.ExplosionSystem, s.Config.Spawner, s.log.Named("combat"))
	s.ProjectileSystem.OnHit(s.CombatSystem.OnProjectileHit(s.Ctx))
	s.accumulator = 0
	s.physicsSteps = 0
}

// Update advances the session by deltaTime, clamped to MaxDeltaTime.
func (s *Simulation) Update(deltaTime float64) {
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt <= 0 {
		return
	}
	s.Ctx.Advance(dt)

	s.PlayerSystem.Update(dt)
	s.SpawnSystem.Update(s.Ctx, dt, s.Player)
	s.stepPhysics(dt)
	s.ProjectileSystem.Update(s.Ctx, dt, s.SpawnSystem.Enemies, s.World)
	s.TurretSystem.Update(s.Ctx, dt, s.SpawnSystem.Enemies, s.ProjectileSystem)
	s.ExplosionSystem.Update(dt)
	s.sync()
}

// stepPhysics runs fixed PhysicsStep steps, at most MaxPhysicsSteps per frame.
func (s *Simulation) stepPhysics(dt float64) {
	s.accumulator += dt
	steps := 0
	for s.accumulator >= config.PhysicsStep && steps < config.MaxPhysicsSteps {
		s.World.Step(config.PhysicsStep)
		s.accumulator -= config.PhysicsStep
		steps++
	}
	if s.accumulator > config.PhysicsStep {
		s.accumulator = config.PhysicsStep
	}
	s.physicsSteps = steps
}

// PhysicsSteps returns how many physics steps the last frame ran.
func (s *Simulation) PhysicsSteps() int { return s.physicsSteps }

func (s *Simulation) sync() {
	s.Player.Sync()
	for _, e := range s.SpawnSystem.Enemies {
		e.Sync()
	}
	for _, t := range s.TurretSystem.Turrets {
		t.Sync()
	}
}

// Reset tears the session down and starts over with a new session id.
func (s *Simulation) Reset() {
	s.SpawnSystem.Clear()
	s.TurretSystem.Clear()
	s.ProjectileSystem.Clear()
	s.ExplosionSystem.Clear()
	scene.Remove(s.Graph, s.Player.Node)
	for _, n := range s.obstacles {
		scene.Remove(s.Graph, n)
	}
	s.obstacles = nil

	s.Ctx.Reset()
	s.build()
	s.PlayerSystem.Reset(s.Player)
	s.LastShot = system.ShotResult{}
	s.SpawnSystem.Init(s.Ctx, s.Player)
}

// Over reports whether the game-over signal has fired.
func (s *Simulation) Over() bool { return s.Ctx.Over() }

// GameEventListener пишет события сессии в лог.
type GameEventListener struct {
	sim *Simulation
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.sim.log
	switch d := e.Data.(type) {
	case event.KillData:
		log.Debug("enemy killed", zap.Int("enemy", d.EnemyID), zap.String("source", string(d.Source)), zap.Int("reward", d.Reward))
	case event.SpawnerData:
		log.Debug(string(e.Type), zap.Int("spawner", d.SpawnerID))
	case event.TurretData:
		log.Debug(string(e.Type), zap.Int("turret", d.TurretID), zap.Int("level", d.Level))
	}
}
