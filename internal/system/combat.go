package system

import (
	"math"

	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/session"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Explosion radii per outcome.
const (
	enemyBlastRadius     = 0.6
	spawnerHitRadius     = 0.8
	spawnerDestroyRadius = 2.0
	terrainBlastRadius   = 0.3
)

// ShotTarget says what a player shot landed on.
type ShotTarget int

const (
	TargetNone ShotTarget = iota
	TargetEnemy
	TargetSpawner
	TargetTerrain
)

func (t ShotTarget) String() string {
	switch t {
	case TargetEnemy:
		return "enemy"
	case TargetSpawner:
		return "spawner"
	case TargetTerrain:
		return "terrain"
	default:
		return "none"
	}
}

// ShotResult describes one resolved player shot.
type ShotResult struct {
	Fired     bool
	Target    ShotTarget
	Point     mgl64.Vec3
	EnemyID   int
	SpawnerID int
	Destroyed bool // the spawner went down with this hit
}

// CombatSystem разрешает выстрелы игрока и начисляет награды за попадания.
type CombatSystem struct {
	world      *physics.World
	spawns     *SpawnOrchestrator
	explosions *ExplosionSystem
	killReward int
	log        *zap.Logger

	kills int
}

func NewCombatSystem(world *physics.World, spawns *SpawnOrchestrator, explosions *ExplosionSystem, spawner config.SpawnerConfig, logger *zap.Logger) *CombatSystem {
	return &CombatSystem{
		world:      world,
		spawns:     spawns,
		explosions: explosions,
		killReward: spawner.KillReward,
		log:        logger,
	}
}

// FireShot casts the player's shot along the aim up to shot range. The nearest of enemy,
// spawner and terrain takes the hit. Nothing happens outside combat mode or during cooldown.
func (s *CombatSystem) FireShot(ctx *session.GameContext, player *actor.Player) ShotResult {
	if !player.TryShoot(ctx.Now) {
		return ShotResult{}
	}
	origin := player.Muzzle()
	dir := player.Aim
	best := player.ShotRange
	res := ShotResult{Fired: true}

	var enemy *actor.Enemy
	for _, e := range s.spawns.Enemies {
		if !e.Targetable() {
			continue
		}
		if t, ok := raySphere(origin, dir, e.Position(), e.Radius); ok && t < best {
			best, enemy = t, e
		}
	}

	var spawner *actor.Spawner
	for _, sp := range s.spawns.Spawners {
		center := sp.Position.Add(mgl64.Vec3{0, sp.Radius, 0})
		if t, ok := raySphere(origin, dir, center, sp.Radius); ok && t < best {
			best, spawner, enemy = t, sp, nil
		}
	}

	end := origin.Add(dir.Mul(best))
	if hits := s.world.RayCast(origin, end, s.world.Obstacles()); len(hits) > 0 {
		res.Target = TargetTerrain
		res.Point = hits[0].Point
		s.explosions.Spawn(ctx, res.Point, terrainBlastRadius)
		return res
	}

	switch {
	case enemy != nil:
		res.Target = TargetEnemy
		res.EnemyID = enemy.ID
		res.Point = enemy.Position()
		enemy.HitByShot(ctx)
		s.credit(ctx, enemy, event.SourcePlayer)
	case spawner != nil:
		res.Target = TargetSpawner
		res.SpawnerID = spawner.ID
		res.Point = end
		res.Destroyed = s.spawns.HitBox(ctx, spawner)
		radius := spawnerHitRadius
		if res.Destroyed {
			radius = spawnerDestroyRadius
			ctx.Score.AddScore(s.killReward)
		}
		s.explosions.Spawn(ctx, spawner.Position.Add(mgl64.Vec3{0, spawner.Radius, 0}), radius)
	default:
		res.Point = end
	}
	return res
}

// OnProjectileHit is the pool's hit callback: turret kills pay out like player kills.
func (s *CombatSystem) OnProjectileHit(ctx *session.GameContext) HitFunc {
	return func(p *actor.Projectile, e *actor.Enemy) {
		s.credit(ctx, e, event.SourceTurret)
	}
}

func (s *CombatSystem) credit(ctx *session.GameContext, e *actor.Enemy, src event.Source) {
	s.kills++
	pos := e.Position()
	ctx.Score.AddScore(e.Reward)
	ctx.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{EnemyID: e.ID, Position: pos, Source: src, Reward: e.Reward}})
	s.explosions.Spawn(ctx, pos, enemyBlastRadius)
	s.log.Debug("enemy hit",
		zap.Int("enemy", e.ID),
		zap.String("archetype", e.Archetype),
		zap.String("source", string(src)),
		zap.Int("balance", ctx.Score.Balance()))
}

// Kills counts enemies hit by any source.
func (s *CombatSystem) Kills() int { return s.kills }

func (s *CombatSystem) Reset() { s.kills = 0 }

// raySphere returns the distance along the unit ray dir to the sphere surface,
// or 0 when origin is inside.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c > 0 && b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}
