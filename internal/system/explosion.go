// internal/system/explosion.go
package system

import (
	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/session"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// ExplosionSystem управляет взрывами: толчок при создании, частицы, удаление.
type ExplosionSystem struct {
	Explosions []*actor.Explosion

	world *physics.World
	cfg   config.ExplosionConfig
	log   *zap.Logger
}

// NewExplosionSystem создает новую систему взрывов.
func NewExplosionSystem(world *physics.World, cfg config.ExplosionConfig, logger *zap.Logger) *ExplosionSystem {
	return &ExplosionSystem{world: world, cfg: cfg, log: logger}
}

// Spawn creates an explosion and pushes every dynamic body around it once.
func (s *ExplosionSystem) Spawn(ctx *session.GameContext, center mgl64.Vec3, radius float64) *actor.Explosion {
	e := actor.NewExplosion(center, radius, s.cfg.Force, s.cfg.ForceRadius, ctx.Rng)
	pushed := e.ApplyBlast(s.world.Bodies())
	s.Explosions = append(s.Explosions, e)
	ctx.Events.Dispatch(event.Event{Type: event.ExplosionSpawned, Data: event.ExplosionData{Center: center, Radius: radius}})
	s.log.Debug("explosion", zap.Float64("radius", radius), zap.Int("pushed", pushed), zap.Int("particles", len(e.Particles)))
	return e
}

// Update обновляет частицы и удаляет завершившиеся взрывы.
func (s *ExplosionSystem) Update(deltaTime float64) {
	for i := len(s.Explosions) - 1; i >= 0; i-- {
		e := s.Explosions[i]
		e.Update(deltaTime)
		if e.IsFinished() {
			e.Dispose()
			s.Explosions = append(s.Explosions[:i], s.Explosions[i+1:]...)
		}
	}
}

// Particles returns the number of live particles.
func (s *ExplosionSystem) Particles() int {
	n := 0
	for _, e := range s.Explosions {
		n += len(e.Particles)
	}
	return n
}

func (s *ExplosionSystem) Clear() {
	for _, e := range s.Explosions {
		e.Dispose()
	}
	s.Explosions = nil
}
