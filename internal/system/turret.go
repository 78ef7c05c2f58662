// internal/system/turret.go
package system

import (
	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/physics"
	"go-arena-combat/internal/scene"
	"go-arena-combat/internal/session"
	"go-arena-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// placementClearance keeps new turrets out of obstacles.
const placementClearance = 0.5

// TurretSystem владеет турелями и этапом перетаскивания новой турели.
type TurretSystem struct {
	Turrets []*actor.Turret

	world *physics.World
	graph scene.Graph
	cfg   config.TurretConfig
	log   *zap.Logger

	dragging     bool
	preview      scene.Node
	previewPos   mgl64.Vec3
	previewValid bool
	nextID       int
}

func NewTurretSystem(world *physics.World, graph scene.Graph, cfg config.TurretConfig, logger *zap.Logger) *TurretSystem {
	return &TurretSystem{
		world: world,
		graph: graph,
		cfg:   cfg,
		log:   logger,
	}
}

// StartDragging begins staging a turret. It fails without any change when the balance
// cannot cover the cost.
func (s *TurretSystem) StartDragging(ctx *session.GameContext) bool {
	if ctx.Score.Balance() < s.cfg.Cost {
		return false
	}
	if s.dragging {
		return true
	}
	s.dragging = true
	s.previewValid = false
	s.preview = scene.Spawn(s.graph, scene.KindPreview)
	if s.preview != nil {
		s.preview.SetVisible(false)
	}
	return true
}

// UpdateDrag projects the pointer ray onto the ground and snaps the preview to the grid.
func (s *TurretSystem) UpdateDrag(origin, dir mgl64.Vec3) {
	if !s.dragging {
		return
	}
	p, ok := utils.ProjectToGround(origin, dir, 0)
	if ok {
		p = utils.SnapToGrid(p, s.cfg.GridSize)
		ok = len(s.world.Nearby(p, placementClearance)) == 0
	}
	s.previewValid = ok
	if ok {
		s.previewPos = p
	}
	if s.preview != nil {
		s.preview.SetPosition(s.previewPos)
		s.preview.SetVisible(ok)
	}
}

// PlaceCube debits the cost and builds the staged turret. Staging stays open on failure.
func (s *TurretSystem) PlaceCube(ctx *session.GameContext) bool {
	if !s.dragging || !s.previewValid {
		return false
	}
	if !ctx.Score.AddScore(-s.cfg.Cost) {
		return false
	}
	s.nextID++
	t := actor.NewTurret(s.world, s.graph, actor.TurretParams{
		ID:              s.nextID,
		Position:        s.previewPos,
		RotationSpeed:   s.cfg.RotationSpeed,
		WanderSpeed:     s.cfg.WanderSpeed,
		ProjectileSpeed: s.cfg.ProjectileSpeed,
		ProjectileRange: s.cfg.ProjectileRange,
		Muzzle:          mgl64.Vec3(s.cfg.MuzzleOffset),
	})
	s.Turrets = append(s.Turrets, t)
	s.clearPreview()

	ctx.Events.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretData{TurretID: t.ID, Position: t.Position(), Level: t.Level}})
	s.log.Info("turret placed",
		zap.Stringer("session", ctx.SessionID),
		zap.Int("turret", t.ID),
		zap.Int("balance", ctx.Score.Balance()))
	return true
}

// CancelDragging drops the preview; no currency changes hands.
func (s *TurretSystem) CancelDragging() {
	s.clearPreview()
}

func (s *TurretSystem) clearPreview() {
	scene.Remove(s.graph, s.preview)
	s.preview = nil
	s.dragging = false
	s.previewValid = false
}

// Dragging reports whether a turret is being staged.
func (s *TurretSystem) Dragging() bool { return s.dragging }

// Preview returns the snapped placement point and whether it can be built on.
func (s *TurretSystem) Preview() (mgl64.Vec3, bool) {
	return s.previewPos, s.dragging && s.previewValid
}

// Find returns the turret with the given id.
func (s *TurretSystem) Find(id int) *actor.Turret {
	for _, t := range s.Turrets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Upgrade debits the upgrade cost and raises the turret one level.
func (s *TurretSystem) Upgrade(ctx *session.GameContext, id int) bool {
	t := s.Find(id)
	if t == nil || t.Level >= s.cfg.MaxLevel {
		return false
	}
	if !ctx.Score.AddScore(-s.cfg.UpgradeCost) {
		return false
	}
	t.Upgrade()
	ctx.Events.Dispatch(event.Event{Type: event.TurretUpgraded, Data: event.TurretData{TurretID: t.ID, Position: t.Position(), Level: t.Level}})
	s.log.Debug("turret upgraded", zap.Int("turret", t.ID), zap.Int("level", t.Level))
	return true
}

// Remove disposes the turret. Unknown or already removed ids return false.
func (s *TurretSystem) Remove(ctx *session.GameContext, id int) bool {
	for i, t := range s.Turrets {
		if t.ID != id {
			continue
		}
		pos := t.Position()
		t.Dispose()
		s.Turrets = append(s.Turrets[:i], s.Turrets[i+1:]...)
		ctx.Events.Dispatch(event.Event{Type: event.TurretRemoved, Data: event.TurretData{TurretID: id, Position: pos, Level: t.Level}})
		s.log.Info("turret removed", zap.Stringer("session", ctx.SessionID), zap.Int("turret", id))
		return true
	}
	return false
}

// Update retargets, aims, fires and wanders every turret.
func (s *TurretSystem) Update(ctx *session.GameContext, deltaTime float64, enemies []*actor.Enemy, launcher actor.Launcher) {
	for _, t := range s.Turrets {
		t.Update(ctx, deltaTime, enemies, launcher)
	}
}

// Clear disposes all turrets and any staged preview.
func (s *TurretSystem) Clear() {
	for _, t := range s.Turrets {
		t.Dispose()
	}
	s.Turrets = nil
	s.clearPreview()
	s.nextID = 0
}
