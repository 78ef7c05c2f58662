// internal/event/types.go
package event

import "github.com/go-gl/mathgl/mgl64"

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг сбит (выстрел игрока или турели)
	SpawnerPlaced    EventType = "SpawnerPlaced"    // Новый генератор размещён
	SpawnerDestroyed EventType = "SpawnerDestroyed" // Генератор уничтожен
	TurretPlaced     EventType = "TurretPlaced"     // Турель построена
	TurretUpgraded   EventType = "TurretUpgraded"
	TurretRemoved    EventType = "TurretRemoved"
	ExplosionSpawned EventType = "ExplosionSpawned"
	GameOver         EventType = "GameOver" // Игрок столкнулся с врагом
)

// Source says who landed a hit.
type Source string

const (
	SourcePlayer Source = "player"
	SourceTurret Source = "turret"
)

// KillData is the payload of EnemyKilled.
type KillData struct {
	EnemyID  int
	Position mgl64.Vec3
	Source   Source
	Reward   int
}

// SpawnerData is the payload of SpawnerPlaced and SpawnerDestroyed.
type SpawnerData struct {
	SpawnerID int
	Position  mgl64.Vec3
}

// TurretData is the payload of the turret events.
type TurretData struct {
	TurretID int
	Position mgl64.Vec3
	Level    int
}

// ExplosionData is the payload of ExplosionSpawned.
type ExplosionData struct {
	Center mgl64.Vec3
	Radius float64
}
