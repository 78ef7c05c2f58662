// internal/config/config.go
package config

import "math"

// Fixed combat constants. These are behavioral contracts, not tunables.
const (
	MaxDeltaTime     = 1.0 / 30.0
	PhysicsStep      = 1.0 / 60.0
	MaxPhysicsSteps  = 4
	ProjectileStep   = 1.0 / 60.0
	ProjectilePool   = 50
	ProjectileRadius = 0.5
	ProjectileHitSq  = ProjectileRadius * ProjectileRadius
	TerrainCullRange = 2.5

	EnemyDisposeDelay    = 5.0
	EnemyWanderInterval  = 5.0
	EnemyWanderBox       = 40.0
	EnemyWanderAttempts  = 10
	EnemyWanderArrival   = 0.5
	EnemyAmbientBobSpeed = 3.0
	EnemyAmbientBobRange = 0.15

	SpawnerMaxHealth        = 3
	SpawnerMinInterval      = 3.0
	SpawnerMaxInterval      = 8.0
	SpawnerInitialAttempts  = 100
	SpawnerPeriodicAttempts = 50
	SpawnerCreationInterval = 30.0

	TurretRange          = 5.0
	TurretCooldown       = 0.8
	TurretWanderBox      = 20.0
	TurretWanderInterval = 5.0
	TurretWanderArrival  = 0.1

	ExplosionMaxFire      = 12
	ExplosionMaxSpark     = 20
	ExplosionFireDrag     = 0.95
	ExplosionFireFade     = 0.97
	ExplosionSparkFade    = 0.93
	ExplosionSparkGravity = 9.8
	ExplosionFadeFloor    = 0.02
	ExplosionTrailEvery   = 3
	ExplosionTrailLength  = 8
	ExplosionFrameRate    = 60.0
)

// TwoPi is used by angle helpers and ring placement.
const TwoPi = 2 * math.Pi
