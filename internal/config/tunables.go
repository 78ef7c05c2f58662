package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the tunable parameters of a session.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Player     PlayerConfig     `toml:"player"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Spawner    SpawnerConfig    `toml:"spawner"`
	Turret     TurretConfig     `toml:"turret"`
	Explosion  ExplosionConfig  `toml:"explosion"`
	Economy    EconomyConfig    `toml:"economy"`
	Log        LogConfig        `toml:"log"`
}

type SimulationConfig struct {
	Seed         int64   `toml:"seed"`
	Gravity      float64 `toml:"gravity"`
	Invulnerable bool    `toml:"invulnerable"`
}

type PlayerConfig struct {
	Speed        float64    `toml:"speed"`
	ShotRange    float64    `toml:"shot_range"`
	ShotCooldown float64    `toml:"shot_cooldown"`
	DeployTime   float64    `toml:"deploy_time"`
	RetractTime  float64    `toml:"retract_time"`
	BoxMin       [3]float64 `toml:"box_min"`
	BoxMax       [3]float64 `toml:"box_max"`
}

type EnemyConfig struct {
	Radius        float64 `toml:"radius"`
	HitImpulseMin float64 `toml:"hit_impulse_min"`
	HitImpulseMax float64 `toml:"hit_impulse_max"`
	Damping       float64 `toml:"damping"`
}

type SpawnerConfig struct {
	Radius            float64 `toml:"radius"`
	SpawnRadius       float64 `toml:"spawn_radius"`
	MinPlayerDistance float64 `toml:"min_player_distance"`
	InitialCount      int     `toml:"initial_count"`
	KillReward        int     `toml:"kill_reward"`
}

type TurretConfig struct {
	Cost            int        `toml:"cost"`
	UpgradeCost     int        `toml:"upgrade_cost"`
	MaxLevel        int        `toml:"max_level"`
	RotationSpeed   float64    `toml:"rotation_speed"`
	WanderSpeed     float64    `toml:"wander_speed"`
	ProjectileSpeed float64    `toml:"projectile_speed"`
	ProjectileRange float64    `toml:"projectile_range"`
	GridSize        float64    `toml:"grid_size"`
	MuzzleOffset    [3]float64 `toml:"muzzle_offset"`
}

type ExplosionConfig struct {
	Force       float64 `toml:"force"`
	ForceRadius float64 `toml:"force_radius"`
}

type EconomyConfig struct {
	StartingBalance int `toml:"starting_balance"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the built-in tunables.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Seed:    0,
			Gravity: 9.8,
		},
		Player: PlayerConfig{
			Speed:        8.0,
			ShotRange:    12.0,
			ShotCooldown: 0.25,
			DeployTime:   0.6,
			RetractTime:  0.4,
			BoxMin:       [3]float64{-1.0, -0.5, -1.8},
			BoxMax:       [3]float64{1.0, 0.9, 1.4},
		},
		Enemy: EnemyConfig{
			Radius:        0.5,
			HitImpulseMin: 2.0,
			HitImpulseMax: 4.0,
			Damping:       0.5,
		},
		Spawner: SpawnerConfig{
			Radius:            1.2,
			SpawnRadius:       3.0,
			MinPlayerDistance: 15.0,
			InitialCount:      3,
			KillReward:        50,
		},
		Turret: TurretConfig{
			Cost:            30,
			UpgradeCost:     40,
			MaxLevel:        3,
			RotationSpeed:   6.0,
			WanderSpeed:     1.0,
			ProjectileSpeed: 18.0,
			ProjectileRange: 7.0,
			GridSize:        1.0,
			MuzzleOffset:    [3]float64{0, 0.5, 0.6},
		},
		Explosion: ExplosionConfig{
			Force:       12.0,
			ForceRadius: 6.0,
		},
		Economy: EconomyConfig{
			StartingBalance: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Player.ShotRange <= 0:
		return errors.Errorf("player.shot_range must be positive, got %v", c.Player.ShotRange)
	case c.Enemy.Radius <= 0:
		return errors.Errorf("enemy.radius must be positive, got %v", c.Enemy.Radius)
	case c.Spawner.SpawnRadius <= 0:
		return errors.Errorf("spawner.spawn_radius must be positive, got %v", c.Spawner.SpawnRadius)
	case c.Spawner.InitialCount < 0:
		return errors.Errorf("spawner.initial_count must not be negative, got %d", c.Spawner.InitialCount)
	case c.Turret.Cost < 0 || c.Turret.UpgradeCost < 0:
		return errors.New("turret costs must not be negative")
	case c.Turret.GridSize <= 0:
		return errors.Errorf("turret.grid_size must be positive, got %v", c.Turret.GridSize)
	case c.Explosion.ForceRadius <= 0:
		return errors.Errorf("explosion.force_radius must be positive, got %v", c.Explosion.ForceRadius)
	case c.Economy.StartingBalance < 0:
		return errors.Errorf("economy.starting_balance must not be negative, got %d", c.Economy.StartingBalance)
	}
	for i := 0; i < 3; i++ {
		if c.Player.BoxMin[i] >= c.Player.BoxMax[i] {
			return errors.Errorf("player box axis %d: min %v must be below max %v", i, c.Player.BoxMin[i], c.Player.BoxMax[i])
		}
	}
	return nil
}
