// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Policy      string   `yaml:"policy"` // "hunter" or "drifter"
	ChaseRadius float64  `yaml:"chase_radius"`
	ChaseSpeed  float64  `yaml:"chase_speed"`
	WanderSpeed float64  `yaml:"wander_speed"`
	Reward      int      `yaml:"reward"`
	Weight      int      `yaml:"weight"`
	Color       [3]uint8 `yaml:"color"`
}

const (
	PolicyHunter  = "hunter"
	PolicyDrifter = "drifter"
)
