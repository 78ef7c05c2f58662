// internal/defs/types.go
package defs

// Vec3 is a YAML-friendly [x, y, z].
type Vec3 [3]float64

// Bounds is the rectangle on the ground plane spawners may be placed in.
type Bounds struct {
	Min [2]float64 `yaml:"min"` // x, z
	Max [2]float64 `yaml:"max"`
}

// ObstacleDefinition is one static terrain box.
type ObstacleDefinition struct {
	Name   string `yaml:"name"`
	Center Vec3   `yaml:"center"`
	Half   Vec3   `yaml:"half"`
}

// Layout is an arena: bounds, player start, terrain and the enemy roster table.
type Layout struct {
	Name        string               `yaml:"name"`
	Bounds      Bounds               `yaml:"bounds"`
	PlayerStart Vec3                 `yaml:"player_start"`
	Obstacles   []ObstacleDefinition `yaml:"obstacles"`
	Enemies     []EnemyDefinition    `yaml:"enemies"`
}

// EnemyWeights returns the archetype weights in table order.
func (l *Layout) EnemyWeights() []int {
	w := make([]int, len(l.Enemies))
	for i, e := range l.Enemies {
		w[i] = e.Weight
	}
	return w
}

// Contains reports whether (x, z) is inside the bounds.
func (b Bounds) Contains(x, z float64) bool {
	return x >= b.Min[0] && x <= b.Max[0] && z >= b.Min[1] && z <= b.Max[1]
}
