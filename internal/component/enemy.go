package component

// EnemyState is the life/AI state of an enemy.
type EnemyState int

const (
	EnemyWander EnemyState = iota
	EnemyChase
	EnemyDying
	EnemyDisposed
)

func (s EnemyState) String() string {
	switch s {
	case EnemyWander:
		return "WANDER"
	case EnemyChase:
		return "CHASE"
	case EnemyDying:
		return "DYING"
	case EnemyDisposed:
		return "DISPOSED"
	}
	return "UNKNOWN"
}

// PolicyKind selects enemy behavior.
type PolicyKind int

const (
	// PolicyHunter wanders and chases the player inside ChaseRadius.
	PolicyHunter PolicyKind = iota
	// PolicyDrifter only wanders.
	PolicyDrifter
)

// AIPolicy is a tagged variant: Kind decides which fields apply.
type AIPolicy struct {
	Kind        PolicyKind
	ChaseRadius float64
	ChaseSpeed  float64
	WanderSpeed float64
}

// Chases reports whether the policy ever enters CHASE.
func (p AIPolicy) Chases() bool {
	return p.Kind == PolicyHunter && p.ChaseRadius > 0
}
