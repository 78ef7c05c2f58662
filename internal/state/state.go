// internal/state/state.go
package state

// Mode - режим машины игрока
type Mode int

const (
	ModeDrive Mode = iota
	ModeDeploying
	ModeCombat
	ModeRetracting
)

func (m Mode) String() string {
	switch m {
	case ModeDrive:
		return "drive"
	case ModeDeploying:
		return "deploying"
	case ModeCombat:
		return "combat"
	case ModeRetracting:
		return "retracting"
	}
	return "unknown"
}

// CombatMode - машина состояний режима боя. Переходы завершаются по таймеру,
// вызывающий опрашивает Completed() каждый тик вместо подписки на событие анимации.
type CombatMode struct {
	current     Mode
	elapsed     float64
	deployTime  float64
	retractTime float64
	changes     int
}

// NewCombatMode создаёт машину в режиме движения.
func NewCombatMode(deployTime, retractTime float64) *CombatMode {
	return &CombatMode{
		current:     ModeDrive,
		deployTime:  deployTime,
		retractTime: retractTime,
	}
}

// Current returns the current mode.
func (m *CombatMode) Current() Mode {
	return m.current
}

// Elapsed returns seconds spent in the current mode.
func (m *CombatMode) Elapsed() float64 {
	return m.elapsed
}

// Changes counts mode switches, useful for viewers that restart an animation.
func (m *CombatMode) Changes() int {
	return m.changes
}

// Request asks to enter (true) or leave (false) combat. A transition in progress
// is reversed from the same visual progress.
func (m *CombatMode) Request(combat bool) {
	switch {
	case combat && m.current == ModeDrive:
		m.setMode(ModeDeploying, 0)
	case combat && m.current == ModeRetracting:
		m.setMode(ModeDeploying, m.deployTime*(1-m.Progress()))
	case !combat && m.current == ModeCombat:
		m.setMode(ModeRetracting, 0)
	case !combat && m.current == ModeDeploying:
		m.setMode(ModeRetracting, m.retractTime*(1-m.Progress()))
	}
}

// Update обновляет текущее состояние
func (m *CombatMode) Update(deltaTime float64) {
	m.elapsed += deltaTime
	if !m.Completed() {
		return
	}
	switch m.current {
	case ModeDeploying:
		m.setMode(ModeCombat, 0)
	case ModeRetracting:
		m.setMode(ModeDrive, 0)
	}
}

// Completed reports whether the current sub-action has finished. Stable modes are always complete.
func (m *CombatMode) Completed() bool {
	return m.Progress() >= 1
}

// Progress is 0..1 through a transition, 1 for stable modes.
func (m *CombatMode) Progress() float64 {
	var d float64
	switch m.current {
	case ModeDeploying:
		d = m.deployTime
	case ModeRetracting:
		d = m.retractTime
	default:
		return 1
	}
	if d <= 0 {
		return 1
	}
	p := m.elapsed / d
	if p > 1 {
		p = 1
	}
	return p
}

// CanFire is true only in full combat mode.
func (m *CombatMode) CanFire() bool {
	return m.current == ModeCombat
}

// CanMove is false while the vehicle is transforming.
func (m *CombatMode) CanMove() bool {
	return m.current == ModeDrive || m.current == ModeCombat
}

// Reset returns to drive mode.
func (m *CombatMode) Reset() {
	m.current = ModeDrive
	m.elapsed = 0
	m.changes = 0
}

func (m *CombatMode) setMode(mode Mode, elapsed float64) {
	m.current = mode
	m.elapsed = elapsed
	m.changes++
}
