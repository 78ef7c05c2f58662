package component

// Health - компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Fraction returns Value/Max clamped to [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat - компонент для турелей, управляющий атакой
type Combat struct {
	Range    float64 // Радиус действия
	Cooldown float64 // Минимальный интервал между выстрелами
	LastShot float64 // Время последнего выстрела
	HasShot  bool    // Стреляла ли турель хоть раз
	Shots    int
}

// Ready reports whether the cooldown has elapsed at time now.
func (c *Combat) Ready(now float64) bool {
	return !c.HasShot || now-c.LastShot >= c.Cooldown
}

// Stamp records a shot at time now.
func (c *Combat) Stamp(now float64) {
	c.LastShot = now
	c.HasShot = true
	c.Shots++
}
