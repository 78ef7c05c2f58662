// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// AngleDiff returns the shortest signed difference to-from, wrapped into (-π, π].
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// EaseAngle moves current toward target by the wrapped difference scaled by rate*dt.
// rate*dt above 1 overshoots, so it is clamped.
func EaseAngle(current, target, rate, dt float64) float64 {
	t := rate * dt
	if t > 1 {
		t = 1
	}
	return NormalizeAngle(current + AngleDiff(current, target)*t)
}

// NormalizeAngle нормализует угол в диапазон (-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	} else if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// Bearing returns the yaw (around +Y, zero along +Z) pointing along the horizontal offset dx, dz.
func Bearing(dx, dz float64) float64 {
	return math.Atan2(dx, dz)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
