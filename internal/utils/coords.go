package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectToGround intersects a ray with the plane y = height.
// Rays parallel to the plane or pointing away from it return false.
func ProjectToGround(origin, dir mgl64.Vec3, height float64) (mgl64.Vec3, bool) {
	if math.Abs(dir.Y()) < 1e-9 {
		return mgl64.Vec3{}, false
	}
	t := (height - origin.Y()) / dir.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// SnapToGrid rounds the horizontal coordinates of p to the nearest multiple of size.
func SnapToGrid(p mgl64.Vec3, size float64) mgl64.Vec3 {
	if size <= 0 {
		return p
	}
	return mgl64.Vec3{
		math.Round(p.X()/size) * size,
		p.Y(),
		math.Round(p.Z()/size) * size,
	}
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// LenSq returns the squared length of v.
func LenSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}
