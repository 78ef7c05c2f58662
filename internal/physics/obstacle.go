package physics

import (
	"github.com/bytearena/box2d"
	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
)

// Obstacle is a static axis-aligned box of terrain.
type Obstacle struct {
	ID       int
	Min, Max mgl64.Vec3
	rect     rtreego.Rect
	body     *box2d.B2Body
}

// Bounds implements rtreego.Spatial on the ground plane.
func (o *Obstacle) Bounds() rtreego.Rect {
	return o.rect
}

func (o *Obstacle) Center() mgl64.Vec3 {
	return o.Min.Add(o.Max).Mul(0.5)
}

func (o *Obstacle) HalfExtents() mgl64.Vec3 {
	return o.Max.Sub(o.Min).Mul(0.5)
}

// ClosestPoint clamps p into the box.
func (o *Obstacle) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return ClosestPointOnBox(p, o.Min, o.Max)
}

// DistanceSq is the squared distance from p to the box (0 inside).
func (o *Obstacle) DistanceSq(p mgl64.Vec3) float64 {
	d := p.Sub(o.ClosestPoint(p))
	return d.Dot(d)
}

func (o *Obstacle) Contains(p mgl64.Vec3) bool {
	return p.X() >= o.Min.X() && p.X() <= o.Max.X() &&
		p.Y() >= o.Min.Y() && p.Y() <= o.Max.Y() &&
		p.Z() >= o.Min.Z() && p.Z() <= o.Max.Z()
}

// ClosestPointOnBox clamps p into the box [min, max].
func ClosestPointOnBox(p, min, max mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		v := p[i]
		if v < min[i] {
			v = min[i]
		} else if v > max[i] {
			v = max[i]
		}
		out[i] = v
	}
	return out
}
