// internal/component/visual.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ParticleType - тип частицы взрыва.
type ParticleType int

const (
	ParticleFire ParticleType = iota
	ParticleSpark
)

// Particle - одна частица взрыва.
type Particle struct {
	Type     ParticleType
	Color    color.RGBA
	Size     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      float64
	Lifetime float64
	Opacity  float64
	// Trail is set for every second spark; only those record a polyline.
	Trail  []mgl64.Vec3
	Trails bool
}

// PushTrail appends p keeping at most max points.
func (p *Particle) PushTrail(pos mgl64.Vec3, max int) {
	if len(p.Trail) >= max {
		copy(p.Trail, p.Trail[1:])
		p.Trail = p.Trail[:max-1]
	}
	p.Trail = append(p.Trail, pos)
}
