package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCombatReady(t *testing.T) {
	c := Combat{Cooldown: 0.8}
	assert.True(t, c.Ready(0))
	c.Stamp(1.0)
	assert.False(t, c.Ready(1.5))
	assert.True(t, c.Ready(1.8))
	assert.Equal(t, 1, c.Shots)
}

func TestHealthFraction(t *testing.T) {
	assert.Equal(t, 1.0, Health{Value: 3, Max: 3}.Fraction())
	assert.InDelta(t, 1.0/3.0, Health{Value: 1, Max: 3}.Fraction(), 1e-9)
	assert.Zero(t, Health{Value: -1, Max: 3}.Fraction())
}

func TestPushTrailKeepsNewest(t *testing.T) {
	var p Particle
	for i := 0; i < 12; i++ {
		p.PushTrail(mgl64.Vec3{float64(i), 0, 0}, 8)
	}
	assert.Len(t, p.Trail, 8)
	assert.Equal(t, 4.0, p.Trail[0].X())
	assert.Equal(t, 11.0, p.Trail[7].X())
}
