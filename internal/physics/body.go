package physics

import (
	"github.com/bytearena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyKind mirrors the box2d body types.
type BodyKind int

const (
	Dynamic BodyKind = iota
	Kinematic
	Static
)

// Collision categories. Enemies do not collide with the player body: contact with the
// player is a geometric test, and a solid contact would keep them from ever overlapping.
const (
	CategoryObstacle uint16 = 1 << iota
	CategoryPlayer
	CategoryEnemy
	CategoryTurret
)

// BodyDef describes a body to create. A positive Radius makes a circle,
// otherwise Min/Max (offsets from the center) make a box.
type BodyDef struct {
	Kind          BodyKind
	Position      mgl64.Vec3
	Radius        float64
	Min, Max      mgl64.Vec3
	Density       float64
	Damping       float64
	FixedRotation bool
	Category      uint16
	Mask          uint16
	UserData      interface{}
}

// Body is a rigid body: box2d integrates the ground plane (x, z), the body keeps its own
// vertical channel (y, vy) with gravity and a ground clamp.
type Body struct {
	b2       *box2d.B2Body
	world    *World
	kind     BodyKind
	y, vy    float64
	ground   float64 // center height when resting on the ground
	userData interface{}
	removed  bool
}

// Impulsable is the view blast propagation needs.
type Impulsable interface {
	Position() mgl64.Vec3
	IsDynamic() bool
	ApplyImpulse(impulse mgl64.Vec3)
}

func (b *Body) Position() mgl64.Vec3 {
	p := b.b2.GetPosition()
	return mgl64.Vec3{p.X, b.y, p.Y}
}

// SetPosition teleports the body.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.b2.SetTransform(box2d.MakeB2Vec2(p.X(), p.Z()), b.b2.GetAngle())
	b.y = p.Y()
	if b.y < b.ground {
		b.y = b.ground
	}
}

func (b *Body) Velocity() mgl64.Vec3 {
	v := b.b2.GetLinearVelocity()
	return mgl64.Vec3{v.X, b.vy, v.Y}
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.b2.SetLinearVelocity(box2d.MakeB2Vec2(v.X(), v.Z()))
	b.vy = v.Y()
	if b.vy != 0 {
		b.b2.SetAwake(true)
	}
}

// ApplyImpulse changes momentum. Static and kinematic bodies ignore impulses.
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	if b.kind != Dynamic || b.removed {
		return
	}
	b.b2.ApplyLinearImpulse(box2d.MakeB2Vec2(impulse.X(), impulse.Z()), b.b2.GetWorldCenter(), true)
	if m := b.b2.GetMass(); m > 0 {
		b.vy += impulse.Y() / m
	}
}

// Yaw is the rotation around +Y.
func (b *Body) Yaw() float64 {
	return b.b2.GetAngle()
}

func (b *Body) SetYaw(angle float64) {
	b.b2.SetTransform(b.b2.GetPosition(), angle)
}

// Quaternion returns the orientation for scene nodes.
func (b *Body) Quaternion() mgl64.Quat {
	return mgl64.QuatRotate(b.b2.GetAngle(), mgl64.Vec3{0, 1, 0})
}

func (b *Body) IsDynamic() bool { return b.kind == Dynamic }

func (b *Body) Kind() BodyKind { return b.kind }

func (b *Body) Mass() float64 { return b.b2.GetMass() }

func (b *Body) IsAwake() bool { return b.b2.IsAwake() }

func (b *Body) Sleep() { b.b2.SetAwake(false) }

func (b *Body) Wake() { b.b2.SetAwake(true) }

// Airborne reports whether the body is above its resting height.
func (b *Body) Airborne() bool {
	return b.y > b.ground+1e-6 || b.vy != 0
}

func (b *Body) UserData() interface{} { return b.userData }

// Removed reports whether the body has been taken out of its world.
func (b *Body) Removed() bool { return b.removed }

func (b *Body) integrateVertical(dt, gravity float64) {
	if b.kind != Dynamic || !b.Airborne() {
		return
	}
	b.vy -= gravity * dt
	b.y += b.vy * dt
	if b.y <= b.ground {
		b.y = b.ground
		b.vy = 0
	}
	b.b2.SetAwake(true)
}
