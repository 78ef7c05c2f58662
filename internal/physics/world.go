package physics

import (
	"sort"

	"github.com/bytearena/box2d"
	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	velocityIterations = 8
	positionIterations = 3
)

// World owns the box2d world, the vertical gravity channel and the obstacle index.
type World struct {
	b2        *box2d.B2World
	gravity   float64
	bodies    []*Body
	obstacles []*Obstacle
	tree      *rtreego.Rtree
}

// NewWorld creates an empty world. gravity pulls along -Y.
func NewWorld(gravity float64) *World {
	// 0: box2d sees the arena from the top, gravity is handled per body
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0.0, 0.0))
	return &World{
		b2:      &world,
		gravity: gravity,
		tree:    rtreego.NewTree(2, 4, 16),
	}
}

// Step advances the simulation by dt.
func (w *World) Step(dt float64) {
	w.b2.Step(dt, velocityIterations, positionIterations)
	for _, b := range w.bodies {
		b.integrateVertical(dt, w.gravity)
	}
}

func (w *World) Gravity() float64 { return w.gravity }

// CreateBody adds a body described by def.
func (w *World) CreateBody(def BodyDef) *Body {
	bodydef := box2d.MakeB2BodyDef()
	switch def.Kind {
	case Static:
		bodydef.Type = box2d.B2BodyType.B2_staticBody
	case Kinematic:
		bodydef.Type = box2d.B2BodyType.B2_kinematicBody
	default:
		bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	}
	bodydef.Position.Set(def.Position.X(), def.Position.Z())
	bodydef.FixedRotation = def.FixedRotation
	bodydef.LinearDamping = def.Damping

	b2body := w.b2.CreateBody(&bodydef)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Density = def.Density
	if def.Category != 0 {
		fixturedef.Filter.CategoryBits = def.Category
	}
	if def.Mask != 0 {
		fixturedef.Filter.MaskBits = def.Mask
	}

	ground := def.Radius
	if def.Radius > 0 {
		shape := box2d.MakeB2CircleShape()
		shape.SetRadius(def.Radius)
		fixturedef.Shape = &shape
		b2body.CreateFixtureFromDef(&fixturedef)
	} else {
		shape := box2d.MakeB2PolygonShape()
		vertices := []box2d.B2Vec2{
			box2d.MakeB2Vec2(def.Min.X(), def.Min.Z()),
			box2d.MakeB2Vec2(def.Max.X(), def.Min.Z()),
			box2d.MakeB2Vec2(def.Max.X(), def.Max.Z()),
			box2d.MakeB2Vec2(def.Min.X(), def.Max.Z()),
		}
		shape.Set(vertices, len(vertices))
		fixturedef.Shape = &shape
		b2body.CreateFixtureFromDef(&fixturedef)
		ground = -def.Min.Y()
	}

	body := &Body{
		b2:       b2body,
		world:    w,
		kind:     def.Kind,
		y:        def.Position.Y(),
		ground:   ground,
		userData: def.UserData,
	}
	if body.y < body.ground {
		body.y = body.ground
	}
	b2body.SetUserData(body)
	w.bodies = append(w.bodies, body)
	return body
}

// RemoveBody destroys b. Removing twice is a no-op.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	w.b2.DestroyBody(b.b2)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Bodies returns every live body.
func (w *World) Bodies() []Impulsable {
	out := make([]Impulsable, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, b)
	}
	return out
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int { return len(w.bodies) }

// AddObstacle adds a static box spanning center±half and indexes it for terrain queries.
func (w *World) AddObstacle(center, half mgl64.Vec3) *Obstacle {
	const minExtent = 1e-3
	for i := 0; i < 3; i++ {
		if half[i] < minExtent {
			half[i] = minExtent
		}
	}
	o := &Obstacle{
		ID:  len(w.obstacles) + 1,
		Min: center.Sub(half),
		Max: center.Add(half),
	}
	rect, err := rtreego.NewRect(rtreego.Point{o.Min.X(), o.Min.Z()}, []float64{2 * half.X(), 2 * half.Z()})
	if err != nil {
		// extents are clamped positive above
		panic(err)
	}
	o.rect = rect

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody
	o.body = w.b2.CreateBody(&bodydef)

	vertices := make([]box2d.B2Vec2, 4)
	vertices[0].Set(o.Min.X(), o.Min.Z())
	vertices[1].Set(o.Max.X(), o.Min.Z())
	vertices[2].Set(o.Max.X(), o.Max.Z())
	vertices[3].Set(o.Min.X(), o.Max.Z())
	shape := box2d.MakeB2ChainShape()
	shape.CreateLoop(vertices, len(vertices))
	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.Filter.CategoryBits = CategoryObstacle
	o.body.CreateFixtureFromDef(&fixturedef)
	o.body.SetUserData(o)

	w.obstacles = append(w.obstacles, o)
	w.tree.Insert(o)
	return o
}

func (w *World) Obstacles() []*Obstacle { return w.obstacles }

// Nearby returns obstacles whose box lies within radius of p:
// an R-tree query on the ground plane, then an exact squared-distance check.
func (w *World) Nearby(p mgl64.Vec3, radius float64) []*Obstacle {
	if len(w.obstacles) == 0 || radius <= 0 {
		return nil
	}
	bb, err := rtreego.NewRect(rtreego.Point{p.X() - radius, p.Z() - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return nil
	}
	var out []*Obstacle
	rsq := radius * radius
	for _, s := range w.tree.SearchIntersect(bb) {
		o := s.(*Obstacle)
		if o.DistanceSq(p) <= rsq {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RayHit is one intersection of a segment with an obstacle.
type RayHit struct {
	Obstacle *Obstacle
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Fraction float64 // 0 at from, 1 at to
}

// RayCast intersects the segment from→to with the given colliders only.
// Hits are ordered by distance from `from`.
func (w *World) RayCast(from, to mgl64.Vec3, colliders []*Obstacle) []RayHit {
	if len(colliders) == 0 {
		return nil
	}
	allowed := make(map[*Obstacle]struct{}, len(colliders))
	for _, o := range colliders {
		allowed[o] = struct{}{}
	}

	d := to.Sub(from)
	var hits []RayHit
	// box2d asserts on zero-length rays
	if d.X()*d.X()+d.Z()*d.Z() > 1e-12 {
		w.b2.RayCast(
			func(fixture *box2d.B2Fixture, point box2d.B2Vec2, normal box2d.B2Vec2, fraction float64) float64 {
				o, ok := fixture.GetBody().GetUserData().(*Obstacle)
				if !ok {
					return 1.0 // continue the ray
				}
				if _, ok := allowed[o]; !ok {
					return 1.0
				}
				y := from.Y() + d.Y()*fraction
				if y < o.Min.Y() || y > o.Max.Y() {
					return 1.0
				}
				hits = append(hits, RayHit{
					Obstacle: o,
					Point:    mgl64.Vec3{point.X, y, point.Y},
					Normal:   mgl64.Vec3{normal.X, 0, normal.Y},
					Fraction: fraction,
				})
				return 1.0
			},
			box2d.MakeB2Vec2(from.X(), from.Z()),
			box2d.MakeB2Vec2(to.X(), to.Z()),
		)
	}

	// segments that never cross an edge: vertical moves, or starting and ending inside a box
	if len(hits) == 0 {
		for _, o := range colliders {
			if o.Contains(to) {
				hits = append(hits, RayHit{Obstacle: o, Point: to, Normal: mgl64.Vec3{0, 1, 0}, Fraction: 1})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Fraction < hits[j].Fraction })
	return hits
}
