package scene

import "github.com/go-gl/mathgl/mgl64"

// Kind tells a renderer what a node stands for.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSpawner
	KindHealthBar
	KindProjectile
	KindTurret
	KindRangeRing
	KindHitbox
	KindPreview
	KindObstacle
)

var kindNames = [...]string{"player", "enemy", "spawner", "health_bar", "projectile", "turret", "range_ring", "hitbox", "preview", "obstacle"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a positioned visual handle owned by one actor.
type Node interface {
	SetPosition(p mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	SetScale(s mgl64.Vec3)
	SetVisible(v bool)
}

// Graph creates nodes and adds/removes them from the scene.
type Graph interface {
	CreateNode(kind Kind) Node
	Attach(n Node)
	Detach(n Node)
}

// Spawn creates and attaches a node, or returns nil when there is no graph.
// Actors keep nil nodes and skip visuals.
func Spawn(g Graph, kind Kind) Node {
	if g == nil {
		return nil
	}
	n := g.CreateNode(kind)
	if n == nil {
		return nil
	}
	g.Attach(n)
	return n
}

// Remove detaches n if both exist.
func Remove(g Graph, n Node) {
	if g == nil || n == nil {
		return
	}
	g.Detach(n)
}

// Place sets the position of a possibly nil node.
func Place(n Node, p mgl64.Vec3) {
	if n != nil {
		n.SetPosition(p)
	}
}
