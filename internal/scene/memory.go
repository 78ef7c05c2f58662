package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// MemoryNode is the node type of MemoryGraph; renderers read its fields.
type MemoryNode struct {
	ID       int
	Kind     Kind
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Visible  bool
	attached bool
}

func (n *MemoryNode) SetPosition(p mgl64.Vec3) { n.Position = p }
func (n *MemoryNode) SetRotation(q mgl64.Quat) { n.Rotation = q }
func (n *MemoryNode) SetScale(s mgl64.Vec3)    { n.Scale = s }
func (n *MemoryNode) SetVisible(v bool)        { n.Visible = v }

// Attached reports whether the node is currently in the scene.
func (n *MemoryNode) Attached() bool { return n.attached }

// MemoryGraph keeps nodes in memory for viewers that draw them each frame.
type MemoryGraph struct {
	nextID   int
	attached map[int]*MemoryNode
	created  int
}

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{attached: make(map[int]*MemoryNode)}
}

func (g *MemoryGraph) CreateNode(kind Kind) Node {
	g.nextID++
	g.created++
	return &MemoryNode{
		ID:       g.nextID,
		Kind:     kind,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
		Visible:  true,
	}
}

func (g *MemoryGraph) Attach(n Node) {
	mn, ok := n.(*MemoryNode)
	if !ok {
		return
	}
	mn.attached = true
	g.attached[mn.ID] = mn
}

func (g *MemoryGraph) Detach(n Node) {
	mn, ok := n.(*MemoryNode)
	if !ok {
		return
	}
	mn.attached = false
	delete(g.attached, mn.ID)
}

// Len returns the number of attached nodes.
func (g *MemoryGraph) Len() int { return len(g.attached) }

// Created returns how many nodes were ever created.
func (g *MemoryGraph) Created() int { return g.created }

// Each visits attached nodes of the given kind in creation order.
func (g *MemoryGraph) Each(kind Kind, fn func(n *MemoryNode)) {
	for _, n := range g.sorted() {
		if n.Kind == kind {
			fn(n)
		}
	}
}

// Count returns the number of attached nodes of a kind.
func (g *MemoryGraph) Count(kind Kind) int {
	c := 0
	for _, n := range g.attached {
		if n.Kind == kind {
			c++
		}
	}
	return c
}

func (g *MemoryGraph) sorted() []*MemoryNode {
	nodes := make([]*MemoryNode, 0, len(g.attached))
	for _, n := range g.attached {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}
