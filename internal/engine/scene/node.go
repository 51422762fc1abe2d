// Package scene provides the transform hierarchy drawn by the renderer.
package scene

import (
	"fmt"

	"github.com/Faultbox/windturbine/internal/engine/model"
	"github.com/Faultbox/windturbine/pkg/math"
)

// Transform is a node's placement relative to its parent. Rotation holds
// three independent per-axis angles in radians, applied X then Y then Z.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: math.One}
}

// Matrix returns T * Rx * Ry * Rz * S.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// Node is an element of the scene tree. A node without a mesh is a group.
// Children are owned exclusively by their parent.
type Node struct {
	Name      string
	Transform Transform
	Mesh      *model.Mesh
	Material  model.Material

	parent   *Node
	children []*Node
}

// NewNode creates an empty group node.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: NewTransform()}
}

// NewMeshNode creates a node drawing mesh with material.
func NewMeshNode(name string, mesh *model.Mesh, material model.Material) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Material = material
	return n
}

// Add appends children in order. Attaching a node that already has a parent,
// or one that is an ancestor of n, panics.
func (n *Node) Add(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			panic(fmt.Sprintf("scene: node %q already attached to %q", child.Name, child.parent.Name))
		}
		for p := n; p != nil; p = p.parent {
			if p == child {
				panic(fmt.Sprintf("scene: attaching %q to %q would create a cycle", child.Name, n.Name))
			}
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// World returns the node's transform composed with every ancestor, parent first.
func (n *Node) World() math.Mat4 {
	if n.parent == nil {
		return n.Transform.Matrix()
	}
	return n.parent.World().Mul(n.Transform.Matrix())
}

// Walk visits n and its descendants depth-first, passing each node's world matrix.
func (n *Node) Walk(fn func(node *Node, world math.Mat4)) {
	var parentWorld math.Mat4
	if n.parent != nil {
		parentWorld = n.parent.World()
	} else {
		parentWorld = math.Identity()
	}
	n.walk(parentWorld, fn)
}

func (n *Node) walk(parentWorld math.Mat4, fn func(*Node, math.Mat4)) {
	world := parentWorld.Mul(n.Transform.Matrix())
	fn(n, world)
	for _, child := range n.children {
		child.walk(world, fn)
	}
}

// Find returns the first node named name in depth-first order.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, child := range n.children {
		total += child.Count()
	}
	return total
}
