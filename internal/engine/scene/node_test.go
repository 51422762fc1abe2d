package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/windturbine/pkg/math"
)

func assertVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestNewTransformIsIdentity(t *testing.T) {
	assert.Equal(t, math.Identity(), NewTransform().Matrix())
}

func TestWorldComposesParentFirst(t *testing.T) {
	root := NewNode("root")
	root.Transform.Position = math.Vec3{Y: 10}

	arm := NewNode("arm")
	arm.Transform.Rotation.X = math.Pi / 2
	root.Add(arm)

	tip := NewNode("tip")
	tip.Transform.Position = math.Vec3{Y: 1}
	arm.Add(tip)

	// Local +Y of the arm is world +Z after the quarter turn about X.
	assertVec3(t, math.Vec3{Y: 10, Z: 1}, tip.World().TransformVec3(math.Vec3{}))
}

func TestWalkMatchesWorld(t *testing.T) {
	root := NewNode("root")
	root.Transform.Rotation = math.Vec3{X: 0.2, Y: -0.4, Z: 0.1}
	a := NewNode("a")
	a.Transform.Position = math.Vec3{X: 1, Y: 2, Z: 3}
	b := NewNode("b")
	b.Transform.Scale = math.Vec3{X: 1, Y: 0.63, Z: 1}
	root.Add(a)
	a.Add(b)

	var order []string
	root.Walk(func(n *Node, world math.Mat4) {
		order = append(order, n.Name)
		want := n.World()
		for i := range world {
			assert.InDelta(t, want[i], world[i], 1e-5, "%s element %d", n.Name, i)
		}
	})
	assert.Equal(t, []string{"root", "a", "b"}, order)

	// Walking from an inner node still uses the ancestors' transforms.
	a.Walk(func(n *Node, world math.Mat4) {
		if n == b {
			assert.Equal(t, b.World(), world)
		}
	})
}

func TestAddRejectsSecondParent(t *testing.T) {
	p1, p2 := NewNode("p1"), NewNode("p2")
	child := NewNode("child")
	p1.Add(child)

	assert.Panics(t, func() { p2.Add(child) })
	assert.Same(t, p1, child.Parent())
	assert.Empty(t, p2.Children())
}

func TestAddRejectsCycle(t *testing.T) {
	root := NewNode("root")
	mid := NewNode("mid")
	root.Add(mid)

	assert.Panics(t, func() { mid.Add(root) })
	assert.Panics(t, func() { mid.Add(mid) })
}

func TestFindAndCount(t *testing.T) {
	root := NewNode("root")
	blade := NewNode("blade")
	root.Add(NewNode("shaft"), blade)
	blade.Add(NewNode("prism"))

	require.NotNil(t, root.Find("prism"))
	assert.Nil(t, root.Find("missing"))
	assert.Equal(t, 4, root.Count())
	assert.Equal(t, "shaft", root.Children()[0].Name)
}
