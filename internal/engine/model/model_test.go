package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/windturbine/pkg/math"
)

var bladeOutline = []math.Vec2{{X: -0.35, Y: -0.35}, {X: 0, Y: 6}, {X: 0.35, Y: -0.35}, {X: -0.35, Y: -0.35}}

func TestRGB(t *testing.T) {
	assert.Equal(t, [3]float32{1, 1, 1}, RGB(0xFFFFFF))
	assert.Equal(t, [3]float32{1, 0, 0}, RGB(0xFF0000))
	c := Lambert(0x00CC55).Color
	assert.InDelta(t, 0, c[0], 1e-6)
	assert.InDelta(t, 0.8, c[1], 1e-6)
	assert.InDelta(t, 1.0/3.0, c[2], 1e-6)
}

func TestBoxBounds(t *testing.T) {
	m, err := Box(10, 1, 10)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 24)
	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, [3]float32{-5, -0.5, -5}, m.Bounds.Min)
	assert.Equal(t, [3]float32{5, 0.5, 5}, m.Bounds.Max)
}

func TestCylinder(t *testing.T) {
	m, err := Cylinder(0.2, 0.5, 20, 32, 1)
	require.NoError(t, err)
	assert.InDelta(t, -10, m.Bounds.Min[1], 1e-5)
	assert.InDelta(t, 10, m.Bounds.Max[1], 1e-5)
	assert.InDelta(t, 1.0, m.Bounds.Size()[0], 1e-3)

	// Side wall plus two capped discs.
	side := 32 * 1 * 2
	caps := 2 * 32
	assert.Equal(t, side+caps, m.TriangleCount())
}

func TestSphere(t *testing.T) {
	m, err := Sphere(0.2, 32, 32)
	require.NoError(t, err)
	for _, v := range m.Vertices {
		p := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
		assert.InDelta(t, 0.2, p.Length(), 1e-5)
	}
	// Pole rows contribute one triangle per segment.
	assert.Equal(t, 32*(2*32-2), m.TriangleCount())
}

func TestExtrude(t *testing.T) {
	m, err := Extrude(bladeOutline, 0.1)
	require.NoError(t, err)

	// Two triangle caps plus three quad walls.
	assert.Equal(t, 2+3*2, m.TriangleCount())
	assert.InDelta(t, 0, m.Bounds.Min[2], 1e-6)
	assert.InDelta(t, 0.1, m.Bounds.Max[2], 1e-6)
	assert.InDelta(t, 6, m.Bounds.Max[1], 1e-6)
	assert.InDelta(t, -0.35, m.Bounds.Min[0], 1e-6)
}

func TestWindingMatchesNormals(t *testing.T) {
	build := map[string]func() (*Mesh, error){
		"box":      func() (*Mesh, error) { return Box(3, 3, 3) },
		"cylinder": func() (*Mesh, error) { return Cylinder(1, 1, 1, 32, 3) },
		"cone":     func() (*Mesh, error) { return Cylinder(0, 1, 2, 16, 1) },
		"sphere":   func() (*Mesh, error) { return Sphere(1, 16, 8) },
		"extrude":  func() (*Mesh, error) { return Extrude(bladeOutline, 0.1) },
	}
	for name, fn := range build {
		t.Run(name, func(t *testing.T) {
			m, err := fn()
			require.NoError(t, err)
			for i := 0; i+2 < len(m.Indices); i += 3 {
				a := m.Vertices[m.Indices[i]]
				b := m.Vertices[m.Indices[i+1]]
				c := m.Vertices[m.Indices[i+2]]
				pa := vec(a.Position)
				face := vec(b.Position).Sub(pa).Cross(vec(c.Position).Sub(pa))
				if face.Length() < 1e-9 {
					continue
				}
				normal := vec(a.Normal).Add(vec(b.Normal)).Add(vec(c.Normal))
				assert.Greater(t, face.Dot(normal), float32(0), "triangle %d faces inward", i/3)
			}
		})
	}
}

func TestInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*Mesh, error)
	}{
		{"box zero width", func() (*Mesh, error) { return Box(0, 1, 1) }},
		{"box negative depth", func() (*Mesh, error) { return Box(1, 1, -1) }},
		{"cylinder no radius", func() (*Mesh, error) { return Cylinder(0, 0, 1, 8, 1) }},
		{"cylinder negative height", func() (*Mesh, error) { return Cylinder(1, 1, -2, 8, 1) }},
		{"cylinder two segments", func() (*Mesh, error) { return Cylinder(1, 1, 1, 2, 1) }},
		{"sphere zero radius", func() (*Mesh, error) { return Sphere(0, 8, 8) }},
		{"sphere one band", func() (*Mesh, error) { return Sphere(1, 8, 1) }},
		{"extrude two points", func() (*Mesh, error) {
			return Extrude([]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
		}},
		{"extrude collinear", func() (*Mesh, error) {
			return Extrude([]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, 1)
		}},
		{"extrude concave", func() (*Mesh, error) {
			return Extrude([]math.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0.5}, {X: 2, Y: 2}, {X: 0, Y: 2}}, 1)
		}},
		{"extrude zero depth", func() (*Mesh, error) { return Extrude(bladeOutline, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.fn()
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
