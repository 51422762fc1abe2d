// Package model provides primitive solid meshes and flat-shaded materials.
package model

import "errors"

// ErrInvalidGeometry is returned when a primitive is asked for impossible
// dimensions or segment counts.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds indexed triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Material is a Lambert (diffuse only) surface.
type Material struct {
	Color [3]float32
}

// Lambert returns a diffuse material from a 0xRRGGBB colour.
func Lambert(hex uint32) Material {
	return Material{Color: RGB(hex)}
}

// RGB converts a 0xRRGGBB colour to normalized components.
func RGB(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}

// meshBuilder accumulates vertices and indices for a primitive.
type meshBuilder struct {
	vertices []Vertex
	indices  []uint32
}

func (b *meshBuilder) add(pos, normal [3]float32, uv [2]float32) uint32 {
	b.vertices = append(b.vertices, Vertex{Position: pos, Normal: normal, TexCoord: uv})
	return uint32(len(b.vertices) - 1)
}

func (b *meshBuilder) triangle(a, c, d uint32) {
	b.indices = append(b.indices, a, c, d)
}

func (b *meshBuilder) build() *Mesh {
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range b.vertices {
		updateBounds(&bounds, v.Position)
	}
	return &Mesh{Vertices: b.vertices, Indices: b.indices, Bounds: bounds}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
