package model

import (
	"fmt"

	"github.com/Faultbox/windturbine/pkg/math"
)

// Extrude builds a prism from a closed 2D outline in the XY plane, swept from
// z=0 to z=depth. The outline must be convex; a trailing point equal to the
// first is treated as the closing edge. Caps and side walls get flat normals.
func Extrude(outline []math.Vec2, depth float32) (*Mesh, error) {
	pts := append([]math.Vec2(nil), outline...)
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("extrude outline with %d points: %w", len(pts), ErrInvalidGeometry)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("extrude depth %g: %w", depth, ErrInvalidGeometry)
	}

	area := signedArea(pts)
	if area == 0 {
		return nil, fmt.Errorf("extrude outline is degenerate: %w", ErrInvalidGeometry)
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	if !convex(pts) {
		return nil, fmt.Errorf("extrude outline is not convex: %w", ErrInvalidGeometry)
	}

	var b meshBuilder
	n := uint32(len(pts))

	// Caps, fan triangulated. Front faces +Z, back faces -Z.
	front := uint32(len(b.vertices))
	for _, p := range pts {
		b.add([3]float32{p.X, p.Y, depth}, [3]float32{0, 0, 1}, [2]float32{p.X, p.Y})
	}
	back := uint32(len(b.vertices))
	for _, p := range pts {
		b.add([3]float32{p.X, p.Y, 0}, [3]float32{0, 0, -1}, [2]float32{p.X, p.Y})
	}
	for i := uint32(1); i+1 < n; i++ {
		b.triangle(front, front+i, front+i+1)
		b.triangle(back, back+i+1, back+i)
	}

	// Side walls, one quad per edge.
	for i := range pts {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		edge := p1.Sub(p0).Normalize()
		normal := [3]float32{edge.Y, -edge.X, 0}
		length := p1.Sub(p0).Length()
		a := b.add([3]float32{p0.X, p0.Y, 0}, normal, [2]float32{0, 0})
		c := b.add([3]float32{p1.X, p1.Y, 0}, normal, [2]float32{length, 0})
		d := b.add([3]float32{p1.X, p1.Y, depth}, normal, [2]float32{length, depth})
		e := b.add([3]float32{p0.X, p0.Y, depth}, normal, [2]float32{0, depth})
		b.triangle(a, c, d)
		b.triangle(a, d, e)
	}
	return b.build(), nil
}

func signedArea(pts []math.Vec2) float32 {
	var sum float32
	for i := range pts {
		sum += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return sum / 2
}

// convex reports whether a counter-clockwise outline turns left at every vertex.
func convex(pts []math.Vec2) bool {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c := pts[(i+2)%len(pts)]
		if b.Sub(a).Cross(c.Sub(b)) < 0 {
			return false
		}
	}
	return true
}
