package model

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Cylinder builds a capped cylinder (or truncated cone) along the Y axis,
// centred on the origin. radiusTop may differ from radiusBottom; either may
// be zero for a cone but not both.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int) (*Mesh, error) {
	switch {
	case radiusTop < 0 || radiusBottom < 0 || radiusTop+radiusBottom == 0:
		return nil, fmt.Errorf("cylinder radii %g/%g: %w", radiusTop, radiusBottom, ErrInvalidGeometry)
	case height <= 0:
		return nil, fmt.Errorf("cylinder height %g: %w", height, ErrInvalidGeometry)
	case radialSegments < 3 || heightSegments < 1:
		return nil, fmt.Errorf("cylinder segments %dx%d: %w", radialSegments, heightSegments, ErrInvalidGeometry)
	}

	var b meshBuilder
	halfHeight := height / 2
	slope := (radiusBottom - radiusTop) / height

	// Side wall: one ring of vertices per height step, seam duplicated so the
	// texture wraps.
	rings := make([][]uint32, heightSegments+1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			theta := u * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			pos := [3]float32{radius * sin, -v*height + halfHeight, radius * cos}
			n := normalize3([3]float32{sin, slope, cos})
			row[x] = b.add(pos, n, [2]float32{u, 1 - v})
		}
		rings[y] = row
	}
	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			a := rings[y][x]
			c := rings[y+1][x]
			d := rings[y+1][x+1]
			e := rings[y][x+1]
			b.triangle(a, c, e)
			b.triangle(c, d, e)
		}
	}

	if radiusTop > 0 {
		disc(&b, radiusTop, halfHeight, 1, radialSegments)
	}
	if radiusBottom > 0 {
		disc(&b, radiusBottom, -halfHeight, -1, radialSegments)
	}
	return b.build(), nil
}

// disc adds a flat disc at height y facing sign (+1 up, -1 down).
func disc(b *meshBuilder, radius, y, sign float32, segments int) {
	n := [3]float32{0, sign, 0}
	centre := b.add([3]float32{0, y, 0}, n, [2]float32{0.5, 0.5})
	first := uint32(len(b.vertices))
	for x := 0; x <= segments; x++ {
		theta := float32(x) / float32(segments) * 2 * math32.Pi
		sin, cos := math32.Sin(theta), math32.Cos(theta)
		b.add([3]float32{radius * sin, y, radius * cos}, n,
			[2]float32{cos*0.5 + 0.5, sin*0.5*sign + 0.5})
	}
	for x := uint32(0); x < uint32(segments); x++ {
		if sign > 0 {
			b.triangle(first+x, first+x+1, centre)
		} else {
			b.triangle(first+x+1, first+x, centre)
		}
	}
}

func normalize3(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 1e-6 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
