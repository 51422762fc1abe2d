package model

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Sphere builds a UV sphere centred on the origin with the poles on the Y axis.
func Sphere(radius float32, widthSegments, heightSegments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrInvalidGeometry)
	}
	if widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("sphere segments %dx%d: %w", widthSegments, heightSegments, ErrInvalidGeometry)
	}

	var b meshBuilder
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinTheta, cosTheta := math32.Sin(v*math32.Pi), math32.Cos(v*math32.Pi)
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinPhi, cosPhi := math32.Sin(u*2*math32.Pi), math32.Cos(u*2*math32.Pi)
			n := [3]float32{-cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			pos := [3]float32{n[0] * radius, n[1] * radius, n[2] * radius}
			row[ix] = b.add(pos, n, [2]float32{u, 1 - v})
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			c := grid[iy][ix]
			d := grid[iy+1][ix]
			e := grid[iy+1][ix+1]
			// Pole rows collapse to a single triangle per segment.
			if iy != 0 {
				b.triangle(a, c, e)
			}
			if iy != heightSegments-1 {
				b.triangle(c, d, e)
			}
		}
	}
	return b.build(), nil
}
