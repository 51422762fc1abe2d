package model

import "fmt"

// boxFaces lists each face as normal, then the u and v axes spanning it.
var boxFaces = [6][3][3]float32{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Box builds an axis-aligned box centred on the origin. Each face has its own
// four vertices so normals stay flat.
func Box(width, height, depth float32) (*Mesh, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("box %gx%gx%g: %w", width, height, depth, ErrInvalidGeometry)
	}
	half := [3]float32{width / 2, height / 2, depth / 2}

	var b meshBuilder
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		corner := func(su, sv float32) [3]float32 {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = (n[i] + su*u[i] + sv*v[i]) * half[i]
			}
			return p
		}
		i0 := b.add(corner(-1, -1), n, [2]float32{0, 0})
		i1 := b.add(corner(1, -1), n, [2]float32{1, 0})
		i2 := b.add(corner(1, 1), n, [2]float32{1, 1})
		i3 := b.add(corner(-1, 1), n, [2]float32{0, 1})
		b.triangle(i0, i1, i2)
		b.triangle(i0, i2, i3)
	}
	return b.build(), nil
}
