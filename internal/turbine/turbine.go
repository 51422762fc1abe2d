// Package turbine assembles the wind turbine scene graph.
package turbine

import (
	"fmt"

	"github.com/Faultbox/windturbine/internal/engine/model"
	"github.com/Faultbox/windturbine/internal/engine/scene"
	"github.com/Faultbox/windturbine/pkg/math"
)

// Part colours.
const (
	GrassColor      = 0x00CC55
	TransformerGray = 0x778899 // lightslategray
	White           = 0xFFFFFF
)

// BladeCount is the number of blades on the rotor.
const BladeCount = 3

// Node names, usable with scene.Node.Find.
const (
	NameRoot        = "turbine"
	NameGround      = "ground"
	NameTransformer = "transformer"
	NameBase        = "base"
	NamePole        = "pole"
	NameHousing     = "housing"
	NameRotor       = "rotor"
	NameShaft       = "shaft"
	NameEndCap      = "end-cap"
)

// BladeOutline is the triangular blade profile in the blade's XY plane.
var BladeOutline = []math.Vec2{
	{X: -0.35, Y: -0.35},
	{X: 0, Y: 6},
	{X: 0.35, Y: -0.35},
}

// Model is the built turbine. Rotor is the only node whose transform
// changes while animating; its Rotation.Y is the rotor angle.
type Model struct {
	Root   *scene.Node
	Rotor  *scene.Node
	Blades [BladeCount]*scene.Node
}

// RotorAngle returns the accumulated rotor angle in radians.
func (m *Model) RotorAngle() float32 {
	return m.Rotor.Transform.Rotation.Y
}

// Advance turns the rotor by delta radians.
func (m *Model) Advance(delta float32) {
	m.Rotor.Transform.Rotation.Y += delta
}

// Build constructs the turbine from fixed dimensions.
func Build() (*Model, error) {
	white := model.Lambert(White)

	root := scene.NewNode(NameRoot)

	ground, err := boxNode(NameGround, 10, 1, 10, model.Lambert(GrassColor))
	if err != nil {
		return nil, err
	}
	ground.Transform.Position.Y = -11

	transformer, err := boxNode(NameTransformer, 3, 3, 3, model.Lambert(TransformerGray))
	if err != nil {
		return nil, err
	}
	transformer.Transform.Position = math.Vec3{X: -3, Y: -9, Z: -3}

	base, err := cylinderNode(NameBase, 1, 1, 1, 32, 3, white)
	if err != nil {
		return nil, err
	}
	base.Transform.Position.Y = -10

	pole, err := cylinderNode(NamePole, 0.2, 0.5, 20, 32, 1, white)
	if err != nil {
		return nil, err
	}

	housing, err := boxNode(NameHousing, 1, 1, 2, white)
	if err != nil {
		return nil, err
	}
	housing.Transform.Position = math.Vec3{Y: 10, Z: -0.7}

	rotor, blades, err := buildRotor(white)
	if err != nil {
		return nil, err
	}

	root.Add(ground, transformer, base, pole, housing, rotor)
	return &Model{Root: root, Rotor: rotor, Blades: blades}, nil
}

// MustBuild is like Build but panics if a part cannot be built.
func MustBuild() *Model {
	m, err := Build()
	if err != nil {
		panic(err)
	}
	return m
}

func buildRotor(white model.Material) (*scene.Node, [BladeCount]*scene.Node, error) {
	var blades [BladeCount]*scene.Node

	rotor := scene.NewNode(NameRotor)
	rotor.Transform.Position = math.Vec3{Y: 10, Z: 0.5}
	rotor.Transform.Rotation.X = math.Pi / 2

	shaft, err := cylinderNode(NameShaft, 0.2, 0.2, 2, 32, 1, white)
	if err != nil {
		return nil, blades, err
	}

	endCap, err := sphereNode(NameEndCap, 0.2, 32, 32, white)
	if err != nil {
		return nil, blades, err
	}
	endCap.Transform.Position.Y = 1

	rotor.Add(shaft, endCap)
	for k := range blades {
		blade, err := buildBlade(k, white)
		if err != nil {
			return nil, blades, err
		}
		blade.Transform.Rotation.Y = float32(k) * 2 * math.Pi / BladeCount
		rotor.Add(blade)
		blades[k] = blade
	}
	return rotor, blades, nil
}

// buildBlade returns a fresh blade: a long prism and a shorter, flipped one
// forming the tapered root. Every call allocates its own meshes.
func buildBlade(k int, white model.Material) (*scene.Node, error) {
	blade := scene.NewNode(fmt.Sprintf("blade-%d", k))

	outer, err := prismNode(fmt.Sprintf("blade-%d-outer", k), white)
	if err != nil {
		return nil, err
	}
	outer.Transform.Position = math.Vec3{Y: 1, Z: 4}
	outer.Transform.Rotation.X = math.Pi / 2

	inner, err := prismNode(fmt.Sprintf("blade-%d-inner", k), white)
	if err != nil {
		return nil, err
	}
	inner.Transform.Position = math.Vec3{Y: 1, Z: 3.45}
	inner.Transform.Rotation = math.Vec3{X: math.Pi / 2, Z: math.Pi}
	inner.Transform.Scale.Y = 0.63

	blade.Add(outer, inner)
	return blade, nil
}

func boxNode(name string, w, h, d float32, mat model.Material) (*scene.Node, error) {
	mesh, err := model.Box(w, h, d)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return scene.NewMeshNode(name, mesh, mat), nil
}

func cylinderNode(name string, rTop, rBottom, h float32, radial, rows int, mat model.Material) (*scene.Node, error) {
	mesh, err := model.Cylinder(rTop, rBottom, h, radial, rows)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return scene.NewMeshNode(name, mesh, mat), nil
}

func sphereNode(name string, r float32, w, h int, mat model.Material) (*scene.Node, error) {
	mesh, err := model.Sphere(r, w, h)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return scene.NewMeshNode(name, mesh, mat), nil
}

func prismNode(name string, mat model.Material) (*scene.Node, error) {
	mesh, err := model.Extrude(BladeOutline, 0.1)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return scene.NewMeshNode(name, mesh, mat), nil
}
