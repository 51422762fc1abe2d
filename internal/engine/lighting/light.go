// Package lighting provides the fixed light set of the viewer and its
// flattened form for GPU upload.
package lighting

import "github.com/Faultbox/windturbine/pkg/math"

// Role names one of the four lights.
type Role int

// Light roles, in upload order.
const (
	Overhead Role = iota
	Viewpoint
	Ambient
	Accent
	RoleCount
)

var roleNames = [RoleCount]string{"overhead", "viewpoint", "ambient", "accent"}

func (r Role) String() string {
	if r < 0 || r >= RoleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Label returns the controls panel caption.
func (r Role) Label() string {
	switch r {
	case Overhead:
		return "Light from above"
	case Viewpoint:
		return "Light from viewpoint"
	case Ambient:
		return "Ambient light"
	case Accent:
		return "Red light"
	}
	return r.String()
}

// Kind selects the shading model of a light.
type Kind int32

const (
	// Directional lights shade by N·L with a constant direction.
	Directional Kind = iota
	// AmbientKind lights add a constant term to every surface.
	AmbientKind
)

// Light is one fixed light source.
type Light struct {
	Role      Role
	Kind      Kind
	Color     [3]float32
	Intensity float32
	// Direction points from the surface towards the light. For lights that
	// follow the camera it is given in view space.
	Direction     math.Vec3
	FollowsCamera bool
}

// Radiance returns the colour scaled by intensity.
func (l Light) Radiance() [3]float32 {
	return [3]float32{l.Color[0] * l.Intensity, l.Color[1] * l.Intensity, l.Color[2] * l.Intensity}
}

var (
	white = [3]float32{1, 1, 1}
	red   = [3]float32{1, 0, 0}
)

// Fixed definitions, indexed by role.
var definitions = [RoleCount]Light{
	Overhead:  {Role: Overhead, Kind: Directional, Color: white, Intensity: 0.6, Direction: math.Vec3{Y: 1}},
	Viewpoint: {Role: Viewpoint, Kind: Directional, Color: white, Intensity: 0.8, Direction: math.Vec3{Z: 1}, FollowsCamera: true},
	Ambient:   {Role: Ambient, Kind: AmbientKind, Color: white, Intensity: 1.0},
	Accent:    {Role: Accent, Kind: Directional, Color: red, Intensity: 0.8, Direction: math.Vec3{Z: 1}},
}

// DefaultEnabled reports whether role is switched on at startup.
func DefaultEnabled(r Role) bool {
	return r == Overhead || r == Viewpoint
}

// Definition returns the fixed light for role.
func Definition(r Role) Light {
	return definitions[r]
}
