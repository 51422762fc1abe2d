// Package camera provides the perspective camera and the trackball
// controller that orbits it around the model.
package camera

import (
	"github.com/Faultbox/windturbine/pkg/math"
)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOV    float32 // vertical field of view, radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// NewPerspective creates a camera at eye looking at the origin.
func NewPerspective(fovDegrees, aspect, near, far float32, eye math.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Up:     math.Vec3{Y: 1},
		FOV:    fovDegrees * math.Pi / 180,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// ViewMatrix returns the world to view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// InverseView returns the view to world transform.
func (c *Camera) InverseView() math.Mat4 {
	return c.ViewMatrix().Inverse()
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// SetAspect updates the aspect ratio from a viewport size. A zero height
// leaves the ratio unchanged.
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Distance returns the distance from Eye to Target.
func (c *Camera) Distance() float32 {
	return c.Eye.Distance(c.Target)
}
