package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/logger"
	"github.com/Faultbox/windturbine/internal/turbine"
	"github.com/Faultbox/windturbine/pkg/math"
)

const (
	// KeyStep is the model rotation per key press, in radians.
	KeyStep = 0.03
	// SliderScale converts a slider value to radians per tick.
	SliderScale = 0.001
	// DefaultSlider is the slider position at startup.
	DefaultSlider = 50
	// SliderMin and SliderMax bound the speed slider.
	SliderMin = 0
	SliderMax = 100
)

// HomePose is the model orientation restored by the home key.
var HomePose = math.Vec3{X: 0.2}

// Router maps keyboard and panel input onto the model, lights, camera and
// animation controller.
type Router struct {
	c      *Controller
	model  *turbine.Model
	lights *lighting.Set
	camera CameraController
}

// HandleKey rotates the model for a recognised key and reports whether the
// key was consumed.
func (r *Router) HandleKey(k Key) bool {
	rot := &r.model.Root.Transform.Rotation
	switch k {
	case KeyLeft:
		rot.Y -= KeyStep
	case KeyRight:
		rot.Y += KeyStep
	case KeyUp:
		rot.X -= KeyStep
	case KeyDown:
		rot.X += KeyStep
	case KeyPageUp:
		rot.Z -= KeyStep
	case KeyPageDown:
		rot.Z += KeyStep
	case KeyHome:
		*rot = HomePose
	default:
		return false
	}
	r.c.RenderIfStopped()
	return true
}

// Play starts the animation.
func (r *Router) Play() {
	r.c.Play()
}

// Stop halts the animation.
func (r *Router) Stop() {
	r.c.Stop()
}

// SetLight switches one light.
func (r *Router) SetLight(role lighting.Role, on bool) {
	if !r.lights.SetEnabled(role, on) {
		return
	}
	logger.Debug("light switched", zap.Stringer("role", role), zap.Bool("on", on))
	r.c.RenderIfStopped()
}

// SetSlider applies a raw slider value as the rotor speed. Values outside
// the slider range are clamped.
func (r *Router) SetSlider(v float32) {
	if v < SliderMin {
		v = SliderMin
	}
	if v > SliderMax {
		v = SliderMax
	}
	r.c.SetSpeed(v * SliderScale)
	r.c.RenderIfStopped()
}

// BeginDrag starts a trackball rotation.
func (r *Router) BeginDrag(x, y float32) {
	r.camera.BeginDrag(x, y)
}

// DragTo moves the trackball rotation.
func (r *Router) DragTo(x, y float32) {
	r.camera.DragTo(x, y)
}

// EndDrag releases the trackball.
func (r *Router) EndDrag() {
	r.camera.EndDrag()
}

// Zoom moves the camera along its view axis.
func (r *Router) Zoom(steps float32) {
	r.camera.Zoom(steps)
}

// Resize adapts the camera and render target to a new drawable size.
func (r *Router) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.camera.SetViewport(width, height)
	r.c.renderer.Resize(width, height)
	r.c.RenderIfStopped()
}
