package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/engine/camera"
	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/engine/scene"
	"github.com/Faultbox/windturbine/internal/logger"
	"github.com/Faultbox/windturbine/internal/turbine"
)

// Frame is everything the renderer needs to draw one image.
type Frame struct {
	Root   *scene.Node
	Camera *camera.Camera
	Lights []lighting.Light
}

// Renderer draws frames.
type Renderer interface {
	Render(frame Frame)
	Resize(width, height int)
}

// CameraController integrates pointer input into the camera.
type CameraController interface {
	Camera() *camera.Camera
	Update()
	SetEnabled(on bool)
	BeginDrag(x, y float32)
	DragTo(x, y float32)
	EndDrag()
	Zoom(steps float32)
	SetViewport(width, height int)
}

// Controller runs the rotor animation.
type Controller struct {
	model    *turbine.Model
	camera   CameraController
	renderer Renderer
	lights   *lighting.Set
	frames   *frameSlot

	state   State
	speed   float32
	ticks   uint64
	renders uint64
}

func newController(m *turbine.Model, cam CameraController, r Renderer, lights *lighting.Set, frames *frameSlot) *Controller {
	return &Controller{
		model:    m,
		camera:   cam,
		renderer: r,
		lights:   lights,
		frames:   frames,
		speed:    DefaultSlider * SliderScale,
	}
}

// State returns the current animation state, nil before the session starts.
func (c *Controller) State() State {
	return c.state
}

// Running reports whether the rotor is animating.
func (c *Controller) Running() bool {
	return c.state == Running
}

// Speed returns the rotor advance per tick in radians.
func (c *Controller) Speed() float32 {
	return c.speed
}

// SetSpeed sets the rotor advance per tick. The run state is unchanged.
func (c *Controller) SetSpeed(rad float32) {
	c.speed = rad
}

// Ticks returns the number of animated frames so far.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Renders returns the number of frames handed to the renderer.
func (c *Controller) Renders() uint64 {
	return c.renders
}

// Play resumes animation from the current rotor angle.
func (c *Controller) Play() {
	c.change(Running)
}

// Stop halts animation after the current tick.
func (c *Controller) Stop() {
	c.change(Stopped)
}

// Tick handles one frame event.
func (c *Controller) Tick() {
	if c.state == nil {
		return
	}
	c.state.Tick(c)
}

// Render draws the current scene.
func (c *Controller) Render() {
	c.renders++
	c.renderer.Render(Frame{
		Root:   c.model.Root,
		Camera: c.camera.Camera(),
		Lights: c.lights.Active(),
	})
}

// RenderIfStopped redraws after a change that no tick will pick up.
func (c *Controller) RenderIfStopped() {
	if c.state == Stopped {
		c.Render()
	}
}

func (c *Controller) change(next State) {
	if c.state == next {
		return
	}
	prev := "none"
	if c.state != nil {
		prev = c.state.Name()
		c.state.Exit(c)
	}
	c.state = next
	next.Enter(c)
	logger.Debug("animation state changed",
		zap.String("from", prev),
		zap.String("to", next.Name()),
		zap.Float32("rotor_angle", c.model.RotorAngle()))
}
