package viewer

import "github.com/Faultbox/windturbine/internal/logger"

// State is one animation state of the controller.
type State interface {
	// Name identifies the state in logs.
	Name() string

	// Enter is called when the controller switches to this state.
	Enter(c *Controller)

	// Exit is called when the controller leaves this state.
	Exit(c *Controller)

	// Tick handles one frame event.
	Tick(c *Controller)
}

// Animation states. Both are stateless and shared.
var (
	Running State = runningState{}
	Stopped State = stoppedState{}
)

type runningState struct{}

func (runningState) Name() string { return "running" }

func (runningState) Enter(c *Controller) {
	c.camera.SetEnabled(true)
	c.frames.request()
}

func (runningState) Exit(*Controller) {}

// Tick advances the rotor, integrates the camera, renders and asks for the
// next frame, in that order.
func (runningState) Tick(c *Controller) {
	c.model.Advance(c.speed)
	c.camera.Update()
	c.Render()
	c.ticks++
	c.frames.request()
}

type stoppedState struct{}

func (stoppedState) Name() string { return "stopped" }

func (stoppedState) Enter(c *Controller) {
	c.camera.SetEnabled(false)
}

func (stoppedState) Exit(*Controller) {}

func (stoppedState) Tick(*Controller) {
	logger.Debug("frame dropped while stopped")
}
