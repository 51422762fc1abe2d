// Package viewer holds the interactive state of the turbine viewer: the
// animation controller, the input router and the event loop feeding them.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/logger"
	"github.com/Faultbox/windturbine/internal/turbine"
)

// Session owns all mutable viewer state. It is not safe for concurrent use;
// the host posts events and drains them from one goroutine.
type Session struct {
	Model      *turbine.Model
	Lights     *lighting.Set
	Controller *Controller
	Router     *Router

	// OnUnhandledKey receives key events the router did not consume.
	OnUnhandledKey func(KeyEvent)

	queue   Queue
	frames  frameSlot
	started bool
}

// New wires a session around a built model.
func New(m *turbine.Model, cam CameraController, r Renderer) *Session {
	s := &Session{
		Model:  m,
		Lights: lighting.NewSet(),
	}
	s.Controller = newController(m, cam, r, s.Lights, &s.frames)
	s.Router = &Router{c: s.Controller, model: m, lights: s.Lights, camera: cam}
	return s
}

// Start applies the default lights, draws the first frame and begins
// animating. Later calls do nothing.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.Lights.ApplyDefaults()
	s.Controller.Render()
	s.Controller.Play()
	logger.Info("viewer started",
		zap.Int("lights", s.Lights.ActiveCount()),
		zap.Float32("speed", s.Controller.Speed()))
}

// Post queues an event for the next Drain.
func (s *Session) Post(ev Event) {
	s.queue.Push(ev)
}

// Drain dispatches queued events in order until the queue is empty and
// returns how many were handled.
func (s *Session) Drain() int {
	n := 0
	for {
		ev, ok := s.queue.Pop()
		if !ok {
			return n
		}
		s.dispatch(ev)
		n++
	}
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	return s.queue.Len()
}

// TakeFrameRequest reports and clears the outstanding frame request. The
// host polls it once per display refresh and posts a FrameEvent when set.
func (s *Session) TakeFrameRequest() bool {
	return s.frames.take()
}

func (s *Session) dispatch(ev Event) {
	switch e := ev.(type) {
	case FrameEvent:
		s.Controller.Tick()
	case KeyEvent:
		if !s.Router.HandleKey(e.Key) && s.OnUnhandledKey != nil {
			s.OnUnhandledKey(e)
		}
	case PlayEvent:
		s.Router.Play()
	case StopEvent:
		s.Router.Stop()
	case LightEvent:
		s.Router.SetLight(e.Role, e.On)
	case SliderEvent:
		s.Router.SetSlider(e.Value)
	case DragStartEvent:
		s.Router.BeginDrag(e.X, e.Y)
	case DragMoveEvent:
		s.Router.DragTo(e.X, e.Y)
	case DragEndEvent:
		s.Router.EndDrag()
	case WheelEvent:
		s.Router.Zoom(e.Steps)
	case ResizeEvent:
		s.Router.Resize(e.Width, e.Height)
	default:
		logger.Warn("unknown event", zap.String("type", fmt.Sprintf("%T", ev)))
	}
	if _, frame := ev.(FrameEvent); !frame && ev != nil {
		logger.Debug("event handled", zap.String("name", ev.eventName()))
	}
}
