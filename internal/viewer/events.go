package viewer

import "github.com/Faultbox/windturbine/internal/engine/lighting"

// Event is a message consumed by the session dispatch loop.
type Event interface {
	eventName() string
}

// KeyEvent is a key press. Raw carries the host key code so unhandled keys
// can be passed back to the host.
type KeyEvent struct {
	Key Key
	Raw int
}

// PlayEvent starts the rotor animation.
type PlayEvent struct{}

// StopEvent halts the rotor animation.
type StopEvent struct{}

// LightEvent switches one light.
type LightEvent struct {
	Role lighting.Role
	On   bool
}

// SliderEvent carries the raw speed slider value.
type SliderEvent struct {
	Value float32
}

// DragStartEvent begins a trackball drag at window coordinates.
type DragStartEvent struct {
	X, Y float32
}

// DragMoveEvent moves an active drag.
type DragMoveEvent struct {
	X, Y float32
}

// DragEndEvent releases the drag.
type DragEndEvent struct{}

// WheelEvent zooms by wheel steps; positive is towards the model.
type WheelEvent struct {
	Steps float32
}

// ResizeEvent reports a new drawable size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// FrameEvent is delivered once per display refresh after a frame request.
type FrameEvent struct{}

func (KeyEvent) eventName() string       { return "key" }
func (PlayEvent) eventName() string      { return "play" }
func (StopEvent) eventName() string      { return "stop" }
func (LightEvent) eventName() string     { return "light" }
func (SliderEvent) eventName() string    { return "slider" }
func (DragStartEvent) eventName() string { return "drag-start" }
func (DragMoveEvent) eventName() string  { return "drag-move" }
func (DragEndEvent) eventName() string   { return "drag-end" }
func (WheelEvent) eventName() string     { return "wheel" }
func (ResizeEvent) eventName() string    { return "resize" }
func (FrameEvent) eventName() string     { return "frame" }

// Queue is a FIFO of pending events.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Pop removes the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// frameSlot holds at most one outstanding frame request.
type frameSlot struct {
	pending bool
}

func (f *frameSlot) request() {
	f.pending = true
}

func (f *frameSlot) take() bool {
	p := f.pending
	f.pending = false
	return p
}
