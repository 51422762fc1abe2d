// Package input translates SDL2 events into host input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/windturbine/internal/viewer"
)

// EventType enumerates host input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type     EventType
	Key      viewer.Key
	Scancode sdl.Scancode
	Repeat   bool
	Width    int
	Height   int
	MouseX   float32
	MouseY   float32
	Button   uint8
	Wheel    float32
}

// Input polls SDL once per frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// auto-repeat is kept: held arrows keep adjusting
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type:     EventKeyDown,
					Key:      KeyFromScancode(e.Keysym.Scancode),
					Scancode: e.Keysym.Scancode,
					Repeat:   e.Repeat != 0,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				t = EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   t,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			if dy != 0 {
				i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: dy})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyFromScancode maps the keys the viewer reacts to. Everything else is
// KeyNone and keeps its scancode in the Event.
func KeyFromScancode(sc sdl.Scancode) viewer.Key {
	switch sc {
	case sdl.SCANCODE_LEFT:
		return viewer.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return viewer.KeyRight
	case sdl.SCANCODE_UP:
		return viewer.KeyUp
	case sdl.SCANCODE_DOWN:
		return viewer.KeyDown
	case sdl.SCANCODE_PAGEUP:
		return viewer.KeyPageUp
	case sdl.SCANCODE_PAGEDOWN:
		return viewer.KeyPageDown
	case sdl.SCANCODE_HOME:
		return viewer.KeyHome
	}
	return viewer.KeyNone
}
