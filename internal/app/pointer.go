package app

import "github.com/Faultbox/windturbine/internal/viewer"

// pointer routes mouse input between the panel and the trackball. A press
// decides the owner and keeps it until release.
type pointer struct {
	dragging bool
	// scale maps window coordinates to drawable pixels
	scaleX, scaleY float32
}

func newPointer() *pointer {
	return &pointer{scaleX: 1, scaleY: 1}
}

func (p *pointer) setScale(windowW, windowH, drawableW, drawableH int) {
	if windowW <= 0 || windowH <= 0 {
		return
	}
	p.scaleX = float32(drawableW) / float32(windowW)
	p.scaleY = float32(drawableH) / float32(windowH)
}

// toPixels converts window coordinates to drawable pixels.
func (p *pointer) toPixels(x, y float32) (float32, float32) {
	return x * p.scaleX, y * p.scaleY
}

// press starts a drag unless the panel owns the point.
func (p *pointer) press(x, y float32, overPanel bool) viewer.Event {
	if overPanel || p.dragging {
		return nil
	}
	p.dragging = true
	return viewer.DragStartEvent{X: x, Y: y}
}

func (p *pointer) move(x, y float32) viewer.Event {
	if !p.dragging {
		return nil
	}
	return viewer.DragMoveEvent{X: x, Y: y}
}

func (p *pointer) release() viewer.Event {
	if !p.dragging {
		return nil
	}
	p.dragging = false
	return viewer.DragEndEvent{}
}

func (p *pointer) wheel(steps float32, overPanel bool) viewer.Event {
	if overPanel || steps == 0 {
		return nil
	}
	return viewer.WheelEvent{Steps: steps}
}
