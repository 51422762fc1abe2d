package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/windturbine/pkg/math"
)

func newTestTrackball() (*Camera, *Trackball) {
	cam := NewPerspective(45, 1, 1, 100, math.Vec3{Z: 10})
	return cam, NewTrackball(cam, 800, 600)
}

func TestPerspectiveDefaults(t *testing.T) {
	cam := NewPerspective(45, 16.0/9.0, 1, 100, math.Vec3{X: -25, Y: 20, Z: 50})
	assert.InDelta(t, math.Pi/4, cam.FOV, 1e-6)
	assert.Equal(t, math.Vec3{}, cam.Target)
	assert.Equal(t, math.Vec3{Y: 1}, cam.Up)

	cam.SetAspect(800, 400)
	assert.Equal(t, float32(2), cam.Aspect)
	cam.SetAspect(800, 0)
	assert.Equal(t, float32(2), cam.Aspect)
}

func TestTrackballDragOrbitsCamera(t *testing.T) {
	cam, tb := newTestTrackball()

	tb.BeginDrag(400, 300)
	tb.DragTo(500, 300)
	assert.Equal(t, math.Vec3{Z: 10}, cam.Eye, "drag is applied on Update only")

	tb.Update()
	assert.Less(t, cam.Eye.X, float32(0), "model follows the pointer to the right")
	assert.InDelta(t, 0, cam.Eye.Y, 1e-5)
	assert.InDelta(t, 10, cam.Distance(), 1e-4)

	// A second Update without movement changes nothing.
	eye := cam.Eye
	tb.Update()
	assert.Equal(t, eye, cam.Eye)
}

func TestTrackballVerticalDragTiltsUp(t *testing.T) {
	cam, tb := newTestTrackball()

	tb.BeginDrag(400, 300)
	tb.DragTo(400, 200)
	tb.EndDrag()
	tb.Update()

	assert.Less(t, cam.Eye.Y, float32(0), "dragging up shows the model from below")
	assert.InDelta(t, 0, cam.Up.Dot(cam.Eye.Sub(cam.Target).Normalize()), 1e-4)
	assert.InDelta(t, 1, cam.Up.Length(), 1e-5)
}

func TestTrackballDisabledIgnoresInput(t *testing.T) {
	cam, tb := newTestTrackball()
	tb.SetEnabled(false)
	assert.False(t, tb.Enabled())

	tb.BeginDrag(400, 300)
	tb.DragTo(700, 100)
	tb.Zoom(3)
	tb.Update()
	assert.Equal(t, math.Vec3{Z: 10}, cam.Eye)
	assert.False(t, tb.Dragging())
}

func TestTrackballDisableDropsPending(t *testing.T) {
	cam, tb := newTestTrackball()
	tb.BeginDrag(400, 300)
	tb.DragTo(600, 300)
	tb.Zoom(1)

	tb.SetEnabled(false)
	tb.SetEnabled(true)
	tb.Update()
	assert.Equal(t, math.Vec3{Z: 10}, cam.Eye)
}

func TestTrackballZoom(t *testing.T) {
	tests := []struct {
		name  string
		steps float32
		want  float32
	}{
		{"closer", 1, 9},
		{"farther", -2, 12},
		{"clamped near", 9, 2},
		{"clamped far", -100, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam, tb := newTestTrackball()
			tb.Zoom(tt.steps)
			tb.Update()
			assert.InDelta(t, tt.want, cam.Distance(), 1e-4)
		})
	}
}

func TestSetViewportUpdatesAspect(t *testing.T) {
	cam, tb := newTestTrackball()
	tb.SetViewport(1000, 500)
	assert.Equal(t, float32(2), cam.Aspect)
	tb.SetViewport(0, 0)
	assert.Equal(t, float32(2), cam.Aspect)
}
