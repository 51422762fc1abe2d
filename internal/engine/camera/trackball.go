package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/windturbine/pkg/math"
)

// Trackball orbits a camera around its target from mouse drags. Input is
// accumulated between frames and applied by Update. Panning is not
// supported.
type Trackball struct {
	cam *Camera

	width, height int

	enabled  bool
	dragging bool
	start    math.Vec3 // point on the virtual ball at the last Update
	current  math.Vec3
	zoom     float32 // accumulated wheel steps

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32

	// Constraints
	MinDistance float32
	MaxDistance float32
}

// NewTrackball creates an enabled trackball for cam over a viewport.
func NewTrackball(cam *Camera, width, height int) *Trackball {
	t := &Trackball{
		cam:         cam,
		enabled:     true,
		RotateSpeed: 1.0,
		ZoomSpeed:   0.1,
		MinDistance: cam.Near * 2,
		MaxDistance: cam.Far * 0.9,
	}
	t.SetViewport(width, height)
	return t
}

// Camera returns the controlled camera.
func (t *Trackball) Camera() *Camera {
	return t.cam
}

// SetViewport updates the drag area and the camera aspect ratio.
func (t *Trackball) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.width, t.height = width, height
	t.cam.SetAspect(width, height)
}

// SetEnabled turns input handling on or off. Disabling drops any pending
// drag or zoom.
func (t *Trackball) SetEnabled(on bool) {
	t.enabled = on
	if !on {
		t.dragging = false
		t.start = t.current
		t.zoom = 0
	}
}

// Enabled reports whether input is accepted.
func (t *Trackball) Enabled() bool {
	return t.enabled
}

// Dragging reports whether a drag is in progress.
func (t *Trackball) Dragging() bool {
	return t.dragging
}

// BeginDrag starts a rotation at window coordinates x, y.
func (t *Trackball) BeginDrag(x, y float32) {
	if !t.enabled {
		return
	}
	t.dragging = true
	t.start = t.project(x, y)
	t.current = t.start
}

// DragTo moves the active drag to x, y.
func (t *Trackball) DragTo(x, y float32) {
	if !t.enabled || !t.dragging {
		return
	}
	t.current = t.project(x, y)
}

// EndDrag releases the drag. Movement not yet applied is kept for the next
// Update.
func (t *Trackball) EndDrag() {
	t.dragging = false
}

// Zoom accumulates wheel steps; positive moves the camera closer.
func (t *Trackball) Zoom(steps float32) {
	if !t.enabled {
		return
	}
	t.zoom += steps
}

// Update applies pending drag and zoom to the camera.
func (t *Trackball) Update() {
	t.rotate()
	t.applyZoom()
}

func (t *Trackball) rotate() {
	if t.start == t.current {
		return
	}
	a, b := t.start, t.current
	t.start = t.current

	axis := a.Cross(b)
	if axis.Length() < 1e-6 {
		return
	}
	angle := math32.Acos(clamp(a.Dot(b), -1, 1)) * t.RotateSpeed

	// The ball is in view space; turn the axis into world space and move the
	// camera the opposite way so the model appears to follow the pointer.
	worldAxis := t.cam.InverseView().TransformDirection(axis).Normalize()
	q := math.QuatFromAxisAngle(worldAxis, -angle)

	offset := t.cam.Eye.Sub(t.cam.Target)
	t.cam.Eye = t.cam.Target.Add(q.Rotate(offset))
	t.cam.Up = q.Rotate(t.cam.Up).Normalize()
}

func (t *Trackball) applyZoom() {
	if t.zoom == 0 {
		return
	}
	factor := 1 - t.zoom*t.ZoomSpeed
	t.zoom = 0
	if factor < 0.1 {
		factor = 0.1
	}

	offset := t.cam.Eye.Sub(t.cam.Target)
	dist := offset.Length() * factor
	if dist < t.MinDistance {
		dist = t.MinDistance
	}
	if dist > t.MaxDistance {
		dist = t.MaxDistance
	}
	t.cam.Eye = t.cam.Target.Add(offset.Normalize().Scale(dist))
}

// project maps window coordinates onto a unit ball centred in the viewport.
// Points outside the ball land on its silhouette.
func (t *Trackball) project(x, y float32) math.Vec3 {
	radius := float32(t.width) / 2
	if h := float32(t.height) / 2; h < radius {
		radius = h
	}
	if radius <= 0 {
		return math.Vec3{Z: 1}
	}
	p := math.Vec3{
		X: (x - float32(t.width)/2) / radius,
		Y: (float32(t.height)/2 - y) / radius,
	}
	d2 := p.X*p.X + p.Y*p.Y
	if d2 > 1 {
		return p.Scale(1 / math32.Sqrt(d2))
	}
	p.Z = math32.Sqrt(1 - d2)
	return p
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
