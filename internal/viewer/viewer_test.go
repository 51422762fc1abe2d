package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/windturbine/internal/engine/camera"
	"github.com/Faultbox/windturbine/internal/engine/lighting"
	"github.com/Faultbox/windturbine/internal/turbine"
	"github.com/Faultbox/windturbine/pkg/math"
)

// fakeRenderer records frames instead of drawing them.
type fakeRenderer struct {
	frames  []Frame
	resizes [][2]int
}

func (f *fakeRenderer) Render(frame Frame) {
	f.frames = append(f.frames, frame)
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

type fixture struct {
	s   *Session
	r   *fakeRenderer
	tb  *camera.Trackball
	cam *camera.Camera
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m, err := turbine.Build()
	require.NoError(t, err)
	cam := camera.NewPerspective(45, 16.0/9.0, 1, 100, math.Vec3{X: -25, Y: 20, Z: 50})
	tb := camera.NewTrackball(cam, 1280, 720)
	r := &fakeRenderer{}
	return &fixture{s: New(m, tb, r), r: r, tb: tb, cam: cam}
}

func started(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.s.Start()
	return f
}

// tick delivers one display refresh the way the host does.
func (f *fixture) tick() {
	if f.s.TakeFrameRequest() {
		f.s.Post(FrameEvent{})
	}
	f.s.Drain()
}

func TestStartState(t *testing.T) {
	f := started(t)

	assert.True(t, f.s.Controller.Running())
	assert.Equal(t, "running", f.s.Controller.State().Name())
	assert.Len(t, f.r.frames, 1, "first frame drawn on start")
	assert.InDelta(t, 0.05, f.s.Controller.Speed(), 1e-7)
	assert.True(t, f.tb.Enabled())

	// Default lights: exactly overhead and viewpoint.
	require.Len(t, f.r.frames[0].Lights, 2)
	assert.Equal(t, lighting.Overhead, f.r.frames[0].Lights[0].Role)
	assert.Equal(t, lighting.Viewpoint, f.r.frames[0].Lights[1].Role)
	assert.Same(t, f.s.Model.Root, f.r.frames[0].Root)
	assert.Same(t, f.cam, f.r.frames[0].Camera)

	assert.True(t, f.s.TakeFrameRequest(), "running requests the next frame")
	assert.False(t, f.s.TakeFrameRequest(), "one request at a time")

	f.s.Start()
	assert.Len(t, f.r.frames, 1, "second Start is ignored")
}

func TestTickBeforeStartDoesNothing(t *testing.T) {
	f := newFixture(t)
	f.s.Post(FrameEvent{})
	f.s.Drain()
	assert.Empty(t, f.r.frames)
	assert.Equal(t, float32(0), f.s.Model.RotorAngle())
}

func TestPlayStopSequences(t *testing.T) {
	tests := []struct {
		name string
		cmds []Event
		want bool
	}{
		{"none", nil, true},
		{"stop", []Event{StopEvent{}}, false},
		{"stop stop", []Event{StopEvent{}, StopEvent{}}, false},
		{"play while running", []Event{PlayEvent{}, PlayEvent{}}, true},
		{"stop play", []Event{StopEvent{}, PlayEvent{}}, true},
		{"stop play stop", []Event{StopEvent{}, PlayEvent{}, StopEvent{}}, false},
		{"play stop play play", []Event{PlayEvent{}, StopEvent{}, PlayEvent{}, PlayEvent{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := started(t)
			for _, ev := range tt.cmds {
				f.s.Post(ev)
			}
			f.s.Drain()
			assert.Equal(t, tt.want, f.s.Controller.Running())
			assert.Equal(t, tt.want, f.tb.Enabled(), "camera drag follows the run state")
		})
	}
}

func TestRotorAdvancesBySpeedPerTick(t *testing.T) {
	f := started(t)
	speed := f.s.Controller.Speed()

	var want float32
	for i := 0; i < 10; i++ {
		before := f.s.Model.RotorAngle()
		f.tick()
		want += speed
		assert.Greater(t, f.s.Model.RotorAngle(), before)
	}
	assert.InDelta(t, want, f.s.Model.RotorAngle(), 1e-5)
	assert.Equal(t, uint64(10), f.s.Controller.Ticks())
	assert.Len(t, f.r.frames, 11)
}

func TestRotorConstantWhileStopped(t *testing.T) {
	f := started(t)
	f.tick()
	f.s.Post(StopEvent{})
	f.s.Drain()
	angle := f.s.Model.RotorAngle()
	renders := len(f.r.frames)

	for i := 0; i < 5; i++ {
		f.tick()
	}
	// A frame event left over from before the stop is dropped too.
	f.s.Post(FrameEvent{})
	f.s.Drain()

	assert.Equal(t, angle, f.s.Model.RotorAngle())
	assert.Len(t, f.r.frames, renders)
	assert.False(t, f.s.TakeFrameRequest())
}

func TestTickOrder(t *testing.T) {
	f := started(t)
	f.tick() // consume the start request

	// A drag queued before the tick must be visible in the frame it renders.
	f.s.Post(DragStartEvent{X: 640, Y: 360})
	f.s.Post(DragMoveEvent{X: 700, Y: 360})
	f.s.Drain()
	eyeBefore := f.cam.Eye
	angleBefore := f.s.Model.RotorAngle()

	f.tick()

	assert.NotEqual(t, eyeBefore, f.cam.Eye, "camera integrated during the tick")
	assert.Greater(t, f.s.Model.RotorAngle(), angleBefore)
	assert.True(t, f.s.TakeFrameRequest(), "next tick requested after rendering")
}

func TestSliderMapsToSpeed(t *testing.T) {
	tests := []struct {
		value float32
		want  float32
	}{
		{0, 0},
		{25, 0.025},
		{50, 0.05},
		{100, 0.1},
		{150, 0.1},
		{-5, 0},
	}
	for _, tt := range tests {
		f := started(t)
		f.s.Post(SliderEvent{Value: tt.value})
		f.s.Drain()
		assert.InDelta(t, tt.want, f.s.Controller.Speed(), 1e-7, "slider %v", tt.value)
		assert.True(t, f.s.Controller.Running(), "speed change keeps the run state")
	}
}

func TestSliderHundredThenTick(t *testing.T) {
	f := started(t)
	f.tick()
	before := f.s.Model.RotorAngle()

	f.s.Post(SliderEvent{Value: 100})
	f.s.Drain()
	assert.InDelta(t, 0.1, f.s.Controller.Speed(), 1e-7)

	f.tick()
	assert.InDelta(t, 0.1, f.s.Model.RotorAngle()-before, 1e-6)
}

func TestSliderWhileStoppedRendersOnce(t *testing.T) {
	f := started(t)
	f.s.Post(StopEvent{})
	f.s.Drain()
	renders := len(f.r.frames)

	f.s.Post(SliderEvent{Value: 80})
	f.s.Drain()
	assert.Len(t, f.r.frames, renders+1)
	assert.False(t, f.s.Controller.Running())
}

func TestKeyboardRotatesModel(t *testing.T) {
	tests := []struct {
		key  Key
		want math.Vec3
	}{
		{KeyLeft, math.Vec3{Y: -KeyStep}},
		{KeyRight, math.Vec3{Y: KeyStep}},
		{KeyUp, math.Vec3{X: -KeyStep}},
		{KeyDown, math.Vec3{X: KeyStep}},
		{KeyPageUp, math.Vec3{Z: -KeyStep}},
		{KeyPageDown, math.Vec3{Z: KeyStep}},
		{KeyHome, HomePose},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			f := started(t)
			assert.True(t, f.s.Router.HandleKey(tt.key))
			assert.Equal(t, tt.want, f.s.Model.Root.Transform.Rotation)
			assert.Len(t, f.r.frames, 1, "running state renders on the next tick only")
		})
	}
}

func TestHomeResetsFromAnyOrientation(t *testing.T) {
	f := started(t)
	for _, k := range []Key{KeyLeft, KeyLeft, KeyUp, KeyPageDown, KeyRight, KeyDown, KeyDown} {
		f.s.Router.HandleKey(k)
	}
	f.s.Model.Root.Transform.Rotation = math.Vec3{X: 3.1, Y: -7, Z: 0.4}

	f.s.Router.HandleKey(KeyHome)
	assert.Equal(t, math.Vec3{X: 0.2, Y: 0, Z: 0}, f.s.Model.Root.Transform.Rotation)
}

func TestUnrecognisedKeyIsPassedOn(t *testing.T) {
	f := started(t)
	var got []KeyEvent
	f.s.OnUnhandledKey = func(e KeyEvent) { got = append(got, e) }

	f.s.Post(StopEvent{})
	f.s.Post(KeyEvent{Key: KeyNone, Raw: 27})
	f.s.Post(KeyEvent{Key: KeyLeft, Raw: 1})
	f.s.Drain()

	require.Len(t, got, 1)
	assert.Equal(t, 27, got[0].Raw)
	assert.Equal(t, math.Vec3{Y: -KeyStep}, f.s.Model.Root.Transform.Rotation)
	assert.False(t, f.s.Router.HandleKey(KeyNone))
}

func TestStopHomePlayScenario(t *testing.T) {
	f := started(t)
	for i := 0; i < 3; i++ {
		f.tick()
	}
	angle := f.s.Model.RotorAngle()

	f.s.Post(StopEvent{})
	f.s.Drain()
	renders := len(f.r.frames)

	f.s.Post(KeyEvent{Key: KeyHome})
	f.s.Post(PlayEvent{})
	f.s.Drain()

	assert.Len(t, f.r.frames, renders+1, "exactly one manual render from home")
	assert.Equal(t, HomePose, f.s.Model.Root.Transform.Rotation)
	assert.True(t, f.s.Controller.Running())
	assert.Equal(t, angle, f.s.Model.RotorAngle(), "play does not reset the rotor")

	f.tick()
	assert.InDelta(t, angle+f.s.Controller.Speed(), f.s.Model.RotorAngle(), 1e-6)
}

func TestLightToggles(t *testing.T) {
	f := started(t)

	f.s.Post(LightEvent{Role: lighting.Accent, On: true})
	f.s.Post(LightEvent{Role: lighting.Overhead, On: false})
	f.s.Drain()
	assert.True(t, f.s.Lights.Enabled(lighting.Accent))
	assert.False(t, f.s.Lights.Enabled(lighting.Overhead))
	assert.Len(t, f.r.frames, 1, "running picks the change up on the next tick")

	f.tick()
	last := f.r.frames[len(f.r.frames)-1]
	require.Len(t, last.Lights, 2)
	assert.Equal(t, lighting.Viewpoint, last.Lights[0].Role)
	assert.Equal(t, lighting.Accent, last.Lights[1].Role)
}

func TestLightToggleWhileStopped(t *testing.T) {
	f := started(t)
	f.s.Post(StopEvent{})
	f.s.Drain()
	renders := len(f.r.frames)

	f.s.Post(LightEvent{Role: lighting.Ambient, On: true})
	f.s.Drain()
	assert.Len(t, f.r.frames, renders+1)

	// Switching to the current state is a no-op.
	f.s.Post(LightEvent{Role: lighting.Ambient, On: true})
	f.s.Drain()
	assert.Len(t, f.r.frames, renders+1)
}

func TestDragIgnoredWhileStopped(t *testing.T) {
	f := started(t)
	f.s.Post(StopEvent{})
	f.s.Post(DragStartEvent{X: 640, Y: 360})
	f.s.Post(DragMoveEvent{X: 900, Y: 200})
	f.s.Post(WheelEvent{Steps: 2})
	f.s.Drain()
	eye := f.cam.Eye

	f.s.Post(PlayEvent{})
	f.s.Drain()
	f.tick()
	assert.Equal(t, eye, f.cam.Eye)
}

func TestResize(t *testing.T) {
	f := started(t)
	f.s.Post(StopEvent{})
	f.s.Drain()
	renders := len(f.r.frames)

	f.s.Post(ResizeEvent{Width: 1000, Height: 500})
	f.s.Post(ResizeEvent{Width: 0, Height: 500})
	f.s.Drain()

	assert.Equal(t, [][2]int{{1000, 500}}, f.r.resizes)
	assert.Equal(t, float32(2), f.cam.Aspect)
	assert.Len(t, f.r.frames, renders+1)
}

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Push(PlayEvent{})
	q.Push(StopEvent{})
	assert.Equal(t, 2, q.Len())

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, PlayEvent{}, ev)
	ev, _ = q.Pop()
	assert.Equal(t, StopEvent{}, ev)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestDrainReturnsCount(t *testing.T) {
	f := started(t)
	f.s.Post(KeyEvent{Key: KeyUp})
	f.s.Post(SliderEvent{Value: 10})
	assert.Equal(t, 2, f.s.Pending())
	assert.Equal(t, 2, f.s.Drain())
	assert.Equal(t, 0, f.s.Pending())
}
