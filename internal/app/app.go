// Package app hosts the viewer session in an SDL window: it pumps input,
// draws the controls panel and paces frames to the display refresh.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/config"
	"github.com/Faultbox/windturbine/internal/engine/camera"
	"github.com/Faultbox/windturbine/internal/engine/debug"
	"github.com/Faultbox/windturbine/internal/engine/input"
	"github.com/Faultbox/windturbine/internal/engine/renderer"
	"github.com/Faultbox/windturbine/internal/engine/ui2d"
	"github.com/Faultbox/windturbine/internal/engine/window"
	"github.com/Faultbox/windturbine/internal/logger"
	"github.com/Faultbox/windturbine/internal/turbine"
	"github.com/Faultbox/windturbine/internal/viewer"
	"github.com/Faultbox/windturbine/pkg/math"
)

// Title is the window title.
const Title = "Wind Turbine"

// App owns the window and everything drawn into it.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Context
	input    *input.Input
	shots    *debug.ScreenshotCapture

	session *viewer.Session
	panel   *panel
	pointer *pointer

	width, height int // drawable pixels
	frameInterval time.Duration
	running       bool
}

// New opens the window and builds the scene. Errors wrapping
// window.ErrBackendUnavailable mean no OpenGL 4.1 context exists.
func New(cfg *config.Config) (*App, error) {
	model, err := turbine.Build()
	if err != nil {
		return nil, fmt.Errorf("building turbine: %w", err)
	}

	a := &App{
		cfg:     cfg,
		input:   input.New(),
		shots:   debug.NewScreenshotCapture(cfg.Screenshots.Dir, "windturbine"),
		panel:   newPanel(cfg.Animation.Slider),
		pointer: newPointer(),
	}

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}
	a.width, a.height = a.window.DrawableSize()
	a.syncPointerScale()
	a.frameInterval = time.Second / time.Duration(a.window.RefreshRate(60))

	a.renderer, err = renderer.New(renderer.Config{
		Width:   a.width,
		Height:  a.height,
		Samples: cfg.Graphics.MSAA,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	a.ui, err = ui2d.NewContext(a.width, a.height)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating ui: %w", err)
	}

	pos := cfg.Camera.Position
	cam := camera.NewPerspective(cfg.Camera.FOV, float32(a.width)/float32(a.height),
		cfg.Camera.Near, cfg.Camera.Far, math.Vec3{X: pos[0], Y: pos[1], Z: pos[2]})
	trackball := camera.NewTrackball(cam, a.width, a.height)

	a.session = viewer.New(model, trackball, a.renderer)
	a.session.OnUnhandledKey = a.handleHostKey

	logger.Info("app initialized",
		zap.Int("nodes", model.Root.Count()),
		zap.Duration("frame_interval", a.frameInterval),
	)
	return a, nil
}

// Run starts the session and loops until the window closes or Escape.
func (a *App) Run() error {
	a.session.Start()
	if a.panel.slider != viewer.DefaultSlider {
		a.session.Post(viewer.SliderEvent{Value: float32(a.panel.slider)})
	}

	a.running = true
	frames := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")
	for a.running {
		start := time.Now()

		if a.input.Update() {
			a.running = false
		}
		a.translate(a.input.Events())

		a.ui.Begin()
		a.panel.draw(a.ui, a.session)
		a.session.Drain()

		a.compose()
		a.ui.End()
		a.window.SwapBuffers()

		if a.session.TakeFrameRequest() {
			a.session.Post(viewer.FrameEvent{})
		}

		if !a.cfg.Graphics.VSync {
			if rest := a.frameInterval - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frames),
				zap.Uint64("ticks", a.session.Controller.Ticks()),
				zap.Uint64("renders", a.session.Controller.Renders()),
				zap.Int("draw_calls", a.renderer.Stats().DrawCalls),
			)
			frames = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop finished")
	return nil
}

// translate turns host input into panel state and session events.
func (a *App) translate(events []input.Event) {
	in := a.ui.Input()
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			a.width, a.height = a.window.DrawableSize()
			a.syncPointerScale()
			a.ui.Resize(a.width, a.height)
			a.session.Post(viewer.ResizeEvent{Width: a.width, Height: a.height})

		case input.EventKeyDown:
			a.session.Post(viewer.KeyEvent{Key: e.Key, Raw: int(e.Scancode)})

		case input.EventMouseMove:
			x, y := a.pointer.toPixels(e.MouseX, e.MouseY)
			in.MouseX, in.MouseY = x, y
			a.post(a.pointer.move(x, y))

		case input.EventMouseDown:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			x, y := a.pointer.toPixels(e.MouseX, e.MouseY)
			in.MouseX, in.MouseY = x, y
			in.MouseLeftDown = true
			a.post(a.pointer.press(x, y, a.ui.Captures(x, y)))

		case input.EventMouseUp:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			in.MouseLeftDown = false
			a.post(a.pointer.release())

		case input.EventMouseWheel:
			a.post(a.pointer.wheel(e.Wheel, a.ui.Captures(in.MouseX, in.MouseY)))
		}
	}
}

func (a *App) post(ev viewer.Event) {
	if ev != nil {
		a.session.Post(ev)
	}
}

func (a *App) syncPointerScale() {
	ww, wh := a.window.Size()
	a.pointer.setScale(ww, wh, a.width, a.height)
}

// compose draws the last scene frame to the default framebuffer.
func (a *App) compose() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	a.renderer.Present(a.width, a.height)
}

func (a *App) handleHostKey(ev viewer.KeyEvent) {
	switch sdl.Scancode(ev.Raw) {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_F12:
		a.screenshot()
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.Pixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing app")
	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
