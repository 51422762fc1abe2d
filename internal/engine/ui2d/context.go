package ui2d

import (
	"fmt"
	"math"
)

// Text scale for 7x13 glyphs.
const textScale = float32(1.5)

// Context is the main UI context that manages layout and input.
type Context struct {
	canvas Canvas
	gpu    *Renderer
	input  *InputState

	width, height float32

	// Active/hot widget tracking for interaction
	hotWidget    string
	activeWidget string

	windows map[string]*WindowState
	// windows drawn since Begin, for hit testing
	drawn []Rect

	currentWindow *WindowState

	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID   string
	X, Y float32
	W, H float32
}

// NewContext creates a context drawing with OpenGL.
func NewContext(width, height int) (*Context, error) {
	r, err := NewRenderer(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	c := NewCanvasContext(r, width, height)
	c.gpu = r
	return c, nil
}

// NewCanvasContext creates a context drawing to canvas.
func NewCanvasContext(canvas Canvas, width, height int) *Context {
	return &Context{
		canvas:  canvas,
		input:   &InputState{},
		width:   float32(width),
		height:  float32(height),
		windows: make(map[string]*WindowState),
	}
}

// Close releases resources.
func (c *Context) Close() {
	if c.gpu != nil {
		c.gpu.Close()
	}
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.width, c.height = float32(width), float32(height)
	if c.gpu != nil {
		c.gpu.Resize(width, height)
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.hotWidget = ""
	c.drawn = c.drawn[:0]
	if c.gpu != nil {
		c.gpu.Begin()
	}
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.gpu != nil {
		c.gpu.End()
	}
	c.input.EndFrame()
}

// Captures reports whether a press at (x, y) belongs to the UI: it lands on
// a window drawn this frame or a widget is being dragged.
func (c *Context) Captures(x, y float32) bool {
	if c.activeWidget != "" {
		return true
	}
	for _, r := range c.drawn {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// BeginWindow starts a new window.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id}
		c.windows[id] = ws
	}
	ws.X, ws.Y, ws.W, ws.H = x, y, w, h
	c.currentWindow = ws
	c.drawn = append(c.drawn, Rect{x, y, w, h})

	c.canvas.DrawRect(x, y, w, h, ColorPanelBg)
	c.canvas.DrawRectOutline(x, y, w, h, 1, ColorPanelBorder)

	titleBarH := float32(0)
	if title != "" {
		titleBarH = 24
		c.canvas.DrawRect(x+1, y+1, w-2, titleBarH-1, ColorButtonNormal)
		_, textH := c.canvas.MeasureText(title, textScale)
		c.canvas.DrawText(x+8, y+(titleBarH-textH)/2, title, textScale, ColorText)
	}

	c.cursorX = x + 8
	c.cursorY = y + titleBarH + 8
	c.rowH = 0
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + 8
	c.cursorY += c.rowH + 4
	c.rowH = height
}

func (c *Context) widgetID(id string) string {
	return c.currentWindow.ID + "_" + id
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentWindow == nil {
		return false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowH
	if h == 0 {
		h = 24
	}
	if width == 0 {
		width = c.currentWindow.W - 16
	}

	fullID := c.widgetID(id)
	hovered := Rect{x, y, width, h}.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false

	if hovered {
		c.hotWidget = fullID
		// click on press for responsiveness
		if c.input.MouseLeftPressed {
			c.activeWidget = fullID
			clicked = true
		}
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.canvas.DrawRect(x, y, width, h, color)
	c.canvas.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	textW, textH := c.canvas.MeasureText(label, textScale)
	c.canvas.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, textScale, ColorText)

	c.cursorX += width + 4
	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}
	w, h := c.canvas.MeasureText(text, textScale)
	y := c.cursorY
	if c.rowH > h {
		y += (c.rowH - h) / 2
	}
	c.canvas.DrawText(c.cursorX, y, text, textScale, color)
	c.cursorX += w + 4
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.currentWindow.X + 8
	c.canvas.DrawRect(x, c.cursorY, c.currentWindow.W-16, 1, ColorPanelBorder)
	c.cursorY += 4
	c.cursorX = x
}

// Checkbox draws a checkbox and returns its new state. It toggles when the
// press and release both land on the box.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.currentWindow == nil {
		return checked
	}

	x, y := c.cursorX, c.cursorY
	boxSize := float32(16)
	labelW, textH := c.canvas.MeasureText(label, textScale)
	// label is clickable too
	hit := Rect{x, y, boxSize + 8 + labelW, boxSize}

	fullID := c.widgetID(id)
	hovered := hit.Contains(c.input.MouseX, c.input.MouseY)
	if hovered {
		c.hotWidget = fullID
		if c.input.MouseLeftPressed {
			c.activeWidget = fullID
		}
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bg := ColorInputBg
	if hovered {
		bg = ColorButtonHover
	}
	c.canvas.DrawRect(x, y, boxSize, boxSize, bg)
	c.canvas.DrawRectOutline(x, y, boxSize, boxSize, 1, ColorPanelBorder)
	if checked {
		inner := float32(4)
		c.canvas.DrawRect(x+inner, y+inner, boxSize-inner*2, boxSize-inner*2, ColorHighlight)
	}
	c.canvas.DrawText(x+boxSize+8, y+(boxSize-textH)/2, label, textScale, ColorText)

	c.cursorX += hit.W + 8
	return checked
}

// Slider draws a horizontal integer slider over [lo, hi] and returns the
// value and whether it changed. Dragging continues outside the track until
// the button is released.
func (c *Context) Slider(id string, width float32, value, lo, hi int) (int, bool) {
	if c.currentWindow == nil || hi <= lo {
		return value, false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowH
	if h == 0 {
		h = 20
	}
	if width == 0 {
		width = c.currentWindow.X + c.currentWindow.W - 8 - x
	}

	fullID := c.widgetID(id)
	track := Rect{x, y, width, h}
	hovered := track.Contains(c.input.MouseX, c.input.MouseY)
	if hovered {
		c.hotWidget = fullID
		if c.input.MouseLeftPressed {
			c.activeWidget = fullID
		}
	}

	next := value
	if c.activeWidget == fullID {
		next = sliderValue(c.input.MouseX, x, width, lo, hi)
		if c.input.MouseLeftReleased || !c.input.MouseLeftDown {
			c.activeWidget = ""
		}
	}

	mid := y + h/2
	c.canvas.DrawRect(x, mid-2, width, 4, ColorInputBg)
	frac := float32(next-lo) / float32(hi-lo)
	c.canvas.DrawRect(x, mid-2, width*frac, 4, ColorHighlight)
	knob := ColorButtonNormal.Lighten(0.3)
	if c.activeWidget == fullID {
		knob = ColorHighlight.Lighten(0.3)
	} else if hovered {
		knob = ColorButtonHover.Lighten(0.3)
	}
	knobW := float32(8)
	c.canvas.DrawRect(x+width*frac-knobW/2, y, knobW, h, knob)

	c.cursorX += width + 4
	return next, next != value
}

// sliderValue maps a pointer x onto the nearest integer in [lo, hi].
func sliderValue(mouseX, x, width float32, lo, hi int) int {
	t := (mouseX - x) / width
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lo + int(math.Round(float64(t)*float64(hi-lo)))
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	return c.width, c.height
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
