package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCanvas struct {
	rects int
	texts []string
}

func (r *recordingCanvas) DrawRect(x, y, w, h float32, c Color) { r.rects++ }

func (r *recordingCanvas) DrawRectOutline(x, y, w, h, t float32, c Color) { r.rects += 4 }

func (r *recordingCanvas) DrawText(x, y float32, text string, scale float32, c Color) {
	r.texts = append(r.texts, text)
}

func (r *recordingCanvas) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)) * 7 * scale, 13 * scale
}

// frame runs one UI frame with the pointer at (x, y).
func frame(c *Context, x, y float32, down bool, draw func()) {
	in := c.Input()
	in.MouseX, in.MouseY, in.MouseLeftDown = x, y, down
	c.Begin()
	c.BeginWindow("panel", 0, 0, 200, 100, "")
	c.Row(20)
	draw()
	c.EndWindow()
	c.End()
}

func TestButtonClicksOnPress(t *testing.T) {
	c := NewCanvasContext(&recordingCanvas{}, 800, 600)
	var clicks int
	press := func() {
		if c.Button("play", 80, "Play") {
			clicks++
		}
	}

	frame(c, 20, 20, false, press)
	assert.Equal(t, 0, clicks)
	frame(c, 20, 20, true, press)
	assert.Equal(t, 1, clicks)
	// holding does not repeat
	frame(c, 20, 20, true, press)
	assert.Equal(t, 1, clicks)
	frame(c, 20, 20, false, press)
	frame(c, 150, 20, true, press)
	assert.Equal(t, 1, clicks, "press outside the button")
}

func TestCheckboxTogglesOnRelease(t *testing.T) {
	c := NewCanvasContext(&recordingCanvas{}, 800, 600)
	on := false
	box := func() { on = c.Checkbox("light", "Light", on) }

	frame(c, 12, 14, true, box)
	assert.False(t, on)
	frame(c, 12, 14, false, box)
	assert.True(t, on)

	// released elsewhere: no toggle
	frame(c, 12, 14, true, box)
	frame(c, 190, 90, false, box)
	assert.True(t, on)
}

func TestSliderDrag(t *testing.T) {
	c := NewCanvasContext(&recordingCanvas{}, 800, 600)
	value := 50
	var changes int
	slider := func() {
		v, changed := c.Slider("speed", 100, value, 0, 100)
		if changed {
			changes++
		}
		value = v
	}

	// track spans x in [8, 108)
	frame(c, 8+25, 20, true, slider)
	assert.Equal(t, 25, value)
	assert.True(t, c.Captures(500, 500), "dragging captures the pointer")

	frame(c, 1000, 20, true, slider)
	assert.Equal(t, 100, value, "clamped past the end")

	frame(c, -50, 20, false, slider)
	assert.Equal(t, 0, value)
	assert.Equal(t, 3, changes)

	frame(c, 8+75, 20, false, slider)
	assert.Equal(t, 0, value, "hover alone does not move the slider")
	assert.False(t, c.Captures(500, 500))
}

func TestCapturesWindowArea(t *testing.T) {
	c := NewCanvasContext(&recordingCanvas{}, 800, 600)
	frame(c, 0, 0, false, func() { c.Label("x") })

	assert.True(t, c.Captures(10, 10))
	assert.False(t, c.Captures(300, 300))
}

func TestSliderValue(t *testing.T) {
	assert.Equal(t, 0, sliderValue(0, 10, 100, 0, 100))
	assert.Equal(t, 50, sliderValue(60, 10, 100, 0, 100))
	assert.Equal(t, 100, sliderValue(500, 10, 100, 0, 100))
	assert.Equal(t, 3, sliderValue(60, 10, 100, 1, 5))
}

func TestAtlas(t *testing.T) {
	a := NewAtlas()
	require.Equal(t, 7, a.GlyphW)
	require.Equal(t, 13, a.GlyphH)

	// 'A' has ink, ' ' does not
	ink := func(ch rune) int {
		r := a.Cell(ch)
		var n int
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if a.Image.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	assert.Positive(t, ink('A'))
	assert.Zero(t, ink(' '))
	assert.Equal(t, a.Cell('?'), a.Cell('é'))

	u0, v0, u1, v1 := a.UV(' ')
	assert.Zero(t, u0)
	assert.Zero(t, v0)
	assert.Greater(t, u1, u0)
	assert.Greater(t, v1, v0)

	w, h := a.Measure("ab\nlonger", 2)
	assert.Equal(t, float32(6*7*2), w)
	assert.Equal(t, float32(2*13*2), h)
}
