package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Panel theme.
var (
	ColorPanelBg      = Color{0.08, 0.08, 0.1, 0.85}
	ColorPanelBorder  = Color{0.35, 0.35, 0.4, 1}
	ColorButtonNormal = Color{0.15, 0.15, 0.2, 1}
	ColorButtonHover  = Color{0.25, 0.25, 0.35, 1}
	ColorButtonActive = Color{0.1, 0.3, 0.5, 1}
	ColorInputBg      = Color{0.05, 0.05, 0.08, 1}
	ColorText         = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim      = Color{0.55, 0.55, 0.6, 1}
	ColorHighlight    = Color{0.2, 0.6, 0.9, 1}
)

// Hex creates an opaque color from 0xRRGGBB.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xFF) / 255.0,
		G: float32((rgb>>8)&0xFF) / 255.0,
		B: float32(rgb&0xFF) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
