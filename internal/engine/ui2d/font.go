package ui2d

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range baked into the atlas.
const (
	firstGlyph  = ' '
	lastGlyph   = '~'
	atlasColumn = 16
)

// Atlas is a grid of fixed-size glyph cells rasterised from basicfont.
type Atlas struct {
	Image  *image.Alpha
	GlyphW int
	GlyphH int
}

// NewAtlas rasterises printable ASCII from the 7x13 basicfont face.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumn - 1) / atlasColumn

	img := image.NewAlpha(image.Rect(0, 0, atlasColumn*gw, rows*gh))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < count; i++ {
		col, row := i%atlasColumn, i/atlasColumn
		d.Dot = fixed.P(col*gw, row*gh+face.Ascent)
		d.DrawString(string(rune(firstGlyph + i)))
	}
	return &Atlas{Image: img, GlyphW: gw, GlyphH: gh}
}

// Cell returns the pixel rectangle of ch, falling back to '?'.
func (a *Atlas) Cell(ch rune) image.Rectangle {
	if ch < firstGlyph || ch > lastGlyph {
		ch = '?'
	}
	i := int(ch - firstGlyph)
	x, y := (i%atlasColumn)*a.GlyphW, (i/atlasColumn)*a.GlyphH
	return image.Rect(x, y, x+a.GlyphW, y+a.GlyphH)
}

// UV returns normalised texture coordinates of ch.
func (a *Atlas) UV(ch rune) (u0, v0, u1, v1 float32) {
	r := a.Cell(ch)
	w, h := float32(a.Image.Rect.Dx()), float32(a.Image.Rect.Dy())
	return float32(r.Min.X) / w, float32(r.Min.Y) / h, float32(r.Max.X) / w, float32(r.Max.Y) / h
}

// Measure returns the size of text drawn at scale. Newlines start a new row.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	lines, cur, widest := 1, 0, 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		if cur > widest {
			widest = cur
		}
	}
	return float32(widest*a.GlyphW) * scale, float32(lines*a.GlyphH) * scale
}

// Font is an Atlas uploaded as an alpha texture.
type Font struct {
	*Atlas
	texture uint32
}

// NewFont builds the atlas and uploads it.
func NewFont() *Font {
	f := &Font{Atlas: NewAtlas()}

	// white glyphs, coverage in alpha
	b := f.Image.Bounds()
	pix := make([]byte, 0, len(f.Image.Pix)*4)
	for _, a := range f.Image.Pix {
		pix = append(pix, 255, 255, 255, a)
	}

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return f
}

// TextureID returns the GL texture.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
