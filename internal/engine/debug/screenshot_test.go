package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

// twoRows is a 1x2 image: red on the bottom row, blue on top, as GL returns it.
var twoRows = []byte{
	255, 0, 0, 255,
	0, 0, 255, 255,
}

func TestFlipRows(t *testing.T) {
	img, err := FlipRows(twoRows, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	_, err := FlipRows(twoRows, 2, 2)
	assert.ErrorIs(t, err, ErrPixelSize)

	_, err = FlipRows(nil, 0, 0)
	assert.ErrorIs(t, err, ErrPixelSize)
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "windturbine")
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(twoRows, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "windturbine_2024-03-09_14-05-07.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xFFFF), b)
}

func TestCaptureSameSecondGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = fixedClock

	first, err := sc.CaptureFromPixels(twoRows, 1, 2)
	require.NoError(t, err)
	second, err := sc.CaptureFromPixels(twoRows, 1, 2)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "shot_2024-03-09_14-05-07_2.png"), second)
}
