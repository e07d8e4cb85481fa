package mandelbrot

import (
	"image"

	"github.com/gogpu/gg"
)

// Frame is one rendered canvas: the intensity of every pixel and the
// colorized pixmap. A Frame is recomputed in full on every render; the
// Viewer reuses one allocation between ticks.
type Frame struct {
	// Intensity holds one escape-time byte per pixel, row-major.
	Intensity []uint8

	// Pixmap holds the palette colors of Intensity.
	Pixmap *gg.Pixmap

	// Viewport and Iterations are the camera state the frame was rendered with.
	Viewport   Viewport
	Iterations int

	// Seq counts frames rendered by the owning Viewer, starting at 1.
	Seq uint64
}

// NewFrame allocates a width x height frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Intensity: make([]uint8, width*height),
		Pixmap:    gg.NewPixmap(width, height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.Pixmap.Width()
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.Pixmap.Height()
}

// IntensityAt returns the intensity of pixel (x, y).
func (f *Frame) IntensityAt(x, y int) uint8 {
	return f.Intensity[y*f.Width()+x]
}

// RGBA returns the 8-bit color of pixel (x, y).
func (f *Frame) RGBA(x, y int) (r, g, b, a uint8) {
	i := 4 * (y*f.Width() + x)
	d := f.Pixmap.Data()
	return d[i], d[i+1], d[i+2], d[i+3]
}

// Image returns the colorized frame as an image.
func (f *Frame) Image() image.Image {
	return f.Pixmap
}
