package mandelbrot

import (
	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of palette entries, one per intensity byte.
const PaletteSize = 256

// Palette maps an intensity byte to an opaque display color.
// It is immutable after NewPalette and safe for concurrent use.
type Palette struct {
	rgba [PaletteSize][4]uint8
}

// NewPalette builds a single-hue palette: hue in degrees, full saturation,
// value ramped linearly so entry i has value i/255.
func NewPalette(hue float64) *Palette {
	p := &Palette{}
	for i := range PaletteSize {
		c := colorful.Hsv(hue, 1, float64(i)/(PaletteSize-1)).Clamped()
		r, g, b := c.RGB255()
		p.rgba[i] = [4]uint8{r, g, b, 0xff}
	}
	return p
}

// Len returns the number of entries. It is always PaletteSize.
func (p *Palette) Len() int {
	return len(p.rgba)
}

// At returns the color for intensity i.
func (p *Palette) At(i uint8) gg.RGBA {
	c := p.rgba[i]
	return gg.RGBA{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
		A: 1,
	}
}

// RGBA255 returns the 8-bit components for intensity i.
func (p *Palette) RGBA255(i uint8) (r, g, b, a uint8) {
	c := p.rgba[i]
	return c[0], c[1], c[2], c[3]
}

// Colorize writes the color of each intensity in src into dst as 4 RGBA
// bytes. dst must hold at least 4*len(src) bytes.
func (p *Palette) Colorize(dst, src []uint8) {
	_ = dst[:4*len(src)]
	for i, v := range src {
		copy(dst[4*i:4*i+4], p.rgba[v][:])
	}
}
