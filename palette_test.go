package mandelbrot

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestPaletteSize(t *testing.T) {
	p := NewPalette(DefaultHue)
	if p.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", p.Len())
	}
	// Every byte indexes a valid, opaque entry.
	for i := range 256 {
		if _, _, _, a := p.RGBA255(uint8(i)); a != 0xff {
			t.Errorf("entry %d alpha = %d, want 255", i, a)
		}
	}
}

func TestPaletteRamp(t *testing.T) {
	p := NewPalette(DefaultHue)

	if r, g, b, _ := p.RGBA255(0); r != 0 || g != 0 || b != 0 {
		t.Errorf("entry 0 = (%d, %d, %d), want black", r, g, b)
	}

	// Full value at hue 252: blue-violet, blue channel saturated.
	r, g, b, _ := p.RGBA255(255)
	want := colorful.Hsv(252, 1, 1)
	wr, wg, wb := want.RGB255()
	if r != wr || g != wg || b != wb {
		t.Errorf("entry 255 = (%d, %d, %d), want (%d, %d, %d)", r, g, b, wr, wg, wb)
	}
	if b != 255 || g != 0 {
		t.Errorf("entry 255 = (%d, %d, %d), want full blue and no green", r, g, b)
	}

	// Brightness never decreases along the ramp.
	prev := -1
	for i := range 256 {
		_, _, b, _ := p.RGBA255(uint8(i))
		if int(b) < prev {
			t.Fatalf("blue channel drops at entry %d: %d < %d", i, b, prev)
		}
		prev = int(b)
	}
}

func TestPaletteAt(t *testing.T) {
	p := NewPalette(0)
	c := p.At(255)
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("At(255) for hue 0 = %+v, want opaque red", c)
	}
}

func TestPaletteColorize(t *testing.T) {
	p := NewPalette(DefaultHue)
	src := []uint8{0, 128, 255}
	dst := make([]uint8, 12)

	p.Colorize(dst, src)

	for i, v := range src {
		r, g, b, a := p.RGBA255(v)
		got := dst[4*i : 4*i+4]
		if got[0] != r || got[1] != g || got[2] != b || got[3] != a {
			t.Errorf("pixel %d = %v, want (%d, %d, %d, %d)", i, got, r, g, b, a)
		}
	}
}
