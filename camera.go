package mandelbrot

import (
	"math"

	"github.com/gogpu/gg"
)

// Camera owns the viewport and the iteration budget and advances them
// once per tick from an input snapshot. Camera is not safe for concurrent
// use; the renderer reads a copy of its state.
type Camera struct {
	cfg        *Config
	view       Viewport
	iterations int

	// carry holds the fractional budget change in IterationRate mode.
	carry float64
}

// NewCamera returns a camera at the configured startup viewport and budget.
func NewCamera(cfg *Config) *Camera {
	c := &Camera{cfg: cfg}
	c.Reset()
	return c
}

// Viewport returns the current viewport.
func (c *Camera) Viewport() Viewport {
	return c.view
}

// Iterations returns the current iteration budget. It is always >= 1.
func (c *Camera) Iterations() int {
	return c.iterations
}

// Reset restores the startup viewport and budget.
func (c *Camera) Reset() {
	c.view = c.cfg.Viewport()
	c.iterations = max(c.cfg.MaxIterations, 1)
	c.carry = 0
}

// Update advances the camera by dt seconds: pan, then iteration budget,
// then zoom. A Reset action restores the startup state first.
//
// Update never fails. Extent is not clamped, so repeated zoom can take it
// to zero or +Inf in float64.
func (c *Camera) Update(dt float64, in Input) {
	if in.Has(ActionReset) {
		c.Reset()
	}
	c.pan(dt, in)
	c.adjustIterations(dt, in)
	c.zoom(in)
}

func (c *Camera) pan(dt float64, in Input) {
	h := in.axis(ActionPanRight, ActionPanLeft)
	v := in.axis(ActionPanDown, ActionPanUp)
	if h == 0 && v == 0 {
		return
	}
	c.view.Pan(gg.Pt(
		h*c.cfg.Speed*dt/float64(c.cfg.Width),
		v*c.cfg.Speed*dt/float64(c.cfg.Height),
	))
}

func (c *Camera) adjustIterations(dt float64, in Input) {
	dir := in.axis(ActionIterUp, ActionIterDown)
	if dir == 0 {
		c.carry = 0
		return
	}

	switch c.cfg.IterMode {
	case IterationRate:
		c.carry += dir * c.cfg.IterRate * dt
		whole := math.Trunc(c.carry)
		c.carry -= whole
		c.iterations = addIterations(c.iterations, whole)
	default:
		c.iterations = addIterations(c.iterations, dir*float64(c.cfg.IterStep))
	}
}

func (c *Camera) zoom(in Input) {
	switch {
	case in.Has(ActionZoomIn):
		c.view.ZoomIn(c.cfg.Zoom)
	case in.Has(ActionZoomOut):
		c.view.ZoomOut(c.cfg.Zoom)
	case in.Scroll > 0:
		c.view.ZoomIn(c.cfg.Zoom)
	case in.Scroll < 0:
		c.view.ZoomOut(c.cfg.Zoom)
	}
}

// addIterations returns n + d clamped to [1, math.MaxInt].
func addIterations(n int, d float64) int {
	switch {
	case math.IsNaN(d):
		return max(n, 1)
	case d >= math.MaxInt:
		return math.MaxInt
	case d <= math.MinInt:
		return 1
	}
	step := int(d)
	if step > 0 && n > math.MaxInt-step {
		return math.MaxInt
	}
	return max(n+step, 1)
}
