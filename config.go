package mandelbrot

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Default viewer parameters.
const (
	DefaultWidth         = 1280
	DefaultHeight        = 960
	DefaultMaxIterations = 64
	DefaultSpeed         = 200.0 // pixels per second
	DefaultZoom          = 0.9
	DefaultIterStep      = 64
	DefaultIterRate      = 64.0 // iterations per second
	DefaultHue           = 252.0
)

// Default visible range of the complex plane.
var (
	DefaultRangeX = [2]float64{-2, 0.47}
	DefaultRangeY = [2]float64{-1.12, 1.12}
)

// Configuration errors.
var (
	// ErrInvalidSize is returned when the screen width or height is not positive.
	ErrInvalidSize = errors.New("mandelbrot: invalid screen size")

	// ErrInvalidRange is returned when a plane range is empty or inverted.
	ErrInvalidRange = errors.New("mandelbrot: invalid plane range")

	// ErrInvalidZoom is returned when the zoom factor is outside (0, 1).
	ErrInvalidZoom = errors.New("mandelbrot: zoom factor must be in (0, 1)")

	// ErrInvalidIterations is returned for a budget, step or rate below its floor.
	ErrInvalidIterations = errors.New("mandelbrot: invalid iteration settings")

	// ErrInvalidSpeed is returned when the pan speed is negative or not finite.
	ErrInvalidSpeed = errors.New("mandelbrot: invalid pan speed")
)

// IterationMode selects how held iteration keys change the budget.
type IterationMode int

const (
	// IterationStep adds or removes IterStep iterations on every tick the
	// key is active.
	IterationStep IterationMode = iota

	// IterationRate changes the budget by IterRate iterations per second.
	IterationRate
)

// String returns the flag name of the mode.
func (m IterationMode) String() string {
	switch m {
	case IterationStep:
		return "step"
	case IterationRate:
		return "rate"
	default:
		return fmt.Sprintf("IterationMode(%d)", int(m))
	}
}

// ParseIterationMode parses "step" or "rate".
func ParseIterationMode(s string) (IterationMode, error) {
	switch s {
	case "step":
		return IterationStep, nil
	case "rate":
		return IterationRate, nil
	default:
		return 0, fmt.Errorf("%w: unknown iteration mode %q", ErrInvalidIterations, s)
	}
}

// Config holds the viewer parameters. It is built once by NewConfig and
// must not be modified afterwards; Camera and Renderer keep a pointer to it.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// RangeX and RangeY are the startup plane ranges [min, max].
	RangeX, RangeY [2]float64

	// Center is the startup viewport center.
	Center gg.Point

	// MaxIterations is the startup iteration budget.
	MaxIterations int

	// Speed is the pan speed in screen pixels per second.
	Speed float64

	// Zoom is the per-tick zoom-in factor, 0 < Zoom < 1.
	Zoom float64

	IterMode IterationMode
	IterStep int
	IterRate float64

	// Hue is the palette hue in degrees.
	Hue float64

	// Workers is the render pool size. 0 means GOMAXPROCS.
	Workers int

	// BandRows is the number of rows per render band. 0 means the default.
	BandRows int
}

// DefaultConfig returns the built-in configuration.
//
// The default center uses the midpoint of RangeX for both axes,
// giving (-0.765, -0.765).
func DefaultConfig() Config {
	mid := (DefaultRangeX[0] + DefaultRangeX[1]) / 2
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		RangeX:        DefaultRangeX,
		RangeY:        DefaultRangeY,
		Center:        gg.Pt(mid, mid),
		MaxIterations: DefaultMaxIterations,
		Speed:         DefaultSpeed,
		Zoom:          DefaultZoom,
		IterMode:      IterationStep,
		IterStep:      DefaultIterStep,
		IterRate:      DefaultIterRate,
		Hue:           DefaultHue,
	}
}

// NewConfig applies opts to the default configuration and validates it.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Extent returns the startup plane extent (width, height).
func (c *Config) Extent() gg.Point {
	return gg.Pt(c.RangeX[1]-c.RangeX[0], c.RangeY[1]-c.RangeY[0])
}

// Viewport returns the startup viewport.
func (c *Config) Viewport() Viewport {
	return Viewport{Extent: c.Extent(), Center: c.Center}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	ext := c.Extent()
	if !(ext.X > 0) || !(ext.Y > 0) || math.IsInf(ext.X, 0) || math.IsInf(ext.Y, 0) {
		return fmt.Errorf("%w: x=%v y=%v", ErrInvalidRange, c.RangeX, c.RangeY)
	}
	if !(c.Zoom > 0 && c.Zoom < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidZoom, c.Zoom)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidIterations, c.MaxIterations)
	}
	if c.IterStep < 0 || c.IterRate < 0 || math.IsNaN(c.IterRate) {
		return fmt.Errorf("%w: step %d, rate %v", ErrInvalidIterations, c.IterStep, c.IterRate)
	}
	if c.IterMode != IterationStep && c.IterMode != IterationRate {
		return fmt.Errorf("%w: %v", ErrInvalidIterations, c.IterMode)
	}
	if c.Speed < 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed)
	}
	return nil
}
