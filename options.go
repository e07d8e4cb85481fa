package mandelbrot

import "github.com/gogpu/gg"

// Option configures a Config during creation.
//
// Example:
//
//	// Default 1280x960 viewer
//	cfg, err := mandelbrot.NewConfig()
//
//	// Small canvas with a deeper startup budget
//	cfg, err := mandelbrot.NewConfig(
//	    mandelbrot.WithSize(320, 240),
//	    mandelbrot.WithMaxIterations(256),
//	)
type Option func(*Config)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRange sets the startup plane ranges. The center is left unchanged;
// combine with WithCenter to move it.
func WithRange(xmin, xmax, ymin, ymax float64) Option {
	return func(c *Config) {
		c.RangeX = [2]float64{xmin, xmax}
		c.RangeY = [2]float64{ymin, ymax}
	}
}

// WithCenter sets the startup viewport center.
func WithCenter(x, y float64) Option {
	return func(c *Config) {
		c.Center = gg.Pt(x, y)
	}
}

// WithMaxIterations sets the startup iteration budget.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithSpeed sets the pan speed in screen pixels per second.
func WithSpeed(pxPerSec float64) Option {
	return func(c *Config) {
		c.Speed = pxPerSec
	}
}

// WithZoom sets the per-tick zoom-in factor.
func WithZoom(factor float64) Option {
	return func(c *Config) {
		c.Zoom = factor
	}
}

// WithIterationMode selects discrete steps or a continuous rate for
// the iteration keys.
func WithIterationMode(m IterationMode) Option {
	return func(c *Config) {
		c.IterMode = m
	}
}

// WithIterationStep sets the budget change per tick in IterationStep mode.
func WithIterationStep(n int) Option {
	return func(c *Config) {
		c.IterStep = n
	}
}

// WithIterationRate sets the budget change per second in IterationRate mode.
func WithIterationRate(perSec float64) Option {
	return func(c *Config) {
		c.IterRate = perSec
	}
}

// WithHue sets the palette hue in degrees.
func WithHue(deg float64) Option {
	return func(c *Config) {
		c.Hue = deg
	}
}

// WithWorkers sets the render pool size. 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithBandRows sets how many rows each render task covers.
func WithBandRows(rows int) Option {
	return func(c *Config) {
		c.BandRows = rows
	}
}
