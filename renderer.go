package mandelbrot

import (
	"github.com/gogpu/mandelbrot/internal/parallel"
)

// Renderer evaluates frames on a worker pool.
//
// Render runs two fork-join phases over disjoint row bands: escape-time
// intensities first, then palette colors. Each band is written by exactly
// one worker, so no locking is needed on the frame.
type Renderer struct {
	width, height int
	palette       *Palette
	pool          *parallel.WorkerPool
	bands         []parallel.Band
}

// NewRenderer creates a renderer for cfg's canvas size. The pool size comes
// from cfg.Workers. Call Close to stop the workers.
func NewRenderer(cfg *Config, palette *Palette) *Renderer {
	return &Renderer{
		width:   cfg.Width,
		height:  cfg.Height,
		palette: palette,
		pool:    parallel.NewWorkerPool(cfg.Workers),
		bands:   parallel.Bands(cfg.Width, cfg.Height, cfg.BandRows),
	}
}

// Render fills f with the view v at the given iteration budget and blocks
// until every pixel is done. f must have the renderer's size.
func (r *Renderer) Render(v Viewport, iterations int, f *Frame) {
	w, h := r.width, r.height

	r.pool.ForEach(r.bands, func(b parallel.Band) {
		out := f.Intensity[b.Start():b.End()]
		i := 0
		for y := b.Y0; y < b.Y1; y++ {
			for x := range w {
				re, im := v.PixelToPlane(x, y, w, h)
				out[i] = Escape(re, im, iterations)
				i++
			}
		}
	})

	data := f.Pixmap.Data()
	r.pool.ForEach(r.bands, func(b parallel.Band) {
		r.palette.Colorize(data[4*b.Start():4*b.End()], f.Intensity[b.Start():b.End()])
	})
	f.Pixmap.NotifyPixelsChanged()

	f.Viewport = v
	f.Iterations = iterations
}

// Workers returns the size of the worker pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close stops the worker pool. Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.pool.Close()
}
