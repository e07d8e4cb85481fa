package mandelbrot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrViewerClosed is returned by Run after Close.
var ErrViewerClosed = errors.New("mandelbrot: viewer closed")

// Overlay is the text shown on top of a frame.
type Overlay struct {
	// Iterations is the current budget, e.g. "Iterations: 64".
	Iterations string
}

// Surface is the platform side of the viewer: it supplies input and
// elapsed time for each tick and shows the finished frame.
//
// Poll blocks until the next tick is due (vsync, ticker, or not at all for
// headless surfaces) and returns ok=false once the surface wants to close.
// Present is called with a fully rendered frame; the frame is reused for
// the next tick, so Present must not retain it.
type Surface interface {
	Poll() (in Input, dt float64, ok bool)
	Present(f *Frame, o Overlay) error
}

// Viewer drives the camera, the renderer and a surface.
// Frames are strictly sequential: a tick starts only after the previous
// Present has returned. Viewer is not safe for concurrent use.
type Viewer struct {
	cfg      *Config
	camera   *Camera
	palette  *Palette
	renderer *Renderer
	frame    *Frame
	seq      uint64
	closed   bool
}

// NewViewer creates a viewer for cfg. A nil cfg uses DefaultConfig.
// Call Close to release the render workers.
func NewViewer(cfg *Config) *Viewer {
	if cfg == nil {
		d := DefaultConfig()
		cfg = &d
	}
	palette := NewPalette(cfg.Hue)
	return &Viewer{
		cfg:      cfg,
		camera:   NewCamera(cfg),
		palette:  palette,
		renderer: NewRenderer(cfg, palette),
		frame:    NewFrame(cfg.Width, cfg.Height),
	}
}

// Config returns the viewer configuration.
func (v *Viewer) Config() *Config {
	return v.cfg
}

// Camera returns the viewer camera.
func (v *Viewer) Camera() *Camera {
	return v.camera
}

// Palette returns the viewer palette.
func (v *Viewer) Palette() *Palette {
	return v.palette
}

// Frame returns the most recently rendered frame.
func (v *Viewer) Frame() *Frame {
	return v.frame
}

// Step advances the camera by dt with the input snapshot and renders a
// new frame. The returned frame is overwritten by the next Step.
// After Close, Step renders nothing and returns the last frame unchanged.
func (v *Viewer) Step(dt float64, in Input) *Frame {
	if v.closed {
		Logger().Warn("step on closed viewer", slog.Uint64("seq", v.seq))
		return v.frame
	}
	v.camera.Update(dt, in)

	start := time.Now()
	view, iter := v.camera.Viewport(), v.camera.Iterations()
	v.renderer.Render(view, iter, v.frame)
	v.seq++
	v.frame.Seq = v.seq

	Logger().Debug("frame rendered",
		slog.Uint64("seq", v.seq),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("iterations", iter),
		slog.Float64("center_x", view.Center.X),
		slog.Float64("center_y", view.Center.Y),
		slog.Float64("extent_x", view.Extent.X),
		slog.String("actions", in.Actions.String()))
	return v.frame
}

// Overlay returns the overlay text for the current camera state.
func (v *Viewer) Overlay() Overlay {
	return Overlay{Iterations: fmt.Sprintf("Iterations: %d", v.camera.Iterations())}
}

// Run loops Poll, Step and Present until the surface reports close, ctx is
// cancelled, or Present fails. Cancellation is checked between frames.
// Run returns nil when the surface closes, ctx.Err() on cancellation, and
// the wrapped Present error otherwise.
func (v *Viewer) Run(ctx context.Context, s Surface) error {
	if v.closed {
		return ErrViewerClosed
	}
	log := Logger()
	log.Info("viewer started",
		slog.Int("width", v.cfg.Width),
		slog.Int("height", v.cfg.Height),
		slog.Int("workers", v.renderer.Workers()),
		slog.String("iter_mode", v.cfg.IterMode.String()))

	for {
		if err := ctx.Err(); err != nil {
			log.Info("viewer stopped", slog.String("reason", err.Error()), slog.Uint64("frames", v.seq))
			return err
		}
		in, dt, ok := s.Poll()
		if !ok {
			log.Info("viewer stopped", slog.String("reason", "surface closed"), slog.Uint64("frames", v.seq))
			return nil
		}
		f := v.Step(dt, in)
		if err := s.Present(f, v.Overlay()); err != nil {
			return fmt.Errorf("mandelbrot: present frame %d: %w", f.Seq, err)
		}
	}
}

// Close stops the render workers. Close is safe to call multiple times.
func (v *Viewer) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.renderer.Close()
}
