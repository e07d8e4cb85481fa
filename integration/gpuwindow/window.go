// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuwindow

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gogpu"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/surface"
)

// Window is a host backed by a native gogpu window.
type Window struct {
	opts surface.Options
	face text.Face

	input  *InputTracker
	timer  *mandelbrot.FrameTimer
	fps    *mandelbrot.FPSCounter
	canvas *ggcanvas.Canvas

	err    error
	closed bool
}

// New prepares a window host. The window opens in Run, sized to the
// viewer configuration.
func New(opts surface.Options) (*Window, error) {
	face, err := surface.OverlayFace(surface.OverlaySize)
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = surface.DefaultTitle
	}
	return &Window{opts: opts, face: face}, nil
}

// Run opens the window and drives v from its draw callback until the
// window is closed, Esc is pressed, ctx is cancelled or presenting fails.
func (w *Window) Run(ctx context.Context, v *mandelbrot.Viewer) error {
	if w.closed {
		return surface.ErrHostClosed
	}
	cfg := v.Config()
	log := mandelbrot.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.opts.Title).
		WithSize(cfg.Width, cfg.Height))

	w.input = NewInputTracker(app.EventSource())
	w.timer = mandelbrot.NewFrameTimer()
	w.fps = mandelbrot.NewFPSCounter()
	w.err = nil

	app.OnDraw(func(dc *gogpu.Context) {
		w.draw(ctx, app, dc, v)
	})
	app.OnClose(func() {
		w.closeCanvas()
	})

	log.Info("window opened", "title", w.opts.Title, "width", cfg.Width, "height", cfg.Height)
	if err := app.Run(); err != nil {
		return fmt.Errorf("gpuwindow: run: %w", err)
	}
	log.Info("window closed", "frames", v.Frame().Seq)
	return w.err
}

// draw runs one viewer tick inside the window's draw callback.
func (w *Window) draw(ctx context.Context, app *gogpu.App, dc *gogpu.Context, v *mandelbrot.Viewer) {
	if w.err != nil {
		return
	}
	if err := ctx.Err(); err != nil {
		w.err = err
		app.Quit()
		return
	}
	if w.input.QuitRequested() {
		app.Quit()
		return
	}

	// Measured even while minimized so the next visible frame does not
	// jump by the hidden time.
	dt := w.timer.Delta()
	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return
	}

	f := v.Step(dt, w.input.Snapshot())
	if err := w.present(app, dc, width, height, f, v.Overlay()); err != nil {
		w.err = fmt.Errorf("mandelbrot: present frame %d: %w", f.Seq, err)
		app.Quit()
	}
}

func (w *Window) present(app *gogpu.App, dc *gogpu.Context, width, height int, f *mandelbrot.Frame, o mandelbrot.Overlay) error {
	if w.canvas == nil {
		provider := app.GPUContextProvider()
		if provider == nil {
			return nil
		}
		canvas, err := ggcanvas.New(provider, width, height)
		if err != nil {
			return fmt.Errorf("gpuwindow: create canvas: %w", err)
		}
		w.canvas = canvas
		mandelbrot.Logger().Debug("canvas created", "width", width, "height", height)
	}

	if cw, ch := w.canvas.Size(); cw != width || ch != height {
		if err := w.canvas.Resize(width, height); err != nil {
			return fmt.Errorf("gpuwindow: resize canvas: %w", err)
		}
	}

	w.fps.Tick()
	fps := w.fps.String()
	if err := w.canvas.Draw(func(cc *gg.Context) {
		drawFrame(cc, w.face, f, o, fps)
	}); err != nil {
		return fmt.Errorf("gpuwindow: draw: %w", err)
	}
	return w.canvas.Render(dc.RenderTarget())
}

// drawFrame fills cc with f, scaled with nearest-neighbor sampling when
// the sizes differ, and draws the overlay on top.
func drawFrame(cc *gg.Context, face text.Face, f *mandelbrot.Frame, o mandelbrot.Overlay, fps string) {
	cc.DrawImageEx(gg.ImageBufFromImage(f.Image()), gg.DrawImageOptions{
		DstWidth:      float64(cc.Width()),
		DstHeight:     float64(cc.Height()),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	surface.DrawOverlay(cc, face, o.Iterations, fps)
}

func (w *Window) closeCanvas() {
	if w.canvas != nil {
		_ = w.canvas.Close()
		w.canvas = nil
	}
}

// Close releases the canvas. Close is safe to call multiple times.
func (w *Window) Close() error {
	w.closed = true
	w.closeCanvas()
	return nil
}

// hasDisplay reports whether a window can be opened. On Linux this needs
// an X11 or Wayland display; other platforms always have one.
func hasDisplay() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func init() {
	surface.Register("window", 100, func(opts surface.Options) (surface.Host, error) {
		return New(opts)
	}, hasDisplay)
}
