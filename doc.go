// Package mandelbrot implements an interactive Mandelbrot-set viewer.
//
// # Overview
//
// Every tick the viewer updates a camera from an input snapshot, evaluates
// the escape time of every pixel on a worker pool, maps the intensities
// through a 256-entry palette into a gg.Pixmap, and hands the frame to a
// Surface together with an overlay of the current iteration budget.
//
// # Quick Start
//
//	cfg, err := mandelbrot.NewConfig(mandelbrot.WithSize(640, 480))
//	if err != nil {
//	    return err
//	}
//	v := mandelbrot.NewViewer(cfg)
//	defer v.Close()
//
//	// One tick: zoom in, render.
//	frame := v.Step(1.0/60, mandelbrot.Input{Actions: mandelbrot.ActionZoomIn})
//	frame.Pixmap.SavePNG("zoom.png")
//
// Surfaces (window, terminal, headless image) live in the surface and
// integration/gpuwindow packages and drive Viewer.Run.
//
// # Architecture
//
//   - Escape, EscapeTime: pure escape-time evaluation
//   - Viewport: affine pixel <-> plane mapping, pan and zoom
//   - Camera: per-tick pan, iteration budget and zoom from Input
//   - Renderer: two-phase fork-join over row bands (intensity, color)
//   - Viewer: the sequential Poll -> Step -> Present loop
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner, X grows right and Y grows down.
// Plane coordinates grow in the same directions, so panning down increases
// the imaginary part. The screen center pixel (width/2, height/2) maps
// exactly to the viewport center.
//
// # Precision
//
// All plane arithmetic is float64. Zoom is not clamped: deep zoom runs into
// float64 resolution long before the extent reaches zero.
package mandelbrot

// Version is the current version of the viewer.
const Version = "0.1.0"
