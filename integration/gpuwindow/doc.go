// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuwindow shows a mandelbrot.Viewer in a native window.
//
// The window is a gogpu App. Every draw callback advances the viewer by
// the measured frame time with the currently held keys, then draws the
// frame and overlay into a ggcanvas.Canvas and presents it.
//
// Importing the package registers the "window" backend with the surface
// registry at priority 100:
//
//	import _ "github.com/gogpu/mandelbrot/integration/gpuwindow"
//
//	h, err := surface.NewHost(surface.Options{Title: "Mandelbrot"})
//
// Keys: W/A/S/D pan, Shift zooms in, Space zooms out, Up/Down change the
// iteration budget, R resets and Esc closes the window. The scroll wheel
// zooms as well.
package gpuwindow
