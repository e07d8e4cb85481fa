// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides hosts that drive a mandelbrot.Viewer and show
// its frames.
//
// A Host owns the display side of the viewer: it polls input, paces the
// loop and presents every frame. The package ships two hosts:
//
//   - Image: renders a fixed number of frames headlessly and writes the
//     last one as PNG. Inputs come from a script.
//   - Terminal: draws frames into the terminal with tcell, two pixels per
//     cell, and reads keys and the mouse wheel.
//
// A native window host lives in integration/gpuwindow and registers itself
// on import.
//
// # Registry
//
// Hosts register a factory under a name and priority:
//
//	surface.Register("window", 100, newWindow, hasDisplay)
//
// NewHost tries every available backend from the highest priority down
// and returns the first that opens:
//
//	h, err := surface.NewHost(surface.Options{Title: "Mandelbrot"})
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//	return h.Run(ctx, viewer)
//
// NewHostByName selects a backend explicitly. The names "" and "auto"
// behave like NewHost.
package surface
