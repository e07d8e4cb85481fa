// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"io"

	"github.com/gogpu/mandelbrot"
)

// Host owns a platform surface and drives a Viewer on it.
//
// Run blocks until the surface is closed by the user, ctx is cancelled, or
// presenting fails. Close releases platform resources and is safe to call
// more than once.
type Host interface {
	Run(ctx context.Context, v *mandelbrot.Viewer) error
	Close() error
}

// Options configures host creation. Zero values select defaults.
type Options struct {
	// Title is the window title.
	Title string

	// Frames is the number of frames the image host renders (default 1).
	Frames int

	// Dt is the fixed tick length in seconds of the image host (default 1/60).
	Dt float64

	// Script is the input of the image host, one entry per frame. Frames
	// past the end of the script get an empty input.
	Script []mandelbrot.Input

	// Out is the PNG path written by the image host (default "mandelbrot.png").
	Out string

	// Writer, if set, receives the PNG instead of Out.
	Writer io.Writer

	// MaxFPS caps the terminal host frame rate (default 30, <0 uncapped).
	MaxFPS int
}

// Default option values.
const (
	DefaultTitle  = "mandelbrot"
	DefaultOut    = "mandelbrot.png"
	DefaultMaxFPS = 30
	DefaultDt     = 1.0 / 60
)

// withDefaults returns o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Frames <= 0 {
		o.Frames = 1
	}
	if o.Dt <= 0 {
		o.Dt = DefaultDt
	}
	if o.Out == "" {
		o.Out = DefaultOut
	}
	if o.MaxFPS == 0 {
		o.MaxFPS = DefaultMaxFPS
	}
	return o
}
