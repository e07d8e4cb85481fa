// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/mandelbrot"
)

// ErrHostClosed is returned when running a closed host.
var ErrHostClosed = errors.New("surface: host closed")

// Image is a headless host. It renders a fixed number of frames from a
// scripted input sequence at a fixed tick length and writes the last frame,
// with its overlay, as PNG.
//
// Image implements both Host and mandelbrot.Surface.
type Image struct {
	opts   Options
	next   int
	closed bool
}

// NewImage creates a headless image host.
func NewImage(opts Options) (*Image, error) {
	opts = opts.withDefaults()
	if opts.Writer == nil {
		if err := checkWritable(opts.Out); err != nil {
			return nil, err
		}
	}
	return &Image{opts: opts}, nil
}

// Run renders opts.Frames frames with v and writes the last one.
func (s *Image) Run(ctx context.Context, v *mandelbrot.Viewer) error {
	if s.closed {
		return ErrHostClosed
	}
	s.next = 0
	return v.Run(ctx, s)
}

// Poll returns the scripted input for the next frame until Frames frames
// have been produced.
func (s *Image) Poll() (mandelbrot.Input, float64, bool) {
	if s.next >= s.opts.Frames {
		return mandelbrot.Input{}, 0, false
	}
	var in mandelbrot.Input
	if s.next < len(s.opts.Script) {
		in = s.opts.Script[s.next]
	}
	s.next++
	return in, s.opts.Dt, true
}

// Present encodes the final frame. Earlier frames are discarded.
func (s *Image) Present(f *mandelbrot.Frame, o mandelbrot.Overlay) error {
	if s.next < s.opts.Frames {
		return nil
	}

	pm := gg.NewPixmap(f.Width(), f.Height())
	copy(pm.Data(), f.Pixmap.Data())

	face, err := OverlayFace(OverlaySize)
	if err != nil {
		return err
	}
	dc := gg.NewContextForPixmap(pm)
	DrawOverlay(dc, face, o.Iterations, "")
	if err := dc.Close(); err != nil {
		return fmt.Errorf("surface: flush overlay: %w", err)
	}

	if s.opts.Writer != nil {
		return encodePNG(s.opts.Writer, pm)
	}
	return s.writeFile(pm)
}

func (s *Image) writeFile(pm *gg.Pixmap) (err error) {
	out, err := os.Create(s.opts.Out)
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", s.opts.Out, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("surface: close %s: %w", s.opts.Out, cerr)
		}
	}()
	if err := encodePNG(out, pm); err != nil {
		return err
	}
	mandelbrot.Logger().Info("frame written", "path", s.opts.Out, "frames", s.opts.Frames)
	return nil
}

// Close marks the host closed.
func (s *Image) Close() error {
	s.closed = true
	return nil
}

func encodePNG(w io.Writer, pm *gg.Pixmap) error {
	if err := pm.EncodePNG(w); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}

// checkWritable fails early when the output directory does not exist.
func checkWritable(path string) error {
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("surface: output directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("surface: output directory %s is not a directory", dir)
	}
	return nil
}
