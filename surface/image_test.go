// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/mandelbrot"
)

func newViewer(t *testing.T, w, h int) *mandelbrot.Viewer {
	t.Helper()
	cfg, err := mandelbrot.NewConfig(mandelbrot.WithSize(w, h), mandelbrot.WithWorkers(2))
	if err != nil {
		t.Fatalf("NewConfig() = %v", err)
	}
	v := mandelbrot.NewViewer(cfg)
	t.Cleanup(v.Close)
	return v
}

func TestImagePoll(t *testing.T) {
	script := []mandelbrot.Input{
		{Actions: mandelbrot.ActionZoomIn},
		{Actions: mandelbrot.ActionIterUp},
	}
	s, err := NewImage(Options{Frames: 3, Dt: 0.5, Script: script, Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("NewImage() = %v", err)
	}

	for i := range 3 {
		in, dt, ok := s.Poll()
		if !ok {
			t.Fatalf("Poll %d: ok = false", i)
		}
		if dt != 0.5 {
			t.Errorf("Poll %d: dt = %v, want 0.5", i, dt)
		}
		var want mandelbrot.Input
		if i < len(script) {
			want = script[i]
		}
		if in != want {
			t.Errorf("Poll %d: input = %+v, want %+v", i, in, want)
		}
	}
	if _, _, ok := s.Poll(); ok {
		t.Error("Poll after last frame: ok = true")
	}
}

func TestImageRunWritesPNG(t *testing.T) {
	const w, h = 64, 128
	v := newViewer(t, w, h)
	var buf bytes.Buffer
	s, err := NewImage(Options{
		Frames: 2,
		Script: []mandelbrot.Input{{Actions: mandelbrot.ActionIterUp}},
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("NewImage() = %v", err)
	}
	defer s.Close()

	if err := s.Run(context.Background(), v); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("image size = %v, want %dx%d", b, w, h)
	}
	if v.Frame().Seq != 2 {
		t.Errorf("rendered %d frames, want 2", v.Frame().Seq)
	}
	if v.Camera().Iterations() != 128 {
		t.Errorf("Iterations() = %d, want 128", v.Camera().Iterations())
	}

	// The bottom row lies well below the overlay line and matches the frame.
	face, err := OverlayFace(OverlaySize)
	if err != nil {
		t.Fatalf("OverlayFace() = %v", err)
	}
	x, y := w-1, h-1
	if textBottom := overlayMargin + 2*face.Metrics().LineHeight(); float64(y) <= textBottom {
		t.Fatalf("sample row %d inside the overlay (ends near %.1f)", y, textBottom)
	}
	r, g, b, _ := img.At(x, y).RGBA()
	fr, fg, fb, _ := v.Frame().RGBA(x, y)
	if uint8(r>>8) != fr || uint8(g>>8) != fg || uint8(b>>8) != fb {
		t.Errorf("corner pixel = (%d, %d, %d), frame has (%d, %d, %d)", r>>8, g>>8, b>>8, fr, fg, fb)
	}
}

func TestImageRunWritesFile(t *testing.T) {
	v := newViewer(t, 32, 24)
	out := filepath.Join(t.TempDir(), "frame.png")

	s, err := NewImage(Options{Out: out})
	if err != nil {
		t.Fatalf("NewImage() = %v", err)
	}
	if err := s.Run(context.Background(), v); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}

func TestNewImageMissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "frame.png")
	if _, err := NewImage(Options{Out: out}); err == nil {
		t.Error("NewImage() with missing directory succeeded")
	}
}

func TestImageRunAfterClose(t *testing.T) {
	s, err := NewImage(Options{Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("NewImage() = %v", err)
	}
	s.Close()

	if err := s.Run(context.Background(), newViewer(t, 8, 8)); !errors.Is(err, ErrHostClosed) {
		t.Errorf("Run() after Close = %v, want ErrHostClosed", err)
	}
}
