// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuwindow

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/surface"
)

func TestDrawFrameScales(t *testing.T) {
	face, err := surface.OverlayFace(surface.OverlaySize)
	if err != nil {
		t.Fatalf("OverlayFace() = %v", err)
	}

	f := mandelbrot.NewFrame(4, 4)
	f.Pixmap.Clear(gg.RGB(1, 0, 0))

	cc := gg.NewContext(64, 64)
	defer cc.Close()
	drawFrame(cc, face, f, mandelbrot.Overlay{}, "")

	// Bottom-right corner is outside the overlay.
	r, g, b, _ := cc.ResizeTarget().At(60, 60).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("pixel (60, 60) = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}

func TestHasDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if hasDisplay() && runtime.GOOS == "linux" {
		t.Error("hasDisplay() = true without a display")
	}

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if !hasDisplay() {
		t.Error("hasDisplay() = false with WAYLAND_DISPLAY set")
	}
}

func TestWindowRegistered(t *testing.T) {
	entry, ok := surface.Get("window")
	if !ok {
		t.Fatal("window backend not registered")
	}
	if entry.Priority != 100 {
		t.Errorf("Priority = %d, want 100", entry.Priority)
	}
	if list := surface.List(); len(list) == 0 || list[0] != "window" {
		t.Errorf("List() = %v, want window first", list)
	}
}

func TestWindowRunAfterClose(t *testing.T) {
	w, err := New(surface.Options{})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if w.opts.Title != surface.DefaultTitle {
		t.Errorf("Title = %q, want %q", w.opts.Title, surface.DefaultTitle)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	v := mandelbrot.NewViewer(nil)
	defer v.Close()
	if err := w.Run(context.Background(), v); !errors.Is(err, surface.ErrHostClosed) {
		t.Errorf("Run() after Close = %v, want ErrHostClosed", err)
	}
}
