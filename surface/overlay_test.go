// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"testing"

	"github.com/gogpu/gg"
)

func TestOverlayFace(t *testing.T) {
	a, err := OverlayFace(OverlaySize)
	if err != nil {
		t.Fatalf("OverlayFace() = %v", err)
	}
	if a == nil {
		t.Fatal("OverlayFace() returned nil face")
	}
	if _, err := OverlayFace(12); err != nil {
		t.Errorf("second OverlayFace() = %v", err)
	}
}

func TestDrawOverlay(t *testing.T) {
	const w, h = 400, 60
	pm := gg.NewPixmap(w, h)
	pm.Clear(gg.RGB(0, 0, 0))

	face, err := OverlayFace(OverlaySize)
	if err != nil {
		t.Fatalf("OverlayFace() = %v", err)
	}
	dc := gg.NewContextForPixmap(pm)
	DrawOverlay(dc, face, "Iterations: 64", "FPS: 60")
	if err := dc.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	left, right := 0, 0
	data := pm.Data()
	for y := range h {
		for x := range w {
			if data[4*(y*w+x)] > 128 {
				if x < w/2 {
					left++
				} else {
					right++
				}
			}
		}
	}
	if left == 0 {
		t.Error("no iteration text drawn in the left half")
	}
	if right == 0 {
		t.Error("no fps text drawn in the right half")
	}
}

func TestDrawOverlayStartsAtMargin(t *testing.T) {
	const w, h = 300, 80
	face, err := OverlayFace(OverlaySize)
	if err != nil {
		t.Fatalf("OverlayFace() = %v", err)
	}

	pm := gg.NewPixmap(w, h)
	pm.Clear(gg.RGB(0, 0, 0))
	dc := gg.NewContextForPixmap(pm)
	DrawOverlay(dc, face, "Iterations: 64", "")
	if err := dc.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	// Same text with its baseline one ascent below the margin.
	ref := gg.NewPixmap(w, h)
	ref.Clear(gg.RGB(0, 0, 0))
	rc := gg.NewContextForPixmap(ref)
	rc.SetFont(face)
	rc.SetRGB(1, 1, 1)
	rc.DrawString("Iterations: 64", overlayMargin, overlayMargin+face.Metrics().Ascent)
	if err := rc.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	if !bytes.Equal(pm.Data(), ref.Data()) {
		t.Error("overlay baseline is not one ascent below the margin")
	}

	top := -1
	data := pm.Data()
	for y := 0; y < h && top < 0; y++ {
		for x := range w {
			if data[4*(y*w+x)] > 64 {
				top = y
				break
			}
		}
	}
	if top < 0 {
		t.Fatal("no overlay text drawn")
	}
	if top < overlayMargin-1 {
		t.Errorf("text starts at row %d, above the %d px margin", top, overlayMargin)
	}
}
