// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlaySize is the overlay font size in pixels.
const OverlaySize = 24

// overlayMargin is the distance of the text from the canvas edges.
const overlayMargin = 10

var (
	overlayOnce   sync.Once
	overlaySource *text.FontSource
	overlayErr    error
)

// overlayFont returns the embedded Go Regular font, parsed once.
func overlayFont() (*text.FontSource, error) {
	overlayOnce.Do(func() {
		overlaySource, overlayErr = text.NewFontSource(goregular.TTF)
		if overlayErr != nil {
			overlayErr = fmt.Errorf("surface: load overlay font: %w", overlayErr)
		}
	})
	return overlaySource, overlayErr
}

// OverlayFace returns a face of the embedded overlay font at size pixels.
func OverlayFace(size float64) (text.Face, error) {
	src, err := overlayFont()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// DrawOverlay draws the iteration text in the top-left corner and the fps
// text in the top-right corner of dc, in white. Empty strings are skipped.
func DrawOverlay(dc *gg.Context, face text.Face, iterations, fps string) {
	dc.SetFont(face)
	dc.SetRGB(1, 1, 1)

	// Baseline one ascent below the margin puts the glyph tops at the margin.
	y := overlayMargin + face.Metrics().Ascent
	if iterations != "" {
		dc.DrawString(iterations, overlayMargin, y)
	}
	if fps != "" {
		w, _ := dc.MeasureString(fps)
		dc.DrawString(fps, float64(dc.Width())-w-overlayMargin, y)
	}
}
