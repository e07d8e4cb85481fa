// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuwindow

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandelbrot"
)

// InputTracker folds window events into per-frame input snapshots.
//
// Key state is level-triggered: an action stays set from press to release.
// Scroll deltas accumulate until the next Snapshot.
type InputTracker struct {
	mu     sync.Mutex
	held   mandelbrot.Action
	scroll float64
	quit   bool
}

// NewInputTracker subscribes to key, scroll and focus events of src.
func NewInputTracker(src gpucontext.EventSource) *InputTracker {
	t := &InputTracker{}
	src.OnKeyPress(t.keyPress)
	src.OnKeyRelease(t.keyRelease)
	src.OnScroll(t.addScroll)
	src.OnFocus(t.focus)
	return t
}

func (t *InputTracker) keyPress(key gpucontext.Key, _ gpucontext.Modifiers) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if key == gpucontext.KeyEscape {
		t.quit = true
		return
	}
	t.held |= keyAction(key)
}

func (t *InputTracker) keyRelease(key gpucontext.Key, _ gpucontext.Modifiers) {
	t.mu.Lock()
	t.held &^= keyAction(key)
	t.mu.Unlock()
}

// addScroll accumulates vertical wheel motion. Positive dy zooms in.
func (t *InputTracker) addScroll(_, dy float64) {
	t.mu.Lock()
	t.scroll += dy
	t.mu.Unlock()
}

// focus drops held keys when the window loses focus; their releases go
// to another window.
func (t *InputTracker) focus(focused bool) {
	if focused {
		return
	}
	t.mu.Lock()
	t.held = 0
	t.mu.Unlock()
}

// Snapshot returns the input for the next frame and clears the scroll
// accumulator.
func (t *InputTracker) Snapshot() mandelbrot.Input {
	t.mu.Lock()
	defer t.mu.Unlock()

	in := mandelbrot.Input{Actions: t.held, Scroll: t.scroll}
	t.scroll = 0
	return in
}

// QuitRequested reports whether Esc was pressed.
func (t *InputTracker) QuitRequested() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}

func keyAction(key gpucontext.Key) mandelbrot.Action {
	switch key {
	case gpucontext.KeyW:
		return mandelbrot.ActionPanUp
	case gpucontext.KeyA:
		return mandelbrot.ActionPanLeft
	case gpucontext.KeyS:
		return mandelbrot.ActionPanDown
	case gpucontext.KeyD:
		return mandelbrot.ActionPanRight
	case gpucontext.KeyLeftShift, gpucontext.KeyRightShift:
		return mandelbrot.ActionZoomIn
	case gpucontext.KeySpace:
		return mandelbrot.ActionZoomOut
	case gpucontext.KeyUp:
		return mandelbrot.ActionIterUp
	case gpucontext.KeyDown:
		return mandelbrot.ActionIterDown
	case gpucontext.KeyR:
		return mandelbrot.ActionReset
	}
	return 0
}
