// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/gogpu/mandelbrot"
)

// upperHalfBlock paints the top half of a cell in the foreground color
// and the bottom half in the background color.
const upperHalfBlock = '▀'

// terminalEventBuffer is the capacity of the event channel.
const terminalEventBuffer = 64

// Terminal is a host that draws frames into a terminal with tcell.
//
// Each cell shows two vertically stacked pixels, nearest-neighbor sampled
// from the frame. Terminals report key presses only, so every press is a
// one-tick impulse; holding a key relies on the terminal's key repeat.
//
// Keys: w/a/s/d pan, e or + zoom in, space or - zoom out, up/down change
// the iteration budget, r resets, esc/q/ctrl-c quit. The mouse wheel zooms.
//
// Terminal implements both Host and mandelbrot.Surface.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	wg     sync.WaitGroup

	ticker *time.Ticker
	timer  *mandelbrot.FrameTimer
	fps    *mandelbrot.FPSCounter

	closeOnce sync.Once
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// NewTerminal opens the controlling terminal.
func NewTerminal(opts Options) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("surface: open terminal: %w", err)
	}
	return newTerminal(screen, opts.withDefaults())
}

// newTerminal initializes screen and starts forwarding its events.
func newTerminal(screen tcell.Screen, opts Options) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("surface: init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, terminalEventBuffer),
		quit:   make(chan struct{}),
		timer:  mandelbrot.NewFrameTimer(),
		fps:    mandelbrot.NewFPSCounter(),
	}
	if opts.MaxFPS > 0 {
		t.ticker = time.NewTicker(time.Second / time.Duration(opts.MaxFPS))
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		screen.ChannelEvents(t.events, t.quit)
	}()
	return t, nil
}

// Run drives v until the user quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context, v *mandelbrot.Viewer) error {
	return v.Run(ctx, t)
}

// Poll waits for the next tick and collects the input that arrived since
// the previous one.
func (t *Terminal) Poll() (mandelbrot.Input, float64, bool) {
	if t.ticker != nil {
		select {
		case <-t.ticker.C:
		case <-t.quit:
			return mandelbrot.Input{}, 0, false
		}
	}

	var in mandelbrot.Input
	for {
		select {
		case ev, ok := <-t.events:
			if !ok || !t.handle(ev, &in) {
				return mandelbrot.Input{}, 0, false
			}
		case <-t.quit:
			return mandelbrot.Input{}, 0, false
		default:
			return in, t.timer.Delta(), true
		}
	}
}

// handle folds ev into in. It returns false when ev asks to quit.
func (t *Terminal) handle(ev tcell.Event, in *mandelbrot.Input) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return false
		}
		in.Set(keyAction(ev), true)
	case *tcell.EventMouse:
		b := ev.Buttons()
		if b&tcell.WheelUp != 0 {
			in.Scroll++
		}
		if b&tcell.WheelDown != 0 {
			in.Scroll--
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// keyAction maps a key press to viewer actions.
func keyAction(ev *tcell.EventKey) mandelbrot.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return mandelbrot.ActionIterUp
	case tcell.KeyDown:
		return mandelbrot.ActionIterDown
	case tcell.KeyLeft:
		return mandelbrot.ActionPanLeft
	case tcell.KeyRight:
		return mandelbrot.ActionPanRight
	case tcell.KeyRune:
	default:
		return 0
	}

	switch ev.Rune() {
	case 'w', 'W':
		return mandelbrot.ActionPanUp
	case 'a', 'A':
		return mandelbrot.ActionPanLeft
	case 's', 'S':
		return mandelbrot.ActionPanDown
	case 'd', 'D':
		return mandelbrot.ActionPanRight
	case 'e', 'E', '+', '=':
		return mandelbrot.ActionZoomIn
	case ' ', '-':
		return mandelbrot.ActionZoomOut
	case 'r', 'R':
		return mandelbrot.ActionReset
	}
	return 0
}

// Present draws f with half-block cells and the overlay on the top row.
func (t *Terminal) Present(f *mandelbrot.Frame, o mandelbrot.Overlay) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	fw, fh := f.Width(), f.Height()
	subRows := 2 * rows

	for cy := range rows {
		top := (2 * cy) * fh / subRows
		bot := (2*cy + 1) * fh / subRows
		for cx := range cols {
			px := cx * fw / cols
			style := tcell.StyleDefault.
				Foreground(cellColor(f, px, top)).
				Background(cellColor(f, px, bot))
			t.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}

	t.fps.Tick()
	t.drawText(0, o.Iterations+"  "+t.fps.String())
	t.screen.Show()
	return nil
}

func cellColor(f *mandelbrot.Frame, x, y int) tcell.Color {
	r, g, b, _ := f.RGBA(x, y)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawText writes s at the start of row y, white on black.
func (t *Terminal) drawText(y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	cols, _ := t.screen.Size()
	x := 0
	for _, r := range s {
		if x >= cols {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close restores the terminal. Close is safe to call multiple times.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		if t.ticker != nil {
			t.ticker.Stop()
		}
		t.screen.Fini()
		t.wg.Wait()
	})
	return nil
}
