package mandelbrot

import (
	"context"
	"errors"
	"testing"
)

// scriptSurface replays a fixed input script and records what was presented.
type scriptSurface struct {
	script   []Input
	dt       float64
	next     int
	seqs     []uint64
	overlays []Overlay
	failAt   int
	err      error
	onPoll   func(n int)
}

func (s *scriptSurface) Poll() (Input, float64, bool) {
	if s.onPoll != nil {
		s.onPoll(s.next)
	}
	if s.next >= len(s.script) {
		return Input{}, 0, false
	}
	in := s.script[s.next]
	s.next++
	return in, s.dt, true
}

func (s *scriptSurface) Present(f *Frame, o Overlay) error {
	s.seqs = append(s.seqs, f.Seq)
	s.overlays = append(s.overlays, o)
	if s.failAt > 0 && len(s.seqs) == s.failAt {
		return s.err
	}
	return nil
}

func newTestViewer(t *testing.T, opts ...Option) *Viewer {
	t.Helper()
	v := NewViewer(mustConfig(t, append([]Option{WithSize(32, 24)}, opts...)...))
	t.Cleanup(v.Close)
	return v
}

func TestViewerRunUntilSurfaceCloses(t *testing.T) {
	v := newTestViewer(t)
	s := &scriptSurface{
		dt: 0.016,
		script: []Input{
			{},
			{Actions: ActionIterUp},
			{Actions: ActionIterUp},
			{Actions: ActionIterDown},
		},
	}

	if err := v.Run(context.Background(), s); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if len(s.seqs) != 4 {
		t.Fatalf("presented %d frames, want 4", len(s.seqs))
	}
	for i, seq := range s.seqs {
		if seq != uint64(i+1) {
			t.Errorf("frame %d has Seq %d", i, seq)
		}
	}
	want := []string{"Iterations: 64", "Iterations: 128", "Iterations: 192", "Iterations: 128"}
	for i, o := range s.overlays {
		if o.Iterations != want[i] {
			t.Errorf("overlay %d = %q, want %q", i, o.Iterations, want[i])
		}
	}
}

func TestViewerRunPresentError(t *testing.T) {
	v := newTestViewer(t)
	boom := errors.New("blit failed")
	s := &scriptSurface{script: make([]Input, 10), failAt: 3, err: boom}

	err := v.Run(context.Background(), s)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, want wrapped %v", err, boom)
	}
	if len(s.seqs) != 3 {
		t.Errorf("presented %d frames before error, want 3", len(s.seqs))
	}
}

func TestViewerRunCancelled(t *testing.T) {
	v := newTestViewer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &scriptSurface{script: make([]Input, 100)}
	s.onPoll = func(n int) {
		if n == 5 {
			cancel()
		}
	}

	err := v.Run(ctx, s)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	// The frame in flight when cancel fired is still presented.
	if len(s.seqs) != 6 {
		t.Errorf("presented %d frames, want 6", len(s.seqs))
	}
}

func TestViewerRunAfterClose(t *testing.T) {
	v := NewViewer(mustConfig(t, WithSize(8, 8)))
	v.Close()
	v.Close()

	if err := v.Run(context.Background(), &scriptSurface{}); !errors.Is(err, ErrViewerClosed) {
		t.Errorf("Run() after Close = %v, want ErrViewerClosed", err)
	}
}

func TestViewerStepAfterClose(t *testing.T) {
	v := NewViewer(mustConfig(t, WithSize(32, 24)))
	first := v.Step(0.016, Input{})
	view, iter := first.Viewport, v.Camera().Iterations()
	v.Close()

	f := v.Step(0.016, Input{Actions: ActionZoomIn | ActionIterUp})

	if f.Seq != 1 {
		t.Errorf("Seq after Close = %d, want 1", f.Seq)
	}
	if f.Viewport != view {
		t.Errorf("frame viewport changed after Close: %+v, want %+v", f.Viewport, view)
	}
	if v.Camera().Viewport() != view || v.Camera().Iterations() != iter {
		t.Error("camera moved on Step after Close")
	}
}

func TestViewerStepAppliesCameraBeforeRender(t *testing.T) {
	v := newTestViewer(t)
	before := v.Camera().Viewport()

	f := v.Step(0.016, Input{Actions: ActionZoomIn})

	if f.Viewport == before {
		t.Error("frame rendered with the pre-update viewport")
	}
	if f.Viewport != v.Camera().Viewport() {
		t.Errorf("frame viewport %+v, camera %+v", f.Viewport, v.Camera().Viewport())
	}
	if f != v.Frame() {
		t.Error("Step did not return the viewer frame")
	}
}

func TestNewViewerNilConfig(t *testing.T) {
	v := NewViewer(nil)
	defer v.Close()

	if v.Config().Width != DefaultWidth || v.Frame().Width() != DefaultWidth {
		t.Errorf("nil config width = %d", v.Config().Width)
	}
	if got := v.Overlay().Iterations; got != "Iterations: 64" {
		t.Errorf("Overlay() = %q", got)
	}
	if v.Palette().Len() != PaletteSize {
		t.Errorf("Palette().Len() = %d", v.Palette().Len())
	}
}
