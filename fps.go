package mandelbrot

import (
	"math"
	"strconv"
	"time"
)

// FPSCounter counts presented frames over one-second windows.
type FPSCounter struct {
	now   func() time.Time
	start time.Time
	count int
	fps   int
}

// NewFPSCounter returns a counter whose first window starts now.
func NewFPSCounter() *FPSCounter {
	c := &FPSCounter{now: time.Now}
	c.start = c.now()
	return c
}

// Tick records one presented frame. When a second or more has passed
// since the window started, the rate is published and a new window begins.
func (c *FPSCounter) Tick() {
	c.count++
	now := c.now()
	if elapsed := now.Sub(c.start); elapsed >= time.Second {
		c.fps = int(math.Round(float64(c.count) / elapsed.Seconds()))
		c.count = 0
		c.start = now
	}
}

// FPS returns the rate of the last completed window.
func (c *FPSCounter) FPS() int {
	return c.fps
}

// String returns the overlay text, e.g. "FPS: 60".
func (c *FPSCounter) String() string {
	return "FPS: " + strconv.Itoa(c.fps)
}

// FrameTimer measures the time between consecutive ticks.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
}

// NewFrameTimer returns a timer whose first Delta is measured from now.
func NewFrameTimer() *FrameTimer {
	t := &FrameTimer{now: time.Now}
	t.last = t.now()
	return t
}

// Delta returns the seconds since the previous call (or since creation)
// and restarts the measurement.
func (t *FrameTimer) Delta() float64 {
	now := t.now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return dt
}
