package mandelbrot

import "strings"

// Action is a set of logical viewer controls, one bit per action.
type Action uint16

// Logical actions. Surfaces translate their native keys into these.
const (
	ActionPanLeft Action = 1 << iota
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionIterUp
	ActionIterDown
	ActionReset
)

var actionNames = [...]string{
	"pan-left", "pan-right", "pan-up", "pan-down",
	"zoom-in", "zoom-out", "iter-up", "iter-down", "reset",
}

// String returns the actions as a "|"-separated list.
func (a Action) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for i, name := range actionNames {
		if a&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Input is the per-tick input snapshot handed to Camera.Update.
type Input struct {
	// Actions holds the actions active during this tick.
	Actions Action

	// Scroll is the accumulated wheel delta since the previous tick.
	// Positive zooms in.
	Scroll float64
}

// Has reports whether every action in a is active.
func (in Input) Has(a Action) bool {
	return in.Actions&a == a
}

// Set turns the actions in a on or off.
func (in *Input) Set(a Action, on bool) {
	if on {
		in.Actions |= a
	} else {
		in.Actions &^= a
	}
}

// axis returns +1 if pos is active, -1 if neg is active, 0 if both or neither.
func (in Input) axis(pos, neg Action) float64 {
	var d float64
	if in.Has(pos) {
		d++
	}
	if in.Has(neg) {
		d--
	}
	return d
}
