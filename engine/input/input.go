// Package input describes the per-step view of the input devices consumed by camera controllers.
// Hosts either build a State directly (scripted input, tests) or feed window events into a
// Tracker and take one Snapshot per simulation step.
package input

import "github.com/go-gl/mathgl/mgl32"

// Control is a logical input the camera reacts to, independent of the physical key bound to it.
type Control int

const (
	ControlForward Control = iota
	ControlBack
	ControlLeft
	ControlRight
	ControlDown
	ControlUp
	// ControlSprint multiplies translation speed while held.
	ControlSprint
	// ControlLook enables pointer-driven rotation while held.
	ControlLook

	controlCount
)

var controlNames = [controlCount]string{
	ControlForward: "forward",
	ControlBack:    "back",
	ControlLeft:    "left",
	ControlRight:   "right",
	ControlDown:    "down",
	ControlUp:      "up",
	ControlSprint:  "sprint",
	ControlLook:    "look",
}

// String returns the control's configuration name.
func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// ParseControl resolves a configuration name to a Control.
//
// Parameters:
//   - name: control name such as "forward" or "sprint"
//
// Returns:
//   - Control: the control
//   - bool: false if the name is unknown
func ParseControl(name string) (Control, bool) {
	for i, n := range controlNames {
		if n == name {
			return Control(i), true
		}
	}
	return 0, false
}

// Controls returns every Control in declaration order.
func Controls() []Control {
	out := make([]Control, controlCount)
	for i := range out {
		out[i] = Control(i)
	}
	return out
}

// Touch is one active touch point.
type Touch struct {
	// Delta is the touch movement since the previous step, in pixels with +Y up.
	Delta mgl32.Vec2
}

// Snapshot is a read-only view of all input devices for a single simulation step.
// Missing devices report released controls, zero deltas and no touches.
type Snapshot interface {
	// Pressed reports whether the control is held during this step.
	Pressed(c Control) bool

	// PointerDelta returns the pointer movement since the previous step, in pixels with +Y up.
	PointerDelta() mgl32.Vec2

	// ScrollDelta returns the vertical scroll wheel movement since the previous step.
	ScrollDelta() float32

	// TouchCount returns the number of active touch points.
	TouchCount() int

	// Touch returns the i-th active touch point. i must be in [0, TouchCount()).
	Touch(i int) Touch
}

// State is a plain value implementation of Snapshot.
type State struct {
	Held    [controlCount]bool
	Pointer mgl32.Vec2
	Scroll  float32
	Touches []Touch
}

var _ Snapshot = State{}

// Empty is a snapshot with no active input.
var Empty Snapshot = State{}

// Press returns a copy of the state with the given controls held.
//
// Parameters:
//   - controls: controls to mark as held
//
// Returns:
//   - State: the updated copy
func (s State) Press(controls ...Control) State {
	for _, c := range controls {
		if c >= 0 && c < controlCount {
			s.Held[c] = true
		}
	}
	return s
}

func (s State) Pressed(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return s.Held[c]
}

func (s State) PointerDelta() mgl32.Vec2 {
	return s.Pointer
}

func (s State) ScrollDelta() float32 {
	return s.Scroll
}

func (s State) TouchCount() int {
	return len(s.Touches)
}

func (s State) Touch(i int) Touch {
	return s.Touches[i]
}
