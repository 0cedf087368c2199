package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Tracker accumulates raw device events, typically delivered by window callbacks on the
// platform thread, and hands out one Snapshot per simulation step.
// Key and button state persists across snapshots; pointer movement, scroll and touch
// deltas are reset by each Snapshot call. Safe for concurrent use.
type Tracker struct {
	mu *sync.Mutex

	bindings Bindings

	keys    map[uint32]bool
	buttons map[uint32]bool

	hasCursor bool
	cursorX   float64
	cursorY   float64

	pointer mgl32.Vec2
	scroll  float32
	touches []Touch
}

// NewTracker creates a Tracker resolving controls through the given bindings.
// A nil map uses DefaultBindings.
//
// Parameters:
//   - bindings: control to device mapping
//
// Returns:
//   - *Tracker: the tracker
func NewTracker(bindings Bindings) *Tracker {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Tracker{
		mu:       &sync.Mutex{},
		bindings: bindings,
		keys:     make(map[uint32]bool),
		buttons:  make(map[uint32]bool),
	}
}

// SetBindings replaces the control bindings. Held keys stay held.
func (t *Tracker) SetBindings(bindings Bindings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if bindings == nil {
		bindings = DefaultBindings()
	}
	t.bindings = bindings
}

// Bound reports whether the given key or mouse button is bound to control c.
//
// Parameters:
//   - c: the control
//   - b: the key or mouse button
//
// Returns:
//   - bool: true if b triggers c
func (t *Tracker) Bound(c Control, b Binding) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, bb := range t.bindings[c] {
		if bb == b {
			return true
		}
	}
	return false
}

// KeyDown records a key press.
func (t *Tracker) KeyDown(code uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys[code] = true
}

// KeyUp records a key release.
func (t *Tracker) KeyUp(code uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.keys, code)
}

// MouseButtonDown records a mouse button press.
func (t *Tracker) MouseButtonDown(button uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buttons[button] = true
}

// MouseButtonUp records a mouse button release.
func (t *Tracker) MouseButtonUp(button uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.buttons, button)
}

// ReleaseAll clears every held key and button and forgets the last cursor position.
// Used when the window loses focus and release events will not arrive.
func (t *Tracker) ReleaseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.keys)
	clear(t.buttons)
	t.hasCursor = false
}

// CursorMoved records an absolute cursor position in window coordinates (+Y down).
// Movement is accumulated as a +Y up delta. The first position only seeds the tracker.
//
// Parameters:
//   - x, y: cursor position in pixels
func (t *Tracker) CursorMoved(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hasCursor {
		t.pointer[0] += float32(x - t.cursorX)
		t.pointer[1] -= float32(y - t.cursorY)
	}
	t.cursorX, t.cursorY = x, y
	t.hasCursor = true
}

// Scrolled accumulates vertical scroll wheel movement.
func (t *Tracker) Scrolled(delta float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scroll += delta
}

// SetTouches replaces the active touch points for hosts with a touch device.
// Deltas are consumed by the next Snapshot; the points stay active until replaced.
//
// Parameters:
//   - touches: active touch points, deltas in pixels with +Y up
func (t *Tracker) SetTouches(touches []Touch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touches = append(t.touches[:0], touches...)
}

// Snapshot returns the input state for one simulation step and resets the
// accumulated pointer, scroll and touch deltas.
//
// Returns:
//   - State: the step's input
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s State
	for c, bs := range t.bindings {
		if c < 0 || c >= controlCount {
			continue
		}
		for _, b := range bs {
			if (b.Mouse && t.buttons[b.Code]) || (!b.Mouse && t.keys[b.Code]) {
				s.Held[c] = true
				break
			}
		}
	}

	s.Pointer = t.pointer
	s.Scroll = t.scroll
	if len(t.touches) > 0 {
		s.Touches = make([]Touch, len(t.touches))
		copy(s.Touches, t.touches)
		for i := range t.touches {
			t.touches[i].Delta = mgl32.Vec2{}
		}
	}

	t.pointer = mgl32.Vec2{}
	t.scroll = 0
	return s
}
