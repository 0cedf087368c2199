package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and raw input event delivery.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for vertical scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = away from the user)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	// Key repeats are not reported.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the button code (0 left, 1 right, 2 middle)
	SetMouseButtonDownCallback(callback func(button uint32))

	// SetMouseButtonUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the button code
	SetMouseButtonUpCallback(callback func(button uint32))

	// SetCursorPosCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in window coordinates (+Y down)
	SetCursorPosCallback(callback func(x, y float64))

	// SetFocusLostCallback sets the callback fired when the window loses input focus.
	// Release events for keys held at that moment are not delivered by the platform.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetFocusLostCallback(callback func())

	// SetCursorCaptured hides and locks the cursor to the window so relative motion is unbounded.
	//
	// Parameters:
	//   - captured: true to capture, false to restore the normal cursor
	SetCursorCaptured(captured bool)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	// Safe to call from any goroutine.
	RequestClose()

	// Close closes the window and releases platform resources.
	// Must be called from the thread that created the window.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// minWidth, minHeight, maxWidth, maxHeight bound interactive resizing.
	minWidth  int
	minHeight int
	maxWidth  int
	maxHeight int

	width  int
	height int

	// closeOnEscape closes the window when Escape is pressed.
	closeOnEscape bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate          func()
	onResize          func(width, height int)
	onScroll          func(delta float32)
	onKeyDown         func(keyCode uint32)
	onKeyUp           func(keyCode uint32)
	onMouseButtonDown func(button uint32)
	onMouseButtonUp   func(button uint32)
	onCursorPos       func(x, y float64)
	onFocusLost       func()
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a new Window with the specified options.
// Applies default values first, then each option in order.
// Must be called from the main goroutine; the OS thread is locked for GLFW.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:         "Oxy Free-Fly Camera",
		minWidth:      320,
		minHeight:     200,
		maxWidth:      -1,
		maxHeight:     -1,
		width:         1280,
		height:        720,
		closeOnEscape: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonDownCallback(callback func(button uint32)) {
	w.onMouseButtonDown = callback
}

func (w *engineWindow) SetMouseButtonUpCallback(callback func(button uint32)) {
	w.onMouseButtonUp = callback
}

func (w *engineWindow) SetCursorPosCallback(callback func(x, y float64)) {
	w.onCursorPos = callback
}

func (w *engineWindow) SetFocusLostCallback(callback func()) {
	w.onFocusLost = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	platformSetCursorCaptured(w, captured)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
