package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// Mouse button codes, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"w":            KeyW,
	"a":            KeyA,
	"s":            KeyS,
	"d":            KeyD,
	"q":            KeyQ,
	"e":            KeyE,
	"space":        KeySpace,
	"escape":       KeyEsc,
	"leftshift":    KeyLeftShift,
	"rightshift":   KeyRightShift,
	"leftcontrol":  KeyLeftControl,
	"rightcontrol": KeyRightControl,
}

// mouseButtonNames maps the names accepted in configuration files to mouse button codes.
var mouseButtonNames = map[string]uint32{
	"mouseleft":   MouseButtonLeft,
	"mouseright":  MouseButtonRight,
	"mousemiddle": MouseButtonMiddle,
}

// KeyCode resolves a configuration key name (case-sensitive, lower case) to its code.
//
// Parameters:
//   - name: key name such as "w" or "leftshift"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	code, ok := keyNames[name]
	return code, ok
}

// MouseButtonCode resolves a configuration mouse button name to its code.
//
// Parameters:
//   - name: button name such as "mouseright"
//
// Returns:
//   - uint32: the button code
//   - bool: false if the name is unknown
func MouseButtonCode(name string) (uint32, bool) {
	code, ok := mouseButtonNames[name]
	return code, ok
}
