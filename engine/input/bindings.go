package input

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// Binding is the physical source of a Control: a keyboard key or a mouse button.
type Binding struct {
	Code  uint32
	Mouse bool
}

// Bindings maps each Control to the physical inputs that activate it.
// A control is held while any of its bindings is held.
type Bindings map[Control][]Binding

// DefaultBindings returns the WASD/QE layout with Left Shift to sprint and the right
// mouse button to look.
//
// Returns:
//   - Bindings: the default bindings
func DefaultBindings() Bindings {
	return Bindings{
		ControlForward: {{Code: common.KeyW}},
		ControlBack:    {{Code: common.KeyS}},
		ControlLeft:    {{Code: common.KeyA}},
		ControlRight:   {{Code: common.KeyD}},
		ControlDown:    {{Code: common.KeyQ}},
		ControlUp:      {{Code: common.KeyE}},
		ControlSprint:  {{Code: common.KeyLeftShift}},
		ControlLook:    {{Code: common.MouseButtonRight, Mouse: true}},
	}
}

// ParseBindings converts a name map (control name to key or mouse button names) into
// Bindings. Controls absent from names keep their default binding.
//
// Parameters:
//   - names: e.g. {"forward": ["w"], "look": ["mouseright"]}
//
// Returns:
//   - Bindings: the resolved bindings
//   - error: error naming the first unknown control or input
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for controlName, inputs := range names {
		c, ok := ParseControl(controlName)
		if !ok {
			return nil, fmt.Errorf("unknown control %q", controlName)
		}
		resolved := make([]Binding, 0, len(inputs))
		for _, name := range inputs {
			if code, ok := common.KeyCode(name); ok {
				resolved = append(resolved, Binding{Code: code})
				continue
			}
			if code, ok := common.MouseButtonCode(name); ok {
				resolved = append(resolved, Binding{Code: code, Mouse: true})
				continue
			}
			return nil, fmt.Errorf("unknown input %q for control %q", name, controlName)
		}
		b[c] = resolved
	}
	return b, nil
}
