package game_object

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: display name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation in degrees.
//
// Parameters:
//   - pitch, yaw, roll: rotation around X, Y and Z
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw, roll float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{pitch, yaw, roll}
	}
}
