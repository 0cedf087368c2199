package game_object

import "sync"

type gameObject struct {
	mu *sync.RWMutex

	name string

	position [3]float32
	rotation [3]float32 // Euler degrees: pitch (X), yaw (Y), roll (Z)
}

// GameObject is a named scene entity with a transform. It is the pose a camera
// controller reads at activation and writes every step; a renderer may read it
// concurrently from another goroutine.
type GameObject interface {
	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation in degrees, stored exactly as last set.
	//
	// Returns:
	//   - pitch, yaw, roll: rotation around X, Y and Z
	Rotation() (pitch, yaw, roll float32)

	// Transform returns position and rotation in a single consistent read.
	//
	// Returns:
	//   - pos: position as [3]float32 (x, y, z)
	//   - rot: rotation as [3]float32 (pitch, yaw, roll) in degrees
	Transform() (pos, rot [3]float32)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in degrees. Angles are not wrapped.
	//
	// Parameters:
	//   - pitch, yaw, roll: rotation around X, Y and Z
	SetRotation(pitch, yaw, roll float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu: &sync.RWMutex{},
	}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (pitch, yaw, roll float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) Transform() (pos, rot [3]float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position, g.rotation
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(pitch, yaw, roll float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{pitch, yaw, roll}
}
