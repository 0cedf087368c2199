package camera

import "github.com/Carmen-Shannon/oxy-freefly/engine/input"

// CameraController drives a Pose as a free-fly camera.
// It keeps two CameraStates: a target that follows input immediately, and an
// interpolated state that converges on the target with frame-rate independent
// exponential smoothing and is written to the pose every step.
//
// Activate and Update are expected to be called from a single goroutine, in the
// order the host scheduler decides (Activate once, then Update once per fixed step).
type CameraController interface {
	// Activate copies the pose into both the target and interpolated states so the
	// camera does not jump. Calling it again re-synchronizes to the live pose and
	// discards any pending smoothing.
	Activate()

	// Update advances the controller by one simulation step: applies rotation and
	// translation input to the target, converges the interpolated state and writes it
	// to the pose.
	//
	// Parameters:
	//   - stepDuration: elapsed simulation time in seconds
	//   - in: the step's input snapshot (nil is treated as no input)
	Update(stepDuration float32, in input.Snapshot)

	// Pose returns the controlled pose.
	//
	// Returns:
	//   - Pose: the pose written each step
	Pose() Pose

	// Target returns a copy of the unsmoothed target state.
	//
	// Returns:
	//   - CameraState: the target state
	Target() CameraState

	// Interpolated returns a copy of the smoothed state last written to the pose.
	//
	// Returns:
	//   - CameraState: the interpolated state
	Interpolated() CameraState

	// Settings returns the current tuning.
	//
	// Returns:
	//   - Settings: the controller settings
	Settings() Settings

	// SetSettings replaces the tuning. Takes effect on the next Update.
	//
	// Parameters:
	//   - settings: the new settings
	SetSettings(settings Settings)

	// Boost returns the exponential speed multiplier.
	//
	// Returns:
	//   - float32: current boost
	Boost() float32

	// SetBoost sets the exponential speed multiplier.
	//
	// Parameters:
	//   - boost: new boost
	SetBoost(boost float32)
}
