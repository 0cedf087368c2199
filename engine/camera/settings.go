package camera

import "github.com/Carmen-Shannon/oxy-freefly/engine/curve"

// Default controller tuning.
const (
	DefaultBoost            float32 = 3.5
	DefaultPositionLerpTime float32 = 0.2
	DefaultRotationLerpTime float32 = 0.01
	DefaultScrollBoostStep  float32 = 0.2

	// SensitivityScale converts a sensitivity curve value into degrees per pixel.
	SensitivityScale float32 = 0.1
	// SprintMultiplier scales translation while the sprint control is held.
	SprintMultiplier float32 = 10
)

// Settings is the tunable configuration of a CameraController.
type Settings struct {
	// Boost is an exponential speed multiplier: translation is scaled by 2^Boost.
	Boost float32

	// PositionLerpTime is the time in seconds for the smoothed position to cover 99%
	// of the distance to its target. Must be in (0, 1].
	PositionLerpTime float32

	// RotationLerpTime is the time in seconds for the smoothed rotation to cover 99%
	// of the distance to its target. Must be in (0, 1].
	RotationLerpTime float32

	// SensitivityCurve maps pointer delta magnitude to a rotation/translation factor.
	SensitivityCurve curve.Curve

	// InvertY flips the vertical pointer axis.
	InvertY bool

	// ScrollBoostStep is the change to Boost per unit of scroll wheel movement.
	ScrollBoostStep float32
}

// DefaultSettings returns the default controller tuning.
//
// Returns:
//   - Settings: the defaults
func DefaultSettings() Settings {
	return Settings{
		Boost:            DefaultBoost,
		PositionLerpTime: DefaultPositionLerpTime,
		RotationLerpTime: DefaultRotationLerpTime,
		SensitivityCurve: curve.Default(),
		InvertY:          false,
		ScrollBoostStep:  DefaultScrollBoostStep,
	}
}
