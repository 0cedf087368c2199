package camera

import (
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-freefly/engine/curve"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithSettings replaces all tuning at once.
//
// Parameters:
//   - settings: the controller settings
//
// Returns:
//   - CameraControllerOption: functional option to set the settings
func WithSettings(settings Settings) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings = settings
	}
}

// WithBoost sets the exponential speed multiplier (translation scales by 2^boost).
//
// Parameters:
//   - boost: exponential speed multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the boost
func WithBoost(boost float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.Boost = boost
	}
}

// WithPositionLerpTime sets the time to cover 99% of the distance to the target position.
//
// Parameters:
//   - seconds: lerp time in (0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to set the position lerp time
func WithPositionLerpTime(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.PositionLerpTime = seconds
	}
}

// WithRotationLerpTime sets the time to cover 99% of the distance to the target rotation.
//
// Parameters:
//   - seconds: lerp time in (0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation lerp time
func WithRotationLerpTime(seconds float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.RotationLerpTime = seconds
	}
}

// WithSensitivityCurve sets the curve mapping pointer delta magnitude to sensitivity.
//
// Parameters:
//   - c: the sensitivity curve
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity curve
func WithSensitivityCurve(c curve.Curve) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.SensitivityCurve = c
	}
}

// WithInvertY sets whether the vertical pointer axis is inverted.
//
// Parameters:
//   - invert: true to invert
//
// Returns:
//   - CameraControllerOption: functional option to set Y inversion
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.InvertY = invert
	}
}

// WithScrollBoostStep sets how much one unit of scroll changes the boost.
//
// Parameters:
//   - step: boost change per scroll unit (0 disables scroll boost)
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll boost step
func WithScrollBoostStep(step float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.settings.ScrollBoostStep = step
	}
}

// WithLogger sets the logger used for activation and configuration messages.
//
// Parameters:
//   - logger: zerolog logger
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.logger = logger.With().Str("component", "camera").Logger()
	}
}
