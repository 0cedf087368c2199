package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/curve"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	pose   Pose
	logger zerolog.Logger

	// target follows input directly; interpolated lags behind it and drives the pose
	target       CameraState
	interpolated CameraState

	settings Settings
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a free-fly controller for the given pose with default settings.
// The controller is synchronized to the pose on creation; call Activate to re-synchronize
// after the pose was moved by something else.
//
// Parameters:
//   - pose: the transform to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(pose Pose, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		pose:     pose,
		logger:   zerolog.Nop(),
		settings: DefaultSettings(),
	}

	for _, option := range options {
		option(cc)
	}

	cc.warnInvalidSettings()
	cc.Activate()
	return cc
}

func (cc *cameraControllerImpl) Activate() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target.SetFromPose(cc.pose)
	cc.interpolated.SetFromPose(cc.pose)
	cc.logger.Debug().
		Float32("x", cc.target.X).
		Float32("y", cc.target.Y).
		Float32("z", cc.target.Z).
		Float32("yaw", cc.target.Yaw).
		Float32("pitch", cc.target.Pitch).
		Float32("roll", cc.target.Roll).
		Msg("camera controller activated")
}

func (cc *cameraControllerImpl) Update(stepDuration float32, in input.Snapshot) {
	if in == nil {
		in = input.Empty
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Rotation
	if delta, ok := RotationDelta(in, cc.settings.InvertY); ok {
		factor := SensitivityFactor(cc.settings.SensitivityCurve, delta)
		cc.target.Yaw += delta[0] * factor
		cc.target.Pitch += delta[1] * factor
	}

	// Translation
	cc.settings.Boost += in.ScrollDelta() * cc.settings.ScrollBoostStep
	direction := TranslationDirection(in, cc.settings.SensitivityCurve, cc.settings.InvertY)
	scale := TranslationScale(stepDuration, in.Pressed(input.ControlSprint), cc.settings.Boost)
	cc.target.Translate(direction.Mul(scale))

	// Framerate-independent interpolation
	positionPct := common.LerpFactor(cc.settings.PositionLerpTime, stepDuration)
	rotationPct := common.LerpFactor(cc.settings.RotationLerpTime, stepDuration)
	cc.interpolated.LerpTowards(cc.target, positionPct, rotationPct)

	cc.interpolated.UpdatePose(cc.pose)
}

func (cc *cameraControllerImpl) Pose() Pose {
	return cc.pose
}

func (cc *cameraControllerImpl) Target() CameraState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) Interpolated() CameraState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.interpolated
}

func (cc *cameraControllerImpl) Settings() Settings {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.settings
}

func (cc *cameraControllerImpl) SetSettings(settings Settings) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.settings = settings
	cc.warnInvalidSettings()
}

func (cc *cameraControllerImpl) Boost() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.settings.Boost
}

func (cc *cameraControllerImpl) SetBoost(boost float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.settings.Boost = boost
}

// warnInvalidSettings logs lerp times that will produce NaN or Inf smoothing factors.
// Caller must hold the mutex or own cc exclusively.
func (cc *cameraControllerImpl) warnInvalidSettings() {
	if cc.settings.PositionLerpTime <= 0 || cc.settings.RotationLerpTime <= 0 {
		cc.logger.Warn().
			Float32("position_lerp_time", cc.settings.PositionLerpTime).
			Float32("rotation_lerp_time", cc.settings.RotationLerpTime).
			Msg("lerp times must be strictly positive; smoothing will not converge")
	}
}

// --- step helpers ---

// RotationDelta selects the single pointer source that drives rotation this step:
// the pointer while the look control is held, otherwise a lone touch point.
// Unless invertY is set, the vertical axis is negated so that moving up pitches up.
//
// Parameters:
//   - in: the step's input
//   - invertY: whether the vertical axis is inverted
//
// Returns:
//   - mgl32.Vec2: the rotation delta
//   - bool: false if no rotation source is active
func RotationDelta(in input.Snapshot, invertY bool) (mgl32.Vec2, bool) {
	var delta mgl32.Vec2
	switch {
	case in.Pressed(input.ControlLook):
		delta = in.PointerDelta()
	case in.TouchCount() == 1:
		delta = in.Touch(0).Delta
	default:
		return mgl32.Vec2{}, false
	}
	if !invertY {
		delta[1] = -delta[1]
	}
	return delta, true
}

// SensitivityFactor evaluates the sensitivity curve at the delta's magnitude and
// applies SensitivityScale.
//
// Parameters:
//   - c: the sensitivity curve
//   - delta: pointer or touch delta
//
// Returns:
//   - float32: the multiplier applied to each delta component
func SensitivityFactor(c curve.Curve, delta mgl32.Vec2) float32 {
	return c.Evaluate(delta.Len()) * SensitivityScale
}

// TranslationDirection sums one unit vector per held directional control. The result is
// not normalized: diagonal input moves faster. A two-point touch gesture adds
// a pan contribution from the first touch, scaled like pointer rotation.
//
// Parameters:
//   - in: the step's input
//   - c: the sensitivity curve used for touch panning
//   - invertY: whether the vertical touch axis is inverted
//
// Returns:
//   - mgl32.Vec3: local-space direction before time and speed scaling
func TranslationDirection(in input.Snapshot, c curve.Curve, invertY bool) mgl32.Vec3 {
	var direction mgl32.Vec3
	if in.Pressed(input.ControlForward) {
		direction = direction.Add(AxisForward)
	}
	if in.Pressed(input.ControlBack) {
		direction = direction.Add(AxisBack)
	}
	if in.Pressed(input.ControlLeft) {
		direction = direction.Add(AxisLeft)
	}
	if in.Pressed(input.ControlRight) {
		direction = direction.Add(AxisRight)
	}
	if in.Pressed(input.ControlDown) {
		direction = direction.Add(AxisDown)
	}
	if in.Pressed(input.ControlUp) {
		direction = direction.Add(AxisUp)
	}

	if in.TouchCount() == 2 {
		movement := in.Touch(0).Delta
		if !invertY {
			movement[1] = -movement[1]
		}
		factor := SensitivityFactor(c, movement)
		direction = direction.Add(AxisRight.Mul(movement[0] * factor))
		direction = direction.Add(AxisBack.Mul(movement[1] * factor))
	}

	return direction
}

// TranslationScale returns the scalar applied to the translation direction:
// stepDuration, times SprintMultiplier while sprinting, times 2^boost.
//
// Parameters:
//   - stepDuration: elapsed simulation time in seconds
//   - sprint: whether the sprint control is held
//   - boost: exponential speed multiplier
//
// Returns:
//   - float32: the translation scale
func TranslationScale(stepDuration float32, sprint bool, boost float32) float32 {
	scale := stepDuration
	if sprint {
		scale *= SprintMultiplier
	}
	return scale * common.Pow2(boost)
}
