package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// Pose is the transform of the host object a controller drives.
// Rotation is expressed as Euler angles in degrees around X (pitch), Y (yaw) and Z (roll).
type Pose interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position
	Position() (x, y, z float32)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float32)

	// Rotation returns the Euler angles in degrees.
	//
	// Returns:
	//   - pitch, yaw, roll: rotation around X, Y and Z
	Rotation() (pitch, yaw, roll float32)

	// SetRotation sets the Euler angles in degrees.
	//
	// Parameters:
	//   - pitch, yaw, roll: rotation around X, Y and Z
	SetRotation(pitch, yaw, roll float32)
}

// Local axes used for camera-relative translation.
var (
	AxisForward = mgl32.Vec3{0, 0, 1}
	AxisBack    = mgl32.Vec3{0, 0, -1}
	AxisRight   = mgl32.Vec3{1, 0, 0}
	AxisLeft    = mgl32.Vec3{-1, 0, 0}
	AxisUp      = mgl32.Vec3{0, 1, 0}
	AxisDown    = mgl32.Vec3{0, -1, 0}
)

// CameraState is an orientation (degrees) and position pair.
// Angles are never wrapped; they accumulate under continuous input.
type CameraState struct {
	Yaw   float32
	Pitch float32
	Roll  float32
	X     float32
	Y     float32
	Z     float32
}

// SetFromPose copies the pose's rotation and position verbatim.
//
// Parameters:
//   - p: the pose to read
func (s *CameraState) SetFromPose(p Pose) {
	s.Pitch, s.Yaw, s.Roll = p.Rotation()
	s.X, s.Y, s.Z = p.Position()
}

// Translate moves the state by an offset expressed in camera-local axes
// (+Z forward, +X right, +Y up). The offset is rotated by yaw, then pitch, then roll.
//
// Parameters:
//   - offset: local-space displacement
func (s *CameraState) Translate(offset mgl32.Vec3) {
	world := s.Orientation().Rotate(offset)
	s.X += world[0]
	s.Y += world[1]
	s.Z += world[2]
}

// LerpTowards moves every field toward target. Position fields use positionPct,
// angle fields use rotationPct. Factors are not clamped.
//
// Parameters:
//   - target: state to converge on
//   - positionPct: interpolation factor for X, Y, Z
//   - rotationPct: interpolation factor for Yaw, Pitch, Roll
func (s *CameraState) LerpTowards(target CameraState, positionPct, rotationPct float32) {
	s.Yaw = common.Lerp(s.Yaw, target.Yaw, rotationPct)
	s.Pitch = common.Lerp(s.Pitch, target.Pitch, rotationPct)
	s.Roll = common.Lerp(s.Roll, target.Roll, rotationPct)

	s.X = common.Lerp(s.X, target.X, positionPct)
	s.Y = common.Lerp(s.Y, target.Y, positionPct)
	s.Z = common.Lerp(s.Z, target.Z, positionPct)
}

// UpdatePose writes the state to the pose exactly as stored.
//
// Parameters:
//   - p: the pose to write
func (s CameraState) UpdatePose(p Pose) {
	p.SetRotation(s.Pitch, s.Yaw, s.Roll)
	p.SetPosition(s.X, s.Y, s.Z)
}

// Position returns the position as a vector.
func (s CameraState) Position() mgl32.Vec3 {
	return mgl32.Vec3{s.X, s.Y, s.Z}
}

// Orientation returns the rotation Ry(yaw) * Rx(pitch) * Rz(roll) as a quaternion.
func (s CameraState) Orientation() mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(s.Yaw),
		mgl32.DegToRad(s.Pitch),
		mgl32.DegToRad(s.Roll),
		mgl32.YXZ,
	)
}

// Forward returns the world-space direction the state faces.
func (s CameraState) Forward() mgl32.Vec3 {
	return s.Orientation().Rotate(AxisForward)
}

// IsFinite reports whether no field is NaN or infinite.
func (s CameraState) IsFinite() bool {
	return common.IsFinite(s.Yaw, s.Pitch, s.Roll, s.X, s.Y, s.Z)
}
