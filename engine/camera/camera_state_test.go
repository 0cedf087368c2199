package camera

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/game_object"
)

var _ Pose = game_object.NewGameObject()

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestCameraStateSetFromPoseAndUpdatePose(t *testing.T) {
	src := game_object.NewGameObject(
		game_object.WithPosition(1, 2, 3),
		game_object.WithRotation(10, 20, 30),
	)

	var s CameraState
	s.SetFromPose(src)
	assert.Equal(t, CameraState{Pitch: 10, Yaw: 20, Roll: 30, X: 1, Y: 2, Z: 3}, s)

	// angles are written as stored, without wrapping
	s.Yaw = 725
	s.Pitch = -400
	dst := game_object.NewGameObject()
	s.UpdatePose(dst)

	pitch, yaw, roll := dst.Rotation()
	assert.Equal(t, float32(-400), pitch)
	assert.Equal(t, float32(725), yaw)
	assert.Equal(t, float32(30), roll)
	x, y, z := dst.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
}

func TestTranslateIdentityOrientation(t *testing.T) {
	offsets := []mgl32.Vec3{
		{1, 2, 3},
		{-4, 0, 0.5},
		{0, 0, 0},
	}
	for _, offset := range offsets {
		s := CameraState{X: 10, Y: -10, Z: 5}
		s.Translate(offset)
		assertVec3(t, mgl32.Vec3{10, -10, 5}.Add(offset), s.Position())
	}
}

func TestTranslateRotatesIntoWorldSpace(t *testing.T) {
	cases := []struct {
		name              string
		yaw, pitch, roll  float32
		offset, wantWorld mgl32.Vec3
	}{
		{"yaw_90_forward_is_right", 90, 0, 0, AxisForward, mgl32.Vec3{1, 0, 0}},
		{"yaw_180_forward_is_back", 180, 0, 0, AxisForward, mgl32.Vec3{0, 0, -1}},
		{"pitch_90_forward_is_down", 0, 90, 0, AxisForward, mgl32.Vec3{0, -1, 0}},
		{"roll_90_right_is_up", 0, 0, 90, AxisRight, mgl32.Vec3{0, 1, 0}},
		// yaw is applied after pitch: Ry(90) * Rx(90) * right
		{"yaw_pitch_order", 90, 90, 0, AxisRight, mgl32.Vec3{0, 0, -1}},
		{"full_turn_is_identity", 360, 0, 0, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := CameraState{Yaw: tc.yaw, Pitch: tc.pitch, Roll: tc.roll}
			s.Translate(tc.offset)
			assertVec3(t, tc.wantWorld, s.Position())
			// orientation is untouched by translation
			assert.Equal(t, tc.yaw, s.Yaw)
			assert.Equal(t, tc.pitch, s.Pitch)
		})
	}
}

func TestForward(t *testing.T) {
	assertVec3(t, AxisForward, CameraState{}.Forward())
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, CameraState{Yaw: -90}.Forward())
}

func TestLerpTowardsUsesSeparateFactors(t *testing.T) {
	s := CameraState{}
	target := CameraState{Yaw: 100, Pitch: -50, Roll: 10, X: 10, Y: 20, Z: -30}

	s.LerpTowards(target, 0.5, 0.1)

	assert.InDelta(t, 10, s.Yaw, 1e-5)
	assert.InDelta(t, -5, s.Pitch, 1e-5)
	assert.InDelta(t, 1, s.Roll, 1e-5)
	assert.InDelta(t, 5, s.X, 1e-5)
	assert.InDelta(t, 10, s.Y, 1e-5)
	assert.InDelta(t, -15, s.Z, 1e-5)
}

func TestLerpTowardsFactorsNotClamped(t *testing.T) {
	s := CameraState{X: 0}
	s.LerpTowards(CameraState{X: 10}, 1.5, 0)
	assert.InDelta(t, 15, s.X, 1e-5)
}

// After lerpTime seconds the interpolated state covers 99% of the distance to a fixed
// target, however the interval is split into steps.
func TestConvergenceIsFrameRateIndependent(t *testing.T) {
	const lerpTime = float32(0.2)
	target := CameraState{Yaw: 90, X: 100, Y: -50, Z: 25}

	for _, steps := range []int{1, 2, 5, 12, 60, 240} {
		t.Run(fmt.Sprintf("%d_steps", steps), func(t *testing.T) {
			dt := lerpTime / float32(steps)
			factor := common.LerpFactor(lerpTime, dt)

			var s CameraState
			for i := 0; i < steps; i++ {
				s.LerpTowards(target, factor, factor)
			}

			assert.InDelta(t, 99, s.X, 0.01)
			assert.InDelta(t, -49.5, s.Y, 0.01)
			assert.InDelta(t, 24.75, s.Z, 0.01)
			assert.InDelta(t, 89.1, s.Yaw, 0.01)
			assert.LessOrEqual(t, target.Position().Sub(s.Position()).Len(), 0.0101*target.Position().Len())
			assert.True(t, s.IsFinite())
		})
	}
}

func TestConvergenceWithUnevenSteps(t *testing.T) {
	const lerpTime = float32(0.2)
	target := CameraState{X: 100}
	durations := []float32{0.013, 0.05, 0.002, 0.07, 0.065}

	var s CameraState
	for _, dt := range durations {
		f := common.LerpFactor(lerpTime, dt)
		s.LerpTowards(target, f, f)
	}
	assert.InDelta(t, 99, s.X, 0.01)
}
