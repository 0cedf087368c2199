package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	s := cfg.Settings()
	d := camera.DefaultSettings()
	assert.Equal(t, d.Boost, s.Boost)
	assert.Equal(t, d.PositionLerpTime, s.PositionLerpTime)
	assert.Equal(t, d.RotationLerpTime, s.RotationLerpTime)
	assert.Equal(t, d.ScrollBoostStep, s.ScrollBoostStep)
	assert.False(t, s.InvertY)
	assert.Equal(t, d.SensitivityCurve.Keys(), s.SensitivityCurve.Keys())

	assert.Equal(t, 60.0, cfg.Engine.TickRate)
	assert.True(t, *cfg.Engine.FixedStep)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.True(t, *cfg.Window.VSync)
	assert.True(t, *cfg.Window.CloseOnEscape)
	assert.Equal(t, 320, cfg.Window.MinWidth)
	assert.Equal(t, 200, cfg.Window.MinHeight)
	assert.Zero(t, cfg.Window.MaxWidth)
	assert.Equal(t, input.DefaultBindings(), cfg.InputBindings())
}

func TestParseFullDocument(t *testing.T) {
	doc := `
camera:
  boost: 0
  position_lerp_time: 0.5
  rotation_lerp_time: 1
  invert_y: true
  scroll_boost_step: 0
  sensitivity_curve:
    - {time: 0, value: 1}
    - {time: 2, value: 3, in_tangent: 1}
pose:
  position: [1, 2, 3]
  rotation: [10, 20, 30]
bindings:
  forward: [space]
  look: [mouseleft]
engine:
  tick_rate: 120
  fixed_step: false
  profiling: true
window:
  vsync: false
  close_on_escape: false
  min_width: 640
  min_height: 480
  max_width: 1920
  max_height: 1080
logging:
  level: debug
  pretty: false
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	s := cfg.Settings()
	// explicit zero is kept, not replaced by the default
	assert.Equal(t, float32(0), s.Boost)
	assert.Equal(t, float32(0), s.ScrollBoostStep)
	assert.Equal(t, float32(0.5), s.PositionLerpTime)
	assert.Equal(t, float32(1), s.RotationLerpTime)
	assert.True(t, s.InvertY)
	assert.InDelta(t, 3, s.SensitivityCurve.Evaluate(5), 1e-6)

	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Pose.Position)
	assert.Equal(t, [3]float32{10, 20, 30}, cfg.Pose.Rotation)
	assert.Equal(t, 120.0, cfg.Engine.TickRate)
	assert.False(t, *cfg.Engine.FixedStep)
	assert.True(t, cfg.Engine.Profiling)
	assert.False(t, *cfg.Window.VSync)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, *cfg.Window.CloseOnEscape)
	assert.Equal(t, [4]int{640, 480, 1920, 1080},
		[4]int{cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight})
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, *cfg.Logging.Pretty)

	b := cfg.InputBindings()
	assert.Equal(t, []input.Binding{{Code: common.KeySpace}}, b[input.ControlForward])
	assert.Equal(t, []input.Binding{{Code: common.MouseButtonLeft, Mouse: true}}, b[input.ControlLook])
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"zero_position_lerp", "camera: {position_lerp_time: 0}", ErrInvalidLerpTime},
		{"negative_rotation_lerp", "camera: {rotation_lerp_time: -0.1}", ErrInvalidLerpTime},
		{"lerp_above_one", "camera: {position_lerp_time: 1.5}", ErrInvalidLerpTime},
		{"decreasing_curve", "camera: {sensitivity_curve: [{time: 0, value: 2}, {time: 1, value: 1}]}", ErrNonMonotonicCurve},
		{"negative_tick_rate", "engine: {tick_rate: -5}", ErrInvalidTickRate},
		{"negative_min_width", "window: {min_width: -1}", ErrInvalidSizeLimits},
		{"max_below_min", "window: {min_height: 400, max_height: 300}", ErrInvalidSizeLimits},
		{"unknown_binding", "bindings: {forward: [f13]}", nil},
		{"malformed", "camera: [", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			}
		})
	}
}

func TestLoadWrapsFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freefly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera: {boost: 1}\n"), 0o644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("camera: {boost: 2}\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates:
			if *cfg.Camera.Boost == 2 {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("unexpected watch error: %v", err)
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freefly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("camera: {position_lerp_time: 0}\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-w.Errors:
			assert.True(t, errors.Is(err, ErrInvalidLerpTime), "got %v", err)
			return
		case cfg := <-w.Updates:
			assert.Equal(t, camera.DefaultPositionLerpTime, *cfg.Camera.PositionLerpTime, "invalid configuration delivered")
		case <-timeout:
			t.Fatal("timed out waiting for reload error")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freefly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	w, err := NewWatcher(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestLoadExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "freefly.yaml"))
	require.NoError(t, err)

	assert.Equal(t, input.DefaultBindings(), cfg.InputBindings())
	assert.Equal(t, camera.DefaultSettings().SensitivityCurve.Keys(), cfg.Settings().SensitivityCurve.Keys())
	assert.Equal(t, [3]float32{0, 1, -10}, cfg.Pose.Position)
}
