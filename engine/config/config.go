// Package config loads the free-fly camera configuration from YAML and watches it for changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/curve"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

var (
	// ErrInvalidLerpTime is returned when a lerp time is outside (0, 1].
	ErrInvalidLerpTime = errors.New("lerp time must be in (0, 1]")
	// ErrNonMonotonicCurve is returned when the sensitivity curve decreases.
	ErrNonMonotonicCurve = errors.New("sensitivity curve must be monotonic")
	// ErrInvalidTickRate is returned when the tick rate is not positive.
	ErrInvalidTickRate = errors.New("tick rate must be positive")
	// ErrInvalidSizeLimits is returned when the window size limits are negative or inverted.
	ErrInvalidSizeLimits = errors.New("window size limits must be non-negative and max >= min")
)

// Camera holds the controller tuning. Pointer fields distinguish "unset" from zero.
type Camera struct {
	Boost            *float32         `yaml:"boost"`
	PositionLerpTime *float32         `yaml:"position_lerp_time"`
	RotationLerpTime *float32         `yaml:"rotation_lerp_time"`
	InvertY          bool             `yaml:"invert_y"`
	ScrollBoostStep  *float32         `yaml:"scroll_boost_step"`
	SensitivityCurve []curve.Keyframe `yaml:"sensitivity_curve"`
}

// Pose is the initial transform of the camera object.
type Pose struct {
	Position [3]float32 `yaml:"position"`
	// Rotation is pitch, yaw, roll in degrees.
	Rotation [3]float32 `yaml:"rotation"`
}

// Engine holds host scheduler settings.
type Engine struct {
	TickRate  float64 `yaml:"tick_rate"`
	FixedStep *bool   `yaml:"fixed_step"`
	Profiling bool    `yaml:"profiling"`
}

// Window holds window settings for interactive runs.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// MinWidth and MinHeight bound interactive resizing; MaxWidth and MaxHeight
	// do too unless zero, which leaves that dimension unbounded.
	MinWidth      int   `yaml:"min_width"`
	MinHeight     int   `yaml:"min_height"`
	MaxWidth      int   `yaml:"max_width"`
	MaxHeight     int   `yaml:"max_height"`
	VSync         *bool `yaml:"vsync"`
	CloseOnEscape *bool `yaml:"close_on_escape"`
}

// Logging holds logger settings.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty *bool  `yaml:"pretty"`
}

// Config is the root of the YAML configuration file.
type Config struct {
	Camera   Camera              `yaml:"camera"`
	Pose     Pose                `yaml:"pose"`
	Bindings map[string][]string `yaml:"bindings"`
	Engine   Engine              `yaml:"engine"`
	Window   Window              `yaml:"window"`
	Logging  Logging             `yaml:"logging"`
}

// Default returns a configuration with every field set to its default.
//
// Returns:
//   - *Config: the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, defaults and validates a YAML configuration file.
//
// Parameters:
//   - filename: path to the YAML file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or fails validation
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", filename, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes, defaults and validates YAML configuration bytes.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the document is malformed or invalid
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := camera.DefaultSettings()
	if c.Camera.Boost == nil {
		c.Camera.Boost = ptr(d.Boost)
	}
	if c.Camera.PositionLerpTime == nil {
		c.Camera.PositionLerpTime = ptr(d.PositionLerpTime)
	}
	if c.Camera.RotationLerpTime == nil {
		c.Camera.RotationLerpTime = ptr(d.RotationLerpTime)
	}
	if c.Camera.ScrollBoostStep == nil {
		c.Camera.ScrollBoostStep = ptr(d.ScrollBoostStep)
	}
	if len(c.Camera.SensitivityCurve) == 0 {
		c.Camera.SensitivityCurve = d.SensitivityCurve.Keys()
	}

	if c.Engine.TickRate == 0 {
		c.Engine.TickRate = 60
	}
	if c.Engine.FixedStep == nil {
		c.Engine.FixedStep = ptr(true)
	}

	if c.Window.Title == "" {
		c.Window.Title = "Oxy Free-Fly Camera"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height == 0 {
		c.Window.Height = 720
	}
	if c.Window.MinWidth == 0 {
		c.Window.MinWidth = 320
	}
	if c.Window.MinHeight == 0 {
		c.Window.MinHeight = 200
	}
	if c.Window.VSync == nil {
		c.Window.VSync = ptr(true)
	}
	if c.Window.CloseOnEscape == nil {
		c.Window.CloseOnEscape = ptr(true)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Pretty == nil {
		c.Logging.Pretty = ptr(true)
	}
}

// Validate checks value ranges. Defaults must already be applied.
//
// Returns:
//   - error: the first violated constraint, wrapping one of the Err* sentinels where applicable
func (c *Config) Validate() error {
	if lt := *c.Camera.PositionLerpTime; lt <= 0 || lt > 1 {
		return fmt.Errorf("camera.position_lerp_time %v: %w", lt, ErrInvalidLerpTime)
	}
	if lt := *c.Camera.RotationLerpTime; lt <= 0 || lt > 1 {
		return fmt.Errorf("camera.rotation_lerp_time %v: %w", lt, ErrInvalidLerpTime)
	}
	if !curve.NewCurve(c.Camera.SensitivityCurve...).IsMonotonic(32) {
		return fmt.Errorf("camera.sensitivity_curve: %w", ErrNonMonotonicCurve)
	}
	if c.Engine.TickRate < 0 {
		return fmt.Errorf("engine.tick_rate %v: %w", c.Engine.TickRate, ErrInvalidTickRate)
	}
	if c.Window.MinWidth < 0 || c.Window.MinHeight < 0 ||
		(c.Window.MaxWidth > 0 && c.Window.MaxWidth < c.Window.MinWidth) ||
		(c.Window.MaxHeight > 0 && c.Window.MaxHeight < c.Window.MinHeight) {
		return fmt.Errorf("window size limits %dx%d to %dx%d: %w",
			c.Window.MinWidth, c.Window.MinHeight, c.Window.MaxWidth, c.Window.MaxHeight, ErrInvalidSizeLimits)
	}
	if _, err := input.ParseBindings(c.Bindings); err != nil {
		return fmt.Errorf("bindings: %w", err)
	}
	return nil
}

// Settings converts the camera section into controller settings.
//
// Returns:
//   - camera.Settings: the controller settings
func (c *Config) Settings() camera.Settings {
	return camera.Settings{
		Boost:            *c.Camera.Boost,
		PositionLerpTime: *c.Camera.PositionLerpTime,
		RotationLerpTime: *c.Camera.RotationLerpTime,
		SensitivityCurve: curve.NewCurve(c.Camera.SensitivityCurve...),
		InvertY:          c.Camera.InvertY,
		ScrollBoostStep:  *c.Camera.ScrollBoostStep,
	}
}

// InputBindings resolves the bindings section. The configuration must have been validated.
//
// Returns:
//   - input.Bindings: the resolved bindings
func (c *Config) InputBindings() input.Bindings {
	b, err := input.ParseBindings(c.Bindings)
	if err != nil {
		return input.DefaultBindings()
	}
	return b
}

func ptr[T any](v T) *T {
	return &v
}
