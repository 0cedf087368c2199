package engine

import (
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-freefly/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithTickRate sets the simulation rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate.Store(int64(tickPeriod(fps)))
	}
}

// WithFixedStep selects what the tick callback receives: the configured tick period
// (true, the default) or the measured wall-clock time since the previous tick.
//
// Parameters:
//   - fixed: true for fixed stepping
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFixedStep(fixed bool) EngineBuilderOption {
	return func(e *engine) {
		e.fixedStep = fixed
	}
}

// WithWindow attaches a window whose message loop Run drives.
// Without a window the engine runs headless.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithLogger sets the logger for engine lifecycle and profiling output.
func WithLogger(logger zerolog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logger.With().Str("component", "engine").Logger()
	}
}
