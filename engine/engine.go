package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/oxy-freefly/engine/profiler"
	"github.com/Carmen-Shannon/oxy-freefly/engine/window"
)

// defaultTickRate is the simulation rate used when none (or an invalid one) is configured.
const defaultTickRate = 60.0

// engine implements the Engine interface.
// Coordinates the simulation tick goroutine and the window message loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	logger zerolog.Logger

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate atomic.Int64 // time.Duration
	fixedStep      bool
	tickCallback   func(deltaTime float32)
}

// Engine hosts a simulation: it owns the tick loop and, optionally, a window whose
// message loop runs on the calling goroutine.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when headless
	Window() window.Window

	// EnableProfiler enables step rate and memory statistics in the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation rate in ticks per second.
	// Takes effect immediately when the engine is running.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the configured duration of one tick.
	//
	// Returns:
	//   - time.Duration: the tick period
	TickRate() time.Duration

	// SetTickCallback registers the function called each tick.
	// The callback always runs on the same goroutine, never concurrently with itself.
	// With fixed stepping (the default) it receives the configured tick period;
	// otherwise the measured time since the previous tick.
	//
	// Parameters:
	//   - callback: function receiving the step duration in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run starts the tick loop and blocks. With a window it runs the window message loop
	// until the window closes; headless it waits for Quit. The tick goroutine has
	// stopped when Run returns.
	Run()

	// Quit signals the engine to stop and asks the window, if any, to close.
	// Safe to call multiple times and from any goroutine, including the tick callback.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		logger:          zerolog.Nop(),
		fixedStep:       true,
	}
	e.engineTickRate.Store(int64(tickPeriod(defaultTickRate)))

	for _, opt := range options {
		opt(e)
	}

	e.profiler = profiler.NewProfiler(e.logger)
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate updates the tick period. While running, the new period is handed to the
// tick goroutine; a pending, not yet applied update is replaced.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickPeriod(fps)

	if !e.running.Load() {
		e.engineTickRate.Store(int64(newRate))
		return
	}

	for {
		select {
		case e.tickRateChannel <- newRate:
			return
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
		}
	}
}

func (e *engine) TickRate() time.Duration {
	return time.Duration(e.engineTickRate.Load())
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Run() {
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Warn().Msg("engine already running")
		return
	}
	e.logger.Info().
		Dur("tick", e.TickRate()).
		Bool("fixed_step", e.fixedStep).
		Bool("windowed", e.window != nil).
		Msg("engine started")

	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	e.running.Store(false)
	e.logger.Info().Msg("engine stopped")
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the tick goroutine to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback at the configured rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
// A panic in the tick callback is logged and stops the engine.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("tick goroutine recovered from panic")
			e.signalQuit()
		}
	}()

	period := e.TickRate()
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case now := <-ticker.C:
			// quit may have become ready in the same select
			select {
			case <-e.quitChannel:
				return
			default:
			}

			dt := float32(period.Seconds())
			if !e.fixedStep {
				dt = float32(now.Sub(lastTick).Seconds())
			}
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			period = newRate
			ticker.Reset(newRate)
			e.engineTickRate.Store(int64(newRate))
			e.logger.Debug().Dur("tick", newRate).Msg("tick rate changed")
		}
	}
}

// tickPeriod converts a tick rate in Hz into a period, substituting the default for
// non-positive rates.
func tickPeriod(fps float64) time.Duration {
	if fps <= 0 {
		fps = defaultTickRate
	}
	return time.Duration(float64(time.Second) / fps)
}
