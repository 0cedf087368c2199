package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-freefly/engine"
	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
	"github.com/Carmen-Shannon/oxy-freefly/engine/renderer"
	"github.com/Carmen-Shannon/oxy-freefly/engine/window"
)

// poseLogInterval is the number of ticks between pose log entries.
const poseLogInterval = 60

type runOptions struct {
	watch bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and fly the camera with keyboard and mouse",
		Long: `Open a window and fly the camera with live keyboard and mouse input.
The pose is logged at debug level. Escape closes the window.

With --config the file is watched and valid changes are applied without restarting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger := root.newLogger(cfg, cmd.ErrOrStderr())

			var updates <-chan *config.Config
			if opts.watch && root.configPath != "" {
				w, err := config.NewWatcher(root.configPath, logger)
				if err != nil {
					return err
				}
				defer w.Close()
				updates = w.Updates
				go drainErrors(w.Errors)
			}

			return runInteractive(cfg, updates, logger)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", true, "reload the configuration file when it changes")
	return cmd
}

// drainErrors discards reload errors; the watcher has already logged them.
func drainErrors(errs <-chan error) {
	for range errs {
	}
}

// runInteractive wires window events into an input tracker, drives the controller
// from the engine tick loop and presents a horizon cue until the window closes.
//
// Parameters:
//   - cfg: the initial configuration
//   - updates: reloaded configurations, or nil
//   - logger: application logger
//
// Returns:
//   - error: always nil; window creation failures panic and GPU failures only disable presenting
func runInteractive(cfg *config.Config, updates <-chan *config.Config, logger zerolog.Logger) error {
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
		window.WithCloseOnEscape(cfg.Window.CloseOnEscape == nil || *cfg.Window.CloseOnEscape),
	)
	defer win.Close()

	tracker := input.NewTracker(cfg.InputBindings())
	obj, ctrl := newCameraRig(cfg, logger)
	view := newView(obj, win.Width(), win.Height())

	// Without a GPU the camera still flies; only the window stays blank.
	rend, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height(),
		renderer.WithVSync(cfg.Window.VSync == nil || *cfg.Window.VSync),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("presenting disabled")
	} else {
		defer rend.Release()
		frameErrLog := logger.Sample(&zerolog.BasicSampler{N: poseLogInterval})
		win.SetUpdateCallback(func() {
			rend.SetClearColor(renderer.HorizonColor(view.Forward().Y()))
			if err := rend.Frame(); err != nil {
				frameErrLog.Warn().Err(err).Msg("frame skipped")
			}
		})
	}

	win.SetKeyDownCallback(tracker.KeyDown)
	win.SetKeyUpCallback(tracker.KeyUp)
	win.SetCursorPosCallback(tracker.CursorMoved)
	win.SetScrollCallback(tracker.Scrolled)
	win.SetMouseButtonDownCallback(func(button uint32) {
		tracker.MouseButtonDown(button)
		if tracker.Bound(input.ControlLook, input.Binding{Code: button, Mouse: true}) {
			win.SetCursorCaptured(true)
		}
	})
	win.SetMouseButtonUpCallback(func(button uint32) {
		tracker.MouseButtonUp(button)
		if tracker.Bound(input.ControlLook, input.Binding{Code: button, Mouse: true}) {
			win.SetCursorCaptured(false)
		}
	})
	win.SetFocusLostCallback(func() {
		tracker.ReleaseAll()
		win.SetCursorCaptured(false)
	})
	win.SetResizeCallback(func(width, height int) {
		view.SetAspect(aspect(width, height))
		if rend != nil {
			rend.Resize(width, height)
		}
	})

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithFixedStep(cfg.Engine.FixedStep == nil || *cfg.Engine.FixedStep),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithLogger(logger),
	)

	poseLog := logger.Sample(&zerolog.BasicSampler{N: poseLogInterval})
	eng.SetTickCallback(func(dt float32) {
		select {
		case next, ok := <-updates:
			if ok {
				applyConfig(next, ctrl, tracker, eng)
				logger.Info().Msg("configuration reloaded")
			}
		default:
		}

		ctrl.Update(dt, tracker.Snapshot())
		view.Update()

		s := ctrl.Interpolated()
		poseLog.Debug().
			Float32("x", s.X).
			Float32("y", s.Y).
			Float32("z", s.Z).
			Float32("yaw", s.Yaw).
			Float32("pitch", s.Pitch).
			Float32("boost", ctrl.Boost()).
			Bool("origin_in_view", originInView(view)).
			Msg("camera pose")
	})

	eng.Run()

	pos, rot := obj.Transform()
	logger.Info().
		Str("object", obj.Name()).
		Floats32("position", pos[:]).
		Floats32("rotation", rot[:]).
		Msg("final pose")
	return nil
}

// applyConfig pushes a reloaded configuration into the running components.
// The initial pose is not reapplied.
func applyConfig(cfg *config.Config, ctrl camera.CameraController, tracker *input.Tracker, eng engine.Engine) {
	ctrl.SetSettings(cfg.Settings())
	tracker.SetBindings(cfg.InputBindings())
	eng.SetTickRate(cfg.Engine.TickRate)
	if cfg.Engine.Profiling {
		eng.EnableProfiler()
	} else {
		eng.DisableProfiler()
	}
}

// originRadius is the radius of the landmark sphere at the world origin.
const originRadius = 1

// newView creates the perspective view of the camera object for a viewport size.
func newView(obj camera.Pose, width, height int) camera.View {
	return camera.NewView(obj, camera.WithAspect(aspect(width, height)))
}

// originInView reports whether the landmark sphere at the world origin intersects the view volume.
func originInView(view camera.View) bool {
	return view.Frustum().IntersectsSphere(mgl32.Vec3{}, originRadius)
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
