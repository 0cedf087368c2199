package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-freefly/engine"
	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/game_object"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

type simulateOptions struct {
	steps    int
	dt       float32
	hold     []string
	pointer  []float32
	touches  []float32
	scroll   float32
	realtime bool
}

// poseReport is a transform in the YAML output.
type poseReport struct {
	Position [3]float32 `yaml:"position"`
	// Rotation is pitch, yaw, roll in degrees.
	Rotation [3]float32 `yaml:"rotation"`
}

// simulateReport is the result of a scripted run.
type simulateReport struct {
	Steps        int        `yaml:"steps"`
	StepDuration float32    `yaml:"step_duration"`
	Boost        float32    `yaml:"boost"`
	Pose         poseReport `yaml:"pose"`
	Target       poseReport `yaml:"target"`
	// OriginInView reports whether the final view sees the landmark at the world origin.
	OriginInView bool `yaml:"origin_in_view"`
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the controller headless with a scripted input",
		Long: `Run the controller for a number of steps with the same input every step and
print the final pose as YAML. Scroll is applied on the first step only.

By default steps run back to back with a fixed duration, so identical invocations
produce identical output. With --realtime the steps are driven by the engine tick loop.`,
		Example: `  freefly simulate --steps 120 --hold forward,sprint
  freefly simulate --hold look --pointer 4,-2 --dt 0.008`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger := root.newLogger(cfg, cmd.ErrOrStderr())

			in, err := opts.input()
			if err != nil {
				return err
			}
			if opts.steps < 0 {
				return fmt.Errorf("steps must not be negative: %d", opts.steps)
			}

			var report simulateReport
			if opts.realtime {
				report = simulateRealtime(cfg, in, opts.scroll, opts.steps, logger)
			} else {
				dt := opts.dt
				if dt <= 0 {
					dt = float32(1 / cfg.Engine.TickRate)
				}
				report = simulate(cfg, in, opts.scroll, opts.steps, dt, logger)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			return enc.Close()
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.steps, "steps", "n", 60, "number of simulation steps")
	flags.Float32Var(&opts.dt, "dt", 0, "step duration in seconds (default 1/tick_rate)")
	flags.StringSliceVar(&opts.hold, "hold", nil, "controls held every step ("+controlNames()+")")
	flags.Float32SliceVar(&opts.pointer, "pointer", nil, "pointer delta per step as dx,dy (+Y up)")
	flags.Float32SliceVar(&opts.touches, "touch", nil, "touch deltas per step as dx1,dy1[,dx2,dy2,...]")
	flags.Float32Var(&opts.scroll, "scroll", 0, "scroll wheel movement on the first step")
	flags.BoolVar(&opts.realtime, "realtime", false, "drive the steps from the engine tick loop")

	return cmd
}

// controlNames lists the names --hold accepts.
func controlNames() string {
	controls := input.Controls()
	names := make([]string, len(controls))
	for i, c := range controls {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// input builds the per-step input from the flags.
func (o *simulateOptions) input() (input.State, error) {
	var s input.State
	for _, name := range o.hold {
		c, ok := input.ParseControl(name)
		if !ok {
			return s, fmt.Errorf("unknown control %q", name)
		}
		s = s.Press(c)
	}

	switch len(o.pointer) {
	case 0:
	case 2:
		s.Pointer = mgl32.Vec2{o.pointer[0], o.pointer[1]}
	default:
		return s, fmt.Errorf("pointer needs exactly 2 values, got %d", len(o.pointer))
	}

	if len(o.touches)%2 != 0 {
		return s, fmt.Errorf("touch needs pairs of values, got %d", len(o.touches))
	}
	for i := 0; i < len(o.touches); i += 2 {
		s.Touches = append(s.Touches, input.Touch{Delta: mgl32.Vec2{o.touches[i], o.touches[i+1]}})
	}
	return s, nil
}

// newCameraRig creates the camera object at the configured pose and its controller.
func newCameraRig(cfg *config.Config, logger zerolog.Logger) (game_object.GameObject, camera.CameraController) {
	p, r := cfg.Pose.Position, cfg.Pose.Rotation
	obj := game_object.NewGameObject(
		game_object.WithName("camera"),
		game_object.WithPosition(p[0], p[1], p[2]),
		game_object.WithRotation(r[0], r[1], r[2]),
	)
	ctrl := camera.NewCameraController(obj,
		camera.WithSettings(cfg.Settings()),
		camera.WithLogger(logger),
	)
	return obj, ctrl
}

// scriptedStep returns the input of step i: scroll only on the first step.
func scriptedStep(base input.State, scroll float32, i int) input.State {
	s := base
	if i == 0 {
		s.Scroll = scroll
	}
	return s
}

// simulate runs steps back to back with a fixed duration.
//
// Parameters:
//   - cfg: configuration providing the initial pose and settings
//   - in: the input held every step
//   - scroll: scroll movement on the first step
//   - steps: number of steps
//   - dt: step duration in seconds
//   - logger: controller logger
//
// Returns:
//   - simulateReport: the final state
func simulate(cfg *config.Config, in input.State, scroll float32, steps int, dt float32, logger zerolog.Logger) simulateReport {
	obj, ctrl := newCameraRig(cfg, logger)
	for i := 0; i < steps; i++ {
		ctrl.Update(dt, scriptedStep(in, scroll, i))
	}
	return newReport(cfg, obj, ctrl, steps, dt)
}

// simulateRealtime runs the steps from a headless engine and stops it after the last one.
func simulateRealtime(cfg *config.Config, in input.State, scroll float32, steps int, logger zerolog.Logger) simulateReport {
	obj, ctrl := newCameraRig(cfg, logger)
	if steps == 0 {
		return newReport(cfg, obj, ctrl, 0, 0)
	}

	eng := engine.NewEngine(
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithFixedStep(cfg.Engine.FixedStep == nil || *cfg.Engine.FixedStep),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithLogger(logger),
	)

	var done int
	var lastDt float32
	eng.SetTickCallback(func(dt float32) {
		ctrl.Update(dt, scriptedStep(in, scroll, done))
		lastDt = dt
		done++
		if done == steps {
			eng.Quit()
		}
	})
	eng.Run()

	return newReport(cfg, obj, ctrl, done, lastDt)
}

// newReport captures the final state, viewed at the configured window size.
func newReport(cfg *config.Config, obj game_object.GameObject, ctrl camera.CameraController, steps int, dt float32) simulateReport {
	pos, rot := obj.Transform()
	t := ctrl.Target()
	view := newView(obj, cfg.Window.Width, cfg.Window.Height)
	return simulateReport{
		Steps:        steps,
		StepDuration: dt,
		Boost:        ctrl.Boost(),
		Pose:         poseReport{Position: pos, Rotation: rot},
		Target: poseReport{
			Position: [3]float32{t.X, t.Y, t.Z},
			Rotation: [3]float32{t.Pitch, t.Yaw, t.Roll},
		},
		OriginInView: originInView(view),
	}
}
