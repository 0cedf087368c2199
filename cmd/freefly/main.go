// Command freefly drives a free-fly camera controller, either interactively in a window
// or headless from a scripted input.
package main

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/logging"
)

// Version information (set at build time)
var version = "dev"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

// GLFW must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "freefly",
		Short: "Free-fly camera controller",
		Long: `Free-fly camera controller.

Flies a camera with WASD/QE, looks around while the right mouse button is held,
sprints with Shift and changes speed with the scroll wheel.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newRunCmd(opts), newSimulateCmd(opts))
	return rootCmd
}

// loadConfig reads the configuration file, or returns the defaults when none was given.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// newLogger builds the application logger from the configuration and the --log-level override.
func (o *rootOptions) newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	level := cfg.Logging.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	return logging.New(logging.Options{
		Level:  level,
		Pretty: cfg.Logging.Pretty != nil && *cfg.Logging.Pretty,
		Out:    out,
	})
}
