// Package logging builds the zerolog logger shared by the engine components.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Unknown values fall back to info.
	Level string
	// Pretty selects human-readable console output instead of JSON lines.
	Pretty bool
	// Out is the destination; nil means os.Stderr.
	Out io.Writer
}

// New creates a logger tagged with the application name.
//
// Parameters:
//   - opts: logger options
//
// Returns:
//   - zerolog.Logger: the configured logger
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05.000",
		}
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("app", "freefly").
		Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
//
// Parameters:
//   - level: level name (case-insensitive)
//
// Returns:
//   - zerolog.Level: the parsed level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
