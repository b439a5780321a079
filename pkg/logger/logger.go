// Package logger builds the process-wide zerolog logger for the economy
// daemon. Deliberately small: a level, timestamps, and optional console
// output for local development.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the root logger. level: debug, info, warn, error; anything
// else falls back to info. pretty switches from JSON to human-readable
// console output.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}
	return NewWithWriter(level, w)
}

// NewWithWriter creates a logger writing to a custom writer. Tests use it
// to capture output.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
