// Package logger wraps zerolog with the defaults used throughout gkstab:
// info level, with debug-level tracing only when a caller opts in.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LoggerOptions configures a new Logger.
type LoggerOptions struct {
	// Debug enables debug-level logging. The core simulator never logs
	// by default; callers (qc/simulator.Simulator, the demo driver, the
	// HTTP gateway) opt in explicitly.
	Debug bool
}

// Logger is a small wrapper around zerolog.Logger so call sites can
// flip verbosity without reaching into zerolog directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a console-writer backed Logger at info level, or
// debug level when options.Debug is set.
func NewLogger(options LoggerOptions) *Logger {
	level := zerolog.InfoLevel
	if options.Debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	l := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return &Logger{Logger: l}
}
