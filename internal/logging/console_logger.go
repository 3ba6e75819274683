package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/vvka-141/apiscan/pkg/apiscan"
)

// ConsoleLogger writes human-readable log lines to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger creates a ConsoleLogger on stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose, false)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to out.
// color enables ANSI level colouring.
func NewConsoleLoggerTo(out io.Writer, verbose, color bool) *ConsoleLogger {
	cw := zerolog.ConsoleWriter{
		Out:          zerolog.SyncWriter(out),
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &ConsoleLogger{log: zerolog.New(cw).Level(level)}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

var _ apiscan.Logger = (*ConsoleLogger)(nil)
