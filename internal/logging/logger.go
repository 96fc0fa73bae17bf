// Package logging provides structured logging for both CLI and GUI modes.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Mode selects where log output goes.
const (
	ModeCLI = "cli"
	ModeGUI = "gui"
)

const timeFormat = "15:04:05"

// Logger wraps zerolog with mode-specific behavior.
type Logger struct {
	zlog zerolog.Logger
}

// NewLogger creates a new logger for the specified mode.
func NewLogger(mode string) *Logger {
	// CLI mode prints to stdout next to command output, the GUI keeps stdout clean.
	out := os.Stderr
	if mode == ModeCLI {
		out = os.Stdout
	}
	return newWithWriter(zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat})
}

// NewWriterLogger creates a logger that writes console-formatted lines to w.
func NewWriterLogger(w io.Writer) *Logger {
	return newWithWriter(zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat, NoColor: true})
}

// Discard returns a logger that drops everything. Used by tests and optional collaborators.
func Discard() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

func newWithWriter(output io.Writer) *Logger {
	return &Logger{zlog: zerolog.New(output).With().Timestamp().Logger()}
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", name).Logger()}
}

// EnableDebug lowers the global level so Debug events are written.
func EnableDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
