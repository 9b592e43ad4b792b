package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component attribute so db and calendar
// diagnostics can be told apart without touching user-facing fmt output.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing to stderr; CLI output on stdout stays clean.
func New(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler), component: "app"}
}

// WithComponent returns a logger tagged with a specific component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

var defaultLogger = New(slog.LevelWarn)

// Default returns the process-wide logger. Verbosity is raised by the
// --verbose root flag.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	defaultLogger = l
	slog.SetDefault(l.Logger)
}
