// Package logging provides structured logging for the codeowners engine
// using slog. It provides a consistent logging interface across all
// packages.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Level represents a logging level
type Level = slog.Level

// Logging levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger wraps slog.Logger with this package's context helpers.
type Logger struct {
	*slog.Logger
}

// defaultLogger is the global default logger
var defaultLogger = New(os.Stderr, LevelInfo)

// Default returns the default logger
func Default() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultLogger = l
	slog.SetDefault(l.Logger)
}

// New creates a new logger that writes to w at the given level
func New(w io.Writer, level Level) *Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format("15:04:05"))
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	handler := slog.NewTextHandler(w, opts)
	return &Logger{slog.New(handler)}
}

// NewJSON creates a new logger that outputs JSON.
func NewJSON(w io.Writer, level Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewJSONHandler(w, opts)
	return &Logger{slog.New(handler)}
}

// NewNop creates a logger that discards all output, used in tests.
func NewNop() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a logger with additional attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

// WithOperation returns a logger with an "op" attribute, e.g. "scan",
// "validate", "generate".
func (l *Logger) WithOperation(op string) *Logger {
	return l.With("op", op)
}

// WithPath returns a logger with a "path" attribute.
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// WithTeam returns a logger with a "team" attribute.
func (l *Logger) WithTeam(name string) *Logger {
	return l.With("team", name)
}

// WithError returns a logger with an error attribute
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.With("error", err.Error())
}

// WithDuration returns a logger with a duration attribute
func (l *Logger) WithDuration(d time.Duration) *Logger {
	return l.With("duration_ms", d.Milliseconds())
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, args ...any) { l.Logger.Debug(msg, args...) }

// Info logs at info level
func (l *Logger) Info(msg string, args ...any) { l.Logger.Info(msg, args...) }

// Warn logs at warn level
func (l *Logger) Warn(msg string, args ...any) { l.Logger.Warn(msg, args...) }

// Error logs at error level
func (l *Logger) Error(msg string, args ...any) { l.Logger.Error(msg, args...) }

// Package-level convenience functions using the default logger.

func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// WithOperation returns a logger with an operation attribute, built off
// the default logger.
func WithOperation(op string) *Logger { return defaultLogger.WithOperation(op) }

// shortPath returns the last two path components, keeping log lines
// readable without the full source tree prefix.
func shortPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			for j := i - 1; j >= 0; j-- {
				if path[j] == '/' {
					return path[j+1:]
				}
			}
			return path
		}
	}
	return path
}

// ParseLevel parses a level string from CLI flags or config.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
