package logger

import (
	"io"
	"log/slog"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// NewWithWriter creates new Logger instance writing to w.
// The CLI passes os.Stderr so logs never mix with command output.
func NewWithWriter(w io.Writer, level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// With returns a Logger that includes the given attributes in each output.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
