// Package logger implements the logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.aurforge.dev/pkgsum/internal/core/ports"
)

// messager describes an error that can report its own message without the
// rest of the chain, as zerr errors do.
type messager interface {
	Message() string
}

// Logger implements ports.Logger on slog with the pretty handler.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer) ports.Logger {
	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain, one cause per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	lines := []string{"Error: " + messages[0]}
	for i, msg := range messages[1:] {
		if i == 0 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+msg)
	}

	l.logger.Error(strings.Join(lines, "\n"))
}
