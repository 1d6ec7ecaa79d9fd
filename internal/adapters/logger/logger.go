// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// messager describes an error that can report its own message without the chain.
// zerr errors implement it.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    slog.LevelVar
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild swaps the handler for the current output and mode. Callers hold mu or own l.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination, keeping the current mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// SetLevel sets the minimum level by name.
func (l *Logger) SetLevel(level string) {
	l.level.Set(slog.Level(domain.ParseLogLevel(level)))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its chain of causes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	var compileErr *domain.CompileError
	hasSource := errors.As(err, &compileErr) && compileErr.Source != ""
	if l.jsonMode {
		if hasSource {
			l.logger.Error("operation failed", "error", err, "unit", compileErr.Key, "source", compileErr.Source)
			return
		}
		l.logger.Error("operation failed", "error", err)
		return
	}
	msg := formatError(err)
	if hasSource {
		msg += "\n\n" + formatSource(compileErr)
	}
	l.logger.Error(msg)
}

// collectMessages walks the error chain. zerr errors contribute their own message;
// the first foreign error contributes its full text and ends the walk.
func collectMessages(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}
	return messages
}

func formatError(err error) string {
	var lines []string
	for i, msg := range collectMessages(err) {
		parts := strings.Split(msg, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// formatSource lists the generated code of a failed compile with line numbers.
func formatSource(e *domain.CompileError) string {
	lines := strings.Split(strings.TrimRight(e.Source, "\n"), "\n")
	width := len(strconv.Itoa(len(lines)))
	var b strings.Builder
	fmt.Fprintf(&b, "  Generated source of %s (%s):", e.Key, e.Name)
	for i, line := range lines {
		fmt.Fprintf(&b, "\n    %*d | %s", width, i+1, line)
	}
	return b.String()
}
