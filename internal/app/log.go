package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// logHandler is a custom slog.Handler that formats log records as:
//
//	<timestamp>\t<level>\t<message>\t<key=value ...>
type logHandler struct {
	w     io.Writer
	attrs []slog.Attr
}

func (h *logHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *logHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time.UTC().Format("2006-01-02T15:04:05Z")
	level := r.Level.String()

	_, err := fmt.Fprintf(h.w, "%s\t%s\t%s", ts, level, r.Message)
	if err != nil {
		return err
	}

	// Write pre-set attrs.
	for _, a := range h.attrs {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
	}

	// Write per-record attrs.
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
		return true
	})

	_, err = fmt.Fprintln(h.w)
	return err
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{
		w:     h.w,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *logHandler) WithGroup(string) slog.Handler { return h }

// newLogger creates a structured logger that writes to both
// logDir/notedex.log and stderr. It returns the logger and the open log file
// (for cleanup).
func newLogger(logDir string) (notesLogger, *os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return notesLogger{}, nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "notedex.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return notesLogger{}, nil, fmt.Errorf("opening log file: %w", err)
	}

	w := io.MultiWriter(f, os.Stderr)
	handler := &logHandler{w: w}
	return notesLogger{l: slog.New(handler)}, f, nil
}

// notesLogger wraps *slog.Logger to satisfy the notes.Logger interface.
type notesLogger struct {
	l *slog.Logger
}

func (a notesLogger) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a notesLogger) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a notesLogger) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a notesLogger) Error(msg string, args ...any) { a.l.Error(msg, args...) }
