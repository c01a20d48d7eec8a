package app

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&logHandler{w: &buf})

	logger.Info("indexing complete", "indexed", 3, "failed", 1)

	line := buf.String()
	fields := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	if len(fields) != 5 {
		t.Fatalf("log line has %d fields, want 5: %q", len(fields), line)
	}
	if fields[1] != "INFO" {
		t.Errorf("level field = %q, want INFO", fields[1])
	}
	if fields[2] != "indexing complete" {
		t.Errorf("message field = %q", fields[2])
	}
	if fields[3] != "indexed=3" || fields[4] != "failed=1" {
		t.Errorf("attr fields = %q %q", fields[3], fields[4])
	}
}

func TestLogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&logHandler{w: &buf}).With("component", "indexer")

	logger.Warn("skipping file")

	line := buf.String()
	if !strings.Contains(line, "component=indexer") {
		t.Errorf("log line missing pre-set attr: %q", line)
	}
	if !strings.Contains(line, "WARN") {
		t.Errorf("log line missing level: %q", line)
	}
}

func TestNewLogger_CreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := newLogger(dir)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	logger.Info("hello")

	if f.Name() == "" {
		t.Error("log file has no name")
	}
	if !strings.HasSuffix(f.Name(), "notedex.log") {
		t.Errorf("log file = %q, want notedex.log", f.Name())
	}
}
