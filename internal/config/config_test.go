package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		NotesDir: "/home/user/notes",
		LogDir:   "/home/user/.local/share/notedex/log",
		Database: DatabaseConfig{Type: "sqlite", DataDir: "/home/user/.local/share/notedex/db"},
		Server:   ServerConfig{Port: "8080"},
		OpenAI:   OpenAIConfig{BaseURL: "https://api.openai.com/v1"},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.NotesDir != original.NotesDir {
		t.Errorf("NotesDir = %q, want %q", got.NotesDir, original.NotesDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", got.Database.Type, "sqlite")
	}
	if got.Database.DataDir != original.Database.DataDir {
		t.Errorf("Database.DataDir = %q, want %q", got.Database.DataDir, original.Database.DataDir)
	}
	if got.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", got.Server.Port, "8080")
	}
	if got.OpenAI.BaseURL != original.OpenAI.BaseURL {
		t.Errorf("OpenAI.BaseURL = %q, want %q", got.OpenAI.BaseURL, original.OpenAI.BaseURL)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig("/home/user/notes", "/home/user/.local/share/notedex")

	if cfg.NotesDir != "/home/user/notes" {
		t.Errorf("NotesDir = %q", cfg.NotesDir)
	}
	if cfg.LogDir != filepath.Join("/home/user/.local/share/notedex", "log") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", cfg.Database.Type, "sqlite")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
}

func TestReadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notedex.toml")

	content := []byte(`
notes_dir = "/tmp/notes"
log_dir = "/tmp/log"

[database]
type = "memory"

[server]
port = "9000"
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if cfg.NotesDir != "/tmp/notes" {
		t.Errorf("NotesDir = %q, want %q", cfg.NotesDir, "/tmp/notes")
	}
	if cfg.Database.Type != "memory" {
		t.Errorf("Database.Type = %q, want %q", cfg.Database.Type, "memory")
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9000")
	}
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("ReadFromFile() expected error for missing file")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates a new config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sub", "notedex.toml")

		cfg := NewConfig("/tmp/notes", dir)
		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.NotesDir != "/tmp/notes" {
			t.Errorf("NotesDir = %q, want %q", got.NotesDir, "/tmp/notes")
		}
	})

	t.Run("refuses to overwrite an existing config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "notedex.toml")

		cfg := NewConfig("/tmp/notes", dir)
		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}
		if err := Init(path, cfg); err == nil {
			t.Error("second Init() succeeded, want error for existing file")
		}
	})
}
