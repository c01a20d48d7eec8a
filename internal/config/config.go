package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for notedex.
// It is resolved once at startup and immutable thereafter.
type Config struct {
	NotesDir string         `toml:"notes_dir"`
	LogDir   string         `toml:"log_dir"`
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	OpenAI   OpenAIConfig   `toml:"openai"`
}

// DatabaseConfig represents configuration for the note store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `toml:"port"`
}

// OpenAIConfig holds settings for the model-listing client.
// The API key is deliberately not part of the config file; it is read from
// the OPENAI_API_KEY environment variable.
type OpenAIConfig struct {
	BaseURL string `toml:"base_url"` // empty means the public OpenAI API
}

// NewConfig creates a new Config with the provided values and defaults.
func NewConfig(notesDir, baseDir string) *Config {
	return &Config{
		NotesDir: notesDir,
		LogDir:   filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Refuse to clobber an existing config
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
