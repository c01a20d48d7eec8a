package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - NOTEDEX_CONFIG_PATH: config file location (default: ~/.config/notedex.toml)
//   - NOTEDEX_HOME: base directory for notedex data (default: ~/.local/share/notedex)
//   - NOTEDEX_NOTES_DIR: notes directory (default: ~/notes)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	notesDir, err := getNotesDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
		"notes_dir":   notesDir,
	}, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv("NOTEDEX_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "notedex.toml"), nil
}

func getBaseDir() (string, error) {
	if path := os.Getenv("NOTEDEX_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "notedex"), nil
}

func getNotesDir() (string, error) {
	if path := os.Getenv("NOTEDEX_NOTES_DIR"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, "notes"), nil
}
