package database

import (
	"fmt"
	"path/filepath"

	"notedex/internal/config"
)

// NewStoreFromConfig creates a SQLiteStore based on the database config type.
func NewStoreFromConfig(cfg config.DatabaseConfig) (*SQLiteStore, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "notedex.db"))
	case "memory":
		return NewSQLiteStore(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
