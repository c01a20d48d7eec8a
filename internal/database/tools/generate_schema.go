//go:build ignore

// Command generate_schema regenerates internal/database/schema.go from the
// migration files. Run from the project root:
//
//	go run internal/database/tools/generate_schema.go
package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"notedex/internal/database"
	"notedex/internal/database/migrations"
)

func main() {
	// Create in-memory database with proper SQLite configuration
	db, err := database.OpenConnection(":memory:")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Apply all migrations
	if err := migrations.MigrateUp(db); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	// Extract schema from the migrated database
	schema, err := extractSchema(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to extract schema: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join("internal", "database", "schema.go")
	if err := os.WriteFile(outPath, []byte(renderGoFile(schema)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write schema file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s from migrations\n", outPath)
}

// extractSchema extracts the SQL schema from the database.
// It queries sqlite_master for all CREATE statements, excluding:
// - SQLite internal tables (sqlite_*)
// - Migration tracking table (schema_migrations)
func extractSchema(db *sql.DB) (string, error) {
	query := `
		SELECT sql || ';'
		FROM sqlite_master
		WHERE type IN ('table', 'index')
		  AND name NOT LIKE 'sqlite_%'
		  AND name != 'schema_migrations'
		  AND tbl_name != 'schema_migrations'
		ORDER BY
		  CASE type
		    WHEN 'table' THEN 1
		    WHEN 'index' THEN 2
		  END,
		  name
	`

	rows, err := db.Query(query)
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var schema string
	for rows.Next() {
		var sql string
		if err := rows.Scan(&sql); err != nil {
			return "", fmt.Errorf("scan failed: %w", err)
		}
		schema += sql + "\n"
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("rows error: %w", err)
	}

	return schema, nil
}

// renderGoFile wraps the extracted schema in the schema.go source file.
func renderGoFile(schema string) string {
	return `package database

// Schema is the full current schema, mirroring the migration files in
// migrations/files. It exists so tests can apply the schema to an in-memory
// database in one step without going through golang-migrate.
//
// Regenerate after adding a migration:
//
//	go run internal/database/tools/generate_schema.go
const Schema = ` + "`" + schema + "`\n"
}
