package database

// Schema is the full current schema, mirroring the migration files in
// migrations/files. It exists so tests can apply the schema to an in-memory
// database in one step without going through golang-migrate.
//
// Regenerate after adding a migration:
//
//	go run internal/database/tools/generate_schema.go
const Schema = `CREATE TABLE notes (
    id TEXT PRIMARY KEY,
    filename TEXT NOT NULL,
    filepath TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
