package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notedex/internal/database/migrations"
	"notedex/internal/model"
	"notedex/internal/notes"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the notes.Store interface using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite-backed note store.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteStore{
		db:   db,
		path: path,
	}, nil
}

// NewSQLiteStoreFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteStoreFromDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:   db,
		path: "",
	}
}

// OpenConnection opens and configures a SQLite database connection with appropriate PRAGMAs.
// This is exported for use in tools and tests that need a properly configured SQLite connection.
// path can be a file path or ":memory:" for an in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Migrate brings the database schema to the latest version.
func (s *SQLiteStore) Migrate() error {
	return migrations.MigrateUp(s.db)
}

const noteColumns = "id, filename, filepath, content, created_at, updated_at"

func (s *SQLiteStore) FindByFilepath(filepath string) (*model.Note, error) {
	row := s.db.QueryRowContext(context.Background(),
		"SELECT "+noteColumns+" FROM notes WHERE filepath = ?", filepath)

	note, err := scanNote(row)
	if err != nil {
		return nil, fmt.Errorf("finding note by filepath: %w", err)
	}
	return note, nil
}

func (s *SQLiteStore) FindByID(id string) (*model.Note, error) {
	row := s.db.QueryRowContext(context.Background(),
		"SELECT "+noteColumns+" FROM notes WHERE id = ?", id)

	note, err := scanNote(row)
	if err != nil {
		return nil, fmt.Errorf("finding note by id: %w", err)
	}
	return note, nil
}

func (s *SQLiteStore) ListAll() ([]*model.Note, error) {
	rows, err := s.db.QueryContext(context.Background(),
		"SELECT "+noteColumns+" FROM notes ORDER BY filepath")
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var result []*model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Filename, &n.Filepath, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return result, nil
}

func (s *SQLiteStore) Count() (int, error) {
	var count int
	err := s.db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM notes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return count, nil
}

// Save upserts the note, keyed by ID. On conflict only content and
// updated_at are overwritten, so filepath, filename and created_at stay as
// they were at first creation. The UNIQUE constraint on filepath rejects a
// second note for the same path.
func (s *SQLiteStore) Save(note *model.Note) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO notes (id, filename, filepath, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at`,
		note.ID, note.Filename, note.Filepath, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanNote scans a single-row query result into a Note.
// A missing row is not an error: it returns (nil, nil).
func scanNote(row *sql.Row) (*model.Note, error) {
	var n model.Note
	err := row.Scan(&n.ID, &n.Filename, &n.Filepath, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Compile-time check that SQLiteStore implements notes.Store
var _ notes.Store = (*SQLiteStore)(nil)
