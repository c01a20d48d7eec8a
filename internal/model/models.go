package model

import "time"

// Note represents one indexed note file.
//
// Filepath is the reconciliation key: at most one note exists per path.
// Re-indexing the same path overwrites Content and UpdatedAt in place and
// never changes ID or CreatedAt.
type Note struct {
	ID        string    `json:"id"`       // UUID, assigned on first creation
	Filename  string    `json:"filename"` // Base name of the source file at index time
	Filepath  string    `json:"filepath"` // Absolute path, unique across all notes
	Content   string    `json:"content"`  // Full text contents at index time
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
