package notes

import "notedex/internal/model"

// Store provides an interface for note persistence.
type Store interface {
	// FindByFilepath returns the note with an exact filepath match,
	// or nil if no such note exists.
	FindByFilepath(filepath string) (*model.Note, error)

	// FindByID returns the note with the given ID, or nil if no such
	// note exists.
	FindByID(id string) (*model.Note, error)

	// ListAll returns every stored note, ordered by filepath.
	ListAll() ([]*model.Note, error)

	// Count returns the number of stored notes.
	Count() (int, error)

	// Save upserts the note, keyed by ID.
	Save(note *model.Note) error

	// Close closes the store.
	Close() error
}
