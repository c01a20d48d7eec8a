package notes

import (
	"fmt"
	"path/filepath"
	"strings"

	"notedex/internal/model"
)

// Service synchronizes on-disk note files into the note store and serves
// read queries for the HTTP layer.
type Service struct {
	store    Store
	fsmgr    FilesystemManager
	logger   Logger
	clock    Clock
	idgen    IDGenerator
	notesDir string
}

// NewService creates a Service with the provided dependencies.
// notesDir is resolved once per run; it is immutable for the Service lifetime.
func NewService(store Store, fsmgr FilesystemManager, logger Logger, clock Clock, idgen IDGenerator, notesDir string) *Service {
	return &Service{
		store:    store,
		fsmgr:    fsmgr,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
		notesDir: notesDir,
	}
}

// Result reports the outcome of one indexing run. Indexed and Failed are
// disjoint: every candidate file counts in exactly one of them.
type Result struct {
	Indexed int `json:"indexed"`
	Failed  int `json:"failed"`
}

// IndexAll synchronizes every .md and .txt file under the notes directory
// into the store. A file that cannot be read or saved is logged, counted in
// Result.Failed, and skipped; it never aborts the batch. Only two failures
// are fatal: the notes directory being missing or not a directory
// (*ConfigError, checked before any work begins), and the directory
// enumeration itself failing (*WalkError).
func (s *Service) IndexAll() (Result, error) {
	s.logger.Info("indexing notes", "dir", s.notesDir)

	root, err := s.fsmgr.Resolve(s.notesDir)
	if err != nil {
		return Result{}, &ConfigError{Dir: s.notesDir, Reason: "does not exist"}
	}
	if !root.IsDir() {
		return Result{}, &ConfigError{Dir: s.notesDir, Reason: "not a directory"}
	}

	files, err := s.fsmgr.FindFiles(root)
	if err != nil {
		return Result{}, &WalkError{Dir: s.notesDir, Err: err}
	}

	var res Result
	for _, f := range files {
		if !hasValidExtension(f.Base()) {
			continue
		}
		if err := s.indexOne(f); err != nil {
			s.logger.Error("failed to index note", "path", f.String(), "error", err)
			res.Failed++
			continue
		}
		res.Indexed++
	}

	s.logger.Info("indexing complete", "indexed", res.Indexed, "failed", res.Failed)
	return res, nil
}

// indexOne reads one file and reconciles it against the store, keyed by
// absolute path: if a note for the path exists its content is overwritten in
// place (ID, filepath, filename and CreatedAt are untouched), otherwise a new
// note is created. No diffing or merging — the fresh read always wins.
func (s *Service) indexOne(path *Path) error {
	content, err := s.fsmgr.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	existing, err := s.store.FindByFilepath(path.String())
	if err != nil {
		return fmt.Errorf("looking up note: %w", err)
	}

	now := s.clock.Now()

	if existing != nil {
		existing.Content = string(content)
		existing.UpdatedAt = now
		if err := s.store.Save(existing); err != nil {
			return fmt.Errorf("updating note: %w", err)
		}
		s.logger.Debug("updated note", "filename", path.Base())
		return nil
	}

	note := &model.Note{
		ID:        s.idgen.New(),
		Filename:  path.Base(),
		Filepath:  path.String(),
		Content:   string(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(note); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	s.logger.Debug("created note", "filename", path.Base())
	return nil
}

// hasValidExtension reports whether the base name ends in .md or .txt,
// case-insensitively. This is the sole content-type gate; file contents are
// never inspected.
func hasValidExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".txt"
}

// ListNotes returns every stored note, ordered by filepath.
func (s *Service) ListNotes() ([]*model.Note, error) {
	return s.store.ListAll()
}

// GetNote returns the note with the given ID, or nil if no such note exists.
func (s *Service) GetNote(id string) (*model.Note, error) {
	return s.store.FindByID(id)
}

// Count returns the number of stored notes.
func (s *Service) Count() (int, error) {
	return s.store.Count()
}
