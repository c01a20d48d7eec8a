package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"notedex/internal/notes"
)

// OSFilesystemManager is the real filesystem implementation of FilesystemManager.
// It performs actual filesystem operations using the os package.
type OSFilesystemManager struct{}

// NewOSFilesystemManager creates a new filesystem manager that operates on the real filesystem.
func NewOSFilesystemManager() *OSFilesystemManager {
	return &OSFilesystemManager{}
}

// Resolve validates a raw path and returns a Path object.
func (m *OSFilesystemManager) Resolve(rawPath string) (*notes.Path, error) {
	// Convert to absolute path
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// Stat the path
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	// Reject special files; only regular files and directories are supported
	mode := info.Mode()
	if !mode.IsRegular() && !mode.IsDir() {
		return nil, fmt.Errorf("unsupported file type: %s", absPath)
	}

	return notes.NewPath(absPath, info.IsDir()), nil
}

// FindFiles recursively discovers regular files under the given directory.
// filepath.WalkDir visits entries in lexical order at each level, so the
// result is deterministic within a run. Directories, symlinks and special
// files are skipped.
func (m *OSFilesystemManager) FindFiles(root *notes.Path) ([]*notes.Path, error) {
	if !root.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root.String())
	}

	var paths []*notes.Path
	err := filepath.WalkDir(root.String(), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, notes.NewPath(p, false))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return paths, nil
}

// ReadFile reads the full contents of a regular file.
func (m *OSFilesystemManager) ReadFile(path *notes.Path) ([]byte, error) {
	if path.IsDir() {
		return nil, fmt.Errorf("cannot read directory as file: %s", path.String())
	}
	return os.ReadFile(path.String())
}

// Compile-time check that OSFilesystemManager implements notes.FilesystemManager
var _ notes.FilesystemManager = (*OSFilesystemManager)(nil)
