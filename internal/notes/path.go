package notes

import "path/filepath"

// Path represents a validated filesystem path.
// Path objects are created by FilesystemManager.Resolve() or FindFiles(),
// which resolve the path to an absolute path and stat it.
type Path struct {
	absPath string
	isDir   bool
}

// NewPath creates a Path from its components.
// This is primarily for use by FilesystemManager implementations.
func NewPath(absPath string, isDir bool) *Path {
	return &Path{
		absPath: absPath,
		isDir:   isDir,
	}
}

// String returns the absolute path as a string.
func (p *Path) String() string {
	return p.absPath
}

// IsDir returns true if this path points to a directory.
func (p *Path) IsDir() bool {
	return p.isDir
}

// Base returns the last element of the path (the file's base name).
func (p *Path) Base() string {
	return filepath.Base(p.absPath)
}
