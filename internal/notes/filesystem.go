package notes

// FilesystemManager provides an interface for filesystem operations.
// It abstracts file access to enable testing without touching the real filesystem.
type FilesystemManager interface {
	// Resolve validates a raw path and returns a Path object.
	// It resolves the path to an absolute path, stats it, and validates
	// it's a regular file or directory (not a symlink, device, etc.).
	Resolve(rawPath string) (*Path, error)

	// FindFiles recursively discovers regular files under the given
	// directory. Results are deterministic within a run: entries are
	// visited in lexical order at each level.
	FindFiles(root *Path) ([]*Path, error)

	// ReadFile reads the full contents of a regular file.
	ReadFile(path *Path) ([]byte, error)
}
