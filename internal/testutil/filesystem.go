package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"notedex/internal/notes"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Content     []byte
	IsDirectory bool
	ReadErr     error // if set, ReadFile fails with this error
}

// MockFilesystemManager is an in-memory filesystem for testing.
// Walk order over FindFiles is lexicographic, like the real implementation.
type MockFilesystemManager struct {
	files   map[string]*MockFile
	WalkErr error // if set, FindFiles fails with this error
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files: make(map[string]*MockFile),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFilesystemManager) AddFile(path string, content []byte) {
	m.files[path] = &MockFile{Content: content}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	m.files[path] = &MockFile{IsDirectory: true}
}

// AddUnreadableFile adds a file whose reads fail, e.g. to simulate a
// permission error or mid-walk deletion.
func (m *MockFilesystemManager) AddUnreadableFile(path string, readErr error) {
	m.files[path] = &MockFile{ReadErr: readErr}
}

// SetContent replaces the content of an existing file.
func (m *MockFilesystemManager) SetContent(path string, content []byte) {
	m.files[path].Content = content
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*notes.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, err
	}

	file, ok := m.files[absPath]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", absPath)
	}

	return notes.NewPath(absPath, file.IsDirectory), nil
}

func (m *MockFilesystemManager) FindFiles(root *notes.Path) ([]*notes.Path, error) {
	if m.WalkErr != nil {
		return nil, m.WalkErr
	}
	if !root.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root.String())
	}

	prefix := root.String()
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var result []*notes.Path
	for path, file := range m.files {
		if file.IsDirectory {
			continue
		}
		if strings.HasPrefix(path, prefix) {
			result = append(result, notes.NewPath(path, false))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result, nil
}

func (m *MockFilesystemManager) ReadFile(path *notes.Path) ([]byte, error) {
	file, ok := m.files[path.String()]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path.String())
	}
	if file.IsDirectory {
		return nil, fmt.Errorf("cannot read directory: %s", path.String())
	}
	if file.ReadErr != nil {
		return nil, file.ReadErr
	}
	return file.Content, nil
}

// Compile-time check
var _ notes.FilesystemManager = (*MockFilesystemManager)(nil)
