// Package adapter contains the storage and filesystem adapters used by the search engine.
package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "tgrep.dev/pkg/tgrep/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when walking search roots. It hides direct `os` access so the
// enumeration and scanning logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Stat returns metadata for path, following symbolic links.
	Stat(path m.Path) (os.FileInfo, error)

	// Lstat returns metadata for path without following a final symbolic link.
	Lstat(path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// EvalSymlinks resolves path to its real location.
	EvalSymlinks(path m.Path) (m.Path, error)

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the coordinator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Lstat returns os.FileInfo metadata without following a trailing symlink.
func (a *LocalSourceFSAdapter) Lstat(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// ReadDir returns the directory entries sorted by file name.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// EvalSymlinks returns the absolute real path of path.
func (a *LocalSourceFSAdapter) EvalSymlinks(path m.Path) (m.Path, error) {
	resolved, err := filepath.EvalSymlinks(string(path))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path comes from the user's own search roots
	return os.Open(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
