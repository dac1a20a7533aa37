package reconcile

import (
	"os"

	"github.com/plugkit/plugsync/internal/fsutil"
)

// System abstracts system-level operations to enable dependency injection in
// reconcile logic. Every filesystem touch in this package goes through it.
type System interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	RemoveAll(path string) error
	CopyDir(src, dst string) error
	CopyFile(src, dst string) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns all directory entries.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Remove removes the named file or empty directory.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CopyDir recursively copies the contents of src into dst.
func (RealSystem) CopyDir(src, dst string) error {
	return fsutil.CopyDir(src, dst)
}

// CopyFile copies a single file from src to dst.
func (RealSystem) CopyFile(src, dst string) error {
	return fsutil.CopyFile(src, dst)
}
