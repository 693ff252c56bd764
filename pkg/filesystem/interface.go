package filesystem

import (
	"os"
)

// FileSystem defines the filesystem operations markfile performs.
// This interface allows mocking of file I/O operations in tests.
//
//go:generate go run go.uber.org/mock/mockgen@latest -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type FileSystem interface {
	// Stat returns file info.
	Stat(name string) (os.FileInfo, error)

	// OpenFile opens a file with the given flag and permissions.
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// osFileSystem implements FileSystem using the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the os package.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}
