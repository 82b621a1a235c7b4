package ports

import "io"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Create opens a file for writing, truncating it and creating
	// parent directories as needed.
	Create(path string) (io.WriteCloser, error)

	// Remove deletes a file.
	Remove(path string) error
}
