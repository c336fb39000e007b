package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrFilesystem marks directory or file failures that abort a run.
var ErrFilesystem = errors.New("filesystem error")

// Storage provides a simple file-based storage backend.
// It reads and writes files directly under a base directory on the local filesystem.
type Storage struct {
	basePath string
}

// NewStorage creates a new Storage instance with the given basePath.
func NewStorage(basePath string) *Storage {
	return &Storage{basePath: basePath}
}

// Path returns the location of filename inside the storage.
func (s *Storage) Path(filename string) string {
	return filepath.Join(s.basePath, filename)
}

// EnsureDir creates the base directory if it does not exist yet.
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %w", ErrFilesystem, s.basePath, err)
	}

	return nil
}

// List returns the entries of the base directory sorted by name.
func (s *Storage) List(ctx context.Context) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list directory %s: %w", ErrFilesystem, s.basePath, err)
	}

	return entries, nil
}

// Save writes src to filename, replacing any existing file.
// The write is not atomic: an interrupted save leaves a partial file behind.
func (s *Storage) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dstPath := s.Path(filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create file %s: %w", ErrFilesystem, dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("%w: failed to save file %s: %w", ErrFilesystem, dstPath, err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close file %s: %w", ErrFilesystem, dstPath, err)
	}

	return dstPath, nil
}

// Load opens the file and returns a reader.
func (s *Storage) Load(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(filename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file %s: %w", ErrFilesystem, path, err)
	}

	return f, nil
}
