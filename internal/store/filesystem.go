package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vaxq-go/internal/vaxq"
)

// FileStore keeps the record data in a single flat file.
// Save writes to a temp file in the same directory and renames it over the
// destination, so a failed save never leaves a truncated data file behind.
type FileStore struct {
	path string
}

var _ vaxq.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load opens the data file for reading.
func (s *FileStore) Load() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	return f, nil
}

// Save replaces the data file with the contents of r.
func (s *FileStore) Save(r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp data file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing data file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
