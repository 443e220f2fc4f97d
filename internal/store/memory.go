package store

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"vaxq-go/internal/vaxq"
)

// MemoryStore is an in-memory implementation of the Store interface,
// useful for tests and throwaway sessions.
type MemoryStore struct {
	data  []byte
	saved bool
}

var _ vaxq.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a reader over the last saved data.
func (s *MemoryStore) Load() (io.ReadCloser, error) {
	if !s.saved {
		return nil, fmt.Errorf("no data saved: %w", fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// Save replaces the stored data with the contents of r.
func (s *MemoryStore) Save(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	s.data = data
	s.saved = true
	return nil
}
