package vaxq

import "io"

// Store persists the flat-file record data between sessions.
// Implementations live in internal/store.
type Store interface {
	// Load returns a reader over the stored data. The caller must close it.
	// Loading a store that has never been saved returns an error satisfying
	// errors.Is(err, fs.ErrNotExist).
	Load() (io.ReadCloser, error)

	// Save replaces the stored data with the contents of r.
	Save(r io.Reader) error
}
