package store

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	"vaxq-go/internal/vaxq"
)

// AgeStore wraps another store and encrypts the data at rest using age's
// scrypt-based passphrase encryption. Patient data is sensitive; with this
// backend the data file on disk is an age ciphertext instead of plaintext.
type AgeStore struct {
	inner      vaxq.Store
	passphrase string
}

var _ vaxq.Store = (*AgeStore)(nil)

// NewAgeStore wraps inner with passphrase encryption.
func NewAgeStore(inner vaxq.Store, passphrase string) *AgeStore {
	return &AgeStore{inner: inner, passphrase: passphrase}
}

// Save encrypts the contents of r and saves the ciphertext to the inner store.
func (s *AgeStore) Save(r io.Reader) error {
	recipient, err := age.NewScryptRecipient(s.passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("encrypting data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encrypted data: %w", err)
	}

	return s.inner.Save(&buf)
}

// Load loads the ciphertext from the inner store and returns a reader over
// the decrypted data. A wrong passphrase surfaces as a load error.
func (s *AgeStore) Load() (io.ReadCloser, error) {
	rc, err := s.inner.Load()
	if err != nil {
		return nil, err
	}

	identity, err := age.NewScryptIdentity(s.passphrase)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("creating scrypt identity: %w", err)
	}

	dr, err := age.Decrypt(rc, identity)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("decrypting data: %w", err)
	}

	return &decryptReader{Reader: dr, inner: rc}, nil
}

// decryptReader closes the underlying ciphertext reader when the caller is
// done with the plaintext stream.
type decryptReader struct {
	io.Reader
	inner io.Closer
}

func (r *decryptReader) Close() error { return r.inner.Close() }
