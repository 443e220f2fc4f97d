package store

import (
	"fmt"

	"vaxq-go/internal/config"
	"vaxq-go/internal/vaxq"
)

// PassphraseFunc supplies the passphrase for an encrypted store. It is only
// invoked when the config actually selects the age backend, so plaintext
// setups never prompt.
type PassphraseFunc func() (string, error)

// NewStoreFromConfig creates a Store implementation based on the store config type.
func NewStoreFromConfig(cfg config.StoreConfig, passphrase PassphraseFunc) (vaxq.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.Path == "" {
			return nil, fmt.Errorf("filesystem store requires path to be set")
		}
		return NewFileStore(cfg.Path)
	case "age":
		if cfg.Path == "" {
			return nil, fmt.Errorf("age store requires path to be set")
		}
		if passphrase == nil {
			return nil, fmt.Errorf("age store requires a passphrase source")
		}
		inner, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		pw, err := passphrase()
		if err != nil {
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		return NewAgeStore(inner, pw), nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
