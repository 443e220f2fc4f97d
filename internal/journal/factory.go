package journal

import (
	"fmt"
	"path/filepath"

	"vaxq-go/internal/config"
	"vaxq-go/internal/vaxq"
)

// NewJournalFromConfig creates a Journal implementation based on the journal config type.
func NewJournalFromConfig(cfg config.JournalConfig, clock vaxq.Clock) (vaxq.Journal, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite journal")
		}
		return NewSQLiteJournal(filepath.Join(cfg.DataDir, "journal.db"), clock)
	case "memory":
		return NewMemoryJournal(clock), nil
	default:
		return nil, fmt.Errorf("unknown journal type: %s", cfg.Type)
	}
}
