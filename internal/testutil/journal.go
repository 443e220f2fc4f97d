package testutil

import (
	"testing"

	"vaxq-go/internal/journal"
	"vaxq-go/internal/journal/migrations"
	"vaxq-go/internal/vaxq"
)

// NewTestJournal creates an in-memory SQLite journal with schema applied.
// The journal is automatically closed when the test completes.
func NewTestJournal(t *testing.T, clock vaxq.Clock) vaxq.Journal {
	t.Helper()

	db, err := journal.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open journal database: %v", err)
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		t.Fatalf("failed to migrate journal: %v", err)
	}

	j := journal.NewSQLiteJournalFromDB(db, clock)

	t.Cleanup(func() {
		j.Close()
	})

	return j
}
