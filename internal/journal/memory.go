package journal

import (
	"database/sql"
	"fmt"

	"vaxq-go/internal/vaxq"
)

// MemoryJournal is an in-memory implementation of the Journal interface,
// useful for tests and throwaway sessions.
type MemoryJournal struct {
	ops    []*vaxq.Operation
	nextID int64
	clock  vaxq.Clock
}

var _ vaxq.Journal = (*MemoryJournal)(nil)

// NewMemoryJournal creates an empty in-memory journal.
// A nil clock falls back to the real clock.
func NewMemoryJournal(clock vaxq.Clock) *MemoryJournal {
	if clock == nil {
		clock = vaxq.RealClock{}
	}
	return &MemoryJournal{nextID: 1, clock: clock}
}

func (j *MemoryJournal) CreateOperation(sessionID, operation, parameters string) (*vaxq.Operation, error) {
	op := &vaxq.Operation{
		ID:         j.nextID,
		SessionID:  sessionID,
		Operation:  operation,
		Parameters: parameters,
		Status:     "success",
		StartedAt:  j.clock.Now().UTC(),
	}
	j.nextID++
	j.ops = append(j.ops, op)
	return op, nil
}

func (j *MemoryJournal) FinishOperation(id int64, status string) error {
	for _, op := range j.ops {
		if op.ID == id {
			op.Status = status
			op.FinishedAt = sql.NullTime{Time: j.clock.Now().UTC(), Valid: true}
			return nil
		}
	}
	return fmt.Errorf("no operation with id %d", id)
}

func (j *MemoryJournal) ListOperations(limit int) ([]*vaxq.Operation, error) {
	var ops []*vaxq.Operation
	for i := len(j.ops) - 1; i >= 0 && len(ops) < limit; i-- {
		ops = append(ops, j.ops[i])
	}
	return ops, nil
}

func (j *MemoryJournal) Close() error { return nil }
