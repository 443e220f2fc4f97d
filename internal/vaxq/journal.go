package vaxq

import (
	"database/sql"
	"time"
)

// Operation is one journaled CLI operation. The journal is an audit trail of
// what ran when; it has nothing to do with the undo history and never
// restores anything.
type Operation struct {
	ID         int64
	SessionID  string
	Operation  string
	Parameters string
	Status     string // "success" or "error"
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// Journal records mutating operations. Implementations live in
// internal/journal.
type Journal interface {
	// CreateOperation records the start of an operation and returns it with
	// its assigned ID.
	CreateOperation(sessionID, operation, parameters string) (*Operation, error)

	// FinishOperation marks an operation finished with the given status.
	FinishOperation(id int64, status string) error

	// ListOperations returns up to limit operations, newest first.
	ListOperations(limit int) ([]*Operation, error)

	// Close closes the journal.
	Close() error
}
