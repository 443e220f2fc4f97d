package journal

import (
	"database/sql"
	"fmt"

	"vaxq-go/internal/journal/migrations"
	"vaxq-go/internal/vaxq"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteJournal implements the Journal interface using SQLite.
type SQLiteJournal struct {
	db    *sql.DB
	clock vaxq.Clock
}

var _ vaxq.Journal = (*SQLiteJournal)(nil)

// OpenConnection opens and configures a SQLite connection.
// path can be a file path or ":memory:" for an in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// Foreign keys are off by default in SQLite for backward compatibility.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteJournal opens (or creates) the journal at path and migrates its
// schema to the latest version. A nil clock falls back to the real clock.
func NewSQLiteJournal(path string, clock vaxq.Clock) (*SQLiteJournal, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating journal: %w", err)
	}

	return NewSQLiteJournalFromDB(db, clock), nil
}

// NewSQLiteJournalFromDB wraps an existing connection whose schema is already
// in place. The caller keeps ownership of closing behavior via Close.
func NewSQLiteJournalFromDB(db *sql.DB, clock vaxq.Clock) *SQLiteJournal {
	if clock == nil {
		clock = vaxq.RealClock{}
	}
	return &SQLiteJournal{db: db, clock: clock}
}

func (j *SQLiteJournal) CreateOperation(sessionID, operation, parameters string) (*vaxq.Operation, error) {
	startedAt := j.clock.Now().UTC()
	res, err := j.db.Exec(
		"INSERT INTO operations (session_id, operation, parameters, status, started_at) VALUES (?, ?, ?, 'success', ?)",
		sessionID, operation, parameters, startedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting operation id: %w", err)
	}

	return &vaxq.Operation{
		ID:         id,
		SessionID:  sessionID,
		Operation:  operation,
		Parameters: parameters,
		Status:     "success",
		StartedAt:  startedAt,
	}, nil
}

func (j *SQLiteJournal) FinishOperation(id int64, status string) error {
	res, err := j.db.Exec(
		"UPDATE operations SET status = ?, finished_at = ? WHERE id = ?",
		status, j.clock.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no operation with id %d", id)
	}
	return nil
}

func (j *SQLiteJournal) ListOperations(limit int) ([]*vaxq.Operation, error) {
	rows, err := j.db.Query(
		"SELECT id, session_id, operation, parameters, status, started_at, finished_at FROM operations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*vaxq.Operation
	for rows.Next() {
		var op vaxq.Operation
		if err := rows.Scan(&op.ID, &op.SessionID, &op.Operation, &op.Parameters, &op.Status, &op.StartedAt, &op.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	return ops, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
