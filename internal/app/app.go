package app

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"vaxq-go/internal/config"
	"vaxq-go/internal/journal"
	"vaxq-go/internal/model"
	"vaxq-go/internal/store"
	"vaxq-go/internal/vaxq"
)

// App is the application layer between the CLI and the Collection.
// It constructs all dependencies from config, exposes the session operations,
// journals every mutating one, and manages resource lifecycle on Close.
type App struct {
	cfg       *config.Config
	store     vaxq.Store
	journal   vaxq.Journal
	coll      *vaxq.Collection
	logger    vaxq.Logger
	logFile   *os.File
	sessionID string
}

// New assembles an App from ready-made components. Tests use this directly;
// NewApp wires the real ones from config.
func New(cfg *config.Config, st vaxq.Store, j vaxq.Journal, logger vaxq.Logger, sessionID string) *App {
	if logger == nil {
		logger = vaxq.NewNopLogger()
	}
	return &App{
		cfg:       cfg,
		store:     st,
		journal:   j,
		coll:      vaxq.NewCollection(cfg.HistoryDepth, logger),
		logger:    logger,
		sessionID: sessionID,
	}
}

// NewApp creates a fully wired App from the given config.
// The caller must call Close when done.
func NewApp(cfg *config.Config) (*App, error) {
	sessionID := uuid.New().String()

	st, err := store.NewStoreFromConfig(cfg.Store, promptPassphrase)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	jnl, err := journal.NewJournalFromConfig(cfg.Journal, vaxq.RealClock{})
	if err != nil {
		return nil, fmt.Errorf("creating journal: %w", err)
	}

	logger, logFile, err := newLogger(cfg.LogDir, sessionID)
	if err != nil {
		jnl.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	a := New(cfg, st, jnl, &slogAdapter{l: logger}, sessionID)
	a.logFile = logFile
	a.logger.Info("session started")
	return a, nil
}

// record writes one journal row for a mutating operation. Journal failures
// are logged, never surfaced: the audit trail must not break the session.
func (a *App) record(operation, parameters string, opErr error) {
	op, err := a.journal.CreateOperation(a.sessionID, operation, parameters)
	if err != nil {
		a.logger.Error("journaling operation", "operation", operation, "error", err)
		return
	}
	status := "success"
	if opErr != nil {
		status = "error"
	}
	if err := a.journal.FinishOperation(op.ID, status); err != nil {
		a.logger.Error("finishing journaled operation", "operation", operation, "error", err)
	}
}

// LoadData reads the data store into the collection. A store that does not
// exist yet is not an error: the session starts empty. Malformed lines are
// skipped with a diagnostic; valid ones are added (and push history states).
func (a *App) LoadData() (added, skipped int, err error) {
	rc, err := a.store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Info("no data file yet, starting empty")
			return 0, 0, nil
		}
		a.record("Load", "", err)
		return 0, 0, err
	}
	defer rc.Close()

	added, skipped, err = a.coll.LoadFrom(rc)
	a.record("Load", fmt.Sprintf("added=%d skipped=%d", added, skipped), err)
	if err != nil {
		return added, skipped, err
	}
	a.logger.Info("data loaded", "added", added, "skipped", skipped)
	return added, skipped, nil
}

// SaveData writes the collection to the data store.
func (a *App) SaveData() error {
	var buf bytes.Buffer
	if err := a.coll.StoreTo(&buf); err != nil {
		a.record("Save", "", err)
		return err
	}
	err := a.store.Save(&buf)
	a.record("Save", fmt.Sprintf("records=%d", a.coll.Len()), err)
	if err != nil {
		a.logger.Error("saving data", "error", err)
		return err
	}
	a.logger.Info("data saved", "records", a.coll.Len())
	return nil
}

// Add appends the request to the collection.
func (a *App) Add(r *model.Request) {
	a.coll.Add(r)
	a.record("Add", "id="+r.ID(), nil)
}

// Remove deletes the first request with the given id.
func (a *App) Remove(id string) error {
	err := a.coll.Remove(id)
	a.record("Remove", "id="+id, err)
	return err
}

// Edit overwrites the first request with the given id.
func (a *App) Edit(id string, updated *model.Request) error {
	err := a.coll.Edit(id, updated)
	a.record("Edit", "id="+id, err)
	return err
}

// List returns the collection's requests in order.
func (a *App) List() []*model.Request {
	return a.coll.Requests()
}

// Search returns the requests matching the query, in original order.
func (a *App) Search(query string) []*model.Request {
	return a.coll.Search(query).Requests()
}

// Sort stably reorders the collection by the named field.
func (a *App) Sort(field string) error {
	err := a.coll.SortBy(field)
	a.record("Sort", "field="+field, err)
	return err
}

// Undo restores the previously committed collection state.
func (a *App) Undo() bool {
	ok := a.coll.Undo()
	if ok {
		a.record("Undo", "", nil)
	}
	return ok
}

// Redo reinstates the most recently undone state.
func (a *App) Redo() bool {
	ok := a.coll.Redo()
	if ok {
		a.record("Redo", "", nil)
	}
	return ok
}

// History returns the most recent journaled operations, newest first.
func (a *App) History(limit int) ([]*vaxq.Operation, error) {
	return a.journal.ListOperations(limit)
}

// Close closes the journal and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.journal.Close(); err != nil {
		firstErr = fmt.Errorf("closing journal: %w", err)
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}

	return firstErr
}
