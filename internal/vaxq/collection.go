package vaxq

import (
	"fmt"
	"sort"
	"strings"

	"vaxq-go/internal/model"
)

// NotFoundError reports a Remove or Edit whose target id is not in the
// collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no request with id %s", e.ID)
}

// Collection is the ordered, mutable set of requests owned by one session.
//
// Insertion order is meaningful: display walks it, and Remove/Edit operate on
// the first record whose id matches. Ids are not required to be unique; with
// duplicates, only the first match is affected. Every committed mutation
// pushes the post-mutation state onto the history, so the very first snapshot
// is the state after the first mutation, not the empty start.
//
// Collection is not safe for concurrent use; a session is single-threaded.
type Collection struct {
	requests []*model.Request
	history  *History
	logger   Logger
}

// NewCollection creates an empty collection with its own history.
func NewCollection(historyDepth int, logger Logger) *Collection {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Collection{
		history: NewHistory(historyDepth),
		logger:  logger,
	}
}

func (c *Collection) saveState() {
	if c.history != nil {
		c.history.Save(c.requests)
	}
}

// Add appends the request. Ids are not checked for uniqueness.
func (c *Collection) Add(r *model.Request) {
	c.requests = append(c.requests, r)
	c.saveState()
	c.logger.Debug("request added", "id", r.ID())
}

// Remove deletes the first request with the given id.
// Returns a NotFoundError if no request matches.
func (c *Collection) Remove(id string) error {
	for i, r := range c.requests {
		if r.ID() == id {
			c.requests = append(c.requests[:i], c.requests[i+1:]...)
			c.saveState()
			c.logger.Debug("request removed", "id", id)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Edit overwrites every field of the first request with the given id from
// updated. Returns a NotFoundError if no request matches; Remove and Edit
// deliberately share this policy.
func (c *Collection) Edit(id string, updated *model.Request) error {
	for i, r := range c.requests {
		if r.ID() == id {
			c.requests[i] = updated.Clone()
			c.saveState()
			c.logger.Debug("request edited", "id", id)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Search returns a new collection holding the requests whose string form
// contains the query, case-insensitively, in their original order. The result
// shares Request pointers with the receiver but has no history; it is a view
// for display, not an editing session.
func (c *Collection) Search(query string) *Collection {
	query = strings.ToLower(query)
	result := &Collection{logger: c.logger}
	for _, r := range c.requests {
		if strings.Contains(strings.ToLower(r.String()), query) {
			result.requests = append(result.requests, r)
		}
	}
	return result
}

// SortBy stably sorts the requests by the named field. Sorting is not
// undoable: it does not push a history state.
func (c *Collection) SortBy(field string) error {
	if _, err := model.New().Field(field); err != nil {
		return err
	}
	sort.SliceStable(c.requests, func(i, j int) bool {
		a, _ := c.requests[i].Field(field)
		b, _ := c.requests[j].Field(field)
		return a < b
	})
	return nil
}

// Undo restores the collection to the previously committed state.
// With fewer than two history entries this is a no-op.
func (c *Collection) Undo() bool {
	if c.history == nil {
		return false
	}
	records, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.requests = records
	c.logger.Debug("undo", "records", len(records))
	return true
}

// Redo reinstates the most recently undone state, if any.
func (c *Collection) Redo() bool {
	if c.history == nil {
		return false
	}
	records, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.requests = records
	c.logger.Debug("redo", "records", len(records))
	return true
}

// Requests returns the live record sequence in order. Callers must not
// mutate the returned slice.
func (c *Collection) Requests() []*model.Request { return c.requests }

// Len returns the number of requests.
func (c *Collection) Len() int { return len(c.requests) }

// History exposes the collection's undo history. Search results return nil.
func (c *Collection) History() *History { return c.history }
