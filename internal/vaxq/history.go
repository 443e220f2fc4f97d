package vaxq

import (
	"slices"

	"vaxq-go/internal/model"
)

// DefaultHistoryDepth is the number of committed states History retains.
const DefaultHistoryDepth = 5

// snapshot is a deep copy of a collection's record sequence. Snapshots never
// share Request pointers with the live collection, so later mutation of the
// collection cannot alter a stored state.
type snapshot []*model.Request

func deepCopy(records []*model.Request) snapshot {
	cp := make(snapshot, len(records))
	for i, r := range records {
		cp[i] = r.Clone()
	}
	return cp
}

// History is a bounded memento stack of collection states.
//
// Committed states live on the past stack, oldest first; the top of past is
// the current state. Undo moves the top of past onto the future stack and
// restores the state below it. Redo moves the top of future back. Save starts
// a new timeline: it pushes the new state and discards the future stack.
// Only the past stack is bounded; once it exceeds the depth the oldest state
// is evicted (FIFO), so undo reaches at most depth-1 steps back.
type History struct {
	depth  int
	past   []snapshot
	future []snapshot
}

// NewHistory creates a History keeping up to depth committed states.
// A non-positive depth falls back to DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Save records the given record sequence as the new current state.
// Any undone states are discarded.
func (h *History) Save(records []*model.Request) {
	h.past = append(h.past, deepCopy(records))
	h.future = nil
	if len(h.past) > h.depth {
		h.past = slices.Delete(h.past, 0, 1)
	}
}

// Undo discards the current state and returns a deep copy of the previous
// one. It reports false when no previous state exists: undo on an empty or
// single-entry history is a no-op.
func (h *History) Undo() ([]*model.Request, bool) {
	if len(h.past) <= 1 {
		return nil, false
	}
	top := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, top)
	return deepCopy(h.past[len(h.past)-1]), true
}

// Redo reinstates the most recently undone state and returns a deep copy of
// it. It reports false when nothing has been undone since the last Save.
func (h *History) Redo() ([]*model.Request, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	top := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, top)
	if len(h.past) > h.depth {
		h.past = slices.Delete(h.past, 0, 1)
	}
	return deepCopy(top), true
}

// Len returns the number of committed states currently held.
func (h *History) Len() int { return len(h.past) }

// CanUndo reports whether Undo would change the collection.
func (h *History) CanUndo() bool { return len(h.past) > 1 }

// CanRedo reports whether Redo would change the collection.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
