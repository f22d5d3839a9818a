/*
Package history implements a bounded linear undo and redo history of grid
snapshots.

The history is a sequence of entries and a cursor. The entry under the
cursor is the current state, the entries before it can be returned to with
Undo and the entries after it with Redo. Pushing a new state discards
everything after the cursor. Once the history holds more than its capacity
of edits the oldest entry is evicted.
*/
package history

import (
	"time"

	"github.com/bodgit/beadgrid/grid"
)

// DefaultCapacity is the number of edits kept when no capacity is given.
const DefaultCapacity = 50

// Entry is a snapshot of a grid.
type Entry struct {
	Grid    *grid.Grid
	Created time.Time
}

// History is an undo/redo history. It is not safe for concurrent use.
type History struct {
	capacity int
	entries  []Entry
	cursor   int
	now      func() time.Time
}

// New returns an empty history that keeps up to capacity undoable edits.
// A capacity less than one uses DefaultCapacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{
		capacity: capacity,
		cursor:   -1,
		now:      time.Now,
	}
}

// Capacity returns the maximum number of undoable edits. The history holds
// the current state as well, so Len can be up to Capacity plus one.
func (h *History) Capacity() int {
	return h.capacity
}

// Len returns the number of entries, including the initial state.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current entry, or -1 if the history is
// empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the current entry.
func (h *History) Current() (Entry, bool) {
	if h.cursor < 0 {
		return Entry{}, false
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the entries.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Reset discards all entries and, if g is not nil, records it as the
// initial state.
func (h *History) Reset(g *grid.Grid) {
	h.entries = h.entries[:0]
	h.cursor = -1
	if g != nil {
		h.Push(g)
	}
}

// Push records g as the new current state, discarding any entries that
// could have been restored with Redo.
func (h *History) Push(g *grid.Grid) {
	h.entries = append(h.entries[:h.cursor+1], Entry{
		Grid:    g,
		Created: h.now(),
	})

	// The initial state plus capacity edits
	if over := len(h.entries) - (h.capacity + 1); over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

// CanUndo reports whether Undo would restore an earlier state.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would restore a later state.
func (h *History) CanRedo() bool {
	return h.cursor+1 < len(h.entries)
}

// Undo moves the cursor back one entry and returns that state.
func (h *History) Undo() (*grid.Grid, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor].Grid, true
}

// Redo returns the state after the cursor and advances the cursor to it.
func (h *History) Redo() (*grid.Grid, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	g := h.entries[h.cursor+1].Grid
	h.cursor++
	return g, true
}
