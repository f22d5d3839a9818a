package history

import (
	"strconv"
	"testing"
	"time"

	"github.com/bodgit/beadgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edits returns the initial 1x1 grid followed by n successive edits of it
func edits(n int) []*grid.Grid {
	grids := []*grid.Grid{grid.New(1, 1)}
	for i := 1; i <= n; i++ {
		grids = append(grids, grids[i-1].Set(0, 0, strconv.Itoa(i)))
	}
	return grids
}

func TestEmpty(t *testing.T) {
	h := New(0)
	assert.Equal(t, DefaultCapacity, h.Capacity())
	assert.Equal(t, -1, h.Cursor())
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	_, ok = h.Current()
	assert.False(t, ok)
}

func TestUndoRedo(t *testing.T) {
	grids := edits(5)
	h := New(10)
	h.Reset(grids[0])
	for _, g := range grids[1:] {
		h.Push(g)
	}
	assert.Equal(t, 5, h.Cursor())

	// Undo all the way back to the initial grid
	for i := 4; i >= 0; i-- {
		g, ok := h.Undo()
		require.True(t, ok)
		assert.Same(t, grids[i], g)
		assert.Equal(t, i, h.Cursor())
	}
	_, ok := h.Undo()
	assert.False(t, ok)

	// And forward again
	for i := 1; i <= 5; i++ {
		g, ok := h.Redo()
		require.True(t, ok)
		assert.Same(t, grids[i], g)
	}
	_, ok = h.Redo()
	assert.False(t, ok)

	e, ok := h.Current()
	require.True(t, ok)
	assert.Same(t, grids[5], e.Grid)
}

func TestRedoAfterUndo(t *testing.T) {
	grids := edits(2)
	h := New(10)
	h.Reset(grids[0])
	h.Push(grids[1])
	h.Push(grids[2])

	_, ok := h.Undo()
	require.True(t, ok)

	g, ok := h.Redo()
	require.True(t, ok)
	assert.Same(t, grids[2], g)
	assert.Equal(t, h.Len()-1, h.Cursor())
}

func TestBranchTruncation(t *testing.T) {
	grids := edits(4)
	h := New(10)
	h.Reset(grids[0])
	for _, g := range grids[1:4] {
		h.Push(g)
	}

	h.Undo()
	h.Undo()
	assert.True(t, h.CanRedo())

	h.Push(grids[4])
	assert.False(t, h.CanRedo())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	g, ok := h.Undo()
	require.True(t, ok)
	assert.Same(t, grids[1], g)
}

func TestCapacity(t *testing.T) {
	grids := edits(20)
	h := New(5)
	h.Reset(grids[0])
	for i, g := range grids[1:] {
		h.Push(g)
		assert.LessOrEqual(t, h.Len(), h.Capacity()+1)
		assert.Equal(t, h.Len()-1, h.Cursor(), "push %d", i)
	}
	// A full history holds the current state on top of its capacity of edits
	assert.Equal(t, h.Capacity()+1, h.Len())

	// Only the five most recent edits can be undone, the oldest survivor is
	// the state before them
	for i := 0; i < 5; i++ {
		_, ok := h.Undo()
		require.True(t, ok)
	}
	assert.False(t, h.CanUndo())
	e, _ := h.Current()
	assert.Same(t, grids[15], e.Grid)
}

func TestFullCapacityRoundTrip(t *testing.T) {
	grids := edits(5)
	h := New(5)
	h.Reset(grids[0])
	for _, g := range grids[1:] {
		h.Push(g)
	}

	var g *grid.Grid
	for i := 0; i < 5; i++ {
		var ok bool
		g, ok = h.Undo()
		require.True(t, ok)
	}
	assert.True(t, grids[0].Equal(g))
}

func TestReset(t *testing.T) {
	grids := edits(3)
	h := New(10)
	for _, g := range grids {
		h.Push(g)
	}
	h.Reset(nil)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, h.Cursor())

	h.Reset(grids[2])
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Cursor())
	assert.False(t, h.CanUndo())
}

func TestCreated(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h := New(2)
	h.now = func() time.Time { return now }
	h.Push(grid.New(1, 1))

	entries := h.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, now, entries[0].Created)
}
