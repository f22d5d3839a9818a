package editor

import (
	"testing"

	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redBlue(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]string{{"red", "red"}, {"blue", "blue"}})
	require.NoError(t, err)
	return g
}

func TestFill(t *testing.T) {
	s := New(redBlue(t), 10)
	assert.True(t, s.Fill(0, 0, "blue"))
	assert.Equal(t, [][]string{{"blue", "blue"}, {"blue", "blue"}}, s.Grid().Rows())

	// Filling again changes nothing and records nothing
	assert.False(t, s.Fill(1, 1, "blue"))
	assert.Equal(t, 2, s.History().Len())
}

func TestNoOpEditsNotRecorded(t *testing.T) {
	s := New(redBlue(t), 10)
	assert.False(t, s.Set(0, 0, "red"))
	assert.False(t, s.Set(5, 5, "green"))
	assert.False(t, s.Fill(-1, 0, "green"))
	changed, err := s.Resize(2, 2)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, s.CanUndo())
	assert.Equal(t, 1, s.History().Len())
}

func TestUndoRedo(t *testing.T) {
	initial := redBlue(t)
	s := New(initial, 10)

	require.True(t, s.Set(0, 0, "green"))
	require.True(t, s.Set(1, 0, "green"))
	require.True(t, s.Fill(0, 1, "white"))
	changed, err := s.Resize(4, 4)
	require.NoError(t, err)
	require.True(t, changed)
	latest := s.Grid()

	for i := 0; i < 4; i++ {
		assert.True(t, s.Undo())
	}
	assert.False(t, s.Undo())
	assert.True(t, initial.Equal(s.Grid()))

	for i := 0; i < 4; i++ {
		assert.True(t, s.Redo())
	}
	assert.False(t, s.Redo())
	assert.Same(t, latest, s.Grid())
}

func TestEditAfterUndoDropsRedo(t *testing.T) {
	s := New(redBlue(t), 10)
	s.Set(0, 0, "green")
	s.Set(1, 0, "green")
	s.Undo()
	require.True(t, s.CanRedo())

	s.Set(1, 1, "white")
	assert.False(t, s.CanRedo())
	assert.Equal(t, [][]string{{"green", "red"}, {"blue", "white"}}, s.Grid().Rows())
}

func TestErase(t *testing.T) {
	s := New(redBlue(t), 10)
	assert.True(t, s.Set(0, 0, palette.TransparentID))
	assert.Equal(t, grid.Empty, s.Grid().At(0, 0))

	assert.True(t, s.Fill(0, 1, palette.TransparentID))
	assert.Equal(t, [][]string{{grid.Empty, "red"}, {grid.Empty, grid.Empty}}, s.Grid().Rows())
}

func TestResizeInvalid(t *testing.T) {
	s := New(redBlue(t), 10)
	_, err := s.Resize(0, 3)
	assert.Equal(t, grid.ErrInvalidSize, err)
	assert.Equal(t, 1, s.History().Len())
}

func TestLoad(t *testing.T) {
	s := New(nil, 3)
	assert.Equal(t, 0, s.Grid().Width())

	s.Load(redBlue(t))
	s.Set(0, 0, "a")
	s.Set(0, 0, "b")
	s.Load(grid.New(1, 1))
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, 1, s.History().Len())
}
