/*
Package editor implements an editing session over a grid.

A Session owns the current grid and its undo history. Every edit that
changes the grid is recorded in the history before it becomes current, edits
that change nothing are not recorded. A Session is not safe for concurrent
use, callers must serialise edits to the same session.
*/
package editor

import (
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/history"
	"github.com/bodgit/beadgrid/palette"
)

// Session is a grid and its edit history.
type Session struct {
	grid    *grid.Grid
	history *history.History
}

// New returns a session editing g, keeping up to capacity undoable edits.
func New(g *grid.Grid, capacity int) *Session {
	s := &Session{
		history: history.New(capacity),
	}
	s.Load(g)
	return s
}

// Load replaces the grid and clears the history, as when a new image is
// pixelized or a project is opened.
func (s *Session) Load(g *grid.Grid) {
	if g == nil {
		g = grid.New(0, 0)
	}
	s.grid = g
	s.history.Reset(g)
}

// Grid returns the current grid.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// History returns the undo history.
func (s *Session) History() *history.History {
	return s.history
}

func (s *Session) commit(g *grid.Grid) bool {
	if g == s.grid {
		return false
	}
	s.history.Push(g)
	s.grid = g
	return true
}

// The transparent pseudo colour erases
func cell(id string) string {
	if id == palette.TransparentID {
		return grid.Empty
	}
	return id
}

// Set changes a single cell and reports whether the grid changed.
func (s *Session) Set(x, y int, id string) bool {
	return s.commit(s.grid.Set(x, y, cell(id)))
}

// Fill flood fills from (x, y) and reports whether the grid changed.
func (s *Session) Fill(x, y int, id string) bool {
	return s.commit(s.grid.Fill(x, y, cell(id)))
}

// Resize resamples the grid to width by height.
func (s *Session) Resize(width, height int) (bool, error) {
	g, err := s.grid.Resample(width, height)
	if err != nil {
		return false, err
	}
	return s.commit(g), nil
}

// Undo restores the previous grid and reports whether there was one.
func (s *Session) Undo() bool {
	g, ok := s.history.Undo()
	if ok {
		s.grid = g
	}
	return ok
}

// Redo restores the next grid and reports whether there was one.
func (s *Session) Redo() bool {
	g, ok := s.history.Redo()
	if ok {
		s.grid = g
	}
	return ok
}

// CanUndo reports whether Undo would change the grid.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the grid.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}
