/*
Package grid implements the rectangular bead pattern produced from an image.

Each cell holds either the identifier of a palette colour or Empty. A Grid is
never modified once created, every edit returns a new Grid and leaves the
original untouched, so a Grid can be shared freely between the live view and
any undo history. Edits that would not change anything return the receiver
itself.
*/
package grid

import (
	"encoding/json"
	"errors"
)

// Empty is the value of a transparent cell.
const Empty = ""

var (
	// ErrInvalidSize is returned when asked to create a grid without cells
	ErrInvalidSize = errors.New("grid: invalid size")
	errRagged      = errors.New("grid: rows differ in length")
)

// Grid is an immutable width by height array of cells.
type Grid struct {
	width, height int
	cells         []string
}

// New returns a grid with every cell Empty. Negative dimensions are treated
// as zero.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]string, width*height),
	}
}

// Generate returns a grid with each cell set to the result of calling f.
func Generate(width, height int, f func(x, y int) string) *Grid {
	g := New(width, height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = f(x, y)
		}
	}
	return g
}

// FromRows returns a grid holding a copy of rows, which must all be the same
// length.
func FromRows(rows [][]string) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return nil, errRagged
		}
	}
	return Generate(width, len(rows), func(x, y int) string {
		return rows[y][x]
	}), nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// In reports whether (x, y) is a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value of the cell at (x, y), or Empty if it is out of
// range.
func (g *Grid) At(x, y int) string {
	if !g.In(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Rows returns a copy of the cells, one slice per row.
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.height)
	for y := range rows {
		rows[y] = append([]string(nil), g.cells[y*g.width:(y+1)*g.width]...)
	}
	return rows
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Counts returns the number of cells using each colour, Empty cells are not
// counted.
func (g *Grid) Counts() map[string]int {
	m := make(map[string]int)
	for _, c := range g.cells {
		if c != Empty {
			m[c]++
		}
	}
	return m
}

func (g *Grid) clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]string(nil), g.cells...),
	}
}

// MarshalJSON implements the json.Marshaler interface. The grid is encoded
// as an array of rows with Empty cells as null.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]*string, g.height)
	for y := range rows {
		rows[y] = make([]*string, g.width)
		for x := range rows[y] {
			if c := g.cells[y*g.width+x]; c != Empty {
				rows[y][x] = &c
			}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]*string
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}

	cells := make([][]string, len(rows))
	for y, row := range rows {
		cells[y] = make([]string, len(row))
		for x, c := range row {
			if c != nil {
				cells[y][x] = *c
			}
		}
	}

	n, err := FromRows(cells)
	if err != nil {
		return err
	}
	*g = *n

	return nil
}
