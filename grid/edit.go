package grid

import "image"

// Set returns a grid with the cell at (x, y) set to id. Out of range
// coordinates and setting a cell to its current value return g.
func (g *Grid) Set(x, y int, id string) *Grid {
	if !g.In(x, y) || g.At(x, y) == id {
		return g
	}
	n := g.clone()
	n.cells[y*n.width+x] = id
	return n
}

// Fill returns a grid where every cell 4-connected to (x, y) that holds the
// same value as (x, y) is set to id. Out of range coordinates and filling a
// cell with its current value return g.
func (g *Grid) Fill(x, y int, id string) *Grid {
	if !g.In(x, y) {
		return g
	}
	target := g.At(x, y)
	if target == id {
		return g
	}

	n := g.clone()
	visited := make([]bool, len(g.cells))
	visited[y*g.width+x] = true
	queue := []image.Point{{X: x, Y: y}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		n.cells[p.Y*n.width+p.X] = id

		for _, d := range [...]image.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
			q := p.Add(d)
			if !g.In(q.X, q.Y) {
				continue
			}
			i := q.Y*g.width + q.X
			if visited[i] || g.cells[i] != target {
				continue
			}
			visited[i] = true
			queue = append(queue, q)
		}
	}

	return n
}

// Resample returns a width by height grid using nearest neighbour sampling
// of g.
func (g *Grid) Resample(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if width == g.width && height == g.height {
		return g, nil
	}
	return Generate(width, height, func(x, y int) string {
		return g.At(x*g.width/width, y*g.height/height)
	}), nil
}
