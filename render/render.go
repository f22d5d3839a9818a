/*
Package render draws a bead grid as an image.

Each cell is drawn as a CellSize square of its bead colour. Empty cells and
cells with an unknown colour are left transparent. Grid lines are drawn along
the top and left edge of every cell in whichever marker colour contrasts with
the cell, so they stay visible on both light and dark beads.
*/
package render

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"github.com/bodgit/beadgrid/color"
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"golang.org/x/image/draw"
)

// DefaultCellSize is used when Options.CellSize isn't positive.
const DefaultCellSize = 16

// Options controls how the grid is drawn.
type Options struct {
	CellSize  int
	GridLines bool
}

var transparent = stdcolor.NRGBA{}

func toColor(c color.RGB) stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Build a colour model of only what is used, falling back to full colour if
// that doesn't fit in a palette
func newImage(r image.Rectangle, g *grid.Grid, lookup map[string]palette.Color) draw.Image {
	p := stdcolor.Palette{transparent, toColor(color.Dark.RGB()), toColor(color.Light.RGB())}
	seen := make(map[string]struct{})
	for id := range g.Counts() {
		if c, ok := lookup[id]; ok {
			if _, ok := seen[c.RGB.Hex()]; !ok {
				seen[c.RGB.Hex()] = struct{}{}
				p = append(p, toColor(c.RGB))
			}
		}
	}
	if len(p) > 256 {
		return image.NewNRGBA(r)
	}
	return image.NewPaletted(r, p)
}

// Image draws g using the colours in lookup.
func Image(g *grid.Grid, lookup map[string]palette.Color, opts Options) image.Image {
	size := opts.CellSize
	if size <= 0 {
		size = DefaultCellSize
	}

	m := newImage(image.Rect(0, 0, g.Width()*size, g.Height()*size), g, lookup)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, ok := lookup[g.At(x, y)]
			if !ok {
				continue
			}

			r := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
			draw.Draw(m, r, image.NewUniform(toColor(c.RGB)), image.Point{}, draw.Src)

			if opts.GridLines && size > 1 {
				marker := image.NewUniform(toColor(color.ContrastingText(c.RGB).RGB()))
				draw.Draw(m, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), marker, image.Point{}, draw.Src)
				draw.Draw(m, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), marker, image.Point{}, draw.Src)
			}
		}
	}

	return m
}

// Encode writes g to w as a PNG image.
func Encode(w io.Writer, g *grid.Grid, p palette.Palette, opts Options) error {
	return png.Encode(w, Image(g, p.Lookup(), opts))
}
