/*
Package palette models the fixed sets of physical bead colours that an image
is matched against.

Palettes are supplied whole by a brand library and are never modified. A
Matcher precomputes the Lab coordinates of every entry once so that matching
a colour only costs one distance calculation per palette entry.
*/
package palette

import (
	"github.com/bodgit/beadgrid/color"
)

// TransparentID is the pseudo colour identifier used to erase a cell.
const TransparentID = "transparent"

// Transparent is the pseudo colour available in every palette.
var Transparent = Color{
	ID:   TransparentID,
	Name: "Transparent",
	Code: "CLEAR",
	Hex:  "transparent",
}

// Color is a single bead colour.
type Color struct {
	ID   string
	Name string
	Code string
	Hex  string
	RGB  color.RGB
	// Lab is optional, if set it is used instead of converting RGB
	Lab *color.Lab
}

// Palette is an ordered list of bead colours with unique identifiers.
type Palette []Color

// Find returns the colour with the given identifier. The transparent
// pseudo colour is always found.
func (p Palette) Find(id string) (Color, bool) {
	if id == TransparentID {
		return Transparent, true
	}
	for _, c := range p {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}

// Lookup returns a map of identifier to colour, suitable for rendering.
func (p Palette) Lookup() map[string]Color {
	m := make(map[string]Color, len(p))
	for _, c := range p {
		m[c.ID] = c
	}
	return m
}

// Matcher finds the perceptually closest palette entry to a colour.
type Matcher struct {
	palette Palette
	labs    []color.Lab
}

// NewMatcher returns a Matcher for p, computing the Lab coordinates of each
// entry up front.
func NewMatcher(p Palette) *Matcher {
	m := &Matcher{
		palette: p,
		labs:    make([]color.Lab, len(p)),
	}
	for i, c := range p {
		if c.Lab != nil {
			m.labs[i] = *c.Lab
		} else {
			m.labs[i] = color.ToLab(c.RGB)
		}
	}
	return m
}

// Len returns the number of palette entries.
func (m *Matcher) Len() int {
	return len(m.palette)
}

// Match returns the palette entry with the smallest CIE76 distance to c.
// When several entries are equally close the earliest one wins. The second
// return value is false only if the palette is empty.
func (m *Matcher) Match(c color.RGB) (Color, bool) {
	if len(m.palette) == 0 {
		return Color{}, false
	}

	lab := color.ToLab(c)
	best, bestDistance := 0, color.Distance(lab, m.labs[0])
	for i := 1; i < len(m.labs); i++ {
		if d := color.Distance(lab, m.labs[i]); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return m.palette[best], true
}
