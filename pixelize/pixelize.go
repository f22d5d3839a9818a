/*
Package pixelize turns an image into a grid of bead colours.

The image is first scaled down to the grid size with nearest neighbour
sampling. Cells whose alpha is below AlphaThreshold are left empty, the
remaining colours are reduced to at most Config.ColorCount swatches and each
swatch is then matched to the closest bead colour. Every cell takes the bead
colour of its nearest swatch.
*/
package pixelize

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/beadgrid/color"
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/quantize"
	"golang.org/x/image/draw"
)

// AlphaThreshold is the lowest 8-bit alpha value treated as opaque.
const AlphaThreshold = 128

const (
	defaultSize       = 29
	defaultColorCount = 16
)

var (
	// ErrInvalidConfig is returned for non-positive dimensions or colour
	// counts
	ErrInvalidConfig = errors.New("pixelize: invalid configuration")
	// ErrEmptyPalette is returned when there are no bead colours to match
	ErrEmptyPalette = errors.New("pixelize: empty palette")
)

// Config controls the size and colour reduction of the grid.
type Config struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	ColorCount int             `json:"colorCount"`
	Method     quantize.Method `json:"method,omitempty"`
}

// DefaultConfig returns a 29 by 29 grid with up to 16 colours.
func DefaultConfig() Config {
	return Config{
		Width:      defaultSize,
		Height:     defaultSize,
		ColorCount: defaultColorCount,
		Method:     quantize.MethodMedianCut,
	}
}

// Validate checks c describes a usable grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ColorCount < 1 {
		return fmt.Errorf("%w: color count %d", ErrInvalidConfig, c.ColorCount)
	}
	return nil
}

// HeightFor returns the grid height that keeps the aspect ratio of r for a
// grid width columns wide. The result is at least one.
func HeightFor(width int, r image.Rectangle) int {
	if r.Dx() <= 0 || width <= 0 {
		return 1
	}
	h := (width*r.Dy()*2 + r.Dx()) / (r.Dx() * 2)
	if h < 1 {
		h = 1
	}
	return h
}

// Downsample scales m to width by height using nearest neighbour sampling.
func Downsample(m image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst
}

// Pixelizer holds the precomputed state for one bead palette. It is safe
// for concurrent use.
type Pixelizer struct {
	matcher *palette.Matcher
}

// New returns a Pixelizer matching against p.
func New(p palette.Palette) (*Pixelizer, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	return &Pixelizer{
		matcher: palette.NewMatcher(p),
	}, nil
}

// Pixelize converts m into a grid of bead colour identifiers.
func (p *Pixelizer) Pixelize(m image.Image, cfg Config) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	small := Downsample(m, cfg.Width, cfg.Height)

	// Index of each cell's colour in samples, or -1 if transparent
	index := make([]int, cfg.Width*cfg.Height)
	samples := make([]color.RGB, 0, len(index))
	for i := range index {
		pix := small.Pix[i*4 : i*4+4]
		if pix[3] < AlphaThreshold {
			index[i] = -1
			continue
		}
		index[i] = len(samples)
		samples = append(samples, color.RGB{R: pix[0], G: pix[1], B: pix[2]})
	}

	swatches := quantize.New(cfg.Method).Quantize(samples, cfg.ColorCount)

	beads := make([]string, len(swatches))
	for i, s := range swatches {
		c, ok := p.matcher.Match(s)
		if !ok {
			return nil, ErrEmptyPalette
		}
		beads[i] = c.ID
	}

	nearest := make(map[color.RGB]int)
	return grid.Generate(cfg.Width, cfg.Height, func(x, y int) string {
		i := index[y*cfg.Width+x]
		if i < 0 {
			return grid.Empty
		}
		c := samples[i]
		s, ok := nearest[c]
		if !ok {
			s = nearestSwatch(c, swatches)
			nearest[c] = s
		}
		return beads[s]
	}), nil
}

// Pixelize converts m into a grid of identifiers of colours in p.
func Pixelize(m image.Image, cfg Config, p palette.Palette) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	px, err := New(p)
	if err != nil {
		return nil, err
	}
	return px.Pixelize(m, cfg)
}

func nearestSwatch(c color.RGB, swatches []color.RGB) int {
	best, bestDistance := 0, color.SquaredRGBDistance(c, swatches[0])
	for i := 1; i < len(swatches); i++ {
		if d := color.SquaredRGBDistance(c, swatches[i]); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}
