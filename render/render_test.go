package render

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"image/png"
	"testing"

	"github.com/bodgit/beadgrid/color"
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = palette.Palette{
	{ID: "navy", RGB: color.RGB{B: 128}},
	{ID: "cream", RGB: color.RGB{R: 250, G: 240, B: 200}},
}

func nrgba(c stdcolor.Color) stdcolor.NRGBA {
	return stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
}

func testGrid(t *testing.T) *grid.Grid {
	g, err := grid.FromRows([][]string{{"navy", "cream"}, {"", "mystery"}})
	require.NoError(t, err)
	return g
}

func TestImage(t *testing.T) {
	m := Image(testGrid(t), testPalette.Lookup(), Options{CellSize: 4})
	assert.Equal(t, image.Rect(0, 0, 8, 8), m.Bounds())

	_, ok := m.(*image.Paletted)
	assert.True(t, ok)

	assert.Equal(t, stdcolor.NRGBA{B: 128, A: 255}, nrgba(m.At(0, 0)))
	assert.Equal(t, stdcolor.NRGBA{B: 128, A: 255}, nrgba(m.At(3, 3)))
	assert.Equal(t, stdcolor.NRGBA{R: 250, G: 240, B: 200, A: 255}, nrgba(m.At(4, 0)))
	assert.Equal(t, uint8(0), nrgba(m.At(0, 4)).A)
	assert.Equal(t, uint8(0), nrgba(m.At(7, 7)).A)
}

func TestImageGridLines(t *testing.T) {
	m := Image(testGrid(t), testPalette.Lookup(), Options{CellSize: 4, GridLines: true})

	// Light lines on navy, dark lines on cream
	assert.Equal(t, stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgba(m.At(0, 2)))
	assert.Equal(t, stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgba(m.At(2, 0)))
	assert.Equal(t, stdcolor.NRGBA{B: 128, A: 255}, nrgba(m.At(2, 2)))
	assert.Equal(t, stdcolor.NRGBA{A: 255}, nrgba(m.At(4, 1)))
	assert.Equal(t, stdcolor.NRGBA{R: 250, G: 240, B: 200, A: 255}, nrgba(m.At(5, 1)))
}

func TestEncode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testGrid(t), testPalette, Options{}))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2*DefaultCellSize, 2*DefaultCellSize), m.Bounds())
}
