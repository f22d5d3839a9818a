package palette

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/bodgit/beadgrid/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() Palette {
	return Palette{
		{ID: "red", Name: "Red", RGB: color.RGB{R: 255}},
		{ID: "green", Name: "Green", RGB: color.RGB{G: 255}},
		{ID: "blue", Name: "Blue", RGB: color.RGB{B: 255}},
		{ID: "white", Name: "White", RGB: color.RGB{R: 255, G: 255, B: 255}},
		{ID: "black", Name: "Black", RGB: color.RGB{}},
	}
}

func TestMatch(t *testing.T) {
	m := NewMatcher(testPalette())
	assert.Equal(t, 5, m.Len())

	tables := []struct {
		rgb color.RGB
		id  string
	}{
		{color.RGB{R: 250, G: 10, B: 10}, "red"},
		{color.RGB{R: 10, G: 200, B: 30}, "green"},
		{color.RGB{R: 0, G: 0, B: 200}, "blue"},
		{color.RGB{R: 240, G: 240, B: 240}, "white"},
		{color.RGB{R: 20, G: 20, B: 20}, "black"},
	}

	for _, table := range tables {
		c, ok := m.Match(table.rgb)
		require.True(t, ok)
		assert.Equal(t, table.id, c.ID, table.rgb.String())
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := NewMatcher(testPalette())
	first, _ := m.Match(color.RGB{R: 128, G: 64, B: 200})
	for i := 0; i < 10; i++ {
		c, _ := NewMatcher(testPalette()).Match(color.RGB{R: 128, G: 64, B: 200})
		assert.Equal(t, first.ID, c.ID)
	}
}

func TestMatchTieFirstWins(t *testing.T) {
	p := Palette{
		{ID: "a", RGB: color.RGB{R: 10, G: 20, B: 30}},
		{ID: "b", RGB: color.RGB{R: 10, G: 20, B: 30}},
	}
	c, ok := NewMatcher(p).Match(color.RGB{R: 90, G: 90, B: 90})
	require.True(t, ok)
	assert.Equal(t, "a", c.ID)
}

func TestMatchPrecomputedLab(t *testing.T) {
	// A cached Lab value takes precedence over the RGB value
	lab := color.ToLab(color.RGB{B: 255})
	p := Palette{
		{ID: "red", RGB: color.RGB{R: 255}},
		{ID: "odd", RGB: color.RGB{R: 255}, Lab: &lab},
	}
	c, ok := NewMatcher(p).Match(color.RGB{B: 250})
	require.True(t, ok)
	assert.Equal(t, "odd", c.ID)
}

func TestMatchEmpty(t *testing.T) {
	_, ok := NewMatcher(nil).Match(color.RGB{})
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	p := testPalette()

	c, ok := p.Find("green")
	assert.True(t, ok)
	assert.Equal(t, "Green", c.Name)

	c, ok = p.Find(TransparentID)
	assert.True(t, ok)
	assert.Equal(t, Transparent, c)

	_, ok = p.Find("mauve")
	assert.False(t, ok)

	assert.Len(t, p.Lookup(), 5)
	assert.Equal(t, "Blue", p.Lookup()["blue"].Name)
}

func TestBrand(t *testing.T) {
	for _, b := range Brands() {
		v, err := ParseBrand(strings.ToUpper(b.String()))
		require.NoError(t, err)
		assert.Equal(t, b, v)
	}

	_, err := ParseBrand("lego")
	assert.Error(t, err)

	assert.Equal(t, "Ikea Pyssla", Ikea.Name())
	assert.Equal(t, "P01", Perler.ColorID("P01"))
	assert.Equal(t, "S05", Artkal.ColorID("S05"))
	assert.Equal(t, "I-Black", Ikea.ColorID("Black"))
	assert.Equal(t, "M001", MARD.ColorID("M001"))
	assert.Equal(t, "Brand(0)", Brand(0).String())
}

func TestReadLibrary(t *testing.T) {
	f, err := os.Open("testdata/basic.json")
	require.NoError(t, err)
	defer f.Close()

	l, err := ReadLibrary(f)
	require.NoError(t, err)

	assert.Equal(t, Perler, l.Brand)
	assert.Equal(t, "Perler", l.Name)
	require.Len(t, l.Colors, 5)

	assert.Equal(t, color.RGB{}, l.Colors[1].RGB)
	assert.Equal(t, "P03", l.Colors[2].ID)
	assert.Equal(t, "#FF0000", l.Colors[2].Hex)
	assert.Equal(t, "P-04", l.Colors[3].ID)
	assert.Equal(t, color.RGB{B: 255}, l.Colors[3].RGB)

	b, err := json.Marshal(l)
	require.NoError(t, err)

	var dup Library
	require.NoError(t, json.Unmarshal(b, &dup))
	assert.Equal(t, *l, dup)
}

func TestReadLibraryErrors(t *testing.T) {
	tables := []struct {
		name, json string
	}{
		{"brand", `{"colors":[{"id":"x","hex":"#000000"}]}`},
		{"unknown brand", `{"brand":"lego","colors":[{"id":"x","hex":"#000000"}]}`},
		{"empty", `{"brand":"hama","colors":[]}`},
		{"id", `{"brand":"hama","colors":[{"name":"x","hex":"#000000"}]}`},
		{"reserved", `{"brand":"hama","colors":[{"id":"transparent","hex":"#000000"}]}`},
		{"duplicate", `{"brand":"hama","colors":[{"id":"H01","hex":"#000000"},{"code":"H01","hex":"#FFFFFF"}]}`},
		{"rgb", `{"brand":"hama","colors":[{"id":"H01"}]}`},
		{"hex", `{"brand":"hama","colors":[{"id":"H01","hex":"#00000"}]}`},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := ReadLibrary(strings.NewReader(table.json))
			assert.Error(t, err)
		})
	}
}
