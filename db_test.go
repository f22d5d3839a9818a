package beadgrid

import (
	"path/filepath"
	"testing"

	"github.com/bodgit/beadgrid/color"
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/pixelize"
	"github.com/bodgit/beadgrid/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *ProjectDB {
	t.Helper()
	db, err := NewProjectDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testBundle(t *testing.T, name string, rows ...[]string) *project.Bundle {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return project.New(name, project.Config{Config: pixelize.DefaultConfig(), Brand: palette.Perler}, g)
}

func TestImportLibrary(t *testing.T) {
	db := newTestDB(t)

	l, err := db.ImportLibrary(filepath.Join("testdata", "perler.json"))
	require.NoError(t, err)
	assert.Len(t, l.Colors, 5)

	found, err := db.FindLibrary(palette.Perler)
	require.NoError(t, err)
	assert.Equal(t, palette.Perler, found.Brand)
	assert.Equal(t, "Perler Beads", found.Name)
	require.Len(t, found.Colors, 5)

	// Order is preserved
	for i, c := range l.Colors {
		assert.Equal(t, c.ID, found.Colors[i].ID)
		assert.Equal(t, c.RGB, found.Colors[i].RGB)
	}
	assert.Equal(t, color.RGB{R: 255}, found.Colors[2].RGB)

	brands, err := db.Brands()
	require.NoError(t, err)
	assert.Equal(t, []palette.Brand{palette.Perler}, brands)
}

func TestImportLibraryReplaces(t *testing.T) {
	db := newTestDB(t)

	_, err := db.ImportLibrary(filepath.Join("testdata", "perler.json"))
	require.NoError(t, err)
	_, err = db.ImportLibrary(filepath.Join("testdata", "perler-small.json"))
	require.NoError(t, err)

	l, err := db.FindLibrary(palette.Perler)
	require.NoError(t, err)
	assert.Equal(t, "Perler", l.Name)
	assert.Len(t, l.Colors, 2)
}

func TestFindLibraryMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.FindLibrary(palette.Hama)
	assert.ErrorIs(t, err, errNoLibrary)
}

func TestProjects(t *testing.T) {
	db := newTestDB(t)

	a := testBundle(t, "a", []string{"P01", ""})
	require.NoError(t, db.SaveProject(a, "CAFEBABE"))
	require.NoError(t, db.SaveProject(testBundle(t, "b", []string{"P02"}), ""))

	found, err := db.FindProject("a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, a.PixelData.Equal(found.PixelData))
	assert.Equal(t, a.Config, found.Config)

	missing, err := db.FindProject("c")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	name, err := db.FindProjectByChecksum("CAFEBABE")
	assert.NoError(t, err)
	assert.Equal(t, "a", name)

	name, err = db.FindProjectByChecksum("DEADBEEF")
	assert.NoError(t, err)
	assert.Equal(t, "", name)

	names, err := db.Projects()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, db.DeleteProject("a"))
	names, err = db.Projects()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestSaveProjectReplaces(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.SaveProject(testBundle(t, "a", []string{"P01"}), "CAFEBABE"))
	require.NoError(t, db.SaveProject(testBundle(t, "a", []string{"P02", "P02"}), ""))

	found, err := db.FindProject("a")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"P02", "P02"}}, found.PixelData.Rows())

	// Saving without a checksum keeps the original one
	name, err := db.FindProjectByChecksum("CAFEBABE")
	assert.NoError(t, err)
	assert.Equal(t, "a", name)

	names, err := db.Projects()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
}

func TestSaveProjectInvalid(t *testing.T) {
	db := newTestDB(t)

	b := testBundle(t, "a", []string{"P01"})
	b.Name = ""
	assert.Error(t, db.SaveProject(b, ""))
}
