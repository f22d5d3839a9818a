/*
Package beadgrid is a library for turning images into bead craft patterns
and maintaining a collection of them.
*/
package beadgrid

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sort"

	"github.com/bodgit/beadgrid/editor"
	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/history"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/pixelize"
	"github.com/bodgit/beadgrid/project"
	"github.com/bodgit/beadgrid/render"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errNoProject = errors.New("no such project")

// BeadGrid ties a project database to a logger.
type BeadGrid struct {
	db     *ProjectDB
	logger *log.Logger
}

// New opens the project database in file.
func New(file string, logger *log.Logger) (*BeadGrid, error) {
	db, err := NewProjectDB(file)
	if err != nil {
		return nil, err
	}
	return &BeadGrid{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the project database.
func (b *BeadGrid) Close() error {
	return b.db.Close()
}

// ImportLibrary imports a brand library from a JSON file.
func (b *BeadGrid) ImportLibrary(file string) error {
	l, err := b.db.ImportLibrary(file)
	if err != nil {
		return err
	}
	b.logger.Printf("Imported %d colors for %s\n", len(l.Colors), l.Name)
	return nil
}

func decodeImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

// Fill in a zero height so the grid keeps the aspect ratio of the image
func lockAspect(cfg project.Config, r image.Rectangle) project.Config {
	if cfg.Height == 0 {
		cfg.Height = pixelize.HeightFor(cfg.Width, r)
	}
	return cfg
}

func (b *BeadGrid) pixelizer(brand palette.Brand) (*pixelize.Pixelizer, error) {
	l, err := b.db.FindLibrary(brand)
	if err != nil {
		return nil, err
	}
	return pixelize.New(l.Colors)
}

// Pixelize converts the image in file into a project called name.
func (b *BeadGrid) Pixelize(file, name string, cfg project.Config) (*project.Bundle, error) {
	px, err := b.pixelizer(cfg.Brand)
	if err != nil {
		return nil, err
	}

	m, err := decodeImage(file)
	if err != nil {
		return nil, err
	}

	crc, err := crcFile(file)
	if err != nil {
		return nil, err
	}

	return b.pixelize(px, m, name, crc, cfg)
}

func (b *BeadGrid) pixelize(px *pixelize.Pixelizer, m image.Image, name, crc string, cfg project.Config) (*project.Bundle, error) {
	cfg = lockAspect(cfg, m.Bounds())

	g, err := px.Pixelize(m, cfg.Config)
	if err != nil {
		return nil, err
	}

	bundle := project.New(name, cfg, g)
	if err := b.db.SaveProject(bundle, crc); err != nil {
		return nil, err
	}
	b.logger.Printf("Pixelized %dx%d image into %dx%d grid \"%s\"\n", m.Bounds().Dx(), m.Bounds().Dy(), g.Width(), g.Height(), name)

	return bundle, nil
}

func (b *BeadGrid) findProject(name string) (*project.Bundle, error) {
	bundle, err := b.db.FindProject(name)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, fmt.Errorf("%w \"%s\"", errNoProject, name)
	}
	return bundle, nil
}

// Edit runs f against an editing session of the named project and saves the
// result if f succeeds and the grid differs from the stored one. The project
// keeps its original creation time.
func (b *BeadGrid) Edit(name string, f func(*editor.Session) error) error {
	bundle, err := b.findProject(name)
	if err != nil {
		return err
	}

	s := editor.New(bundle.PixelData, history.DefaultCapacity)
	if err := f(s); err != nil {
		return err
	}

	g := s.Grid()
	if g.Equal(bundle.PixelData) {
		b.logger.Printf("No changes to \"%s\"\n", name)
		return nil
	}

	edited := *bundle
	edited.PixelData = g
	edited.Config.Width, edited.Config.Height = g.Width(), g.Height()

	if err := b.db.SaveProject(&edited, ""); err != nil {
		return err
	}
	b.logger.Printf("Saved \"%s\"\n", name)

	return nil
}

// Export writes the named project to file.
func (b *BeadGrid) Export(name, file string) error {
	bundle, err := b.findProject(name)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return project.Write(f, bundle)
}

// Load reads a project from file into the database and returns its name.
func (b *BeadGrid) Load(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bundle, err := project.Read(f)
	if err != nil {
		return "", err
	}

	if err := b.db.SaveProject(bundle, ""); err != nil {
		return "", err
	}
	b.logger.Printf("Loaded \"%s\"\n", bundle.Name)

	return bundle.Name, nil
}

// Render draws the named project to file as a PNG image.
func (b *BeadGrid) Render(name, file string, opts render.Options) error {
	bundle, err := b.findProject(name)
	if err != nil {
		return err
	}

	l, err := b.db.FindLibrary(bundle.Config.Brand)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.Encode(f, bundle.PixelData, l.Colors, opts)
}

// Count is the number of beads of a colour needed for a project.
type Count struct {
	palette.Color
	Count int
}

// Count returns the beads needed for the named project, most used first.
func (b *BeadGrid) Count(name string) ([]Count, error) {
	bundle, err := b.findProject(name)
	if err != nil {
		return nil, err
	}

	var p palette.Palette
	if l, err := b.db.FindLibrary(bundle.Config.Brand); err == nil {
		p = l.Colors
	} else {
		b.logger.Printf("No library for \"%s\", colors will not be named\n", name)
	}

	return countBeads(bundle.PixelData, p), nil
}

func countBeads(g *grid.Grid, p palette.Palette) []Count {
	var counts []Count
	for id, n := range g.Counts() {
		c, ok := p.Find(id)
		if !ok {
			c = palette.Color{ID: id}
		}
		counts = append(counts, Count{Color: c, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].ID < counts[j].ID
	})
	return counts
}

// Projects returns the names of all saved projects.
func (b *BeadGrid) Projects() ([]string, error) {
	return b.db.Projects()
}
