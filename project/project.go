/*
Package project implements the bundle used to save and exchange a bead
pattern.

A bundle is a JSON object holding a format version, the project name and
creation time, the configuration used to create the pattern and the pattern
itself as an array of rows where each cell is a colour identifier or null.
*/
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bodgit/beadgrid/grid"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/pixelize"
)

// Version is the bundle format version written by this package
const Version = 1

var (
	errVersion   = errors.New("project: unsupported version")
	errNoPixels  = errors.New("project: no pixel data")
	errMismatch  = errors.New("project: pixel data does not match configuration")
	errEmptyName = errors.New("project: empty name")
)

// Config is the pixelization configuration and the brand of bead used.
type Config struct {
	pixelize.Config
	Brand palette.Brand `json:"brand,omitempty"`
}

// Bundle is a saved project. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces.
type Bundle struct {
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	Config    Config     `json:"config"`
	PixelData *grid.Grid `json:"pixelData"`
}

// New returns a bundle for g. The configured dimensions are taken from g.
func New(name string, cfg Config, g *grid.Grid) *Bundle {
	cfg.Width, cfg.Height = g.Width(), g.Height()
	return &Bundle{
		Version:   Version,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Config:    cfg,
		PixelData: g,
	}
}

func (b *Bundle) validate() error {
	switch {
	case b.Version < 1 || b.Version > Version:
		return fmt.Errorf("%w: %d", errVersion, b.Version)
	case b.Name == "":
		return errEmptyName
	case b.PixelData == nil:
		return errNoPixels
	case b.PixelData.Width() != b.Config.Width || b.PixelData.Height() != b.Config.Height:
		return fmt.Errorf("%w: %dx%d grid, %dx%d configured", errMismatch, b.PixelData.Width(), b.PixelData.Height(), b.Config.Width, b.Config.Height)
	}
	return nil
}

// MarshalBinary encodes the bundle as JSON.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(b, "", "  ")
}

// UnmarshalBinary decodes the bundle from JSON.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	var dup Bundle
	if err := json.Unmarshal(data, &dup); err != nil {
		return err
	}
	if err := dup.validate(); err != nil {
		return err
	}
	*b = dup
	return nil
}

// Read decodes a bundle from r.
func Read(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b := new(Bundle)
	if err := b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// Write encodes b to w.
func Write(w io.Writer, b *Bundle) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
