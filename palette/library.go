package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/beadgrid/color"
)

var (
	errNoBrand     = errors.New("palette: library has no brand")
	errNoColors    = errors.New("palette: library has no colors")
	errMissingID   = errors.New("palette: color has no id or code")
	errMissingRGB  = errors.New("palette: color has no hex or rgb value")
	errReservedID  = fmt.Errorf("palette: %q is a reserved id", TransparentID)
	errDuplicateID = errors.New("palette: duplicate color id")
)

// Library is the colour range of a single brand.
type Library struct {
	Brand  Brand
	Name   string
	Colors Palette
}

type jsonRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type jsonColor struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Code string   `json:"code"`
	Hex  string   `json:"hex,omitempty"`
	RGB  *jsonRGB `json:"rgb,omitempty"`
}

type jsonLibrary struct {
	Brand  Brand       `json:"brand"`
	Name   string      `json:"name,omitempty"`
	Colors []jsonColor `json:"colors"`
}

// MarshalJSON implements the json.Marshaler interface.
func (l Library) MarshalJSON() ([]byte, error) {
	jl := jsonLibrary{
		Brand:  l.Brand,
		Name:   l.Name,
		Colors: make([]jsonColor, 0, len(l.Colors)),
	}
	for _, c := range l.Colors {
		jl.Colors = append(jl.Colors, jsonColor{
			ID:   c.ID,
			Name: c.Name,
			Code: c.Code,
			Hex:  c.Hex,
			RGB:  &jsonRGB{c.RGB.R, c.RGB.G, c.RGB.B},
		})
	}
	return json.Marshal(jl)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Colours without
// an id get one derived from their code, colours need at least one of a hex
// string or an rgb triple.
func (l *Library) UnmarshalJSON(b []byte) error {
	var jl jsonLibrary
	if err := json.Unmarshal(b, &jl); err != nil {
		return err
	}

	if _, ok := brands[jl.Brand]; !ok {
		return errNoBrand
	}
	if len(jl.Colors) == 0 {
		return errNoColors
	}

	colors := make(Palette, 0, len(jl.Colors))
	seen := make(map[string]struct{}, len(jl.Colors))
	for _, jc := range jl.Colors {
		c := Color{
			ID:   jc.ID,
			Name: jc.Name,
			Code: jc.Code,
			Hex:  jc.Hex,
		}

		if c.ID == "" {
			if c.Code == "" {
				return errMissingID
			}
			c.ID = jl.Brand.ColorID(c.Code)
		}
		if c.ID == TransparentID {
			return errReservedID
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %q", errDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}

		switch {
		case jc.RGB != nil:
			c.RGB = color.RGB{R: jc.RGB.R, G: jc.RGB.G, B: jc.RGB.B}
		case jc.Hex != "":
			rgb, err := color.ParseHex(jc.Hex)
			if err != nil {
				return err
			}
			c.RGB = rgb
		default:
			return fmt.Errorf("%w: %q", errMissingRGB, c.ID)
		}
		if c.Hex == "" {
			c.Hex = c.RGB.Hex()
		}

		colors = append(colors, c)
	}

	l.Brand = jl.Brand
	l.Name = jl.Name
	if l.Name == "" {
		l.Name = jl.Brand.Name()
	}
	l.Colors = colors

	return nil
}

// ReadLibrary decodes a JSON brand library from r.
func ReadLibrary(r io.Reader) (*Library, error) {
	l := new(Library)
	if err := json.NewDecoder(r).Decode(l); err != nil {
		return nil, err
	}
	return l, nil
}
