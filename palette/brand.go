package palette

import (
	"fmt"
	"strings"
)

// Brand identifies a bead manufacturer.
type Brand int

// Supported brands
const (
	Perler Brand = iota + 1
	Hama
	Artkal
	MARD
	Nabbi
	Ikea
)

type brandInfo struct {
	key, name, prefix string
}

var brands = map[Brand]brandInfo{
	Perler: {"perler", "Perler", "P"},
	Hama:   {"hama", "Hama", "H"},
	Artkal: {"artkal", "Artkal", "A"},
	MARD:   {"mard", "MARD", "M"},
	Nabbi:  {"nabbi", "Nabbi", "N"},
	Ikea:   {"ikea", "Ikea Pyssla", "I"},
}

// Brands returns every known brand in a stable order.
func Brands() []Brand {
	return []Brand{Perler, Hama, Artkal, MARD, Nabbi, Ikea}
}

// ParseBrand returns the brand with the given key, such as "perler".
func ParseBrand(s string) (Brand, error) {
	for b, info := range brands {
		if strings.EqualFold(s, info.key) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("palette: unknown brand %q", s)
}

func (b Brand) String() string {
	if info, ok := brands[b]; ok {
		return info.key
	}
	return fmt.Sprintf("Brand(%d)", int(b))
}

// Name returns the display name of the brand.
func (b Brand) Name() string {
	return brands[b].name
}

// Prefix returns the colour identifier prefix used by the brand.
func (b Brand) Prefix() string {
	return brands[b].prefix
}

// ColorID derives a colour identifier from a manufacturer's colour code.
// Codes that already carry the brand prefix are used as is, otherwise the
// prefix is prepended. Artkal codes use an "S" prefix of their own.
func (b Brand) ColorID(code string) string {
	prefix := b.Prefix()
	if strings.HasPrefix(code, prefix) || (b == Artkal && strings.HasPrefix(code, "S")) {
		return code
	}
	return prefix + "-" + code
}

// MarshalText implements the encoding.TextMarshaler interface.
func (b Brand) MarshalText() ([]byte, error) {
	if _, ok := brands[b]; !ok {
		return nil, fmt.Errorf("palette: unknown brand %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (b *Brand) UnmarshalText(text []byte) error {
	v, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
