/*
Package color implements the colour arithmetic used when matching image
colours against a bead palette.

Colours are held as 8-bit sRGB triples and compared perceptually after
conversion to CIE L*a*b* using the D65 reference white. The perceptual
distance is the plain CIE76 Delta-E, that is the Euclidean distance between
two Lab coordinates.
*/
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// RGB is an opaque 8-bit sRGB colour. It implements the image/color.Color
// interface.
type RGB struct {
	R, G, B uint8
}

// Lab is a colour in the CIE L*a*b* space. L is in [0, 100], A and B are
// roughly in [-128, 127].
type Lab struct {
	L, A, B float64
}

// White is the representative returned when there is nothing to quantize.
var White = RGB{0xff, 0xff, 0xff}

// RGBA implements the image/color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as an upper case "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses "#RGB" or "#RRGGBB", the leading '#' is optional.
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("color: invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("color: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

const (
	// D65 reference white
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883

	labEpsilon = 0.008856
	labKappa   = 7.787
)

// Linear sRGB to XYZ
var srgbToXYZ = mat.NewDense(3, 3, []float64{
	0.4124, 0.3576, 0.1805,
	0.2126, 0.7152, 0.0722,
	0.0193, 0.1192, 0.9505,
})

func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + 16.0/116.0
}

// ToLab converts c to CIE L*a*b*.
func ToLab(c RGB) Lab {
	var xyz mat.VecDense
	xyz.MulVec(srgbToXYZ, mat.NewVecDense(3, []float64{linearize(c.R), linearize(c.G), linearize(c.B)}))

	fx := labF(xyz.AtVec(0) / whiteX)
	fy := labF(xyz.AtVec(1) / whiteY)
	fz := labF(xyz.AtVec(2) / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Distance returns the CIE76 Delta-E between two Lab colours.
func Distance(l1, l2 Lab) float64 {
	dl := l1.L - l2.L
	da := l1.A - l2.A
	db := l1.B - l2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// SquaredRGBDistance returns the squared Euclidean distance between two
// colours in RGB space. It is only suitable where perceptual accuracy
// doesn't matter, such as matching against intermediate swatches.
func SquaredRGBDistance(c1, c2 RGB) int {
	dr := int(c1.R) - int(c2.R)
	dg := int(c1.G) - int(c2.G)
	db := int(c1.B) - int(c2.B)
	return dr*dr + dg*dg + db*db
}
