package color

// Marker is the colour used to draw labels or grid lines on top of a cell.
type Marker int

const (
	// Dark markers go on light cells
	Dark Marker = iota
	// Light markers go on dark cells
	Light
)

func (m Marker) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// RGB returns the colour of the marker.
func (m Marker) RGB() RGB {
	if m == Light {
		return RGB{0xff, 0xff, 0xff}
	}
	return RGB{0x00, 0x00, 0x00}
}

// Luminance returns the perceived brightness of c in [0, 255].
func Luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ContrastingText returns the marker that stays legible on top of c.
func ContrastingText(c RGB) Marker {
	if Luminance(c) < 128 {
		return Light
	}
	return Dark
}
