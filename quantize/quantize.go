/*
Package quantize reduces a set of sampled colours to a small number of
representative colours.

The default MedianCut implementation repeatedly splits the colour box with
the largest bounding volume along its widest channel until the requested
number of boxes exists or no box can be split any further. The other
implementations wrap third-party quantizers behind the same interface so
they can be swapped in for comparison.
*/
package quantize

import (
	"fmt"
	"strings"

	"github.com/bodgit/beadgrid/color"
)

// Quantizer reduces samples to at most k representative colours. An empty
// sample set yields a single white representative.
type Quantizer interface {
	Quantize(samples []color.RGB, k int) []color.RGB
}

// Method selects a Quantizer implementation.
type Method int

const (
	// MethodMedianCut is the built-in median cut
	MethodMedianCut Method = iota
	// MethodLibrary uses github.com/ericpauley/go-quantize
	MethodLibrary
	// MethodKMeans uses github.com/muesli/kmeans
	MethodKMeans
	// MethodDominant uses github.com/cenkalti/dominantcolor
	MethodDominant
)

var methodNames = [...]string{
	MethodMedianCut: "mediancut",
	MethodLibrary:   "library",
	MethodKMeans:    "kmeans",
	MethodDominant:  "dominant",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod returns the Method with the given name.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return MethodMedianCut, fmt.Errorf("quantize: unknown method %q", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, fmt.Errorf("quantize: unknown method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// New returns the Quantizer for m, falling back to MedianCut.
func New(m Method) Quantizer {
	switch m {
	case MethodLibrary:
		return Library{}
	case MethodKMeans:
		return KMeans{}
	case MethodDominant:
		return Dominant{}
	default:
		return MedianCut{}
	}
}

func clamp(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

func distinct(samples []color.RGB) int {
	m := make(map[color.RGB]struct{})
	for _, c := range samples {
		m[c] = struct{}{}
	}
	return len(m)
}
