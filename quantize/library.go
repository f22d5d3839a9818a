package quantize

import (
	"image"
	stdcolor "image/color"
	"math"

	"github.com/bodgit/beadgrid/color"
	"github.com/cenkalti/dominantcolor"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Lay the samples out as a square opaque image, cycling through them to fill
// any remainder
func sampleImage(samples []color.RGB) *image.RGBA {
	side := int(math.Ceil(math.Sqrt(float64(len(samples)))))
	m := image.NewRGBA(image.Rect(0, 0, side, side))
	for i := 0; i < side*side; i++ {
		c := samples[i%len(samples)]
		m.SetRGBA(i%side, i/side, stdcolor.RGBA{c.R, c.G, c.B, 0xff})
	}
	return m
}

func fromColor(c stdcolor.Color) color.RGB {
	r, g, b, _ := c.RGBA()
	return color.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Library implements Quantizer using the mean aggregation of the
// go-quantize median cut.
type Library struct{}

// Quantize implements the Quantizer interface.
func (Library) Quantize(samples []color.RGB, k int) []color.RGB {
	if len(samples) == 0 {
		return []color.RGB{color.White}
	}
	if k < 1 {
		k = 1
	}

	q := quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	p := q.Quantize(make(stdcolor.Palette, 0, k), sampleImage(samples))
	if len(p) == 0 {
		return MedianCut{}.Quantize(samples, k)
	}

	out := make([]color.RGB, 0, len(p))
	for _, c := range p {
		out = append(out, fromColor(c))
	}
	return out
}

// KMeans implements Quantizer with k-means clustering in RGB space. The
// initial centroids are random so results are not reproducible.
type KMeans struct{}

// Quantize implements the Quantizer interface.
func (KMeans) Quantize(samples []color.RGB, k int) []color.RGB {
	if len(samples) == 0 {
		return []color.RGB{color.White}
	}
	if k < 1 {
		k = 1
	}
	if n := distinct(samples); k > n {
		k = n
	}

	dataset := make(clusters.Observations, 0, len(samples))
	for _, c := range samples {
		dataset = append(dataset, clusters.Coordinates{float64(c.R), float64(c.G), float64(c.B)})
	}

	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return MedianCut{}.Quantize(samples, k)
	}

	out := make([]color.RGB, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		out = append(out, color.RGB{
			R: clamp(math.Round(c.Center[0])),
			G: clamp(math.Round(c.Center[1])),
			B: clamp(math.Round(c.Center[2])),
		})
	}
	if len(out) == 0 {
		return MedianCut{}.Quantize(samples, k)
	}
	return out
}

// Dominant implements Quantizer by picking the k most dominant colours.
type Dominant struct{}

// Quantize implements the Quantizer interface.
func (Dominant) Quantize(samples []color.RGB, k int) []color.RGB {
	if len(samples) == 0 {
		return []color.RGB{color.White}
	}
	if k < 1 {
		k = 1
	}

	candidates := dominantcolor.FindWeight(sampleImage(samples), k)
	if len(candidates) == 0 {
		return MedianCut{}.Quantize(samples, k)
	}
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]color.RGB, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, fromColor(c.RGBA))
	}
	return out
}
