package quantize

import (
	"math"
	"sort"

	"github.com/bodgit/beadgrid/color"
)

// MedianCut implements Quantizer using the median cut method.
type MedianCut struct{}

type box struct {
	colors   []color.RGB
	min, max [3]uint8
}

func channel(c color.RGB, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

func newBox(colors []color.RGB) *box {
	b := &box{colors: colors}
	for ch := 0; ch < 3; ch++ {
		b.min[ch], b.max[ch] = 0xff, 0x00
		for _, c := range colors {
			v := channel(c, ch)
			if v < b.min[ch] {
				b.min[ch] = v
			}
			if v > b.max[ch] {
				b.max[ch] = v
			}
		}
	}
	return b
}

func (b *box) span(ch int) int {
	return int(b.max[ch]) - int(b.min[ch])
}

func (b *box) volume() int {
	return b.span(0) * b.span(1) * b.span(2)
}

// Widest channel, ties go to red, then green, then blue
func (b *box) widest() (int, int) {
	ch := 0
	for i := 1; i < 3; i++ {
		if b.span(i) > b.span(ch) {
			ch = i
		}
	}
	return ch, b.span(ch)
}

// Index closest to the median where the channel value changes so that no
// colour ends up on both sides of the cut
func cut(colors []color.RGB, ch int) int {
	mid := len(colors) >> 1
	lo, hi := mid, mid
	for lo > 0 && channel(colors[lo-1], ch) == channel(colors[lo], ch) {
		lo--
	}
	for hi < len(colors) && channel(colors[hi-1], ch) == channel(colors[hi], ch) {
		hi++
	}
	switch {
	case lo == 0:
		return hi
	case hi == len(colors):
		return lo
	case mid-lo <= hi-mid:
		return lo
	default:
		return hi
	}
}

func (b *box) split() (*box, *box) {
	ch, _ := b.widest()
	sorted := append(b.colors[:0:0], b.colors...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return channel(sorted[i], ch) < channel(sorted[j], ch)
	})
	i := cut(sorted, ch)
	return newBox(sorted[:i]), newBox(sorted[i:])
}

func (b *box) mean() color.RGB {
	var r, g, bl int
	for _, c := range b.colors {
		r += int(c.R)
		g += int(c.G)
		bl += int(c.B)
	}
	n := float64(len(b.colors))
	return color.RGB{
		R: clamp(math.Round(float64(r) / n)),
		G: clamp(math.Round(float64(g) / n)),
		B: clamp(math.Round(float64(bl) / n)),
	}
}

// Pick the splittable box with the largest volume. A box whose colours only
// vary along one or two channels has zero volume but can still be split so
// its widest channel breaks ties.
func choose(boxes []*box) int {
	best, bestVolume, bestSpan := -1, 0, 0
	for i, b := range boxes {
		if len(b.colors) < 2 {
			continue
		}
		_, span := b.widest()
		if span == 0 {
			continue
		}
		v := b.volume()
		if best < 0 || v > bestVolume || (v == bestVolume && span > bestSpan) {
			best, bestVolume, bestSpan = i, v, span
		}
	}
	return best
}

// Quantize implements the Quantizer interface.
func (MedianCut) Quantize(samples []color.RGB, k int) []color.RGB {
	if len(samples) == 0 {
		return []color.RGB{color.White}
	}
	if k < 1 {
		k = 1
	}

	boxes := make([]*box, 1, k)
	boxes[0] = newBox(samples)

	for len(boxes) < k {
		i := choose(boxes)
		if i < 0 {
			break
		}
		left, right := boxes[i].split()
		boxes[i] = left
		boxes = append(boxes, right)
	}

	p := make([]color.RGB, 0, len(boxes))
	for _, b := range boxes {
		p = append(p, b.mean())
	}
	return p
}
