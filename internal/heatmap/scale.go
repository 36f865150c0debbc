package heatmap

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BandScale maps a discrete integer domain onto equal, contiguous bands of
// the range [start, stop]. There is no padding between bands.
type BandScale struct {
	domain []int
	index  map[int]int
	start  float64
	step   float64
}

// NewBandScale builds a band scale. Duplicate domain values keep their first
// position.
func NewBandScale(domain []int, start, stop float64) BandScale {
	b := BandScale{
		index: make(map[int]int, len(domain)),
		start: start,
	}
	for _, v := range domain {
		if _, ok := b.index[v]; ok {
			continue
		}
		b.index[v] = len(b.domain)
		b.domain = append(b.domain, v)
	}
	if len(b.domain) > 0 {
		b.step = (stop - start) / float64(len(b.domain))
	}
	return b
}

// Scale returns the start of the band for v. ok is false when v is not part
// of the domain.
func (b BandScale) Scale(v int) (pos float64, ok bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	return b.start + float64(i)*b.step, true
}

// Bandwidth is the size of every band; zero for an empty domain.
func (b BandScale) Bandwidth() float64 {
	return b.step
}

// Domain returns the distinct domain values in band order.
func (b BandScale) Domain() []int {
	return b.domain
}

// LinearScale maps [d0, d1] onto [r0, r1]. A degenerate domain maps every
// value to the middle of the range.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// normalize returns the position of v within the domain, 0 at d0 and 1 at d1.
func (l LinearScale) normalize(v float64) float64 {
	if l.d1 == l.d0 {
		return 0.5
	}
	return (v - l.d0) / (l.d1 - l.d0)
}

func (l LinearScale) Scale(v float64) float64 {
	return l.r0 + l.normalize(v)*(l.r1-l.r0)
}

// Degenerate reports whether the domain is a single point.
func (l LinearScale) Degenerate() bool {
	return l.d0 == l.d1
}

// ColorScale blends linearly in RGB between a cold and a hot colour over a
// numeric domain. Values outside the domain clamp to the end colours.
type ColorScale struct {
	domain LinearScale
	cold   drawing.Color
	hot    drawing.Color
}

func NewColorScale(lo, hi float64, cold, hot drawing.Color) ColorScale {
	return ColorScale{
		domain: NewLinearScale(lo, hi, 0, 1),
		cold:   cold,
		hot:    hot,
	}
}

// At returns the blended colour for v.
func (c ColorScale) At(v float64) drawing.Color {
	t := c.domain.Scale(v)
	if math.IsNaN(t) {
		t = 0.5
	}
	t = math.Max(0, math.Min(1, t))
	return drawing.Color{
		R: lerp(c.cold.R, c.hot.R, t),
		G: lerp(c.cold.G, c.hot.G, t),
		B: lerp(c.cold.B, c.hot.B, t),
		A: 255,
	}
}

// Fill returns the blended colour for v formatted for an SVG fill attribute.
func (c ColorScale) Fill(v float64) string {
	return c.At(v).String()
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// ThresholdScale maps a continuous value to one of len(thresholds)+1 colours.
// Values below thresholds[0] take colors[0]; values in
// [thresholds[i], thresholds[i+1]) take colors[i+1].
type ThresholdScale struct {
	thresholds []float64
	colors     []drawing.Color
}

// NewThresholdScale requires ascending thresholds and at least one more
// colour than thresholds. Surplus colours are ignored.
func NewThresholdScale(thresholds []float64, colors []drawing.Color) (ThresholdScale, error) {
	if len(colors) < len(thresholds)+1 {
		return ThresholdScale{}, fmt.Errorf("threshold scale needs %d colours, got %d", len(thresholds)+1, len(colors))
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			return ThresholdScale{}, fmt.Errorf("thresholds must be ascending")
		}
	}
	return ThresholdScale{
		thresholds: thresholds,
		colors:     colors[:len(thresholds)+1],
	}, nil
}

// At returns the colour of the bucket containing v.
func (s ThresholdScale) At(v float64) drawing.Color {
	// Number of thresholds <= v.
	i := 0
	for i < len(s.thresholds) && s.thresholds[i] <= v {
		i++
	}
	return s.colors[i]
}

func (s ThresholdScale) Thresholds() []float64 {
	return s.thresholds
}
