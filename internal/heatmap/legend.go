package heatmap

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LegendBuckets is the number of equal-width variance buckets in the legend.
const LegendBuckets = 8

// LegendBucket is one swatch of the legend covering [Start, End).
type LegendBucket struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Fill  string  `json:"fill"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// Legend is positioned in chart coordinates at (X, Y); bucket and tick
// positions are relative to it.
type Legend struct {
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	Buckets []LegendBucket `json:"buckets"`
	Ticks   []Tick         `json:"ticks"`
}

// legendThresholds splits [lo, hi) into LegendBuckets equal steps. A
// degenerate extent yields a single threshold.
func legendThresholds(lo, hi float64) []float64 {
	if !(hi > lo) {
		return []float64{lo}
	}
	step := (hi - lo) / LegendBuckets
	out := make([]float64, LegendBuckets)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func buildLegend(lo, hi float64, palette []drawing.Color, width, height float64) (Legend, error) {
	thresholds := legendThresholds(lo, hi)
	colors, err := NewThresholdScale(thresholds, palette)
	if err != nil {
		return Legend{}, err
	}
	x := NewLinearScale(lo, hi, 0, width)

	lg := Legend{
		Width:   width,
		Height:  height,
		Buckets: make([]LegendBucket, 0, len(thresholds)),
	}
	for i, start := range thresholds {
		end := hi
		if i+1 < len(thresholds) {
			end = thresholds[i+1]
		}
		b := LegendBucket{
			Start: start,
			End:   end,
			Fill:  colors.At(start).String(),
		}
		if x.Degenerate() {
			b.X, b.Width = 0, width
		} else {
			b.X = x.Scale(start)
			b.Width = x.Scale(end) - b.X
		}
		lg.Buckets = append(lg.Buckets, b)
	}

	boundaries := thresholds
	if hi > lo {
		boundaries = append(append([]float64(nil), thresholds...), hi)
	}
	for _, v := range boundaries {
		lg.Ticks = append(lg.Ticks, Tick{Label: fmt.Sprintf("%.2f", v), Position: x.Scale(v)})
	}
	return lg, nil
}
