package heatmap

import (
	"math"
	"sort"
	"testing"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

func fixtureDataset() climate.Dataset {
	return climate.Dataset{
		BaseTemperature: 8.0,
		Records: []climate.TemperatureRecord{
			{Year: 1900, Month: 1, Variance: -0.5},
			{Year: 1900, Month: 2, Variance: 0.3},
			{Year: 1901, Month: 1, Variance: 1.2},
			{Year: 1910, Month: 6, Variance: -1.0},
			{Year: 1920, Month: 12, Variance: 0.0},
		},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func renderFixture(t *testing.T) *Chart {
	t.Helper()
	chart, err := newTestRenderer(t).Render(fixtureDataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return chart
}

func TestRenderCellGeometry(t *testing.T) {
	chart := renderFixture(t)

	if len(chart.Cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(chart.Cells))
	}

	// 4 distinct years over 1000 units, 12 months over 300 units.
	wantW, wantH := 250.0, 25.0
	wantX := map[int]float64{1900: 100, 1901: 350, 1910: 600, 1920: 850}
	for _, c := range chart.Cells {
		if c.Width != wantW || c.Height != wantH {
			t.Fatalf("cell %s size %vx%v, want %vx%v", c.Key(), c.Width, c.Height, wantW, wantH)
		}
		if c.X != wantX[c.Year] {
			t.Fatalf("cell %s x=%v, want %v", c.Key(), c.X, wantX[c.Year])
		}
		if wantY := 100 + float64(c.Month-1)*wantH; c.Y != wantY {
			t.Fatalf("cell %s y=%v, want %v", c.Key(), c.Y, wantY)
		}
	}
}

func TestRenderCellMetadata(t *testing.T) {
	chart := renderFixture(t)

	cell, ok := chart.Cell(1900, 1)
	if !ok {
		t.Fatal("expected cell for 1900-1")
	}
	if cell.DataMonth != 0 || cell.Year != 1900 {
		t.Fatalf("unexpected metadata %+v", cell)
	}
	if cell.Temp != 7.5 {
		t.Fatalf("expected temp 7.5, got %v", cell.Temp)
	}

	dec, _ := chart.Cell(1920, 12)
	if dec.DataMonth != 11 {
		t.Fatalf("expected zero-based month 11, got %d", dec.DataMonth)
	}
}

func TestRenderFills(t *testing.T) {
	chart := renderFixture(t)

	coldest, _ := chart.Cell(1910, 6)
	if coldest.Fill != "rgba(69,117,180,1.0)" {
		t.Fatalf("coldest cell fill = %q", coldest.Fill)
	}
	hottest, _ := chart.Cell(1901, 1)
	if hottest.Fill != "rgba(215,48,39,1.0)" {
		t.Fatalf("hottest cell fill = %q", hottest.Fill)
	}

	cells := append([]Cell(nil), chart.Cells...)
	sort.Slice(cells, func(i, j int) bool { return cells[i].Variance < cells[j].Variance })
	r := newTestRenderer(t)
	scale := NewColorScale(-1.0, 1.2, r.cold, r.hot)
	for i, c := range cells {
		if c.Fill != scale.Fill(c.Variance) {
			t.Fatalf("cell %s fill %q does not match colour scale %q", c.Key(), c.Fill, scale.Fill(c.Variance))
		}
		if i > 0 && scale.At(c.Variance).R < scale.At(cells[i-1].Variance).R {
			t.Fatalf("fills not monotonic between %s and %s", cells[i-1].Key(), c.Key())
		}
	}
}

func TestRenderAxes(t *testing.T) {
	chart := renderFixture(t)

	want := []Tick{
		{Label: "1900", Position: 225},
		{Label: "1910", Position: 725},
		{Label: "1920", Position: 975},
	}
	if len(chart.XTicks) != len(want) {
		t.Fatalf("expected %d year ticks, got %v", len(want), chart.XTicks)
	}
	for i, tk := range want {
		if chart.XTicks[i] != tk {
			t.Fatalf("year tick %d = %+v, want %+v", i, chart.XTicks[i], tk)
		}
	}

	if len(chart.YTicks) != 12 {
		t.Fatalf("expected 12 month ticks, got %d", len(chart.YTicks))
	}
	if chart.YTicks[0].Label != "January" || chart.YTicks[11].Label != "December" {
		t.Fatalf("unexpected month labels %q..%q", chart.YTicks[0].Label, chart.YTicks[11].Label)
	}
	if chart.YTicks[0].Position != 112.5 {
		t.Fatalf("January tick should sit at band centre, got %v", chart.YTicks[0].Position)
	}
}

func TestRenderLegendPartition(t *testing.T) {
	chart := renderFixture(t)
	lg := chart.Legend

	if len(lg.Buckets) != LegendBuckets {
		t.Fatalf("expected %d buckets, got %d", LegendBuckets, len(lg.Buckets))
	}
	if lg.Buckets[0].Start != -1.0 || lg.Buckets[len(lg.Buckets)-1].End != 1.2 {
		t.Fatalf("buckets do not span the variance range: %+v", lg.Buckets)
	}

	var total float64
	for i, b := range lg.Buckets {
		if !(b.End > b.Start) {
			t.Fatalf("bucket %d is empty: %+v", i, b)
		}
		if i > 0 && b.Start != lg.Buckets[i-1].End {
			t.Fatalf("bucket %d does not start where bucket %d ends", i, i-1)
		}
		if i > 0 && math.Abs(b.X-(lg.Buckets[i-1].X+lg.Buckets[i-1].Width)) > 1e-9 {
			t.Fatalf("bucket %d swatch is not contiguous", i)
		}
		total += b.Width
	}
	if math.Abs(total-lg.Width) > 1e-9 {
		t.Fatalf("swatch widths sum to %v, want %v", total, lg.Width)
	}

	// Reversed palette: cold at the bottom, hot at the top.
	if lg.Buckets[0].Fill != "rgba(116,173,209,1.0)" {
		t.Fatalf("lowest bucket fill = %q", lg.Buckets[0].Fill)
	}
	if lg.Buckets[len(lg.Buckets)-1].Fill != "rgba(215,48,39,1.0)" {
		t.Fatalf("highest bucket fill = %q", lg.Buckets[len(lg.Buckets)-1].Fill)
	}

	if len(lg.Ticks) != LegendBuckets+1 {
		t.Fatalf("expected %d legend ticks, got %d", LegendBuckets+1, len(lg.Ticks))
	}
	if lg.Ticks[0].Label != "-1.00" || lg.Ticks[len(lg.Ticks)-1].Label != "1.20" {
		t.Fatalf("unexpected legend tick labels %+v", lg.Ticks)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	chart, err := newTestRenderer(t).Render(climate.Dataset{BaseTemperature: 8.66})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart.Cells) != 0 || len(chart.XTicks) != 0 {
		t.Fatalf("expected no cells and no year ticks, got %d / %d", len(chart.Cells), len(chart.XTicks))
	}
	if len(chart.Legend.Buckets) != 1 {
		t.Fatalf("expected a single degenerate bucket, got %d", len(chart.Legend.Buckets))
	}
}

func TestRenderSingleRecord(t *testing.T) {
	ds := climate.Dataset{
		BaseTemperature: 8.66,
		Records:         []climate.TemperatureRecord{{Year: 1753, Month: 1, Variance: -1.366}},
	}
	chart, err := newTestRenderer(t).Render(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart.Cells) != 1 || chart.Cells[0].Width != 1000 {
		t.Fatalf("expected one full-width cell, got %+v", chart.Cells)
	}
	if chart.Cells[0].Fill != "rgba(142,83,110,1.0)" {
		t.Fatalf("degenerate extent should use the midpoint colour, got %q", chart.Cells[0].Fill)
	}

	lg := chart.Legend
	if len(lg.Buckets) != 1 {
		t.Fatalf("expected one bucket, got %d", len(lg.Buckets))
	}
	b := lg.Buckets[0]
	if b.Start != -1.366 || b.End != -1.366 || b.X != 0 || b.Width != lg.Width {
		t.Fatalf("single bucket should span the whole legend, got %+v", b)
	}
	if len(lg.Ticks) != 1 || lg.Ticks[0].Label != "-1.37" {
		t.Fatalf("unexpected ticks %+v", lg.Ticks)
	}
}

func TestNewRendererRejectsBadLayout(t *testing.T) {
	cases := map[string]func(*Layout){
		"padding":       func(l *Layout) { l.Padding = 700 },
		"tight padding": func(l *Layout) { l.Padding = 60 },
		"legend":        func(l *Layout) { l.LegendWidth = 0 },
		"wide legend":   func(l *Layout) { l.LegendWidth = 1100 },
		"cold":          func(l *Layout) { l.ColdColor = "ice" },
		"palette":       func(l *Layout) { l.Palette = l.Palette[:4] },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			l := DefaultLayout()
			mutate(&l)
			if _, err := NewRenderer(l); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRenderLegendBelowAxis(t *testing.T) {
	chart := renderFixture(t)
	lg := chart.Legend

	plotBottom := chart.Height - chart.Padding
	if lg.Y < plotBottom+xAxisBand {
		t.Fatalf("legend at y=%v overlaps the x axis ending at %v", lg.Y, plotBottom+xAxisBand)
	}
	if bottom := lg.Y + lg.Height + legendAxisBand; bottom > chart.Height {
		t.Fatalf("legend and its ticks end at %v, past chart height %v", bottom, chart.Height)
	}
	if lg.X != chart.Padding {
		t.Fatalf("legend x = %v, want %v", lg.X, chart.Padding)
	}
}
