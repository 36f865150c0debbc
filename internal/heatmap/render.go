package heatmap

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/common"
)

// Space below the plot, in chart units. The legend starts after the x axis
// band and needs legendAxisBand under its swatches for tick labels.
const (
	xAxisBand      = 48
	xAxisLabelY    = 40
	legendAxisBand = 24
)

// Layout holds the chart geometry and colours.
type Layout struct {
	Width   float64
	Height  float64
	Padding float64 // applied on all four sides of the plot area

	LegendWidth  float64
	LegendHeight float64

	ColdColor string
	HotColor  string
	Palette   []string // hot first; reversed for the legend
}

// DefaultLayout is the 1200x500 chart with a 100 unit margin.
func DefaultLayout() Layout {
	return Layout{
		Width:        1200,
		Height:       500,
		Padding:      100,
		LegendWidth:  400,
		LegendHeight: 20,
		ColdColor:    "#4575b4",
		HotColor:     "#d73027",
		Palette:      RdYlBu,
	}
}

// Cell is the rectangle drawn for one record.
type Cell struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`     // 1-based
	DataMonth int     `json:"dataMonth"` // 0-based, as exposed in data-month
	Variance  float64 `json:"variance"`
	Temp      float64 `json:"temp"` // base + variance, unrounded

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
}

// Key identifies the record the cell was drawn for.
func (c Cell) Key() string {
	return climate.RecordKey(c.Year, c.Month)
}

// Chart is the full set of primitives produced by one render pass.
type Chart struct {
	ID      string  `json:"id"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`

	BaseTemperature float64 `json:"baseTemperature"`
	FirstYear       int     `json:"firstYear"`
	LastYear        int     `json:"lastYear"`

	Cells   []Cell  `json:"cells"`
	XTicks  []Tick  `json:"xTicks"`
	YTicks  []Tick  `json:"yTicks"`
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`

	highlight HighlightState
	index     map[string]int
}

// Cell returns the cell drawn for year/month.
func (c *Chart) Cell(year, month int) (Cell, bool) {
	i, ok := c.index[climate.RecordKey(year, month)]
	if !ok {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// Renderer turns datasets into charts. It holds no per-dataset state, so
// scales are rebuilt on every call to Render.
type Renderer struct {
	layout  Layout
	cold    drawing.Color
	hot     drawing.Color
	palette []drawing.Color
}

// NewRenderer validates the layout and parses its colours.
func NewRenderer(layout Layout) (*Renderer, error) {
	if layout.Width <= 2*layout.Padding || layout.Height <= 2*layout.Padding {
		return nil, fmt.Errorf("chart %gx%g leaves no room inside padding %g", layout.Width, layout.Height, layout.Padding)
	}
	if layout.LegendWidth <= 0 || layout.LegendHeight <= 0 {
		return nil, fmt.Errorf("legend size must be positive")
	}
	if below := xAxisBand + layout.LegendHeight + legendAxisBand; layout.Padding < below {
		return nil, fmt.Errorf("padding %g cannot fit the x axis and legend below the plot, need at least %g", layout.Padding, below)
	}
	if layout.LegendWidth > layout.Width-2*layout.Padding {
		return nil, fmt.Errorf("legend width %g is wider than the plot", layout.LegendWidth)
	}
	if len(layout.Palette) < LegendBuckets+1 {
		return nil, fmt.Errorf("palette needs %d colours, got %d", LegendBuckets+1, len(layout.Palette))
	}

	cold, err := ParseColor(layout.ColdColor)
	if err != nil {
		return nil, fmt.Errorf("cold colour: %w", err)
	}
	hot, err := ParseColor(layout.HotColor)
	if err != nil {
		return nil, fmt.Errorf("hot colour: %w", err)
	}
	palette, err := parsePalette(layout.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	return &Renderer{
		layout:  layout,
		cold:    cold,
		hot:     hot,
		palette: palette,
	}, nil
}

// Render lays out ds. Empty and single-valued datasets produce an empty or
// minimal chart rather than an error.
func (r *Renderer) Render(ds climate.Dataset) (*Chart, error) {
	l := r.layout

	years := make([]int, 0, len(ds.Records))
	variances := make([]float64, 0, len(ds.Records))
	for _, rec := range ds.Records {
		years = append(years, rec.Year)
		variances = append(variances, rec.Variance)
	}
	months := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	xScale := NewBandScale(years, l.Padding, l.Width-l.Padding)
	yScale := NewBandScale(months, l.Padding, l.Height-l.Padding)

	lo, hi, _ := common.Extent(variances)
	colors := NewColorScale(lo, hi, r.cold, r.hot)

	legend, err := buildLegend(lo, hi, r.palette, l.LegendWidth, l.LegendHeight)
	if err != nil {
		return nil, err
	}
	legend.X = l.Padding
	legend.Y = l.Height - l.Padding + xAxisBand

	summary := ds.Summarize()
	chart := &Chart{
		ID:              uuid.NewString(),
		Width:           l.Width,
		Height:          l.Height,
		Padding:         l.Padding,
		BaseTemperature: ds.BaseTemperature,
		FirstYear:       summary.FirstYear,
		LastYear:        summary.LastYear,
		Cells:           make([]Cell, 0, len(ds.Records)),
		XTicks:          yearTicks(xScale),
		YTicks:          monthTicks(yScale),
		Legend:          legend,
		index:           make(map[string]int, len(ds.Records)),
	}

	for _, rec := range ds.Records {
		x, _ := xScale.Scale(rec.Year)
		y, ok := yScale.Scale(rec.Month)
		if !ok {
			// Validated payloads never get here.
			log.Printf("heatmap: skipping record %s with month out of range", rec.Key())
			continue
		}
		chart.index[rec.Key()] = len(chart.Cells)
		chart.Cells = append(chart.Cells, Cell{
			Year:      rec.Year,
			Month:     rec.Month,
			DataMonth: rec.Month - 1,
			Variance:  rec.Variance,
			Temp:      rec.Temperature(ds.BaseTemperature),
			X:         x,
			Y:         y,
			Width:     xScale.Bandwidth(),
			Height:    yScale.Bandwidth(),
			Fill:      colors.Fill(rec.Variance),
		})
	}

	log.Printf("DEBUG: heatmap %s rendered %d cells, %d years, variance [%.3f, %.3f]",
		chart.ID, len(chart.Cells), len(xScale.Domain()), lo, hi)
	return chart, nil
}
