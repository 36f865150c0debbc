package heatmap

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/i474232898/temperature-heatmap/internal/common"
)

const (
	ChartTitle = "Monthly Global Land-Surface Temperature"

	tooltipBoxWidth  = 170
	tooltipBoxHeight = 54
)

var svgTemplate = template.Must(template.New("svg").Funcs(template.FuncMap{
	"num": common.FormatFloat,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" id="heatmap" width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}" data-render-id="{{.ID}}" font-family="sans-serif" font-size="11">
<title>{{.Title}}</title>
<text id="title" x="{{num .CenterX}}" y="{{num .TitleY}}" text-anchor="middle" font-size="20">{{.Title}}</text>
<text id="description" x="{{num .CenterX}}" y="{{num .DescriptionY}}" text-anchor="middle" font-size="14">{{.Description}}</text>
<g class="cells">
{{- range .Cells}}
<rect class="cell" x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" fill="{{.Fill}}" stroke="{{.Stroke}}"{{if .StrokeWidth}} stroke-width="{{.StrokeWidth}}"{{end}} data-month="{{.DataMonth}}" data-year="{{.Year}}" data-temp="{{num .Temp}}" data-variance="{{num .Variance}}" data-tip="{{.Tip}}"></rect>
{{- end}}
</g>
<g id="x-axis" transform="translate(0,{{num .PlotBottom}})">
<line x1="{{num .Padding}}" x2="{{num .PlotRight}}" stroke="currentColor"></line>
{{- range .XTicks}}
<g class="tick" transform="translate({{num .Position}},0)"><line y2="6" stroke="currentColor"></line><text y="9" dy="0.71em" text-anchor="middle">{{.Label}}</text></g>
{{- end}}
<text class="axis-label" x="{{num .CenterX}}" y="{{.XAxisLabelY}}" text-anchor="middle">Years</text>
</g>
<g id="y-axis" transform="translate({{num .Padding}},0)">
<line y1="{{num .Padding}}" y2="{{num .PlotBottom}}" stroke="currentColor"></line>
{{- range .YTicks}}
<g class="tick" transform="translate(0,{{num .Position}})"><line x2="-6" stroke="currentColor"></line><text x="-9" dy="0.32em" text-anchor="end">{{.Label}}</text></g>
{{- end}}
<text class="axis-label" transform="rotate(-90)" x="-{{num .CenterY}}" y="-80" text-anchor="middle">Months</text>
</g>
<g id="legend" transform="translate({{num .Legend.X}},{{num .Legend.Y}})">
{{- $h := .Legend.Height}}
{{- range .Legend.Buckets}}
<rect class="legend-bucket" x="{{num .X}}" y="0" width="{{num .Width}}" height="{{num $h}}" fill="{{.Fill}}" data-start="{{num .Start}}" data-end="{{num .End}}"></rect>
{{- end}}
<g id="legend-axis" transform="translate(0,{{num $h}})">
{{- range .Legend.Ticks}}
<g class="tick" transform="translate({{num .Position}},0)"><line y2="6" stroke="currentColor"></line><text y="9" dy="0.71em" text-anchor="middle">{{.Label}}</text></g>
{{- end}}
</g>
</g>
{{- if .Standalone}}
<g id="tooltip" transform="translate({{num .Tooltip.X}},{{num .Tooltip.Y}})" opacity="{{num .Tooltip.Opacity}}"{{if .Tooltip.Lines}} data-year="{{.Tooltip.Year}}"{{end}}>
<rect width="{{.TooltipWidth}}" height="{{.TooltipHeight}}" rx="4" fill="#fff" stroke="#999"></rect>
{{- range $i, $line := .Tooltip.Lines}}
<text x="8" y="{{index $.TooltipLineY $i}}">{{$line}}</text>
{{- end}}
</g>
{{- end}}
</svg>
`))

type cellView struct {
	Cell
	Stroke      string
	StrokeWidth string
	Tip         string
}

// svgView is the chart flattened into the values the template prints.
type svgView struct {
	*Chart
	Cells []cellView

	Title       string
	Description string
	Standalone  bool

	CenterX, CenterY     float64
	TitleY, DescriptionY float64
	PlotRight            float64
	PlotBottom           float64
	XAxisLabelY          int

	TooltipWidth  int
	TooltipHeight int
	TooltipLineY  []int
}

func newSVGView(c *Chart, standalone bool) svgView {
	v := svgView{
		Chart:         c,
		Cells:         make([]cellView, 0, len(c.Cells)),
		Title:         ChartTitle,
		Description:   Description(c),
		Standalone:    standalone,
		CenterX:       c.Width / 2,
		CenterY:       c.Height / 2,
		TitleY:        c.Padding/2 - 10,
		DescriptionY:  c.Padding/2 + 14,
		PlotRight:     c.Width - c.Padding,
		PlotBottom:    c.Height - c.Padding,
		XAxisLabelY:   xAxisLabelY,
		TooltipWidth:  tooltipBoxWidth,
		TooltipHeight: tooltipBoxHeight,
		TooltipLineY:  []int{16, 32, 48},
	}
	for _, cell := range c.Cells {
		stroke, width := c.Stroke(cell)
		cv := cellView{
			Cell:   cell,
			Stroke: stroke,
			Tip:    strings.Join(TooltipLines(cell), "\n"),
		}
		if width > 0 {
			cv.StrokeWidth = common.FormatFloat(width)
		}
		v.Cells = append(v.Cells, cv)
	}
	return v
}

// Description is the subtitle shown under the chart title.
func Description(c *Chart) string {
	if len(c.Cells) == 0 {
		return "No data: base temperature " + common.FormatFloat(c.BaseTemperature) + "°C"
	}
	return strconv.Itoa(c.FirstYear) + " - " + strconv.Itoa(c.LastYear) + ": base temperature " + common.FormatFloat(c.BaseTemperature) + "°C"
}

// WriteSVG writes the chart as a standalone SVG document. The current
// highlight and tooltip state are part of the output.
func WriteSVG(w io.Writer, c *Chart) error {
	return svgTemplate.Execute(w, newSVGView(c, true))
}

// inlineSVG renders the chart for embedding in the page, which supplies its
// own tooltip element.
func inlineSVG(c *Chart) (template.HTML, error) {
	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, newSVGView(c, false)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
