package heatmap

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;padding:24px;font-family:sans-serif;background:#fafafa;color:#222}
#chart{position:relative;display:inline-block;background:#fff;box-shadow:0 1px 4px rgba(0,0,0,.2)}
#tooltip{position:absolute;opacity:0;pointer-events:none;white-space:pre-line;background:#fff;border:1px solid #999;border-radius:4px;padding:6px 8px;font-size:12px;line-height:1.5}
</style>
</head>
<body>
<div id="chart">{{.SVG}}</div>
<div id="tooltip"></div>
<script>
(function () {
  var tip = document.getElementById("tooltip");
  document.querySelectorAll("#heatmap rect.cell").forEach(function (cell) {
    cell.addEventListener("mouseenter", function (ev) {
      cell.setAttribute("stroke", "{{.Stroke}}");
      cell.setAttribute("stroke-width", "{{.StrokeWidth}}");
      tip.textContent = cell.getAttribute("data-tip");
      tip.setAttribute("data-year", cell.getAttribute("data-year"));
      tip.style.left = (ev.pageX + {{.OffsetX}}) + "px";
      tip.style.top = (ev.pageY + {{.OffsetY}}) + "px";
      tip.style.opacity = "{{.Opacity}}";
    });
    cell.addEventListener("mouseleave", function () {
      cell.setAttribute("stroke", "none");
      cell.removeAttribute("stroke-width");
      tip.style.opacity = "0";
    });
  });
})();
</script>
</body>
</html>
`))

type pageView struct {
	Title       string
	SVG         template.HTML
	Stroke      string
	StrokeWidth int
	Opacity     float64
	OffsetX     int
	OffsetY     int
}

// WritePage writes an HTML document embedding the chart, a tooltip element
// and the hover script. The page starts with nothing highlighted.
func WritePage(w io.Writer, c *Chart, title string) error {
	svg, err := inlineSVG(c)
	if err != nil {
		return err
	}
	if title == "" {
		title = ChartTitle
	}
	return pageTemplate.Execute(w, pageView{
		Title:       title,
		SVG:         svg,
		Stroke:      HighlightStroke,
		StrokeWidth: HighlightStrokeWidth,
		Opacity:     TooltipOpacity,
		OffsetX:     tooltipOffsetX,
		OffsetY:     tooltipOffsetY,
	})
}
