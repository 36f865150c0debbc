package heatmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

func TestWriteSVG(t *testing.T) {
	chart := renderFixture(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, chart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`id="x-axis"`,
		`id="y-axis"`,
		`id="legend"`,
		`data-render-id="` + chart.ID + `"`,
		`data-month="0" data-year="1900" data-temp="7.5"`,
		`<g id="tooltip"`,
		`opacity="0"`,
		"1900 - 1920: base temperature 8°C",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg output missing %q", want)
		}
	}
	if n := strings.Count(out, `class="cell"`); n != len(chart.Cells) {
		t.Fatalf("expected %d cells in output, got %d", len(chart.Cells), n)
	}
	if n := strings.Count(out, `class="legend-bucket"`); n != LegendBuckets {
		t.Fatalf("expected %d legend swatches, got %d", LegendBuckets, n)
	}
	if strings.Contains(out, `stroke="#222"`) {
		t.Fatal("no cell should be highlighted before hover")
	}
}

func TestWriteSVGHighlighted(t *testing.T) {
	chart := renderFixture(t)
	chart.Enter(1900, 1, 50, 60)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, chart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, `stroke="#222" stroke-width="2"`); n != 1 {
		t.Fatalf("expected exactly one highlighted cell, got %d", n)
	}
	for _, want := range []string{"Temp: 7.50°C", "Variance: -0.50°C", `opacity="0.9"`, `data-year="1900">`} {
		if !strings.Contains(out, want) {
			t.Fatalf("highlighted svg missing %q", want)
		}
	}
}

func TestWriteSVGHighlightedYearZero(t *testing.T) {
	ds := climate.Dataset{
		BaseTemperature: 8.0,
		Records: []climate.TemperatureRecord{
			{Year: 0, Month: 1, Variance: 0.4},
			{Year: 1, Month: 1, Variance: -0.4},
		},
	}
	chart, err := newTestRenderer(t).Render(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !chart.Enter(0, 1, 10, 10) {
		t.Fatal("expected year 0 record to be on the chart")
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, chart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `opacity="0.9" data-year="0">`) {
		t.Fatal("tooltip should carry data-year for year 0")
	}
}

func TestWritePage(t *testing.T) {
	chart := renderFixture(t)

	var buf bytes.Buffer
	if err := WritePage(&buf, chart, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>" + ChartTitle + "</title>",
		`<div id="tooltip"></div>`,
		`id="heatmap"`,
		"mouseenter",
		"mouseleave",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Contains(out, `<g id="tooltip"`) {
		t.Fatal("page should use its own tooltip element, not the svg one")
	}
}
