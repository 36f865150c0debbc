package heatmap

import (
	"fmt"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

const (
	HighlightStroke      = "#222"
	HighlightStrokeWidth = 2

	TooltipOpacity = 0.9
	tooltipOffsetX = 10
	tooltipOffsetY = -28
)

// HighlightState is the single optional hovered record. The zero value means
// nothing is highlighted.
type HighlightState struct {
	key    string
	active bool
}

// Tooltip is the floating label shown next to the pointer. A hidden tooltip
// keeps its last content and only drops to zero opacity.
type Tooltip struct {
	Visible bool     `json:"visible"`
	Opacity float64  `json:"opacity"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Year    int      `json:"dataYear"`
	Lines   []string `json:"lines,omitempty"`
}

// TooltipLines formats the hover text for a cell.
func TooltipLines(c Cell) []string {
	return []string{
		fmt.Sprintf("%d - %s", c.Year, climate.MonthName(c.Month)),
		fmt.Sprintf("Temp: %.2f°C", c.Temp),
		fmt.Sprintf("Variance: %.2f°C", c.Variance),
	}
}

// Enter highlights the cell for year/month and shows its tooltip at the
// pointer. Any previously highlighted cell loses its highlight. Entering a
// record that is not on the chart is a no-op and returns false.
func (c *Chart) Enter(year, month int, pointerX, pointerY float64) bool {
	cell, ok := c.Cell(year, month)
	if !ok {
		return false
	}
	c.highlight = HighlightState{key: cell.Key(), active: true}
	c.Tooltip = Tooltip{
		Visible: true,
		Opacity: TooltipOpacity,
		X:       pointerX + tooltipOffsetX,
		Y:       pointerY + tooltipOffsetY,
		Year:    cell.Year,
		Lines:   TooltipLines(cell),
	}
	return true
}

// Leave clears the highlight and hides the tooltip.
func (c *Chart) Leave() {
	c.highlight = HighlightState{}
	c.Tooltip.Visible = false
	c.Tooltip.Opacity = 0
}

// Highlighted returns the currently highlighted cell, if any.
func (c *Chart) Highlighted() (Cell, bool) {
	if !c.highlight.active {
		return Cell{}, false
	}
	i, ok := c.index[c.highlight.key]
	if !ok {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// Stroke returns the outline for cell: none unless it is highlighted.
func (c *Chart) Stroke(cell Cell) (color string, width float64) {
	if c.highlight.active && c.highlight.key == cell.Key() {
		return HighlightStroke, HighlightStrokeWidth
	}
	return "none", 0
}
