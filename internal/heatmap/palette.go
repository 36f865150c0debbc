package heatmap

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RdYlBu is the 9-class red-yellow-blue diverging scheme, hot first.
var RdYlBu = []string{
	"#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
	"#e0f3f8", "#abd9e9", "#74add1", "#4575b4",
}

// ParseColor parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (drawing.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return drawing.Color{}, fmt.Errorf("invalid colour %q", s)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

// parsePalette parses every colour and returns them in reverse order, so the
// last palette entry is used for the lowest bucket.
func parsePalette(hexes []string) ([]drawing.Color, error) {
	out := make([]drawing.Color, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out[len(hexes)-1-i] = c
	}
	return out, nil
}
