package heatmap

import (
	"strconv"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

// Tick is a labelled axis position, centred on its band for band axes.
type Tick struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// yearTicks labels only the decades present in the domain.
func yearTicks(years BandScale) []Tick {
	var ticks []Tick
	half := years.Bandwidth() / 2
	for _, y := range years.Domain() {
		if y%10 != 0 {
			continue
		}
		pos, _ := years.Scale(y)
		ticks = append(ticks, Tick{Label: strconv.Itoa(y), Position: pos + half})
	}
	return ticks
}

func monthTicks(months BandScale) []Tick {
	ticks := make([]Tick, 0, len(months.Domain()))
	half := months.Bandwidth() / 2
	for _, m := range months.Domain() {
		pos, _ := months.Scale(m)
		ticks = append(ticks, Tick{Label: climate.MonthName(m), Position: pos + half})
	}
	return ticks
}
