package common

import "strconv"

// Extent returns the minimum and maximum of vs. ok is false when vs is empty.
func Extent(vs []float64) (lo, hi float64, ok bool) {
	if len(vs) == 0 {
		return 0, 0, false
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}

// FormatFloat renders v with the shortest representation that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
