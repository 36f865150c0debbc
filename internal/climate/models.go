package climate

import (
	"strconv"
	"time"
)

// TemperatureRecord is a single monthly observation of the global temperature
// deviation from the dataset's base temperature.
type TemperatureRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 1 = January
	Variance float64 `json:"variance"`
}

// Key returns the canonical identity of the record, e.g. "1900-1".
func (r TemperatureRecord) Key() string {
	return RecordKey(r.Year, r.Month)
}

// Temperature returns the absolute temperature for the record given the base.
func (r TemperatureRecord) Temperature(base float64) float64 {
	return base + r.Variance
}

// RecordKey builds the identity used by Key for a year/month pair.
func RecordKey(year, month int) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month)
}

// Dataset is the loaded monthly-variance payload. It is read only once loaded.
type Dataset struct {
	BaseTemperature float64             `json:"baseTemperature"`
	Records         []TemperatureRecord `json:"monthlyVariance"`
}

// MonthName returns the English month name for a 1-based month index, or an
// empty string when the index is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// Summary describes a dataset without its records.
type Summary struct {
	BaseTemperature float64 `json:"baseTemperature"`
	Records         int     `json:"records"`
	FirstYear       int     `json:"firstYear"`
	LastYear        int     `json:"lastYear"`
	MinVariance     float64 `json:"minVariance"`
	MaxVariance     float64 `json:"maxVariance"`
}

// Summarize computes the year range and variance extent of the dataset.
// All numeric fields except BaseTemperature are zero for an empty dataset.
func (d Dataset) Summarize() Summary {
	s := Summary{
		BaseTemperature: d.BaseTemperature,
		Records:         len(d.Records),
	}
	for i, r := range d.Records {
		if i == 0 {
			s.FirstYear, s.LastYear = r.Year, r.Year
			s.MinVariance, s.MaxVariance = r.Variance, r.Variance
			continue
		}
		if r.Year < s.FirstYear {
			s.FirstYear = r.Year
		}
		if r.Year > s.LastYear {
			s.LastYear = r.Year
		}
		if r.Variance < s.MinVariance {
			s.MinVariance = r.Variance
		}
		if r.Variance > s.MaxVariance {
			s.MaxVariance = r.Variance
		}
	}
	return s
}
