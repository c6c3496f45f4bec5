package domain

import "time"

// Feed header names used by the SWPC plasma product.
const (
	FieldTimeTag     = "time_tag"
	FieldDensity     = "density"
	FieldSpeed       = "speed"
	FieldTemperature = "temperature"
)

// Origin records whether a sample was measured or synthesized.
type Origin string

const (
	OriginReal      Origin = "real"
	OriginSimulated Origin = "simulated"
)

// RawTable is the undecoded feed: row 0 is the header, the rest are values
// aligned to it by position.
type RawTable [][]string

// TelemetrySample is one plasma measurement. A nil field is missing.
type TelemetrySample struct {
	Timestamp   time.Time `json:"timestamp"`
	Speed       *float64  `json:"speed"`       // km/s
	Density     *float64  `json:"density"`     // p/cm³
	Temperature *float64  `json:"temperature"` // K
	Origin      Origin    `json:"origin"`
}

// TelemetrySeries is ordered by strictly increasing Timestamp.
type TelemetrySeries []TelemetrySample

// Latest returns the most recent sample, or false for an empty series.
func (s TelemetrySeries) Latest() (TelemetrySample, bool) {
	if len(s) == 0 {
		return TelemetrySample{}, false
	}
	return s[len(s)-1], true
}

// MissingFields counts nil numeric fields across the series.
func (s TelemetrySeries) MissingFields() int {
	n := 0
	for _, sample := range s {
		for _, f := range []*float64{sample.Speed, sample.Density, sample.Temperature} {
			if f == nil {
				n++
			}
		}
	}
	return n
}

func float64Ptr(v float64) *float64 {
	return &v
}
