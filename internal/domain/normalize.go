package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are tried in order when parsing time_tag.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
}

// requiredFields must all appear in the header row.
var requiredFields = []string{FieldTimeTag, FieldSpeed, FieldDensity, FieldTemperature}

// Normalize converts a raw feed table into a typed series. Numeric cells that
// cannot be parsed become missing on that sample; a bad or out-of-order
// timestamp rejects the whole table.
func Normalize(raw RawTable) (TelemetrySeries, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedTable)
	}

	colIdx := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, field := range requiredFields {
		if _, ok := colIdx[field]; !ok {
			return nil, fmt.Errorf("%w: header has no %q column", ErrMalformedTable, field)
		}
	}

	series := make(TelemetrySeries, 0, len(raw)-1)
	for n, row := range raw[1:] {
		cell := func(field string) string {
			i, ok := colIdx[field]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		ts, err := parseTimeTag(cell(FieldTimeTag))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, err)
		}
		if len(series) > 0 && !ts.After(series[len(series)-1].Timestamp) {
			return nil, fmt.Errorf("row %d: %w: %s follows %s", n+1, ErrTimestampOrder,
				ts.Format(time.RFC3339), series[len(series)-1].Timestamp.Format(time.RFC3339))
		}

		series = append(series, TelemetrySample{
			Timestamp:   ts,
			Speed:       parseFloatOrMissing(cell(FieldSpeed)),
			Density:     parseFloatOrMissing(cell(FieldDensity)),
			Temperature: parseFloatOrMissing(cell(FieldTemperature)),
			Origin:      OriginReal,
		})
	}
	return series, nil
}

// parseTimeTag parses an SWPC time_tag as UTC.
func parseTimeTag(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampParse, s)
}

// parseFloatOrMissing parses a numeric cell, returning nil for empty,
// non-numeric, NaN, or infinite values.
func parseFloatOrMissing(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
