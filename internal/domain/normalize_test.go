package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"time_tag", "density", "speed", "temperature"}

func TestNormalize(t *testing.T) {
	t.Run("single RFC3339 row", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:00:00Z", "5.2", "450.1", "100000"},
		}
		series, err := Normalize(raw)

		require.NoError(t, err)
		require.Len(t, series, 1)
		s := series[0]
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.Timestamp)
		require.NotNil(t, s.Speed)
		assert.Equal(t, 450.1, *s.Speed)
		require.NotNil(t, s.Density)
		assert.Equal(t, 5.2, *s.Density)
		require.NotNil(t, s.Temperature)
		assert.Equal(t, 100000.0, *s.Temperature)
		assert.Equal(t, OriginReal, s.Origin)
	})

	t.Run("SWPC time format", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-05-10 17:00:00.000", "5.21", "450.1", "100000"},
			{"2024-05-10 17:01:00", "5.30", "452.0", "101000"},
		}
		series, err := Normalize(raw)

		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC), series[0].Timestamp)
		assert.Equal(t, time.Date(2024, 5, 10, 17, 1, 0, 0, time.UTC), series[1].Timestamp)
	})

	t.Run("bad speed becomes missing", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:00:00Z", "5.2", "bad", "100000"},
			{"2024-01-01T00:01:00Z", "5.3", "451.0", "100100"},
		}
		series, err := Normalize(raw)

		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Nil(t, series[0].Speed)
		require.NotNil(t, series[0].Density)
		assert.Equal(t, 5.2, *series[0].Density)
		require.NotNil(t, series[1].Speed)
		assert.Equal(t, 451.0, *series[1].Speed)
	})

	t.Run("empty NaN and short rows are missing", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:00:00Z", "", "NaN"},
		}
		series, err := Normalize(raw)

		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.Nil(t, series[0].Density)
		assert.Nil(t, series[0].Speed)
		assert.Nil(t, series[0].Temperature)
		assert.Equal(t, 3, series.MissingFields())
	})

	t.Run("columns matched by header name", func(t *testing.T) {
		raw := RawTable{
			{"speed", "time_tag", "temperature", "density"},
			{"610", "2024-01-01T00:00:00Z", "90000", "3.1"},
		}
		series, err := Normalize(raw)

		require.NoError(t, err)
		require.Len(t, series, 1)
		assert.Equal(t, 610.0, *series[0].Speed)
		assert.Equal(t, 3.1, *series[0].Density)
		assert.Equal(t, 90000.0, *series[0].Temperature)
	})

	t.Run("header only", func(t *testing.T) {
		series, err := Normalize(RawTable{testHeader})
		require.NoError(t, err)
		assert.Empty(t, series)
	})

	t.Run("no header", func(t *testing.T) {
		_, err := Normalize(RawTable{})
		require.ErrorIs(t, err, ErrMalformedTable)
	})

	t.Run("header missing a required column", func(t *testing.T) {
		headers := map[string][]string{
			"time_tag":    {"density", "speed", "temperature"},
			"speed":       {"time_tag", "density", "temperature"},
			"density":     {"time_tag", "speed", "temperature"},
			"temperature": {"time_tag", "density", "speed"},
		}
		for missing, header := range headers {
			_, err := Normalize(RawTable{header, {"2024-01-01T00:00:00Z", "1", "2"}})
			require.ErrorIs(t, err, ErrMalformedTable, missing)
			assert.Contains(t, err.Error(), missing)
		}
	})

	t.Run("bad timestamp fails batch", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:00:00Z", "5.2", "450.1", "100000"},
			{"yesterday", "5.2", "450.1", "100000"},
		}
		series, err := Normalize(raw)
		require.ErrorIs(t, err, ErrTimestampParse)
		assert.Nil(t, series)
	})

	t.Run("duplicate timestamp fails batch", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:00:00Z", "5.2", "450.1", "100000"},
			{"2024-01-01T00:00:00Z", "5.3", "451.0", "100000"},
		}
		_, err := Normalize(raw)
		require.ErrorIs(t, err, ErrTimestampOrder)
	})

	t.Run("out of order timestamp fails batch", func(t *testing.T) {
		raw := RawTable{
			testHeader,
			{"2024-01-01T00:05:00Z", "5.2", "450.1", "100000"},
			{"2024-01-01T00:01:00Z", "5.3", "451.0", "100000"},
		}
		_, err := Normalize(raw)
		require.ErrorIs(t, err, ErrTimestampOrder)
	})
}

func TestNormalize_MatchesExpectedSeries(t *testing.T) {
	raw := RawTable{
		testHeader,
		{"2024-05-10 17:00:00.000", "5.2", "450.1", "100000"},
		{"2024-05-10 17:01:00.000", "5.4", "", "100500"},
	}
	series, err := Normalize(raw)
	require.NoError(t, err)

	want := TelemetrySeries{
		{
			Timestamp:   time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC),
			Speed:       float64Ptr(450.1),
			Density:     float64Ptr(5.2),
			Temperature: float64Ptr(100000),
			Origin:      OriginReal,
		},
		{
			Timestamp:   time.Date(2024, 5, 10, 17, 1, 0, 0, time.UTC),
			Density:     float64Ptr(5.4),
			Temperature: float64Ptr(100500),
			Origin:      OriginReal,
		},
	}
	if diff := cmp.Diff(want, series); diff != "" {
		t.Fatalf("series mismatch (-want +got):\n%s", diff)
	}
}

func TestTelemetrySeries_Latest(t *testing.T) {
	_, ok := TelemetrySeries(nil).Latest()
	assert.False(t, ok)

	series := TelemetrySeries{
		{Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Speed: float64Ptr(400)},
		{Timestamp: time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC), Speed: float64Ptr(410)},
	}
	latest, ok := series.Latest()
	require.True(t, ok)
	assert.Equal(t, 410.0, *latest.Speed)
}
