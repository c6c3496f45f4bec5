package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectStorm(t *testing.T) {
	ts := time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC)

	t.Run("disabled is identity", func(t *testing.T) {
		in := TelemetrySample{Timestamp: ts, Speed: float64Ptr(410), Origin: OriginReal}
		out := InjectStorm(in, false)
		assert.Equal(t, in, out)
	})

	t.Run("enabled overrides every field", func(t *testing.T) {
		for _, in := range []TelemetrySample{
			{Timestamp: ts, Speed: float64Ptr(410), Density: float64Ptr(4), Temperature: float64Ptr(90000), Origin: OriginReal},
			{Timestamp: ts, Origin: OriginReal},
			{Timestamp: ts, Speed: float64Ptr(999), Origin: OriginReal},
		} {
			out := InjectStorm(in, true)
			require.NotNil(t, out.Speed)
			require.NotNil(t, out.Density)
			require.NotNil(t, out.Temperature)
			assert.Equal(t, 850.5, *out.Speed)
			assert.Equal(t, 25.0, *out.Density)
			assert.Equal(t, 150000.0, *out.Temperature)
			assert.Equal(t, OriginSimulated, out.Origin)
			assert.Equal(t, ts, out.Timestamp)
		}
	})

	t.Run("series is not mutated", func(t *testing.T) {
		series := TelemetrySeries{
			{Timestamp: ts, Speed: float64Ptr(410), Density: float64Ptr(4), Temperature: float64Ptr(90000), Origin: OriginReal},
		}
		latest, ok := series.Latest()
		require.True(t, ok)

		out := InjectStorm(latest, true)
		*out.Speed = 1 // writes through the copy must not reach the series

		assert.Equal(t, 410.0, *series[0].Speed)
		assert.Equal(t, 4.0, *series[0].Density)
		assert.Equal(t, 90000.0, *series[0].Temperature)
		assert.Equal(t, OriginReal, series[0].Origin)
	})
}
