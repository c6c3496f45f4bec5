package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastKp(t *testing.T) {
	t.Run("simulated storm", func(t *testing.T) {
		f := ForecastKp(true)
		require.Len(t, f, 5)
		assert.Equal(t, []float64{7.5, 8.0, 8.5, 7.0, 6.0}, f.Values())
	})

	t.Run("calm", func(t *testing.T) {
		f := ForecastKp(false)
		require.Len(t, f, 5)
		assert.Equal(t, []float64{2.1, 2.3, 2.0, 1.8, 2.2}, f.Values())
	})

	t.Run("horizon labels", func(t *testing.T) {
		f := ForecastKp(false)
		labels := make([]string, len(f))
		for i, p := range f {
			labels[i] = p.Horizon
		}
		assert.Equal(t, []string{"Now", "+1h", "+2h", "+3h", "+4h"}, labels)
	})

	t.Run("returned slices are independent", func(t *testing.T) {
		a := ForecastKp(true)
		a[0].PredictedKp = 0
		assert.Equal(t, 7.5, ForecastKp(true)[0].PredictedKp)
	})
}
