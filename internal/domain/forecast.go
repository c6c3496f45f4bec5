package domain

// ForecastHorizons labels the five forecast points.
var ForecastHorizons = [5]string{"Now", "+1h", "+2h", "+3h", "+4h"}

var (
	stormKp = [5]float64{7.5, 8.0, 8.5, 7.0, 6.0}
	calmKp  = [5]float64{2.1, 2.3, 2.0, 1.8, 2.2}
)

// ForecastPoint is a predicted planetary Kp index at a horizon.
type ForecastPoint struct {
	Horizon     string  `json:"horizon"`
	PredictedKp float64 `json:"predicted_kp"`
}

// Forecast is always five points, Now through +4h.
type Forecast []ForecastPoint

// ForecastKp returns the storm outlook when simulating and the calm outlook
// otherwise. The choice depends only on the flag: a measured CRITICAL speed
// with simulate=false still yields the calm outlook.
func ForecastKp(simulate bool) Forecast {
	values := calmKp
	if simulate {
		values = stormKp
	}
	f := make(Forecast, len(values))
	for i, v := range values {
		f[i] = ForecastPoint{Horizon: ForecastHorizons[i], PredictedKp: v}
	}
	return f
}

// Values returns the predicted Kp values in horizon order.
func (f Forecast) Values() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.PredictedKp
	}
	return out
}
