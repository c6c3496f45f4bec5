package domain

// Storm scenario values written over the latest sample when simulating.
const (
	StormSpeed       = 850.5
	StormDensity     = 25.0
	StormTemperature = 150000.0
)

// InjectStorm returns the sample unchanged when simulate is false. Otherwise
// it returns a copy carrying the fixed storm values and OriginSimulated. The
// input and any series it came from are never modified.
func InjectStorm(sample TelemetrySample, simulate bool) TelemetrySample {
	if !simulate {
		return sample
	}
	sample.Speed = float64Ptr(StormSpeed)
	sample.Density = float64Ptr(StormDensity)
	sample.Temperature = float64Ptr(StormTemperature)
	sample.Origin = OriginSimulated
	return sample
}
