package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRisk(t *testing.T) {
	tests := []struct {
		name  string
		speed *float64
		want  RiskState
	}{
		{"slow wind", float64Ptr(320), RiskSafe},
		{"exactly 500 is safe", float64Ptr(500), RiskSafe},
		{"just above 500", float64Ptr(500.01), RiskWarning},
		{"mid warning band", float64Ptr(600), RiskWarning},
		{"exactly 700 is warning", float64Ptr(700), RiskWarning},
		{"just above 700", float64Ptr(700.1), RiskCritical},
		{"storm speed", float64Ptr(850.5), RiskCritical},
		{"missing speed", nil, RiskUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EvaluateRisk(TelemetrySample{Speed: tc.speed}))
		})
	}
}

func TestEvaluateRisk_IgnoresDensityAndTemperature(t *testing.T) {
	sample := TelemetrySample{
		Speed:       float64Ptr(420),
		Density:     float64Ptr(StormDensity),
		Temperature: float64Ptr(StormTemperature),
	}
	assert.Equal(t, RiskSafe, EvaluateRisk(sample))
}

func TestRiskState_Labels(t *testing.T) {
	assert.Equal(t, "CRITICAL ALERT: G5 GEOMAGNETIC STORM", RiskCritical.Headline())
	assert.Equal(t, "WARNING: HIGH ACTIVITY", RiskWarning.Headline())
	assert.Equal(t, "STATUS: SAFE", RiskSafe.Headline())
	assert.Contains(t, RiskUnknown.Headline(), "UNKNOWN")

	assert.Equal(t, "CRITICAL", RiskCritical.SpeedLabel())
	assert.Equal(t, "Normal", RiskWarning.SpeedLabel())

	assert.Equal(t, -1.0, RiskUnknown.Level())
	assert.Equal(t, 0.0, RiskSafe.Level())
	assert.Equal(t, 1.0, RiskWarning.Level())
	assert.Equal(t, 2.0, RiskCritical.Level())
}
