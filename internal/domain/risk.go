package domain

// RiskState classifies current solar wind conditions.
type RiskState string

const (
	RiskSafe     RiskState = "SAFE"
	RiskWarning  RiskState = "WARNING"
	RiskCritical RiskState = "CRITICAL"
	// RiskUnknown is reported when the latest sample has no speed.
	RiskUnknown RiskState = "UNKNOWN"
)

// Speed thresholds in km/s. Both comparisons are strict.
const (
	CriticalSpeed = 700.0
	WarningSpeed  = 500.0
)

// EvaluateRisk maps a sample's bulk speed to a RiskState.
func EvaluateRisk(sample TelemetrySample) RiskState {
	if sample.Speed == nil {
		return RiskUnknown
	}
	switch speed := *sample.Speed; {
	case speed > CriticalSpeed:
		return RiskCritical
	case speed > WarningSpeed:
		return RiskWarning
	default:
		return RiskSafe
	}
}

// Headline is the operator-facing status line for the state.
func (r RiskState) Headline() string {
	switch r {
	case RiskCritical:
		return "CRITICAL ALERT: G5 GEOMAGNETIC STORM"
	case RiskWarning:
		return "WARNING: HIGH ACTIVITY"
	case RiskSafe:
		return "STATUS: SAFE"
	default:
		return "STATUS: UNKNOWN (NO SPEED DATA)"
	}
}

// SpeedLabel is the short delta label shown beside the speed reading.
func (r RiskState) SpeedLabel() string {
	if r == RiskCritical {
		return "CRITICAL"
	}
	return "Normal"
}

// Level orders states for gauges: UNKNOWN=-1, SAFE=0, WARNING=1, CRITICAL=2.
func (r RiskState) Level() float64 {
	switch r {
	case RiskSafe:
		return 0
	case RiskWarning:
		return 1
	case RiskCritical:
		return 2
	default:
		return -1
	}
}
