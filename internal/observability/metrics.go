package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the monitoring pipeline.
type Metrics struct {
	Runs          *prometheus.CounterVec // labels: status={ok,feed_unavailable}, simulated={true,false}
	FetchDuration prometheus.Histogram
	SeriesLength  prometheus.Gauge
	MissingFields prometheus.Counter

	// Latest reading.
	LatestSpeed prometheus.Gauge
	RiskLevel   prometheus.Gauge // -1 unknown, 0 safe, 1 warning, 2 critical

	// Alerting.
	AlertsRaised prometheus.Counter
	NotifyErrors prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Runs,
		m.FetchDuration,
		m.SeriesLength,
		m.MissingFields,
		m.LatestSpeed,
		m.RiskLevel,
		m.AlertsRaised,
		m.NotifyErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "solar_wind",
			Name:      "runs_total",
			Help:      "Pipeline runs by result status and simulation flag.",
		}, []string{"status", "simulated"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "solar_wind",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of a single SWPC feed request.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SeriesLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solar_wind",
			Name:      "series_samples",
			Help:      "Number of samples in the most recent normalized series.",
		}),
		MissingFields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solar_wind",
			Name:      "missing_fields_total",
			Help:      "Numeric feed fields that were empty or could not be parsed.",
		}),
		LatestSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solar_wind",
			Name:      "latest_speed_km_per_second",
			Help:      "Bulk speed of the latest evaluated sample, simulated or real.",
		}),
		RiskLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "solar_wind",
			Name:      "risk_level",
			Help:      "Risk of the latest run: -1 unknown, 0 safe, 1 warning, 2 critical.",
		}),
		AlertsRaised: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solar_wind",
			Name:      "alerts_raised_total",
			Help:      "CRITICAL alerts raised, one per critical evaluation.",
		}),
		NotifyErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "solar_wind",
			Name:      "alert_notify_errors_total",
			Help:      "Alerts that could not be delivered to the notifier.",
		}),
	}
}
