package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
	"github.com/couchcryptid/solar-wind-monitor/internal/observability"
)

// Fetcher retrieves the raw feed table. One call is one upstream request.
type Fetcher interface {
	Fetch(ctx context.Context) (domain.RawTable, error)
}

// Notifier delivers a CRITICAL alert.
type Notifier interface {
	Notify(ctx context.Context, alert domain.Alert) error
}

// Pipeline runs fetch, normalize, override, risk, and forecast once per call.
// It keeps no data between runs.
type Pipeline struct {
	fetcher  Fetcher
	notifier Notifier
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, n Notifier, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:  f,
		notifier: n,
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil once any run has produced data, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no successful feed run yet")
	}
	return nil
}

// Run performs one monitoring pass. Any failure to obtain a usable series
// yields StatusFeedUnavailable with no payload; stale data is never served.
func (p *Pipeline) Run(ctx context.Context, simulate bool) domain.PipelineResult {
	runID := domain.NewRunID()
	logger := p.logger.With("run_id", runID, "simulate", simulate)

	series, err := p.load(ctx)
	if err != nil {
		logger.Warn("feed unavailable", "error", err)
		p.metrics.Runs.WithLabelValues(string(domain.StatusFeedUnavailable), strconv.FormatBool(simulate)).Inc()
		return domain.FeedUnavailable(runID, simulate, err)
	}

	latest, _ := series.Latest()
	current := domain.InjectStorm(latest, simulate)
	risk := domain.EvaluateRisk(current)
	if risk == domain.RiskCritical {
		p.raiseAlert(ctx, logger, runID, current)
	}

	p.metrics.Runs.WithLabelValues(string(domain.StatusOK), strconv.FormatBool(simulate)).Inc()
	p.metrics.RiskLevel.Set(risk.Level())
	if current.Speed != nil {
		p.metrics.LatestSpeed.Set(*current.Speed)
	}
	p.ready.Store(true)

	logger.Info("pipeline run complete",
		"samples", len(series),
		"risk", risk,
		"origin", current.Origin,
		"latest_at", current.Timestamp,
	)

	return domain.PipelineResult{
		RunID:       runID,
		GeneratedAt: domain.Now(),
		Simulated:   simulate,
		Status:      domain.StatusOK,
		Series:      series,
		Latest:      &current,
		Risk:        &risk,
		Headline:    risk.Headline(),
		SpeedLabel:  risk.SpeedLabel(),
		Forecast:    domain.ForecastKp(simulate),
	}
}

// load fetches and normalizes the feed, rejecting an empty series.
func (p *Pipeline) load(ctx context.Context) (domain.TelemetrySeries, error) {
	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	series, err := domain.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize feed: %w", err)
	}
	if len(series) == 0 {
		return nil, domain.ErrNoSamples
	}

	p.metrics.SeriesLength.Set(float64(len(series)))
	p.metrics.MissingFields.Add(float64(series.MissingFields()))
	return series, nil
}

// raiseAlert emits one alert per critical evaluation. Delivery failures are
// logged and counted but never fail the run.
func (p *Pipeline) raiseAlert(ctx context.Context, logger *slog.Logger, runID string, sample domain.TelemetrySample) {
	alert := domain.NewAlert(runID, sample)
	p.metrics.AlertsRaised.Inc()

	if p.notifier == nil {
		return
	}
	if err := p.notifier.Notify(ctx, alert); err != nil {
		p.metrics.NotifyErrors.Inc()
		logger.Error("alert notification failed", "alert_id", alert.ID, "error", err)
	}
}
