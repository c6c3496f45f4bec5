package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status reports whether a run produced data.
type Status string

const (
	StatusOK              Status = "ok"
	StatusFeedUnavailable Status = "feed_unavailable"
)

// PipelineResult is everything one monitoring run hands to a presenter.
// On StatusFeedUnavailable the payload fields are all nil and the display
// strings are omitted.
type PipelineResult struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Simulated   bool             `json:"simulated"`
	Status      Status           `json:"status"`
	Series      TelemetrySeries  `json:"series"`
	Latest      *TelemetrySample `json:"latest"`
	Risk        *RiskState       `json:"risk"`
	Headline    string           `json:"headline,omitempty"`
	SpeedLabel  string           `json:"speed_label,omitempty"`
	Forecast    Forecast         `json:"forecast"`
	Error       string           `json:"error,omitempty"`
}

// NewRunID returns a fresh identifier for a pipeline run.
func NewRunID() string {
	return uuid.NewString()
}

// FeedUnavailable builds the result for a run that could not obtain data.
func FeedUnavailable(runID string, simulate bool, err error) PipelineResult {
	r := PipelineResult{
		RunID:       runID,
		GeneratedAt: Now(),
		Simulated:   simulate,
		Status:      StatusFeedUnavailable,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Alert is raised each time a run evaluates to CRITICAL.
type Alert struct {
	ID       string    `json:"id"`
	RunID    string    `json:"run_id"`
	Risk     RiskState `json:"risk"`
	Speed    float64   `json:"speed"`
	Origin   Origin    `json:"origin"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raised_at"`
}

// NewAlert builds a CRITICAL alert for the given sample.
func NewAlert(runID string, sample TelemetrySample) Alert {
	a := Alert{
		ID:       uuid.NewString(),
		RunID:    runID,
		Risk:     RiskCritical,
		Origin:   sample.Origin,
		Message:  "Satellite safe mode triggered",
		RaisedAt: Now(),
	}
	if sample.Speed != nil {
		a.Speed = *sample.Speed
	}
	return a
}
