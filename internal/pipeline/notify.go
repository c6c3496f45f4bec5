package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
)

// LogNotifier writes alerts to the service log. It is the notifier used
// when no Kafka brokers are configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the alert at error level. It never fails.
func (n *LogNotifier) Notify(_ context.Context, alert domain.Alert) error {
	n.logger.Error(alert.Risk.Headline(),
		"alert_id", alert.ID,
		"run_id", alert.RunID,
		"speed", alert.Speed,
		"origin", alert.Origin,
		"message", alert.Message,
	)
	return nil
}
