package swpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
	"github.com/couchcryptid/solar-wind-monitor/internal/observability"
)

// Client fetches the SWPC plasma feed. It implements pipeline.Fetcher.
// Each Fetch issues exactly one GET; failures are not retried.
type Client struct {
	feedURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. timeout bounds each request.
func NewClient(feedURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the feed and returns it as a raw table. Every failure
// wraps domain.ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context) (domain.RawTable, error) {
	start := time.Now()
	defer func() {
		c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrFetchFailed, resp.StatusCode, body)
	}

	table, err := DecodeTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	c.logger.Debug("feed fetched", "rows", len(table), "duration", time.Since(start))
	return table, nil
}

// DecodeTable reads a feed body (a JSON array of arrays) into a raw table.
func DecodeTable(r io.Reader) (domain.RawTable, error) {
	dec := json.NewDecoder(r)
	var rows [][]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode feed: unexpected data after table")
	}

	table := make(domain.RawTable, len(rows))
	for i, row := range rows {
		table[i] = make([]string, len(row))
		for j, v := range row {
			table[i][j] = cellString(v)
		}
	}
	return table, nil
}

// cellString renders a decoded JSON scalar as the feed's string form.
// null becomes the empty string.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
