// Command genmock captures the SWPC plasma feed and writes a trimmed,
// deterministic fixture for the pipeline test suite. With -storm it appends
// synthetic storm rows after the last captured minute so the fixture ends
// in CRITICAL conditions. It runs the result through the real domain
// package so the printed stats match what the tests will observe.
//
// Usage:
//
//	go run ./cmd/genmock -rows 10 -out data/mock/plasma-1-day.json
//	go run ./cmd/genmock -in saved-feed.json -rows 10 -out data/mock/plasma-1-day.json
//	go run ./cmd/genmock -in saved-feed.json -rows 10 -storm 3 -out data/mock/plasma-storm.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/solar-wind-monitor/internal/adapter/swpc"
	"github.com/couchcryptid/solar-wind-monitor/internal/config"
	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
	"github.com/couchcryptid/solar-wind-monitor/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	feedURL := flag.String("url", config.DefaultFeedURL, "feed URL to capture")
	in := flag.String("in", "", "read a saved feed file instead of fetching")
	out := flag.String("out", "", "output path for the fixture")
	rows := flag.Int("rows", 10, "number of most recent rows to keep")
	storm := flag.Int("storm", 0, "number of synthetic storm rows to append")
	flag.Parse()

	if *out == "" || *rows <= 0 || *storm < 0 {
		flag.Usage()
		return fmt.Errorf("missing required flag -out, non-positive -rows, or negative -storm")
	}

	table, err := load(*feedURL, *in)
	if err != nil {
		return err
	}
	if len(table) < 2 {
		return fmt.Errorf("feed has no data rows")
	}

	trimmed := domain.RawTable{table[0]}
	start := max(1, len(table)-*rows)
	trimmed = append(trimmed, table[start:]...)
	log.Printf("captured %d rows, keeping %d", len(table)-1, len(trimmed)-1)

	series, err := domain.Normalize(trimmed)
	if err != nil {
		return fmt.Errorf("normalize capture: %w", err)
	}

	if *storm > 0 {
		trimmed = appendStormTail(trimmed, series, *storm)
		if series, err = domain.Normalize(trimmed); err != nil {
			return fmt.Errorf("normalize storm tail: %w", err)
		}
		log.Printf("appended %d storm rows", *storm)
	}

	if err := writeFixture(*out, trimmed); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(series)
	return nil
}

func load(feedURL, path string) (domain.RawTable, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open: %w", err)
		}
		defer f.Close()
		return swpc.DecodeTable(f)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := swpc.NewClient(feedURL, 30*time.Second, observability.NewMetricsForTesting(), logger)
	return client.Fetch(context.Background())
}

// appendStormTail adds n rows at one-minute steps after the last sample,
// with speed, density, and temperature ramping up from storm levels. Cells
// follow the header order of table.
func appendStormTail(table domain.RawTable, series domain.TelemetrySeries, n int) domain.RawTable {
	last, ok := series.Latest()
	if !ok {
		return table
	}

	header := table[0]
	out := append(domain.RawTable{}, table...)
	for i := range n {
		values := map[string]string{
			domain.FieldTimeTag:     last.Timestamp.Add(time.Duration(i+1) * time.Minute).Format("2006-01-02 15:04:05.000"),
			domain.FieldSpeed:       strconv.FormatFloat(720+15*float64(i), 'f', 1, 64),
			domain.FieldDensity:     strconv.FormatFloat(18+1.5*float64(i), 'f', 2, 64),
			domain.FieldTemperature: strconv.Itoa(250000 + 10000*i),
		}
		row := make([]string, len(header))
		for j, name := range header {
			row[j] = values[name]
		}
		out = append(out, row)
	}
	return out
}

// writeFixture writes one row per line, with empty cells as null to match
// the upstream encoding of instrument gaps.
func writeFixture(path string, table domain.RawTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	buf := []byte("[\n")
	for i, row := range table {
		cells := make([]any, len(row))
		for j, c := range row {
			if c == "" && i > 0 {
				cells[j] = nil
				continue
			}
			cells[j] = c
		}
		line, err := json.Marshal(cells)
		if err != nil {
			return err
		}
		buf = append(buf, "  "...)
		buf = append(buf, line...)
		if i < len(table)-1 {
			buf = append(buf, ',')
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "]\n"...)
	return os.WriteFile(path, buf, 0o600)
}

func printStats(series domain.TelemetrySeries) {
	riskCounts := map[domain.RiskState]int{}
	var missingSpeed, missingDensity, missingTemp int
	for _, s := range series {
		riskCounts[domain.EvaluateRisk(s)]++
		if s.Speed == nil {
			missingSpeed++
		}
		if s.Density == nil {
			missingDensity++
		}
		if s.Temperature == nil {
			missingTemp++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Samples: %d\n", len(series))
	fmt.Printf("By risk: safe=%d, warning=%d, critical=%d, unknown=%d\n",
		riskCounts[domain.RiskSafe], riskCounts[domain.RiskWarning],
		riskCounts[domain.RiskCritical], riskCounts[domain.RiskUnknown])
	fmt.Printf("Missing: speed=%d, density=%d, temperature=%d (total %d)\n",
		missingSpeed, missingDensity, missingTemp, series.MissingFields())

	if latest, ok := series.Latest(); ok {
		fmt.Printf("Latest: %s risk=%s", latest.Timestamp.Format(time.RFC3339), domain.EvaluateRisk(latest))
		if latest.Speed != nil {
			fmt.Printf(" speed=%g", *latest.Speed)
		}
		fmt.Println()
	}
}
