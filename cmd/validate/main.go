// Command validate checks a saved SWPC plasma feed file offline. It verifies
// the header, row widths, timestamp parsing and order, and reports missing
// numeric fields, then prints the risk and forecast a live run would report.
//
// Usage:
//
//	go run ./cmd/validate -feed data/mock/plasma-1-day.json
//	go run ./cmd/validate -feed data/mock/plasma-1-day.json -simulate
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/solar-wind-monitor/internal/adapter/swpc"
	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
)

var requiredFields = []string{
	domain.FieldTimeTag,
	domain.FieldDensity,
	domain.FieldSpeed,
	domain.FieldTemperature,
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func (p *phase) report() {
	status := "PASS"
	if !p.passed() {
		status = "FAIL"
	}
	fmt.Printf("[%s] %s\n", status, p.name)
	for _, e := range p.errors {
		fmt.Printf("    error: %s\n", e)
	}
	for _, w := range p.warnings {
		fmt.Printf("    warn:  %s\n", w)
	}
}

func main() {
	feedPath := flag.String("feed", "", "path to a saved feed JSON file")
	simulate := flag.Bool("simulate", false, "apply the storm override to the latest sample")
	flag.Parse()

	if *feedPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*feedPath, *simulate); code != 0 {
		os.Exit(code)
	}
}

func run(feedPath string, simulate bool) int {
	f, err := os.Open(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open feed: %v\n", err)
		return 1
	}
	defer f.Close()

	table, err := swpc.DecodeTable(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	phases := []*phase{
		checkShape(table),
	}
	series, normalized := checkNormalize(table)
	phases = append(phases, normalized)

	failed := false
	for _, p := range phases {
		p.report()
		if !p.passed() {
			failed = true
		}
	}
	if failed {
		return 2
	}

	printOutlook(series, simulate)
	return 0
}

// checkShape verifies header fields and row widths.
func checkShape(table domain.RawTable) *phase {
	p := &phase{name: "table shape"}
	if len(table) == 0 {
		p.errorf("no header row")
		return p
	}

	header := map[string]bool{}
	for _, h := range table[0] {
		header[strings.TrimSpace(h)] = true
	}
	for _, f := range requiredFields {
		if !header[f] {
			p.errorf("header missing %q", f)
		}
	}

	if len(table) == 1 {
		p.errorf("no data rows")
	}
	for i, row := range table[1:] {
		if len(row) != len(table[0]) {
			p.warnf("row %d has %d cells, header has %d", i+1, len(row), len(table[0]))
		}
	}
	return p
}

// checkNormalize runs the domain normalizer and tallies missing fields.
func checkNormalize(table domain.RawTable) (domain.TelemetrySeries, *phase) {
	p := &phase{name: "normalize"}
	series, err := domain.Normalize(table)
	switch {
	case errors.Is(err, domain.ErrTimestampParse):
		p.errorf("timestamp parse: %v", err)
		return nil, p
	case errors.Is(err, domain.ErrTimestampOrder):
		p.errorf("timestamp order: %v", err)
		return nil, p
	case err != nil:
		p.errorf("%v", err)
		return nil, p
	}

	missing := map[string]int{}
	for _, s := range series {
		if s.Speed == nil {
			missing[domain.FieldSpeed]++
		}
		if s.Density == nil {
			missing[domain.FieldDensity]++
		}
		if s.Temperature == nil {
			missing[domain.FieldTemperature]++
		}
	}
	for _, f := range requiredFields[1:] {
		if n := missing[f]; n > 0 {
			p.warnf("%s missing on %d of %d samples", f, n, len(series))
		}
	}
	if latest, ok := series.Latest(); ok && latest.Speed == nil {
		p.warnf("latest sample has no speed, risk will be %s", domain.RiskUnknown)
	}
	return series, p
}

func printOutlook(series domain.TelemetrySeries, simulate bool) {
	latest, ok := series.Latest()
	if !ok {
		return
	}
	current := domain.InjectStorm(latest, simulate)
	risk := domain.EvaluateRisk(current)

	fmt.Printf("\nSamples: %d (%s to %s)\n", len(series),
		series[0].Timestamp.Format("2006-01-02 15:04"), latest.Timestamp.Format("2006-01-02 15:04"))
	fmt.Printf("Latest (%s):", current.Origin)
	printField("speed", current.Speed, "km/s")
	printField("density", current.Density, "p/cm³")
	printField("temperature", current.Temperature, "K")
	fmt.Println()
	fmt.Printf("Risk: %s (%s)\n", risk, risk.Headline())
	fmt.Print("Kp forecast:")
	for _, pt := range domain.ForecastKp(simulate) {
		fmt.Printf(" %s=%.1f", pt.Horizon, pt.PredictedKp)
	}
	fmt.Println()
}

func printField(name string, v *float64, unit string) {
	if v == nil {
		fmt.Printf(" %s=missing", name)
		return
	}
	fmt.Printf(" %s=%g %s", name, *v, unit)
}
