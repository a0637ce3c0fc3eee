// Command quakereport runs a one-off survey against the USGS FDSN event
// service: all events in a date range at or above a minimum magnitude,
// printed as a short summary.
//
// Usage:
//
//	go run ./cmd/quakereport -start 2025-09-01 -end 2025-10-01 -min-mag 5
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/neo-impact-etl/internal/adapter/usgs"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

const dateLayout = "2006-01-02"

func main() {
	_ = godotenv.Load()

	startStr := flag.String("start", "2025-09-01", "range start date (YYYY-MM-DD)")
	endStr := flag.String("end", "2025-10-01", "range end date (YYYY-MM-DD)")
	minMag := flag.Float64("min-mag", 5, "minimum magnitude")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	start, err := time.Parse(dateLayout, *startStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -start: %v\n", err)
		os.Exit(2)
	}
	end, err := time.Parse(dateLayout, *endStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -end: %v\n", err)
		os.Exit(2)
	}
	if !end.After(start) {
		fmt.Fprintln(os.Stderr, "-end must be after -start")
		os.Exit(2)
	}

	baseURL := sharedcfg.EnvOrDefault("USGS_BASE_URL", "https://earthquake.usgs.gov")

	// Survey output goes to stdout; the client's debug logging is noise here.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := usgs.NewClient(baseURL, *timeout, observability.NewMetrics(), logger)

	events, err := client.Search(context.Background(), start, end, *minMag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "survey failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d earthquakes of magnitude %g or above between %s and %s\n",
		len(events), *minMag, start.Format(dateLayout), end.Format(dateLayout))

	for i, ev := range events {
		if i == 5 {
			break
		}
		mag := "M?"
		if ev.Magnitude != nil {
			mag = fmt.Sprintf("M%.1f", *ev.Magnitude)
		}
		when := ""
		if ev.TimeMs != nil {
			when = time.UnixMilli(*ev.TimeMs).UTC().Format(dateLayout) + " "
		}
		fmt.Printf("  %s%s - %s\n", when, mag, ev.Place)
	}
}
