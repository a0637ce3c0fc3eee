package domain

import (
	"context"
	"log/slog"
	"math"
)

// NoQuakeSentinel is the place text of the single entry returned when no
// magnitude window up to the widest produced any events. It is a successful
// empty outcome, not an error.
const NoQuakeSentinel = "No matching earthquakes found"

// Widening-search parameters: the window [target−δ, target+δ] starts at
// initialDelta and grows by deltaStep per attempt while δ stays within
// maxDelta.
const (
	initialDelta = 0.3
	deltaStep    = 0.3
	maxDelta     = 2.0

	maxExamples = 3
)

// QuakeCatalog finds historical earthquakes within a magnitude window.
// Implementations order results by event time, most recent first, and
// return at most limit entries.
type QuakeCatalog interface {
	QueryMagnitudeRange(ctx context.Context, minMag, maxMag float64, limit int) ([]SeismicExample, error)
}

// FindComparableQuakes searches the catalog for up to three historical
// earthquakes near the target magnitude, widening the window one step at a
// time until something matches. A query failure counts as an empty window:
// the search logs it and moves to the next width instead of aborting. When
// the widest window still yields nothing, the single NoQuakeSentinel entry
// is returned.
func FindComparableQuakes(ctx context.Context, catalog QuakeCatalog, targetMagnitude float64, logger *slog.Logger) []SeismicExample {
	for _, delta := range deltaLadder(initialDelta, deltaStep, maxDelta) {
		events, err := catalog.QueryMagnitudeRange(ctx, targetMagnitude-delta, targetMagnitude+delta, maxExamples)
		if err != nil {
			logger.Warn("quake window query failed, widening",
				"target_magnitude", targetMagnitude,
				"delta", delta,
				"error", err,
			)
			continue
		}
		if len(events) == 0 {
			continue
		}
		if len(events) > maxExamples {
			events = events[:maxExamples]
		}
		return events
	}

	return []SeismicExample{{Place: NoQuakeSentinel}}
}

// deltaLadder expands the widening parameters into the explicit sequence of
// window half-widths. The attempt count is fixed up front as
// floor((max−initial)/step)+1, with an epsilon so a max that is an exact
// multiple of step is not lost to float drift, and each rung is computed
// from the initial value rather than accumulated.
func deltaLadder(initial, step, max float64) []float64 {
	attempts := int(math.Floor((max-initial)/step+1e-9)) + 1
	deltas := make([]float64, 0, attempts)
	for i := 0; i < attempts; i++ {
		deltas = append(deltas, initial+float64(i)*step)
	}
	return deltas
}
