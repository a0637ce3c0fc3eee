package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock quake catalog ---

type catalogCall struct {
	minMag float64
	maxMag float64
	limit  int
}

// mockQuakeCatalog replays one canned response per call; calls beyond the
// scripted responses return empty.
type mockQuakeCatalog struct {
	calls   []catalogCall
	results [][]SeismicExample
	errs    []error
}

func (m *mockQuakeCatalog) QueryMagnitudeRange(_ context.Context, minMag, maxMag float64, limit int) ([]SeismicExample, error) {
	i := len(m.calls)
	m.calls = append(m.calls, catalogCall{minMag: minMag, maxMag: maxMag, limit: limit})

	var res []SeismicExample
	if i < len(m.results) {
		res = m.results[i]
	}
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	return res, err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quake(place string, mag float64) SeismicExample {
	ts := int64(1757400000000)
	return SeismicExample{Place: place, Magnitude: &mag, TimeMs: &ts}
}

// --- tests ---

func TestFindComparableQuakes_FirstWindowHit(t *testing.T) {
	catalog := &mockQuakeCatalog{
		results: [][]SeismicExample{
			{quake("100 km S of Suva, Fiji", 5.3), quake("near the coast of Honshu, Japan", 5.1)},
		},
	}

	examples := FindComparableQuakes(context.Background(), catalog, 5.25, discardLogger())

	require.Len(t, catalog.calls, 1)
	assert.InDelta(t, 4.95, catalog.calls[0].minMag, 1e-9)
	assert.InDelta(t, 5.55, catalog.calls[0].maxMag, 1e-9)
	assert.Equal(t, 3, catalog.calls[0].limit)

	require.Len(t, examples, 2)
	assert.Equal(t, "100 km S of Suva, Fiji", examples[0].Place)
	assert.Equal(t, "near the coast of Honshu, Japan", examples[1].Place)
}

func TestFindComparableQuakes_WidensUntilHit(t *testing.T) {
	catalog := &mockQuakeCatalog{
		results: [][]SeismicExample{
			nil,
			nil,
			nil,
			{quake("south of the Kermadec Islands", 6.9)},
		},
	}

	examples := FindComparableQuakes(context.Background(), catalog, 8.0, discardLogger())

	require.Len(t, catalog.calls, 4)
	for i, call := range catalog.calls {
		delta := 0.3 * float64(i+1)
		assert.InDelta(t, 8.0-delta, call.minMag, 1e-9)
		assert.InDelta(t, 8.0+delta, call.maxMag, 1e-9)
	}

	require.Len(t, examples, 1)
	assert.Equal(t, "south of the Kermadec Islands", examples[0].Place)
}

func TestFindComparableQuakes_ErrorCountsAsEmptyWindow(t *testing.T) {
	catalog := &mockQuakeCatalog{
		errs: []error{errors.New("service unavailable")},
		results: [][]SeismicExample{
			nil,
			{quake("Kepulauan Barat Daya, Indonesia", 6.2)},
		},
	}

	examples := FindComparableQuakes(context.Background(), catalog, 6.0, discardLogger())

	require.Len(t, catalog.calls, 2)
	require.Len(t, examples, 1)
	assert.Equal(t, "Kepulauan Barat Daya, Indonesia", examples[0].Place)
}

func TestFindComparableQuakes_ExhaustedReturnsSentinel(t *testing.T) {
	catalog := &mockQuakeCatalog{}

	examples := FindComparableQuakes(context.Background(), catalog, 12.0, discardLogger())

	// Default ladder: δ = 0.3, 0.6, 0.9, 1.2, 1.5, 1.8 → six windows.
	assert.Len(t, catalog.calls, 6)

	require.Len(t, examples, 1)
	assert.Equal(t, NoQuakeSentinel, examples[0].Place)
	assert.Nil(t, examples[0].Magnitude)
	assert.Nil(t, examples[0].TimeMs)
}

func TestFindComparableQuakes_CapsAtThree(t *testing.T) {
	catalog := &mockQuakeCatalog{
		results: [][]SeismicExample{{
			quake("a", 5.0), quake("b", 5.1), quake("c", 5.2), quake("d", 5.3),
		}},
	}

	examples := FindComparableQuakes(context.Background(), catalog, 5.1, discardLogger())

	require.Len(t, examples, 3)
	assert.Equal(t, "a", examples[0].Place)
	assert.Equal(t, "c", examples[2].Place)
}

func TestDeltaLadder(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		step     float64
		max      float64
		expected []float64
	}{
		{"defaults", 0.3, 0.3, 2.0, []float64{0.3, 0.6, 0.9, 1.2, 1.5, 1.8}},
		{"max on a rung", 0.3, 0.3, 1.5, []float64{0.3, 0.6, 0.9, 1.2, 1.5}},
		{"single rung", 0.3, 0.3, 0.3, []float64{0.3}},
		{"coarse steps", 0.5, 1.0, 3.0, []float64{0.5, 1.5, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deltaLadder(tt.initial, tt.step, tt.max)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-9)
			}
		})
	}
}
