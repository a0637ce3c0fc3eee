package export_test

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/export"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleResults() domain.ResultSet {
	miss := 1000.0
	vel := 20.0
	date := "2026-04-13"
	energy := 1.636246e16
	mag := 4.986
	exMag := 5.1
	exTime := int64(1757305847000)

	return domain.ResultSet{
		{
			ID:              "3542519",
			Name:            "(2010 PK9)",
			DiameterM:       254.9,
			Orbit:           domain.OrbitalElements{SemiMajorAxisAU: 1.06, Eccentricity: 0.678},
			ApproachDate:    &date,
			MissDistanceKm:  &miss,
			VelocityKmS:     &vel,
			PotentialImpact: true,
			ImpactEnergyJoules: &energy,
			ImpactMagnitude:    &mag,
			SeismicExamples: []domain.SeismicExample{
				{Place: "south of the Fiji Islands", Magnitude: &exMag, TimeMs: &exTime},
			},
			RetrievedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2099942",
			Name:        "99942 Apophis (2004 MN4)",
			RetrievedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	results := sampleResults()

	require.NoError(t, export.WriteCSV(path, results, observability.NewMetricsForTesting(), discardLogger()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(results)+1, "header plus one row per record")

	header := rows[0]
	assert.Equal(t, "id", header[0])
	assert.Equal(t, "seismic_examples", header[16])

	first := rows[1]
	assert.Equal(t, "3542519", first[0])
	assert.Equal(t, "254.9", first[2])
	assert.Equal(t, "2026-04-13", first[10])
	assert.Equal(t, "true", first[13])
	assert.Equal(t, "M5.1 south of the Fiji Islands", first[16])

	second := rows[2]
	assert.Equal(t, "2099942", second[0])
	assert.Equal(t, "", second[11], "unknown miss distance is an empty cell")
	assert.Equal(t, "false", second[13])
	assert.Equal(t, "", second[16])
}

func TestWriteCSVSentinelExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	results := sampleResults()[:1]
	results[0].SeismicExamples = []domain.SeismicExample{{Place: domain.NoQuakeSentinel}}

	require.NoError(t, export.WriteCSV(path, results, observability.NewMetricsForTesting(), discardLogger()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, domain.NoQuakeSentinel, rows[1][16])
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := sampleResults()

	require.NoError(t, export.WriteJSON(path, results, observability.NewMetricsForTesting(), discardLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.ResultSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "3542519", decoded[0].ID)
	require.NotNil(t, decoded[0].ImpactMagnitude)
	assert.InDelta(t, 4.986, *decoded[0].ImpactMagnitude, 1e-9)
	assert.Nil(t, decoded[1].ImpactEnergyJoules)
}

func TestWriteCSVBadPath(t *testing.T) {
	err := export.WriteCSV(filepath.Join(t.TempDir(), "missing", "results.csv"),
		sampleResults(), observability.NewMetricsForTesting(), discardLogger())
	assert.Error(t, err)
}
