// Package export persists a collected result set to local files. Both
// formats mirror the derived record's fields; neither is load-bearing for
// the pipeline, so a failed export is reported but never retried.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

var csvHeader = []string{
	"id", "name", "diameter_m",
	"semi_major_axis_au", "eccentricity", "inclination_deg",
	"ascending_node_deg", "perihelion_arg_deg", "mean_anomaly_deg", "epoch_osculation",
	"approach_date", "miss_distance_km", "velocity_km_s",
	"potential_impact", "impact_energy_joules", "impact_magnitude",
	"seismic_examples", "retrieved_at",
}

// WriteCSV writes the result set to path as one row per record plus a
// header. Absent optional values render as empty cells; the seismic
// examples collapse into a single "; "-joined cell.
func WriteCSV(path string, results domain.ResultSet, metrics *observability.Metrics, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range results {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("write csv row for %s: %w", rec.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	metrics.RecordsExported.WithLabelValues("csv").Add(float64(len(results)))
	logger.Info("csv export written", "path", path, "records", len(results))
	return nil
}

// WriteJSON writes the result set to path as an indented JSON array.
func WriteJSON(path string, results domain.ResultSet, metrics *observability.Metrics, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	metrics.RecordsExported.WithLabelValues("json").Add(float64(len(results)))
	logger.Info("json export written", "path", path, "records", len(results))
	return nil
}

func csvRow(rec domain.HazardousAsteroid) []string {
	return []string{
		rec.ID,
		rec.Name,
		formatFloat(rec.DiameterM),
		formatFloat(rec.Orbit.SemiMajorAxisAU),
		formatFloat(rec.Orbit.Eccentricity),
		formatFloat(rec.Orbit.InclinationDeg),
		formatFloat(rec.Orbit.AscendingNodeDeg),
		formatFloat(rec.Orbit.PerihelionArgDeg),
		formatFloat(rec.Orbit.MeanAnomalyDeg),
		formatFloat(rec.Orbit.EpochOsculation),
		stringOrEmpty(rec.ApproachDate),
		floatOrEmpty(rec.MissDistanceKm),
		floatOrEmpty(rec.VelocityKmS),
		strconv.FormatBool(rec.PotentialImpact),
		floatOrEmpty(rec.ImpactEnergyJoules),
		floatOrEmpty(rec.ImpactMagnitude),
		formatExamples(rec.SeismicExamples),
		rec.RetrievedAt.Format(time.RFC3339),
	}
}

// formatExamples renders the comparison quakes as "M<mag> <place>" entries
// joined by "; ". The no-match sentinel carries no magnitude and renders as
// its place text alone.
func formatExamples(examples []domain.SeismicExample) string {
	parts := make([]string, 0, len(examples))
	for _, ex := range examples {
		if ex.Magnitude == nil {
			parts = append(parts, ex.Place)
			continue
		}
		parts = append(parts, fmt.Sprintf("M%s %s", formatFloat(*ex.Magnitude), ex.Place))
	}
	return strings.Join(parts, "; ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
