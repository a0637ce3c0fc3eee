package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ExtractHazardous derives one HazardousAsteroid from a raw catalog record.
// Callers filter on the hazard flag first; extraction itself never fails.
// Missing or malformed optional source fields degrade to nil, or to zero
// for orbital elements, rather than dropping the record.
func ExtractHazardous(ctx context.Context, raw RawNeo, catalog QuakeCatalog, logger *slog.Logger) HazardousAsteroid {
	rec := HazardousAsteroid{
		ID:          raw.ID,
		Name:        raw.Name,
		DiameterM:   diameterMeters(raw),
		Orbit:       parseOrbit(raw.OrbitalData),
		RetrievedAt: clock.Now(),
	}

	if len(raw.CloseApproaches) > 0 {
		approach := raw.CloseApproaches[0]
		if approach.Date != "" {
			date := approach.Date
			rec.ApproachDate = &date
		}
		rec.MissDistanceKm = parseFloatPtr(approach.MissDistance.Kilometers)
		rec.VelocityKmS = parseFloatPtr(approach.RelativeVelocity.KilometersPerSecond)
	}

	rec.PotentialImpact = rec.MissDistanceKm != nil && *rec.MissDistanceKm <= EarthRadiusKm

	// Energy, magnitude, and examples derive together, and only when both
	// diameter and velocity are known and positive. The guard keeps the
	// energy strictly positive, so MagnitudeEquivalent cannot reject it;
	// an error here is a contract violation, not recoverable input.
	if rec.DiameterM > 0 && rec.VelocityKmS != nil && *rec.VelocityKmS > 0 {
		energy := ImpactEnergy(rec.DiameterM, *rec.VelocityKmS, DefaultImpactorDensity)
		magnitude, err := MagnitudeEquivalent(energy)
		if err != nil {
			panic(fmt.Sprintf("magnitude equivalent for neo %s: %v", raw.ID, err))
		}
		rec.ImpactEnergyJoules = &energy
		rec.ImpactMagnitude = &magnitude
		rec.SeismicExamples = FindComparableQuakes(ctx, catalog, magnitude, logger)
	}

	return rec
}

// diameterMeters reads the maximum estimated diameter in meters, zero when
// the catalog omits the estimate.
func diameterMeters(raw RawNeo) float64 {
	if raw.EstimatedDiameter == nil || raw.EstimatedDiameter.Meters == nil {
		return 0
	}
	return raw.EstimatedDiameter.Meters.Max
}

// parseOrbit converts the string-encoded orbital elements, any missing or
// malformed element defaulting to zero.
func parseOrbit(orbit *RawOrbit) OrbitalElements {
	if orbit == nil {
		return OrbitalElements{}
	}
	return OrbitalElements{
		SemiMajorAxisAU:  parseFloatOrZero(orbit.SemiMajorAxis),
		Eccentricity:     parseFloatOrZero(orbit.Eccentricity),
		InclinationDeg:   parseFloatOrZero(orbit.Inclination),
		AscendingNodeDeg: parseFloatOrZero(orbit.AscendingNodeLongitude),
		PerihelionArgDeg: parseFloatOrZero(orbit.PerihelionArgument),
		MeanAnomalyDeg:   parseFloatOrZero(orbit.MeanAnomaly),
		EpochOsculation:  parseFloatOrZero(orbit.EpochOsculation),
	}
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseFloatPtr parses a string as float64, returning nil when the value is
// missing or malformed so an unknown measurement stays distinguishable from
// a zero one.
func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
