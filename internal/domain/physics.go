package domain

import (
	"errors"
	"math"
)

const (
	// EarthRadiusKm is Earth's mean radius. A known miss distance at or
	// below this value marks the record as a potential impact.
	EarthRadiusKm = 6371.0

	// DefaultImpactorDensity is the bulk density assumed when estimating an
	// object's mass, in kg/m³. 3000 is typical for stony (S-type) asteroids,
	// the most common class among near-Earth objects.
	DefaultImpactorDensity = 3000.0
)

// ErrNonPositiveEnergy reports an energy outside the domain of the
// magnitude formula's logarithm.
var ErrNonPositiveEnergy = errors.New("impact energy must be positive")

// ImpactEnergy estimates the kinetic energy in joules released if an object
// of the given diameter (meters) and relative velocity (km/s) struck Earth.
// The object is modeled as a uniform sphere of the given density (kg/m³).
// Inputs are not validated: zero or negative values propagate through the
// arithmetic, so callers guard on presence before deriving.
func ImpactEnergy(diameterM, velocityKmS, densityKgM3 float64) float64 {
	radius := diameterM / 2
	volume := (4.0 / 3.0) * math.Pi * math.Pow(radius, 3)
	mass := volume * densityKgM3
	velocityMS := velocityKmS * 1000
	return 0.5 * mass * velocityMS * velocityMS
}

// MagnitudeEquivalent maps impact kinetic energy to a seismic-magnitude-like
// value using the Gutenberg-Richter energy relation solved for magnitude,
// M = 0.67·log10(E) − 5.87 with E in joules. The result is a rough
// equivalence for comparing impact energies against historical earthquakes,
// not a prediction of ground motion. Returns ErrNonPositiveEnergy when
// energyJoules is zero or negative.
func MagnitudeEquivalent(energyJoules float64) (float64, error) {
	if energyJoules <= 0 {
		return 0, ErrNonPositiveEnergy
	}
	return 0.67*math.Log10(energyJoules) - 5.87, nil
}
