package domain

import "time"

// OrbitalElements are the six osculating elements plus their epoch, parsed
// from the catalog's string encoding. Elements the catalog omits or encodes
// unparseably are zero.
type OrbitalElements struct {
	SemiMajorAxisAU  float64 `json:"semi_major_axis_au"`
	Eccentricity     float64 `json:"eccentricity"`
	InclinationDeg   float64 `json:"inclination_deg"`
	AscendingNodeDeg float64 `json:"ascending_node_deg"`
	PerihelionArgDeg float64 `json:"perihelion_arg_deg"`
	MeanAnomalyDeg   float64 `json:"mean_anomaly_deg"`
	EpochOsculation  float64 `json:"epoch_osculation"` // Julian date
}

// SeismicExample is one historical earthquake surfaced for comparison.
// Magnitude and TimeMs are pointers because the seismic catalog may report
// null for either, and because the no-match sentinel carries neither.
type SeismicExample struct {
	Place     string   `json:"place"`
	Magnitude *float64 `json:"magnitude"`
	TimeMs    *int64   `json:"time"` // ms since Unix epoch
}

// HazardousAsteroid is the derived record for one potentially hazardous
// object: identification, physical and orbital parameters, the next close
// approach, and the impact-equivalence estimate with its historical quake
// comparisons.
type HazardousAsteroid struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	DiameterM float64 `json:"diameter_m"` // max estimated diameter, 0 when unknown

	Orbit OrbitalElements `json:"orbit"`

	// First close-approach entry, when the catalog supplies one.
	ApproachDate   *string  `json:"approach_date"`    // YYYY-MM-DD
	MissDistanceKm *float64 `json:"miss_distance_km"`
	VelocityKmS    *float64 `json:"velocity_km_s"`

	// PotentialImpact is true when the miss distance is known and no larger
	// than Earth's mean radius.
	PotentialImpact bool `json:"potential_impact"`

	// Derived together when diameter and velocity are both known and
	// positive: either both are set or both are nil.
	ImpactEnergyJoules *float64 `json:"impact_energy_joules"`
	ImpactMagnitude    *float64 `json:"impact_magnitude"`

	// Historical quakes comparable to ImpactMagnitude, or the single
	// no-match sentinel entry. Nil when no magnitude was derived.
	SeismicExamples []SeismicExample `json:"seismic_examples"`

	RetrievedAt time.Time `json:"retrieved_at"`
}

// ResultSet is the pipeline's output: derived records in encounter order
// across all fetched pages.
type ResultSet []HazardousAsteroid
