package domain

// RawNeo represents one near-Earth object as returned by the NeoWs browse
// endpoint. NeoWs encodes orbital elements and close-approach measurements
// as JSON strings, not numbers; parsing happens during extraction, where
// missing or malformed values degrade rather than fail the record.
type RawNeo struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	PotentiallyHazardous bool               `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter    *EstimatedDiameter `json:"estimated_diameter"`
	CloseApproaches      []CloseApproach    `json:"close_approach_data"`
	OrbitalData          *RawOrbit          `json:"orbital_data"`
}

// EstimatedDiameter holds the NeoWs diameter range blocks. The feed repeats
// the range in four units; only the meters block is consumed.
type EstimatedDiameter struct {
	Meters *DiameterRange `json:"meters"`
}

// DiameterRange is a min/max diameter estimate in a single unit.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// CloseApproach is one entry of an object's close-approach list. NeoWs
// orders the list chronologically.
type CloseApproach struct {
	Date             string           `json:"close_approach_date"`       // YYYY-MM-DD
	EpochMs          int64            `json:"epoch_date_close_approach"` // ms since Unix epoch
	RelativeVelocity RelativeVelocity `json:"relative_velocity"`
	MissDistance     MissDistance     `json:"miss_distance"`
}

// RelativeVelocity holds the string-encoded approach speed.
type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
}

// MissDistance holds the string-encoded closest-approach distance.
type MissDistance struct {
	Kilometers string `json:"kilometers"`
}

// RawOrbit carries the osculating orbital elements NeoWs attaches to each
// browse record. All values are strings in the upstream payload.
type RawOrbit struct {
	SemiMajorAxis          string `json:"semi_major_axis"`          // AU
	Eccentricity           string `json:"eccentricity"`             // dimensionless
	Inclination            string `json:"inclination"`              // degrees
	AscendingNodeLongitude string `json:"ascending_node_longitude"` // degrees
	PerihelionArgument     string `json:"perihelion_argument"`      // degrees
	MeanAnomaly            string `json:"mean_anomaly"`             // degrees
	EpochOsculation        string `json:"epoch_osculation"`         // Julian date
}

// NeoPage is one page of the browse catalog: the records in catalog order
// plus the pagination coordinates needed to decide whether to continue.
type NeoPage struct {
	Number     int
	TotalPages int
	Records    []RawNeo
}
