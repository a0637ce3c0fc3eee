// Package domain models near-Earth object (NEO) catalog data and its
// seismic-equivalence derivation.
//
// # Data Sources
//
// NEO records originate from NASA's Near Earth Object Web Service (NeoWs)
// browse endpoint at https://api.nasa.gov/neo/rest/v1/neo/browse, which
// pages through the full catalog of tracked objects. Historical earthquake
// data comes from the USGS FDSN event service at
// https://earthquake.usgs.gov/fdsnws/event/1/.
//
// # NeoWs Data Conventions
//
// Numeric encoding:
//
//	Orbital elements and close-approach measurements arrive as JSON strings
//	("17.1234567890123"), not numbers. Diameter estimates are the exception
//	and arrive as numbers. String fields are parsed during extraction;
//	malformed or empty values degrade to zero (orbital elements) or nil
//	(close-approach measurements) rather than failing the record.
//
// Diameter:
//
//	NeoWs reports an estimated min/max range per unit. Extraction keeps the
//	maximum of the meters block, the conservative choice for an energy
//	estimate.
//
// Close approaches:
//
//	Each object carries a chronological list of close-approach entries.
//	Extraction reads the first entry only: date (YYYY-MM-DD), relative
//	velocity in km/s, and miss distance in km.
//
// Hazard flag:
//
//	"is_potentially_hazardous_asteroid" is NASA's own classification,
//	combining orbit proximity and absolute magnitude. The pipeline trusts
//	it as the sole filter; no local re-derivation.
//
// # Impact Equivalence
//
// A potential impact is flagged when the known miss distance is within
// Earth's mean radius (6371 km), boundary included.
//
// Impact energy models the object as a uniform sphere at a stony-asteroid
// bulk density of 3000 kg/m³ and takes the kinetic energy at the recorded
// approach velocity. The seismic equivalent applies the Gutenberg-Richter
// energy relation, M = 0.67·log10(E) − 5.87. Both values are rough
// what-if figures for ranking and comparison, not impact predictions.
//
// # Comparable Quake Search
//
// For each derived magnitude the catalog is asked for up to three events in
// the window [M−δ, M+δ], δ starting at 0.3 and widening by 0.3 per attempt
// up to 2.0. The first non-empty window wins. Catalog failures count as
// empty windows so one flaky query cannot abort the search. An exhausted
// ladder yields the single [NoQuakeSentinel] entry.
package domain
