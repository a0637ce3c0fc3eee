// Command mockcatalog serves deterministic stand-ins for both upstream
// services, so the pipeline can run offline:
//
//	/neo/rest/v1/neo/browse   paginated synthetic NEO records
//	/fdsnws/event/1/query     canned earthquakes filtered by magnitude window
//
// Usage:
//
//	go run ./cmd/mockcatalog -addr :9090 -pages 3 -page-size 5
//	NASA_BASE_URL=http://localhost:9090 USGS_BASE_URL=http://localhost:9090 \
//	  NASA_API_KEY=mock go run ./cmd/etl
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	pages := flag.Int("pages", 3, "number of browse pages to serve")
	pageSize := flag.Int("page-size", 5, "records per browse page")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /neo/rest/v1/neo/browse", browseHandler(*pages, *pageSize))
	mux.HandleFunc("GET /fdsnws/event/1/query", quakeHandler)

	log.Printf("mock catalog listening on %s (%d pages of %d records)", *addr, *pages, *pageSize)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

// browseHandler serves synthetic NeoWs browse pages. Every third record is
// flagged hazardous; hazardous records alternate between an impact-grade
// miss distance and a comfortable one, and one in every nine has no
// close-approach data at all, covering the degraded-extraction path.
func browseHandler(totalPages, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 0 || page >= totalPages {
			http.Error(w, `{"error":"page out of range"}`, http.StatusBadRequest)
			return
		}

		records := make([]map[string]any, 0, pageSize)
		for i := 0; i < pageSize; i++ {
			records = append(records, syntheticNeo(page*pageSize + i))
		}

		writeJSON(w, map[string]any{
			"page": map[string]any{
				"size":           pageSize,
				"total_elements": totalPages * pageSize,
				"total_pages":    totalPages,
				"number":         page,
			},
			"near_earth_objects": records,
		})
	}
}

func syntheticNeo(n int) map[string]any {
	rec := map[string]any{
		"id":   fmt.Sprintf("35%05d", n),
		"name": fmt.Sprintf("(2026 MC%d)", n),
		"is_potentially_hazardous_asteroid": n%3 == 0,
		"estimated_diameter": map[string]any{
			"meters": map[string]any{
				"estimated_diameter_min": 40.0 + float64(n),
				"estimated_diameter_max": 90.0 + float64(n)*2,
			},
		},
		"orbital_data": map[string]any{
			"semi_major_axis":          "1.458",
			"eccentricity":             "0.222",
			"inclination":              "10.83",
			"ascending_node_longitude": "304.3",
			"perihelion_argument":      "178.9",
			"mean_anomaly":             "310.5",
			"epoch_osculation":         "2461000.5",
		},
	}

	if n%9 == 0 {
		return rec // no close-approach data
	}

	missKm := "4500000.1"
	if n%6 == 0 {
		missKm = "5000.5" // inside Earth's mean radius: potential impact
	}
	rec["close_approach_data"] = []map[string]any{
		{
			"close_approach_date":       "2026-09-14",
			"epoch_date_close_approach": 1789344000000,
			"relative_velocity": map[string]any{
				"kilometers_per_second": "18.13",
			},
			"miss_distance": map[string]any{
				"kilometers": missKm,
			},
		},
	}
	return rec
}

// cannedQuakes spans M4.5 through M9.1 so most derived magnitudes match
// inside the first or second window.
var cannedQuakes = []struct {
	Place string
	Mag   float64
	Time  int64
}{
	{"2011 Great Tohoku Earthquake, Japan", 9.1, 1299822386000},
	{"offshore Bio-Bio, Chile", 8.8, 1267252463000},
	{"Sumatra-Andaman Islands", 8.6, 1333027518000},
	{"south of the Fiji Islands", 7.6, 1757305847000},
	{"Kermadec Islands, New Zealand", 7.0, 1741739000000},
	{"central Mid-Atlantic Ridge", 6.4, 1756040000000},
	{"Mindanao, Philippines", 5.9, 1755000000000},
	{"island of Hawaii, Hawaii", 5.2, 1754000000000},
	{"central California", 4.5, 1753000000000},
}

func quakeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minMag, err := strconv.ParseFloat(q.Get("minmagnitude"), 64)
	if err != nil {
		http.Error(w, `{"error":"minmagnitude required"}`, http.StatusBadRequest)
		return
	}
	maxMag := 10.0
	if s := q.Get("maxmagnitude"); s != "" {
		if maxMag, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, `{"error":"bad maxmagnitude"}`, http.StatusBadRequest)
			return
		}
	}
	limit := len(cannedQuakes)
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 1 {
			http.Error(w, `{"error":"bad limit"}`, http.StatusBadRequest)
			return
		}
	}

	features := make([]map[string]any, 0, limit)
	for _, quake := range cannedQuakes {
		if quake.Mag < minMag || quake.Mag > maxMag {
			continue
		}
		features = append(features, map[string]any{
			"properties": map[string]any{
				"place": quake.Place,
				"mag":   quake.Mag,
				"time":  quake.Time,
			},
		})
		if len(features) == limit {
			break
		}
	}

	writeJSON(w, map[string]any{"features": features})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
