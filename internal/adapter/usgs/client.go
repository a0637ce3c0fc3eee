package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

// Client implements domain.QuakeCatalog using the USGS FDSN event service.
// The service is unauthenticated; no key is required.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a USGS event service client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// QueryMagnitudeRange returns up to limit events with magnitude in
// [minMag, maxMag], most recent first.
func (c *Client) QueryMagnitudeRange(ctx context.Context, minMag, maxMag float64, limit int) ([]domain.SeismicExample, error) {
	params := url.Values{
		"format":       {"geojson"},
		"minmagnitude": {formatMag(minMag)},
		"maxmagnitude": {formatMag(maxMag)},
		"orderby":      {"time"},
		"limit":        {strconv.Itoa(limit)},
	}
	return c.query(ctx, params, "range")
}

// Search returns all events between start and end (dates, not instants)
// with magnitude at or above minMag.
func (c *Client) Search(ctx context.Context, start, end time.Time, minMag float64) ([]domain.SeismicExample, error) {
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {start.Format("2006-01-02")},
		"endtime":      {end.Format("2006-01-02")},
		"minmagnitude": {formatMag(minMag)},
	}
	return c.query(ctx, params, "search")
}

func (c *Client) query(ctx context.Context, params url.Values, kind string) ([]domain.SeismicExample, error) {
	fullURL := fmt.Sprintf("%s/fdsnws/event/1/query?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.QuakeAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.QuakeQueries.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s query: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.QuakeQueries.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fdsn API error: status %d: %s", resp.StatusCode, body)
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		c.metrics.QuakeQueries.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	examples := make([]domain.SeismicExample, 0, len(fc.Features))
	for _, f := range fc.Features {
		ex := domain.SeismicExample{
			Magnitude: f.Properties.Mag,
			TimeMs:    f.Properties.Time,
		}
		// place is null for some offshore events; keep the record anyway.
		if f.Properties.Place != nil {
			ex.Place = *f.Properties.Place
		}
		examples = append(examples, ex)
	}

	if len(examples) == 0 {
		c.metrics.QuakeQueries.WithLabelValues("empty").Inc()
	} else {
		c.metrics.QuakeQueries.WithLabelValues("success").Inc()
	}

	return examples, nil
}

// formatMag renders a magnitude bound without trailing zeros. Negative
// bounds are legal: a small target minus the widest delta goes below zero
// and the service accepts it.
func formatMag(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// FDSN GeoJSON response types.

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties properties `json:"properties"`
}

type properties struct {
	Mag   *float64 `json:"mag"`
	Place *string  `json:"place"`
	Time  *int64   `json:"time"`
}
