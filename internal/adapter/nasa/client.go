package nasa

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

	"golang.org/x/time/rate"

	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

// Client implements pipeline.NeoCatalog using the NASA NeoWs browse API.
type Client struct {
	apiKey     string
	pageSize   int
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a NeoWs browse client. ratePerMinute spreads requests
// out under NASA's per-key quota; zero or negative disables throttling.
func NewClient(baseURL, apiKey string, pageSize, ratePerMinute int, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	var limiter *rate.Limiter
	if ratePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), 1)
	}

	return &Client{
		apiKey:   apiKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchPage retrieves one page of the browse catalog. It blocks on the rate
// limiter before issuing the request, so a canceled context is the only way
// out of a saturated budget.
func (c *Client) FetchPage(ctx context.Context, page int) (domain.NeoPage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.NeoPage{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	params := url.Values{
		"page":    {strconv.Itoa(page)},
		"size":    {strconv.Itoa(c.pageSize)},
		"api_key": {c.apiKey},
	}
	fullURL := fmt.Sprintf("%s/neo/rest/v1/neo/browse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.NeoPage{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.NeoAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.NeoPage{}, fmt.Errorf("browse page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.NeoPage{}, fmt.Errorf("neows API error: status %d: %s", resp.StatusCode, body)
	}

	var browse browseResponse
	if err := json.NewDecoder(resp.Body).Decode(&browse); err != nil {
		return domain.NeoPage{}, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("browse page fetched",
		"page", browse.Page.Number,
		"total_pages", browse.Page.TotalPages,
		"records", len(browse.NearEarthObjects),
	)

	return domain.NeoPage{
		Number:     browse.Page.Number,
		TotalPages: browse.Page.TotalPages,
		Records:    browse.NearEarthObjects,
	}, nil
}

// NeoWs API response types.

type browseResponse struct {
	Page             pageInfo        `json:"page"`
	NearEarthObjects []domain.RawNeo `json:"near_earth_objects"`
}

type pageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
	Number        int `json:"number"`
}
