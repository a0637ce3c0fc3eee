package usgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

const eventsFixture = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"mag": 5.3, "place": "100 km S of Suva, Fiji", "time": 1757305847000}},
    {"type": "Feature", "properties": {"mag": 5.1, "place": "near the coast of Honshu, Japan", "time": 1757100000000}}
  ]
}`

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_QueryMagnitudeRange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fdsnws/event/1/query", r.URL.Path)
		assert.Equal(t, "geojson", r.URL.Query().Get("format"))
		assert.Equal(t, "4.95", r.URL.Query().Get("minmagnitude"))
		assert.Equal(t, "5.55", r.URL.Query().Get("maxmagnitude"))
		assert.Equal(t, "time", r.URL.Query().Get("orderby"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(eventsFixture))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	examples, err := c.QueryMagnitudeRange(context.Background(), 4.95, 5.55, 3)
	require.NoError(t, err)

	require.Len(t, examples, 2)
	assert.Equal(t, "100 km S of Suva, Fiji", examples[0].Place)
	require.NotNil(t, examples[0].Magnitude)
	assert.Equal(t, 5.3, *examples[0].Magnitude)
	require.NotNil(t, examples[0].TimeMs)
	assert.Equal(t, int64(1757305847000), *examples[0].TimeMs)
	assert.Equal(t, "near the coast of Honshu, Japan", examples[1].Place)
}

func TestClient_QueryMagnitudeRange_NullFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"features":[{"properties":{"mag":null,"place":null,"time":1757305847000}}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	examples, err := c.QueryMagnitudeRange(context.Background(), 4.0, 5.0, 3)
	require.NoError(t, err)

	require.Len(t, examples, 1)
	assert.Empty(t, examples[0].Place)
	assert.Nil(t, examples[0].Magnitude)
	require.NotNil(t, examples[0].TimeMs)
}

func TestClient_QueryMagnitudeRange_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	examples, err := c.QueryMagnitudeRange(context.Background(), 11.0, 12.0, 3)
	require.NoError(t, err)
	assert.Empty(t, examples)
}

func TestClient_QueryMagnitudeRange_NegativeBound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-0.5", r.URL.Query().Get("minmagnitude"))
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.QueryMagnitudeRange(context.Background(), -0.5, 3.5, 3)
	require.NoError(t, err)
}

func TestClient_QueryMagnitudeRange_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Bad Request: minmagnitude"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.QueryMagnitudeRange(context.Background(), 4.0, 5.0, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestClient_QueryMagnitudeRange_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{"features":`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.QueryMagnitudeRange(context.Background(), 4.0, 5.0, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_Search_Params(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-09-01", r.URL.Query().Get("starttime"))
		assert.Equal(t, "2025-10-01", r.URL.Query().Get("endtime"))
		assert.Equal(t, "5", r.URL.Query().Get("minmagnitude"))
		assert.Empty(t, r.URL.Query().Get("limit")) // survey is unbounded

		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(eventsFixture))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	examples, err := c.Search(context.Background(), start, end, 5)
	require.NoError(t, err)
	assert.Len(t, examples, 2)
}

func TestClient_Search_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.Search(context.Background(), time.Now().AddDate(0, -1, 0), time.Now(), 5)
	require.Error(t, err)
}
