package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/neo-impact-etl/internal/domain"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
)

// NeoCatalog fetches one page of the NEO browse catalog.
type NeoCatalog interface {
	FetchPage(ctx context.Context, page int) (domain.NeoPage, error)
}

// Pipeline walks the NEO catalog page by page and derives one record per
// hazardous object.
type Pipeline struct {
	catalog  NeoCatalog
	quakes   domain.QuakeCatalog
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
	maxPages int
}

// New creates a Pipeline. maxPages caps how many pages are fetched; zero
// means no cap, leaving the catalog's last-page signal as the only bound.
func New(catalog NeoCatalog, quakes domain.QuakeCatalog, logger *slog.Logger, metrics *observability.Metrics, maxPages int) *Pipeline {
	return &Pipeline{
		catalog:  catalog,
		quakes:   quakes,
		logger:   logger,
		metrics:  metrics,
		maxPages: maxPages,
	}
}

// CheckReadiness returns nil once the pipeline has processed at least one
// page, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any pages yet")
	}
	return nil
}

// CollectHazardous fetches pages in order and derives a record for every
// object whose hazard flag is set, preserving catalog order. A fetch
// failure stops pagination immediately with no retry: the records collected
// so far come back along with the error, and remain valid output.
func (p *Pipeline) CollectHazardous(ctx context.Context) (domain.ResultSet, error) {
	p.logger.Info("collection started", "max_pages", p.maxPages)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	var results domain.ResultSet
	for page := 0; p.maxPages == 0 || page < p.maxPages; page++ {
		neoPage, err := p.catalog.FetchPage(ctx, page)
		if err != nil {
			p.metrics.PageFetchErrors.Inc()
			p.logger.Error("page fetch failed, stopping pagination",
				"page", page,
				"collected", len(results),
				"error", err,
			)
			return results, fmt.Errorf("fetch page %d: %w", page, err)
		}
		p.metrics.PagesFetched.Inc()

		results = append(results, p.processPage(ctx, neoPage)...)
		p.ready.Store(true)

		if neoPage.Number >= neoPage.TotalPages-1 {
			break
		}
	}

	p.logger.Info("collection finished", "hazardous_records", len(results))
	return results, nil
}

// processPage extracts the hazardous records of one page, in page order.
func (p *Pipeline) processPage(ctx context.Context, neoPage domain.NeoPage) domain.ResultSet {
	start := time.Now()

	var extracted domain.ResultSet
	for _, raw := range neoPage.Records {
		p.metrics.NeosScanned.Inc()
		if !raw.PotentiallyHazardous {
			continue
		}

		rec := domain.ExtractHazardous(ctx, raw, p.quakes, p.logger)
		extracted = append(extracted, rec)
		p.metrics.HazardousExtracted.Inc()

		p.logger.Debug("hazardous object derived",
			"id", rec.ID,
			"name", rec.Name,
			"potential_impact", rec.PotentialImpact,
		)
	}

	p.metrics.PageRecords.Observe(float64(len(neoPage.Records)))
	p.metrics.PageDuration.Observe(time.Since(start).Seconds())

	p.logger.Info("page processed",
		"page", neoPage.Number,
		"total_pages", neoPage.TotalPages,
		"records", len(neoPage.Records),
		"hazardous", len(extracted),
	)

	return extracted
}
