package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the NEO pipeline.
type Metrics struct {
	PagesFetched       prometheus.Counter
	PageFetchErrors    prometheus.Counter
	NeosScanned        prometheus.Counter
	HazardousExtracted prometheus.Counter
	PipelineRunning    prometheus.Gauge

	// Page processing metrics.
	PageRecords  prometheus.Histogram
	PageDuration prometheus.Histogram

	// Upstream API metrics.
	NeoAPIDuration   prometheus.Histogram
	QuakeQueries     *prometheus.CounterVec // labels: outcome={success,error,empty}
	QuakeAPIDuration prometheus.Histogram

	// Sink metrics.
	RecordsPublished prometheus.Counter
	RecordsExported  *prometheus.CounterVec // labels: format={csv,json}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PagesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "pages_fetched_total",
			Help:      "Total NeoWs browse pages fetched successfully.",
		}),
		PageFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "page_fetch_errors_total",
			Help:      "Total NeoWs browse page fetch failures.",
		}),
		NeosScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "neos_scanned_total",
			Help:      "Total catalog records scanned across all pages.",
		}),
		HazardousExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "hazardous_extracted_total",
			Help:      "Total hazardous records derived.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neo_etl",
			Name:      "pipeline_running",
			Help:      "1 while collection is active, 0 otherwise.",
		}),
		PageRecords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neo_etl",
			Name:      "page_records",
			Help:      "Number of catalog records per fetched page.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		PageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neo_etl",
			Name:      "page_duration_seconds",
			Help:      "Duration of a complete fetch-and-extract cycle for one page.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		NeoAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neo_etl",
			Name:      "neo_api_duration_seconds",
			Help:      "NeoWs browse request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		QuakeQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "quake_queries_total",
			Help:      "USGS event queries by outcome.",
		}, []string{"outcome"}),
		QuakeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neo_etl",
			Name:      "quake_api_duration_seconds",
			Help:      "USGS event request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "records_published_total",
			Help:      "Total derived records written to the Kafka sink topic.",
		}),
		RecordsExported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neo_etl",
			Name:      "records_exported_total",
			Help:      "Total derived records written to export files by format.",
		}, []string{"format"}),
	}

	prometheus.MustRegister(
		m.PagesFetched,
		m.PageFetchErrors,
		m.NeosScanned,
		m.HazardousExtracted,
		m.PipelineRunning,
		m.PageRecords,
		m.PageDuration,
		m.NeoAPIDuration,
		m.QuakeQueries,
		m.QuakeAPIDuration,
		m.RecordsPublished,
		m.RecordsExported,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PagesFetched:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_etl", Name: "pages_fetched_total"}),
		PageFetchErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_etl", Name: "page_fetch_errors_total"}),
		NeosScanned:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_etl", Name: "neos_scanned_total"}),
		HazardousExtracted: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_etl", Name: "hazardous_extracted_total"}),
		PipelineRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "neo_etl", Name: "pipeline_running"}),
		PageRecords:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neo_etl", Name: "page_records"}),
		PageDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neo_etl", Name: "page_duration_seconds"}),
		NeoAPIDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neo_etl", Name: "neo_api_duration_seconds"}),
		QuakeQueries:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "neo_etl", Name: "quake_queries_total"}, []string{"outcome"}),
		QuakeAPIDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "neo_etl", Name: "quake_api_duration_seconds"}),
		RecordsPublished:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "neo_etl", Name: "records_published_total"}),
		RecordsExported:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "neo_etl", Name: "records_exported_total"}, []string{"format"}),
	}
}
