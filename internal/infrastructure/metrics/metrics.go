package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the ledger engine.
type Metrics struct {
	// Statement metrics
	StatementsComputed prometheus.Counter
	StatementDuration  prometheus.Histogram

	// Outstanding summary metrics
	SummariesComputed prometheus.Counter
	SummaryDuration   prometheus.Histogram
	SummaryParties    prometheus.Histogram
	DegradedRows      prometheus.Counter

	// Normalization metrics
	NormalizationWarnings prometheus.Counter

	// Cache metrics
	SummaryCacheHits   prometheus.Counter
	SummaryCacheMisses prometheus.Counter

	// Document metrics
	DocumentsRecorded *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		StatementsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_statements_computed_total",
			Help: "Total number of range statements computed",
		}),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopledger_statement_duration_seconds",
			Help:    "Duration of range statement computation",
			Buckets: prometheus.DefBuckets,
		}),
		SummariesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_summaries_computed_total",
			Help: "Total number of outstanding summaries computed",
		}),
		SummaryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopledger_summary_duration_seconds",
			Help:    "Duration of outstanding summary fan-out",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		SummaryParties: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopledger_summary_parties",
			Help:    "Number of parties per outstanding summary",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		DegradedRows: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_summary_degraded_rows_total",
			Help: "Total number of degraded rows emitted by outstanding summaries",
		}),
		NormalizationWarnings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_normalization_warnings_total",
			Help: "Total number of raw records excluded during normalization",
		}),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_summary_cache_hits_total",
			Help: "Total number of outstanding summaries served from cache",
		}),
		SummaryCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shopledger_summary_cache_misses_total",
			Help: "Total number of outstanding summary cache misses",
		}),
		DocumentsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopledger_documents_recorded_total",
				Help: "Total number of financial documents recorded by collection",
			},
			[]string{"collection"},
		),
	}
}
