package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ingestion and digest jobs. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	PagesFetched     prometheus.Counter
	RecordsProcessed prometheus.Counter
	FactsUpserted    prometheus.Counter

	// Record failures by stage: "raw", "facts"
	RecordErrors *prometheus.CounterVec

	// Values that fell through to a generic bucket, by kind
	UnmappedValues *prometheus.CounterVec

	MappingRefreshes *prometheus.CounterVec

	// Digest outcomes by frequency and outcome: "sent", "failed", "all_clear", "empty", "not_due"
	DigestOutcomes *prometheus.CounterVec

	RunDuration *prometheus.HistogramVec
}

// New registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "foodrisk_ingest_pages_fetched_total",
			Help: "Feed pages fetched",
		}),
		RecordsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "foodrisk_ingest_records_total",
			Help: "Feed records processed",
		}),
		FactsUpserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "foodrisk_ingest_facts_upserted_total",
			Help: "Alert facts written",
		}),
		RecordErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodrisk_ingest_record_errors_total",
			Help: "Records skipped after a failure, by stage",
		}, []string{"stage"}),
		UnmappedValues: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodrisk_normalizer_unmapped_total",
			Help: "Raw values that fell through to a generic bucket, by kind",
		}, []string{"kind"}),
		MappingRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodrisk_normalizer_mapping_refreshes_total",
			Help: "Mapping cache reloads by result",
		}, []string{"result"}),
		DigestOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodrisk_digest_outcomes_total",
			Help: "Per subscription digest outcomes",
		}, []string{"frequency", "outcome"}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foodrisk_job_duration_seconds",
			Help:    "Duration of job runs",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"job", "status"}),
	}
}

func (m *Metrics) PageFetched() {
	if m != nil {
		m.PagesFetched.Inc()
	}
}

func (m *Metrics) RecordProcessed() {
	if m != nil {
		m.RecordsProcessed.Inc()
	}
}

func (m *Metrics) AddFacts(n int) {
	if m != nil {
		m.FactsUpserted.Add(float64(n))
	}
}

func (m *Metrics) RecordError(stage string) {
	if m != nil {
		m.RecordErrors.WithLabelValues(stage).Inc()
	}
}

func (m *Metrics) Unmapped(kind string) {
	if m != nil {
		m.UnmappedValues.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) MappingRefresh(result string) {
	if m != nil {
		m.MappingRefreshes.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) DigestOutcome(frequency, outcome string) {
	if m != nil {
		m.DigestOutcomes.WithLabelValues(frequency, outcome).Inc()
	}
}

// ObserveRun records the duration of a job run with its final status.
func (m *Metrics) ObserveRun(job, status string, d time.Duration) {
	if m != nil {
		m.RunDuration.WithLabelValues(job, status).Observe(d.Seconds())
	}
}
