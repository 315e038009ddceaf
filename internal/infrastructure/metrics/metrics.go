package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ETLMetrics covers generation, loading and downstream reporting.
type ETLMetrics struct {
	// Generation and load volume per entity type.
	RecordsGeneratedTotal prometheus.CounterVec
	RecordsLoadedTotal    prometheus.CounterVec
	RecordsSkippedTotal   prometheus.CounterVec

	// Pipeline runs and their duration per stage.
	ETLRunsTotal prometheus.CounterVec
	ETLDuration  prometheus.HistogramVec

	// Risk signals found in the generated data.
	SuspiciousPaymentsTotal prometheus.Counter
	SLABreachesTotal        prometheus.Counter

	// Reporting path.
	ReportQueriesTotal prometheus.CounterVec
	CacheHitsTotal     prometheus.CounterVec
	CacheMissesTotal   prometheus.CounterVec
}

func NewETLMetrics() *ETLMetrics {
	return &ETLMetrics{
		RecordsGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etl_records_generated_total",
				Help: "Total records produced by the generator per entity type",
			},
			[]string{"entity"},
		),

		RecordsLoadedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etl_records_loaded_total",
				Help: "Total records inserted into the sink per entity type",
			},
			[]string{"entity"},
		),

		RecordsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etl_records_skipped_total",
				Help: "Total duplicate records skipped by idempotent load per entity type",
			},
			[]string{"entity"},
		),

		ETLRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etl_runs_total",
				Help: "Total ETL pipeline runs by outcome",
			},
			[]string{"status"},
		),

		ETLDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "etl_stage_duration_seconds",
				Help:    "Duration of ETL stages in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"stage"},
		),

		SuspiciousPaymentsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "etl_suspicious_payments_total",
				Help: "Total suspicious payments flagged across generated datasets",
			},
		),

		SLABreachesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "etl_sla_breaches_total",
				Help: "Total settlements generated past their SLA window",
			},
		),

		ReportQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_queries_total",
				Help: "Total report and analytics queries served by name",
			},
			[]string{"report"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_hits_total",
				Help: "Analytics cache hits by report",
			},
			[]string{"report"},
		),

		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_misses_total",
				Help: "Analytics cache misses by report",
			},
			[]string{"report"},
		),
	}
}

// RecordEntityLoad records one entity batch passing through the sink.
func (m *ETLMetrics) RecordEntityLoad(entity string, generated, inserted, skipped int64) {
	m.RecordsGeneratedTotal.WithLabelValues(entity).Add(float64(generated))
	m.RecordsLoadedTotal.WithLabelValues(entity).Add(float64(inserted))
	m.RecordsSkippedTotal.WithLabelValues(entity).Add(float64(skipped))
}

func (m *ETLMetrics) RecordRun(status string) {
	m.ETLRunsTotal.WithLabelValues(status).Inc()
}

func (m *ETLMetrics) RecordStageDuration(stage string, seconds float64) {
	m.ETLDuration.WithLabelValues(stage).Observe(seconds)
}

func (m *ETLMetrics) RecordRiskSignals(suspicious, breaches int) {
	m.SuspiciousPaymentsTotal.Add(float64(suspicious))
	m.SLABreachesTotal.Add(float64(breaches))
}

func (m *ETLMetrics) RecordReportQuery(report string) {
	m.ReportQueriesTotal.WithLabelValues(report).Inc()
}

func (m *ETLMetrics) RecordCacheHit(report string) {
	m.CacheHitsTotal.WithLabelValues(report).Inc()
}

func (m *ETLMetrics) RecordCacheMiss(report string) {
	m.CacheMissesTotal.WithLabelValues(report).Inc()
}
