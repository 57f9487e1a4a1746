package aggregators

import (
	"log-stats/internal/shared/metrics"
)

var (
	// metricStatsQueriesTotal counts stats queries by outcome; error_code is empty on success,
	// AGG_1000 for a malformed date and AGG_1001 when nothing matched.
	metricStatsQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "stats_queries_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricStatsQueryLatency = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "stats_query_latency_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSamplesScanned = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "samples_scanned",
			Buckets:   metrics.BatchSizeBuckets,
		},
	)
)
