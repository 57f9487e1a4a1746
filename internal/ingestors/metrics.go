package ingestors

import (
	"log-stats/internal/shared/metrics"
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

var (
	// metricLinesTotal counts non-blank input lines by parse outcome (accepted / rejected).
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldResult},
	)

	// metricBatchesTotal counts flushed batches; error_code is empty for committed ones.
	metricBatchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batches_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchFlushLatency = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_flush_latency_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchSize = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_size",
			Buckets:   metrics.BatchSizeBuckets,
		},
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
