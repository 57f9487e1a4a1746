package jobs

import (
	"log-stats/internal/shared/metrics"
)

var (
	metricJobsSubmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubJobs,
			Name:      "submitted_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricUploadBytes = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubJobs,
			Name:      "upload_bytes",
			Buckets:   []float64{1 << 10, 1 << 14, 1 << 17, 1 << 20, 1 << 23, 1 << 26, 1 << 28},
		},
	)
)
