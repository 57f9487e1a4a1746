package streams

import (
	"log-stats/internal/shared/metrics"
)

var (
	streamIngestionJob              = "ingestion_job"
	metricIngestionJobProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingestion_job_published_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricIngestionJobConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingestion_job_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricIngestionJobDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingestion_job_duration_seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
