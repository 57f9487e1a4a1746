package streams

import (
	"context"

	"log-stats/internal/events"
	"log-stats/internal/shared/metrics"
)

// IngestionJobProducer publishes submitted jobs to the partitioned queue, keyed by job
// id. With a single partition every job runs after the previous one finished, which
// serialises ingestion runs across the process.
//
//go:generate mockgen -source=ingestion_job_producer.go -destination=./mocks/ingestion_job_producer_mock.go -package=mocks
type IngestionJobProducer interface {
	Produce(ctx context.Context, event *events.IngestionJobEvent) error
}

type ingestionJobProducer struct {
	queue *PartitionedQueue[events.IngestionJobEvent]
}

func NewIngestionJobProducer(queue *PartitionedQueue[events.IngestionJobEvent]) IngestionJobProducer {
	return &ingestionJobProducer{
		queue: queue,
	}
}

func (producer *ingestionJobProducer) Produce(ctx context.Context, event *events.IngestionJobEvent) error {
	if err := producer.queue.Publish(ctx, event.JobID, *event); err != nil {
		metricIngestionJobProducedTotal.WithLabelValues(streamIngestionJob, codePublishFailed).Inc()
		return err
	}
	metricIngestionJobProducedTotal.WithLabelValues(streamIngestionJob, metrics.ValueNoError).Inc()
	return nil
}
