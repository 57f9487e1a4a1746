package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"log-stats/internal/events"
	"log-stats/internal/ingestors"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/shared/ulid"
)

const codePublishFailed = "STR_9000"

//go:generate mockgen -source=ingestion_job_consumer.go -destination=./mocks/ingestion_job_consumer_mock.go -package=mocks
type IngestionJobConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type ingestionJobConsumer struct {
	queue  *PartitionedQueue[events.IngestionJobEvent]
	runner ingestors.IngestionJobRunner

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewIngestionJobConsumer(queue *PartitionedQueue[events.IngestionJobEvent], runner ingestors.IngestionJobRunner, logger loggers.Logger) IngestionJobConsumer {
	return &ingestionJobConsumer{
		queue:  queue,
		runner: runner,
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *ingestionJobConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for in-flight jobs to finish. Jobs still queued stay pending.
func (consumer *ingestionJobConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *ingestionJobConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.IngestionJobEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *ingestionJobConsumer) handle(ctx context.Context, partitionIndex int, event *events.IngestionJobEvent) {
	start := time.Now()
	logger := consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldJobID, event.JobID).
		Logger()
	ctx = logger.WithContext(ctx)

	code := metrics.ValueNoError
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("consumer panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			code = svcerrors.NewInternalErrorPanic(panicErr).Code
		}
		metricIngestionJobConsumedTotal.WithLabelValues(streamIngestionJob, code).Inc()
		metricIngestionJobDuration.WithLabelValues(streamIngestionJob, code).Observe(time.Since(start).Seconds())
	}()

	if svcErr := consumer.runner.Run(ctx, event); svcErr != nil {
		code = svcErr.Code
		logger.Error().Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("ingestion job failed")
		return
	}
	logger.Info().Msg("ingestion job finished")
}
