package ingestors

import (
	"context"
	"time"

	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/stores"
)

// DefaultBatchSize is the number of records committed per transaction when none is configured.
const DefaultBatchSize = 1000

// WriteReport accumulates the outcome of every batch a BatchWriter flushed.
type WriteReport struct {
	Batches   int
	Persisted int64
	Failures  []models.BatchFailure
}

// BatchWriter buffers records and commits them in fixed-size transactions, in arrival
// order. A batch that fails to commit is rolled back, recorded in the report and
// skipped; the writer keeps going with the next batch and never retries.
// A BatchWriter serves a single run and is not safe for concurrent use.
//
//go:generate mockgen -source=batch_writer.go -destination=./mocks/batch_writer_mock.go -package=mocks
type BatchWriter interface {
	// Write buffers record, flushing when the buffer reaches the batch size.
	Write(ctx context.Context, record *models.LogRecord)
	// Flush commits whatever is buffered, even below the batch size.
	Flush(ctx context.Context)
	// WriteAll writes every record, flushes, and returns the report.
	WriteAll(ctx context.Context, records []*models.LogRecord) WriteReport
	Report() WriteReport
}

type batchWriter struct {
	store     stores.LogEntryStore
	batchSize int

	buffer   []*models.LogRecord
	received int64
	report   WriteReport
}

func NewBatchWriter(store stores.LogEntryStore, batchSize int) BatchWriter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &batchWriter{
		store:     store,
		batchSize: batchSize,
		buffer:    make([]*models.LogRecord, 0, batchSize),
		report:    WriteReport{Failures: []models.BatchFailure{}},
	}
}

func (w *batchWriter) Write(ctx context.Context, record *models.LogRecord) {
	w.buffer = append(w.buffer, record)
	w.received++
	if len(w.buffer) >= w.batchSize {
		w.Flush(ctx)
	}
}

func (w *batchWriter) WriteAll(ctx context.Context, records []*models.LogRecord) WriteReport {
	for _, record := range records {
		w.Write(ctx, record)
	}
	w.Flush(ctx)
	return w.Report()
}

func (w *batchWriter) Flush(ctx context.Context) {
	if len(w.buffer) == 0 {
		return
	}

	w.report.Batches++
	batch := w.report.Batches
	size := len(w.buffer)
	lastRecord := w.received
	firstRecord := lastRecord - int64(size) + 1

	start := time.Now()
	err := w.store.InsertBatch(ctx, w.buffer)
	elapsed := time.Since(start).Seconds()
	metricBatchSize.Observe(float64(size))

	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).
			Int(loggers.FieldBatch, batch).
			Str(loggers.FieldErrorCode, codeBatchWriteFailed).
			Msgf("batch rolled back, skipping records %d-%d", firstRecord, lastRecord)
		w.report.Failures = append(w.report.Failures, models.BatchFailure{
			Batch:       batch,
			FirstRecord: firstRecord,
			LastRecord:  lastRecord,
			Size:        size,
			Cause:       err.Error(),
		})
		metricBatchesTotal.WithLabelValues(codeBatchWriteFailed).Inc()
		metricBatchFlushLatency.WithLabelValues(codeBatchWriteFailed).Observe(elapsed)
	} else {
		loggers.Ctx(ctx).Debug().
			Int(loggers.FieldBatch, batch).
			Msgf("committed %d records", size)
		w.report.Persisted += int64(size)
		metricBatchesTotal.WithLabelValues(metrics.ValueNoError).Inc()
		metricBatchFlushLatency.WithLabelValues(metrics.ValueNoError).Observe(elapsed)
	}

	// the store may still reference the flushed slice, so start a fresh one
	w.buffer = make([]*models.LogRecord, 0, w.batchSize)
}

func (w *batchWriter) Report() WriteReport {
	report := w.report
	report.Failures = append([]models.BatchFailure{}, w.report.Failures...)
	return report
}
