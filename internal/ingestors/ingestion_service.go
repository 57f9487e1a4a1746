package ingestors

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/shared/ulid"
	"log-stats/internal/stores"
)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest drives every line of r through the parser and a fresh batch writer in a
	// single pass. It always returns the report. When r fails mid-run the records
	// read so far are still flushed, the report is marked failed and an ING_9001
	// error is returned alongside it.
	Ingest(ctx context.Context, source string, r io.Reader) (*models.IngestionReport, error)
}

type ingestionService struct {
	parser    LineParser
	store     stores.LogEntryStore
	batchSize int
}

func NewIngestionService(parser LineParser, store stores.LogEntryStore, batchSize int) IngestionService {
	return &ingestionService{
		parser:    parser,
		store:     store,
		batchSize: batchSize,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, source string, r io.Reader) (*models.IngestionReport, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldSource, source).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Msg("started ingestion run")

	report := models.NewIngestionReport(runID, source, time.Now())
	writer := NewBatchWriter(s.store, s.batchSize)

	sourceErr := s.readLines(ctx, r, report, writer)

	// records read before a source failure are still committed
	writer.Flush(ctx)
	written := writer.Report()
	report.Batches = written.Batches
	report.Persisted = written.Persisted
	report.BatchFailures = written.Failures

	if sourceErr != nil {
		report.SourceError = sourceErr.Error()
		report.Finish(models.IngestionFailed, time.Now())
		svcErr := errInternalSourceReadFailed(sourceErr)
		metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
		logger.Error().Err(sourceErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Int64("accepted", report.Accepted).
			Int64("persisted", report.Persisted).
			Msg("ingestion run aborted by source error")
		return report, svcErr
	}

	report.Finish(models.IngestionCompleted, time.Now())
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int64("accepted", report.Accepted).
		Int64("rejected", report.Rejected).
		Int64("persisted", report.Persisted).
		Int("batches", report.Batches).
		Int("batch_failures", len(report.BatchFailures)).
		Msg("finished ingestion run")
	return report, nil
}

// readLines parses r line by line into writer. It returns the error that stopped the
// source early, or nil once r is exhausted.
func (s *ingestionService) readLines(ctx context.Context, r io.Reader, report *models.IngestionReport, writer BatchWriter) error {
	if r == nil {
		return errors.New("nil line source")
	}

	scanner, closeSource, err := openLineSource(r)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	logger := loggers.Ctx(ctx)
	var lineNumber int64
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := s.parser.Parse(line)
		if err != nil {
			reason := err.Error()
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				reason = parseErr.Reason
			}
			report.Reject(lineNumber, line, reason)
			metricLinesTotal.WithLabelValues(resultRejected).Inc()
			logger.Debug().
				Int64(loggers.FieldLineNumber, lineNumber).
				Str("reason", reason).
				Msg("skipping malformed line")
			continue
		}

		report.Accepted++
		metricLinesTotal.WithLabelValues(resultAccepted).Inc()
		writer.Write(ctx, record)
	}
	return scanner.Err()
}
