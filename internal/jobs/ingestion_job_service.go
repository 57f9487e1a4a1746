package jobs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"log-stats/internal/events"
	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/shared/ulid"
	"log-stats/internal/stores"
	"log-stats/internal/streams"
)

type SubmitResult struct {
	JobID string `json:"jobId"`
}

// IngestionJobService accepts log uploads for asynchronous ingestion and serves the
// report of each job.
//
//go:generate mockgen -source=ingestion_job_service.go -destination=./mocks/ingestion_job_service_mock.go -package=mocks
type IngestionJobService interface {
	// Submit stores the upload, records a pending report and queues the job.
	Submit(ctx context.Context, r io.Reader) (*SubmitResult, error)
	GetReport(ctx context.Context, jobID string) (*models.IngestionReport, error)
}

type ingestionJobService struct {
	uploadStore    stores.UploadStore
	reportStore    stores.IngestionReportStore
	producer       streams.IngestionJobProducer
	maxUploadBytes int64
}

func NewIngestionJobService(uploadStore stores.UploadStore, reportStore stores.IngestionReportStore, producer streams.IngestionJobProducer, maxUploadBytes int64) IngestionJobService {
	return &ingestionJobService{
		uploadStore:    uploadStore,
		reportStore:    reportStore,
		producer:       producer,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *ingestionJobService) Submit(ctx context.Context, r io.Reader) (*SubmitResult, error) {
	result, err := s.submit(ctx, r)
	if err != nil {
		metricJobsSubmittedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}
	metricJobsSubmittedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *ingestionJobService) submit(ctx context.Context, r io.Reader) (*SubmitResult, *svcerrors.ServiceError) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	body := bufio.NewReader(r)
	if _, err := body.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errValidationFailed("empty request body", nil)
		}
		return nil, errValidationFailed("failed to read request body", err)
	}

	jobID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldJobID, jobID).Logger()

	upload := &limitedReader{r: body, limit: s.maxUploadBytes}
	if err := s.uploadStore.Put(ctx, jobID, upload); err != nil {
		if errors.Is(err, errUploadTooLarge) {
			return nil, errValidationFailed(fmt.Sprintf("upload too large: must be <= %d bytes", s.maxUploadBytes), err)
		}
		return nil, errInternalUploadStoreFailed(err)
	}
	metricUploadBytes.Observe(float64(upload.read))

	submittedAt := time.Now().UTC()
	report := models.NewIngestionReport("", jobID, submittedAt)
	report.JobID = jobID
	if err := s.reportStore.Put(ctx, report); err != nil {
		return nil, errInternalReportStoreFailed(err)
	}

	event := &events.IngestionJobEvent{
		JobID:       jobID,
		SubmittedAt: submittedAt,
	}
	if err := s.producer.Produce(ctx, event); err != nil {
		return nil, errInternalPublishFailed(err)
	}

	logger.Info().Int64("bytes", upload.read).Msg("ingestion job submitted")
	return &SubmitResult{JobID: jobID}, nil
}

func (s *ingestionJobService) GetReport(ctx context.Context, jobID string) (*models.IngestionReport, error) {
	if !ulid.IsValid(jobID) {
		return nil, errValidationFailed(fmt.Sprintf("invalid job id %q", jobID), nil)
	}

	report, err := s.reportStore.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, stores.ErrIngestionReportNotFound) {
			return nil, errJobNotFound(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}
