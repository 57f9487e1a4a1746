package ingestors

import (
	"context"
	"time"

	"log-stats/internal/events"
	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/stores"
)

// IngestionJobRunner executes one queued ingestion job: it streams the job's upload
// through the IngestionService and replaces the pending report with the final one.
//
//go:generate mockgen -source=ingestion_job_runner.go -destination=./mocks/ingestion_job_runner_mock.go -package=mocks
type IngestionJobRunner interface {
	Run(ctx context.Context, event *events.IngestionJobEvent) *svcerrors.ServiceError
}

type ingestionJobRunner struct {
	ingestionService IngestionService
	uploadStore      stores.UploadStore
	reportStore      stores.IngestionReportStore
}

func NewIngestionJobRunner(ingestionService IngestionService, uploadStore stores.UploadStore, reportStore stores.IngestionReportStore) IngestionJobRunner {
	return &ingestionJobRunner{
		ingestionService: ingestionService,
		uploadStore:      uploadStore,
		reportStore:      reportStore,
	}
}

func (r *ingestionJobRunner) Run(ctx context.Context, event *events.IngestionJobEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldJobID, event.JobID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg("started ingestion job")

	upload, err := r.uploadStore.Open(ctx, event.JobID)
	if err != nil {
		svcErr := errInternalUploadOpenFailed(err)
		r.storeFailedReport(ctx, event, err)
		return svcErr
	}
	defer upload.Close()

	report, ingestErr := r.ingestionService.Ingest(ctx, event.JobID, upload)
	if report == nil {
		report = models.NewIngestionReport("", event.JobID, event.SubmittedAt)
		report.Finish(models.IngestionFailed, time.Now())
	}
	report.JobID = event.JobID

	if err := r.reportStore.Put(ctx, report); err != nil {
		return errInternalReportStoreFailed(err)
	}

	if ingestErr != nil {
		if svcErr, ok := svcerrors.AsServiceError(ingestErr); ok {
			return svcErr
		}
		return svcerrors.NewInternalErrorUndefined(ingestErr)
	}
	return nil
}

// storeFailedReport records a job that never reached the pipeline.
func (r *ingestionJobRunner) storeFailedReport(ctx context.Context, event *events.IngestionJobEvent, cause error) {
	report := models.NewIngestionReport("", event.JobID, event.SubmittedAt)
	report.JobID = event.JobID
	report.SourceError = cause.Error()
	report.Finish(models.IngestionFailed, time.Now())
	if err := r.reportStore.Put(ctx, report); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Msg("failed to store report of failed ingestion job")
	}
}
