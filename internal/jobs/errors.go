package jobs

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "JOB_1000"
	codeJobNotFound      = "JOB_1001"

	codeInternalUploadStoreFailed = "JOB_9000"
	codeInternalReportStoreFailed = "JOB_9001"
	codeInternalPublishFailed     = "JOB_9002"
)

// errValidationFailed returns an error for a rejected submission or lookup.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errJobNotFound returns an error when no report exists for a job id.
func errJobNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeJobNotFound, "ingestion job not found", cause)
}

// errInternalUploadStoreFailed returns an error when an upload cannot be stored.
func errInternalUploadStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUploadStoreFailed, fmt.Errorf("uploadStoreFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when a job report cannot be read or written.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalPublishFailed returns an error when a job cannot be queued.
func errInternalPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPublishFailed, fmt.Errorf("ingestionJobPublishFailed: %w", cause))
}
