package ingestors

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeBatchWriteFailed = "ING_2000"

	codeInternalReportStoreFailed = "ING_9000"
	codeInternalSourceReadFailed  = "ING_9001"
	codeInternalUploadOpenFailed  = "ING_9002"
)

// ParseError is returned by LineParser for a line that does not hold a valid record.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid log line %q: %s", e.Line, e.Reason)
}

// errInternalSourceReadFailed returns an error when the line source fails mid-run.
func errInternalSourceReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, fmt.Errorf("sourceReadFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when an ingestion report cannot be stored.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalUploadOpenFailed returns an error when a job's upload cannot be opened.
func errInternalUploadOpenFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUploadOpenFailed, fmt.Errorf("uploadOpenFailed: %w", cause))
}
