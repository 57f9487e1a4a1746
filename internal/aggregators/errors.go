package aggregators

import (
	"fmt"

	"log-stats/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "AGG_1000"
	codeNoData           = "AGG_1001"

	codeInternalLogEntryStoreFailed = "AGG_9000"
	codeInternalStatsFailed         = "AGG_9001"
)

const (
	msgInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	msgNoData            = "No data found for the given customer and date range"
)

// errValidationFailed returns an error for malformed query input.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errNoData returns an error when a valid query matched no entries.
func errNoData(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoData, msgNoData, cause)
}

// errInternalLogEntryStoreFailed returns an error when reading log entries fails.
func errInternalLogEntryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogEntryStoreFailed, fmt.Errorf("logEntryStoreFailed: %w", cause))
}

// errInternalStatsFailed returns an error when the statistics cannot be computed.
func errInternalStatsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatsFailed, fmt.Errorf("statsFailed: %w", cause))
}
