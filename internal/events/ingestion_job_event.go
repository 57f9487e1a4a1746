package events

import "time"

// IngestionJobEvent announces an uploaded log body waiting to be ingested. It is
// produced once the upload and its pending report are stored, and consumed by the
// ingestion job workers.
//
// Example JSON:
//
//	{
//	  "jobId": "01JB7Q9RZC1D4V8W2H6J0K3M5N",
//	  "submittedAt": "2024-05-01T12:00:00Z"
//	}
type IngestionJobEvent struct {
	JobID       string    `json:"jobId"`
	SubmittedAt time.Time `json:"submittedAt"`
}
