package models

import "time"

// MaxRejectionSamples bounds how many rejected lines a report keeps verbatim.
const MaxRejectionSamples = 100

type IngestionStatus string

const (
	IngestionPending   IngestionStatus = "pending"
	IngestionCompleted IngestionStatus = "completed"
	IngestionFailed    IngestionStatus = "failed"
)

func (s IngestionStatus) IsFinal() bool {
	return s == IngestionCompleted || s == IngestionFailed
}

// BatchFailure describes a batch whose transaction was rolled back. FirstRecord and
// LastRecord are 1-based ordinals of the accepted records the batch held.
type BatchFailure struct {
	Batch       int    `json:"batch"`
	FirstRecord int64  `json:"firstRecord"`
	LastRecord  int64  `json:"lastRecord"`
	Size        int    `json:"size"`
	Cause       string `json:"cause"`
}

type LineRejection struct {
	LineNumber int64  `json:"lineNumber"`
	Line       string `json:"line"`
	Reason     string `json:"reason"`
}

// IngestionReport summarises one pass over a line source.
//
// Example JSON:
//
//	{
//	  "runId": "01JB7Q9S3ZQ5X0W8K4M2N6P1RT",
//	  "jobId": "01JB7Q9RZC1D4V8W2H6J0K3M5N",
//	  "source": "access.log",
//	  "status": "completed",
//	  "accepted": 2500,
//	  "rejected": 1,
//	  "persisted": 1500,
//	  "batches": 3,
//	  "batchFailures": [
//	    {"batch": 2, "firstRecord": 1001, "lastRecord": 2000, "size": 1000, "cause": "..."}
//	  ],
//	  "rejections": [
//	    {"lineNumber": 7, "line": "garbage", "reason": "expected 6 fields, got 1"}
//	  ],
//	  "startedAt": "2024-05-01T12:00:00Z",
//	  "finishedAt": "2024-05-01T12:00:02Z"
//	}
type IngestionReport struct {
	RunID         string          `json:"runId"`
	JobID         string          `json:"jobId,omitempty"`
	Source        string          `json:"source"`
	Status        IngestionStatus `json:"status"`
	Accepted      int64           `json:"accepted"`
	Rejected      int64           `json:"rejected"`
	Persisted     int64           `json:"persisted"`
	Batches       int             `json:"batches"`
	BatchFailures []BatchFailure  `json:"batchFailures"`
	Rejections    []LineRejection `json:"rejections"`
	SourceError   string          `json:"sourceError,omitempty"`
	StartedAt     time.Time       `json:"startedAt"`
	FinishedAt    *time.Time      `json:"finishedAt,omitempty"`
}

func NewIngestionReport(runID string, source string, startedAt time.Time) *IngestionReport {
	return &IngestionReport{
		RunID:         runID,
		Source:        source,
		Status:        IngestionPending,
		BatchFailures: []BatchFailure{},
		Rejections:    []LineRejection{},
		StartedAt:     startedAt.UTC(),
	}
}

// Reject counts a rejected line and keeps it as a sample while there is room.
func (r *IngestionReport) Reject(lineNumber int64, line string, reason string) {
	r.Rejected++
	if len(r.Rejections) < MaxRejectionSamples {
		r.Rejections = append(r.Rejections, LineRejection{LineNumber: lineNumber, Line: line, Reason: reason})
	}
}

func (r *IngestionReport) Finish(status IngestionStatus, finishedAt time.Time) {
	utc := finishedAt.UTC()
	r.Status = status
	r.FinishedAt = &utc
}
