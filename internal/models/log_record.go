package models

import "time"

// LogRecord is one parsed access-log line. Only the line parser builds it, so every
// field already satisfies its constraints: UTC second-precision timestamp, non-empty
// customer id and a finite, non-negative duration.
type LogRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	CustomerID  string    `json:"customerId"`
	RequestPath string    `json:"requestPath"`
	StatusCode  int       `json:"statusCode"`
	DurationMs  float64   `json:"durationMs"`
}
