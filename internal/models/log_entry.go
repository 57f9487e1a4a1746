package models

import "time"

// LogEntry is a LogRecord persisted in the log_entries table. Rows are written only by
// the batch writer and never updated.
type LogEntry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Timestamp   time.Time `gorm:"not null;index;index:idx_log_entries_customer_timestamp,priority:2"`
	CustomerID  string    `gorm:"size:255;not null;index;index:idx_log_entries_customer_timestamp,priority:1"`
	RequestPath string    `gorm:"size:2048;not null"`
	StatusCode  int       `gorm:"not null"`
	DurationMs  float64   `gorm:"not null"`
}

func (LogEntry) TableName() string {
	return "log_entries"
}

func NewLogEntry(record *LogRecord) *LogEntry {
	return &LogEntry{
		Timestamp:   record.Timestamp.UTC(),
		CustomerID:  record.CustomerID,
		RequestPath: record.RequestPath,
		StatusCode:  record.StatusCode,
		DurationMs:  record.DurationMs,
	}
}

// LatencySample is the projection of a LogEntry the statistics need.
type LatencySample struct {
	StatusCode int
	DurationMs float64
}
