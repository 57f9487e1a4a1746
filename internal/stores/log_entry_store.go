package stores

import (
	"context"
	"fmt"
	"time"

	"log-stats/internal/models"

	"gorm.io/gorm"
)

// LogEntryStore is the relational boundary of the pipeline: transactional multi-row
// insert on the write side, indexed lookup by customer and timestamp on the read side.
//
//go:generate mockgen -source=log_entry_store.go -destination=./mocks/log_entry_store_mock.go -package=mocks
type LogEntryStore interface {
	// InsertBatch persists all records in one transaction. On error nothing is persisted.
	InsertBatch(ctx context.Context, records []*models.LogRecord) error
	// ListLatencySamples returns the samples of customerID with timestamp >= since.
	ListLatencySamples(ctx context.Context, customerID string, since time.Time) ([]models.LatencySample, error)
}

type logEntryStore struct {
	db        *gorm.DB
	chunkSize int
}

// NewLogEntryStore builds a store over db. chunkSize bounds the rows of a single
// INSERT statement; a batch larger than that spans several statements of the same
// transaction.
func NewLogEntryStore(db *gorm.DB, chunkSize int) LogEntryStore {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &logEntryStore{db: db, chunkSize: chunkSize}
}

func (s *logEntryStore) InsertBatch(ctx context.Context, records []*models.LogRecord) error {
	if len(records) == 0 {
		return nil
	}

	entries := make([]*models.LogEntry, len(records))
	for i, record := range records {
		entries[i] = models.NewLogEntry(record)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(entries); start += s.chunkSize {
			end := min(start+s.chunkSize, len(entries))
			chunk := entries[start:end]
			if err := tx.Create(&chunk).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert %d log entries: %w", len(entries), err)
	}
	return nil
}

func (s *logEntryStore) ListLatencySamples(ctx context.Context, customerID string, since time.Time) ([]models.LatencySample, error) {
	var samples []models.LatencySample
	err := s.db.WithContext(ctx).
		Model(&models.LogEntry{}).
		Select("status_code", "duration_ms").
		Where("customer_id = ? AND timestamp >= ?", customerID, since.UTC()).
		Order("id").
		Find(&samples).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list latency samples: %w", err)
	}
	return samples, nil
}
