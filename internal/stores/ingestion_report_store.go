package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"log-stats/internal/models"
	"log-stats/internal/shared/filestorages"

	"github.com/goccy/go-json"
)

var (
	ErrIngestionReportNotFound = errors.New("ingestion report not found")
)

// IngestionReportStore persists the report of each ingestion job, keyed by job id.
// A job's report is overwritten as it moves from pending to a final status.
//
//go:generate mockgen -source=ingestion_report_store.go -destination=./mocks/ingestion_report_store_mock.go -package=mocks
type IngestionReportStore interface {
	Put(ctx context.Context, report *models.IngestionReport) error
	Get(ctx context.Context, jobID string) (*models.IngestionReport, error)
}

type ingestionReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewIngestionReportStore(fileStorage filestorages.FileStorage) IngestionReportStore {
	return &ingestionReportStore{fileStorage: fileStorage, dir: "ingestion-reports"}
}

func (s *ingestionReportStore) Put(ctx context.Context, report *models.IngestionReport) error {
	if report.JobID == "" {
		return errors.New("ingestion report has no job id")
	}
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal ingestion report: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(report.JobID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put ingestion report: %w", err)
	}
	return nil
}

func (s *ingestionReportStore) Get(ctx context.Context, jobID string) (*models.IngestionReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(jobID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrIngestionReportNotFound
		}
		return nil, fmt.Errorf("failed to get ingestion report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingestion report: %w", err)
	}
	var report models.IngestionReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingestion report: %w", err)
	}
	return &report, nil
}

func (s *ingestionReportStore) getKey(jobID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, jobID)
}
