package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"log-stats/internal/shared/filestorages"
)

var (
	ErrUploadAlreadyExists = errors.New("upload already exists")
	ErrUploadNotFound      = errors.New("upload not found")
)

// UploadStore keeps the raw body of an ingestion job until a worker picks it up.
// Put is create-if-not-exists so a job id can never be bound to two bodies.
//
//go:generate mockgen -source=upload_store.go -destination=./mocks/upload_store_mock.go -package=mocks
type UploadStore interface {
	Put(ctx context.Context, jobID string, r io.Reader) error
	Open(ctx context.Context, jobID string) (io.ReadCloser, error)
}

type uploadStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewUploadStore(fileStorage filestorages.FileStorage) UploadStore {
	return &uploadStore{fileStorage: fileStorage, dir: "uploads"}
}

func (s *uploadStore) Put(ctx context.Context, jobID string, r io.Reader) error {
	_, err := s.fileStorage.Put(ctx, s.getKey(jobID), r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrUploadAlreadyExists
		}
		return fmt.Errorf("failed to put upload: %w", err)
	}
	return nil
}

func (s *uploadStore) Open(ctx context.Context, jobID string) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(jobID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return readCloser, nil
}

func (s *uploadStore) getKey(jobID string) string {
	return fmt.Sprintf("%s/%s.log", s.dir, jobID)
}
