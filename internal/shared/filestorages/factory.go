package filestorages

import (
	"context"
	"fmt"

	"log-stats/internal/shared/configs"
)

// New builds the FileStorage backend selected in the configuration.
func New(ctx context.Context, cfg configs.FileStorageConfig) (FileStorage, error) {
	switch cfg.Backend {
	case "local", "":
		return NewLocalFileStorage(cfg.RootDir)
	case "s3":
		return NewS3FileStorage(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix)
	default:
		return nil, fmt.Errorf("unsupported file storage backend %q", cfg.Backend)
	}
}
