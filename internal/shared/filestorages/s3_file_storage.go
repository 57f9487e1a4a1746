package filestorages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const defaultS3Timeout = 30 * time.Second

// s3API is the subset of *s3.Client used by s3FileStorage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3FileStorage struct {
	client  s3API
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3FileStorage stores blobs as objects in bucket, below prefix.
// Credentials come from the default AWS chain.
func NewS3FileStorage(ctx context.Context, bucket, region, prefix string) (FileStorage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket cannot be empty", ErrInvalidRootDir)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newS3FileStorage(s3.NewFromConfig(awsCfg), bucket, prefix), nil
}

func newS3FileStorage(client s3API, bucket, prefix string) *s3FileStorage {
	return &s3FileStorage{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		timeout: defaultS3Timeout,
	}
}

func (s *s3FileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	// PutObject needs a seekable body for signing.
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if !opts.AllowOverwrite {
		// conditional write: fails with 412 when the object exists
		input.IfNoneMatch = aws.String("*")
	}

	putCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.PutObject(putCtx, input); err != nil {
		if isS3ErrorCode(err, "PreconditionFailed") {
			return nil, ErrFileAlreadyExists
		}
		return nil, fmt.Errorf("s3 put %q: %w", key, err)
	}
	return &PutResult{FileKey: key}, nil
}

func (s *s3FileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) || isS3ErrorCode(err, "NotFound") {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("s3 get %q: %w", key, err)
	}
	return out.Body, nil
}

func (s *s3FileStorage) objectKey(key string) string {
	if s.prefix == "" {
		return path.Clean(key)
	}
	return path.Join(s.prefix, key)
}

func isS3ErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == code
}
