package filestorages

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 keeps objects in memory and honours IfNoneMatch like S3 conditional writes.
type fakeS3 struct {
	objects map[string][]byte
	inputs  []*s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, in)
	key := aws.ToString(in.Key)
	if aws.ToString(in.IfNoneMatch) == "*" {
		if _, ok := f.objects[key]; ok {
			return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
		}
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func TestS3Put_PrefixesKeyAndSetsLength(t *testing.T) {
	t.Parallel()

	client := newFakeS3()
	storage := newS3FileStorage(client, "log-stats-bucket", "prod")

	result, err := storage.Put(context.Background(), "uploads/job.log", strings.NewReader("line"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "uploads/job.log", result.FileKey)

	require.Len(t, client.inputs, 1)
	assert.Equal(t, "log-stats-bucket", aws.ToString(client.inputs[0].Bucket))
	assert.Equal(t, "prod/uploads/job.log", aws.ToString(client.inputs[0].Key))
	assert.Equal(t, int64(4), aws.ToInt64(client.inputs[0].ContentLength))
	assert.Nil(t, client.inputs[0].IfNoneMatch)
}

func TestS3Put_NoOverwriteMapsPreconditionFailed(t *testing.T) {
	t.Parallel()

	storage := newS3FileStorage(newFakeS3(), "bucket", "")
	ctx := context.Background()

	_, err := storage.Put(ctx, "uploads/job.log", strings.NewReader("first"), PutOptions{})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "uploads/job.log", strings.NewReader("second"), PutOptions{})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)
}

func TestS3Get_RoundTripAndNotFound(t *testing.T) {
	t.Parallel()

	storage := newS3FileStorage(newFakeS3(), "bucket", "")
	ctx := context.Background()

	_, err := storage.Get(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = storage.Put(ctx, "reports/a.json", strings.NewReader(`{"a":1}`), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	rc, err := storage.Get(ctx, "reports/a.json")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(content))
}

func TestS3_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newS3FileStorage(newFakeS3(), "bucket", "")

	_, err := storage.Put(context.Background(), "../escape", strings.NewReader("x"), PutOptions{})
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = storage.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
