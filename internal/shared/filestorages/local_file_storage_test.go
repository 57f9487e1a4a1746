package filestorages

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"file.log",
		"uploads/01HZX3Q9W8ZK4J2M5N6P7R8S9T.log",
		"ingestion-reports/nested/report.json",
		"file-with-dashes.txt",
		"file.with.dots.txt",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "2024-05-01 12:34:56 cust_1 /api/v1/resource1 200 0.123"

			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*localFileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestLocalPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "test.txt", strings.NewReader("initial data"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "test.txt", strings.NewReader("new data"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(storage.(*localFileStorage).dir, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "initial data", string(content))
}

func TestLocalPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "test.txt", strings.NewReader("initial data"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	result, err := storage.Put(ctx, "test.txt", strings.NewReader("new data"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "test.txt", result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*localFileStorage).dir, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new data", string(content))
}

func TestLocalPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../escape.txt",
		"uploads/../../escape.txt",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestLocalPut_ReaderErrorLeavesNoFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	readErr := errors.New("upload too large")
	_, err := storage.Put(ctx, "uploads/partial.log", io.MultiReader(strings.NewReader("some bytes"), &failingReader{err: readErr}), PutOptions{})
	assert.ErrorIs(t, err, readErr)

	_, err = storage.Get(ctx, "uploads/partial.log")
	assert.ErrorIs(t, err, ErrFileNotFound)

	entries, err := os.ReadDir(filepath.Join(storage.(*localFileStorage).dir, "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be cleaned up")
}

func TestLocalGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "ingestion-reports/01HZX3Q9W8ZK4J2M5N6P7R8S9T.json"
	data := `{"jobId":"01HZX3Q9W8ZK4J2M5N6P7R8S9T","accepted":3}`

	result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestLocalPut_LargeData(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	data := strings.Repeat("A", 5*1024*1024)

	_, err := storage.Put(ctx, "large-file.txt", strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, "large-file.txt")
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(content))
}

func TestLocalPut_CancelledContext(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Put(ctx, "file.txt", strings.NewReader("x"), PutOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewLocalFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
