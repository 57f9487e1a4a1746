package ingestors

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, r io.Reader) ([]string, error) {
	t.Helper()
	scanner, closeFn, err := openLineSource(r)
	if err != nil {
		return nil, err
	}
	defer func() { require.NoError(t, closeFn()) }()

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestOpenLineSource(t *testing.T) {
	t.Parallel()

	content := "line one\nline two\n\nline four"

	tests := []struct {
		name  string
		input []byte
		want  []string
	}{
		{name: "plain text", input: []byte(content), want: []string{"line one", "line two", "", "line four"}},
		{name: "gzip", input: gzipped(t, content), want: []string{"line one", "line two", "", "line four"}},
		{name: "empty", input: nil, want: nil},
		{name: "single byte", input: []byte{0x1f}, want: []string{"\x1f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := scanAll(t, bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestOpenLineSource_LineTooLong(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", maxLineBytes+1)
	_, err := scanAll(t, strings.NewReader(long+"\n"))
	require.Error(t, err)
}

func TestOpenLineSource_CorruptGzip(t *testing.T) {
	t.Parallel()

	data := gzipped(t, "2024-05-01 12:34:56 cust_1 /a 200 0.1\n")
	corrupt := append([]byte{}, data[:len(data)/2]...)

	_, err := scanAll(t, bytes.NewReader(corrupt))
	require.Error(t, err)
}

func TestOpenLineSource_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("connection reset")
	_, err := scanAll(t, io.MultiReader(strings.NewReader("x"), &erroringReader{err: readErr}))
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}

type erroringReader struct {
	err error
}

func (r *erroringReader) Read([]byte) (int, error) {
	return 0, r.err
}
