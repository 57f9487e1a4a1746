package ingestors

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

const (
	maxLineBytes    = 1024 * 1024
	initialLineSize = 64 * 1024
)

var gzipMagic = []byte{0x1f, 0x8b}

// openLineSource returns a scanner over r, transparently decompressing gzip input.
// The returned close func releases the decompressor, if any.
func openLineSource(r io.Reader) (*bufio.Scanner, func() error, error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("failed to read source: %w", err)
	}

	var lines io.Reader = buffered
	closeFn := func() error { return nil }
	if bytes.Equal(head, gzipMagic) {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip source: %w", err)
		}
		lines = gz
		closeFn = gz.Close
	}

	scanner := bufio.NewScanner(lines)
	scanner.Buffer(make([]byte, initialLineSize), maxLineBytes)
	return scanner, closeFn, nil
}
