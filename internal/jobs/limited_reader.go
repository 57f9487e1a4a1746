package jobs

import (
	"errors"
	"io"
)

var errUploadTooLarge = errors.New("upload exceeds size limit")

// limitedReader fails with errUploadTooLarge once more than limit bytes were read,
// unlike io.LimitReader which silently truncates.
type limitedReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.read > l.limit {
		return 0, errUploadTooLarge
	}
	if remaining := l.limit + 1 - l.read; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		return n, errUploadTooLarge
	}
	return n, err
}
