package ingestors_test

import (
	"errors"
	"testing"
	"time"

	"log-stats/internal/ingestors"
	"log-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineParser_Parse_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected models.LogRecord
	}{
		{
			name: "canonical line",
			line: "2024-05-01 12:34:56 cust_1 /api/v1/resource1 200 0.123",
			expected: models.LogRecord{
				Timestamp:   time.Date(2024, 5, 1, 12, 34, 56, 0, time.UTC),
				CustomerID:  "cust_1",
				RequestPath: "/api/v1/resource1",
				StatusCode:  200,
				DurationMs:  0.123,
			},
		},
		{
			name: "extra whitespace and trailing carriage return",
			line: "  2024-12-31   23:59:59\tcust_2  /health 503 12\r",
			expected: models.LogRecord{
				Timestamp:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
				CustomerID:  "cust_2",
				RequestPath: "/health",
				StatusCode:  503,
				DurationMs:  12,
			},
		},
		{
			name: "unusual status code and zero duration",
			line: "2024-01-01 00:00:00 c /x 42 0",
			expected: models.LogRecord{
				Timestamp:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				CustomerID:  "c",
				RequestPath: "/x",
				StatusCode:  42,
				DurationMs:  0,
			},
		},
		{
			name: "scientific notation duration",
			line: "2024-01-01 00:00:00 c /x 200 1.5e2",
			expected: models.LogRecord{
				Timestamp:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				CustomerID:  "c",
				RequestPath: "/x",
				StatusCode:  200,
				DurationMs:  150,
			},
		},
	}

	parser := ingestors.NewLineParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parser.Parse(tt.line)
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, tt.expected, *record)
			assert.Equal(t, time.UTC, record.Timestamp.Location())
		})
	}
}

func TestLineParser_Parse_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{name: "empty line", line: "", reason: "expected 6 fields, got 0"},
		{name: "missing duration", line: "2024-05-01 12:34:56 cust_1 /api 200", reason: "expected 6 fields, got 5"},
		{name: "too many fields", line: "2024-05-01 12:34:56 cust_1 /api 200 0.1 extra", reason: "expected 6 fields, got 7"},
		{name: "malformed date", line: "2024/05/01 12:34:56 cust_1 /api 200 0.1", reason: `invalid timestamp "2024/05/01 12:34:56"`},
		{name: "impossible date", line: "2024-02-30 12:34:56 cust_1 /api 200 0.1", reason: `invalid timestamp "2024-02-30 12:34:56"`},
		{name: "unpadded month", line: "2024-5-01 12:34:56 cust_1 /api 200 0.1", reason: `invalid timestamp "2024-5-01 12:34:56"`},
		{name: "fractional seconds", line: "2024-05-01 12:34:56.5 cust_1 /api 200 0.1", reason: `invalid timestamp "2024-05-01 12:34:56.5"`},
		{name: "non numeric status", line: "2024-05-01 12:34:56 cust_1 /api OK 0.1", reason: `invalid status code "OK"`},
		{name: "float status", line: "2024-05-01 12:34:56 cust_1 /api 200.0 0.1", reason: `invalid status code "200.0"`},
		{name: "non numeric duration", line: "2024-05-01 12:34:56 cust_1 /api 200 fast", reason: `invalid duration "fast"`},
		{name: "NaN duration", line: "2024-05-01 12:34:56 cust_1 /api 200 NaN", reason: `invalid duration "NaN"`},
		{name: "infinite duration", line: "2024-05-01 12:34:56 cust_1 /api 200 +Inf", reason: `invalid duration "+Inf"`},
		{name: "negative duration", line: "2024-05-01 12:34:56 cust_1 /api 200 -0.5", reason: `negative duration "-0.5"`},
	}

	parser := ingestors.NewLineParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parser.Parse(tt.line)
			require.Error(t, err)
			assert.Nil(t, record)

			var parseErr *ingestors.ParseError
			require.True(t, errors.As(err, &parseErr), "expected *ParseError")
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, tt.reason, parseErr.Reason)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}
