package ingestors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"log-stats/internal/models"
)

const (
	// TimestampLayout is the layout of the date and time tokens joined by one space.
	TimestampLayout = "2006-01-02 15:04:05"

	lineFieldCount = 6
)

// LineParser turns one access-log line into a LogRecord. A line is six whitespace
// separated tokens: date time customerId requestPath statusCode durationMs.
// Any other shape yields a *ParseError.
//
//go:generate mockgen -source=line_parser.go -destination=./mocks/line_parser_mock.go -package=mocks
type LineParser interface {
	Parse(line string) (*models.LogRecord, error)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (*models.LogRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != lineFieldCount {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", lineFieldCount, len(fields))}
	}

	// time.Parse tolerates fractional seconds the layout does not mention
	timestampText := fields[0] + " " + fields[1]
	timestamp, err := time.ParseInLocation(TimestampLayout, timestampText, time.UTC)
	if err != nil || len(timestampText) != len(TimestampLayout) {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("invalid timestamp %q", timestampText)}
	}

	statusCode, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("invalid status code %q", fields[4])}
	}

	durationMs, err := strconv.ParseFloat(fields[5], 64)
	if err != nil || math.IsNaN(durationMs) || math.IsInf(durationMs, 0) {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("invalid duration %q", fields[5])}
	}
	if durationMs < 0 {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("negative duration %q", fields[5])}
	}

	return &models.LogRecord{
		Timestamp:   timestamp,
		CustomerID:  fields[2],
		RequestPath: fields[3],
		StatusCode:  statusCode,
		DurationMs:  durationMs,
	}, nil
}
