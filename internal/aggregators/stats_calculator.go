package aggregators

import (
	"errors"
	"sort"

	"log-stats/internal/models"

	"gonum.org/v1/gonum/stat"
)

const (
	// statusFailureThreshold is the lowest status code counted as a failed request.
	statusFailureThreshold = 400

	medianQuantile = 0.5
	p99Quantile    = 0.99
)

// ErrNoData is returned when there is nothing to aggregate.
var ErrNoData = errors.New("no data")

// StatsCalculator reduces latency samples to a StatsResult.
//
//go:generate mockgen -source=stats_calculator.go -destination=./mocks/stats_calculator_mock.go -package=mocks
type StatsCalculator interface {
	// Calculate returns ErrNoData for an empty population, never a zero-valued result.
	Calculate(samples []models.LatencySample) (*models.StatsResult, error)
}

type statsCalculator struct{}

func NewStatsCalculator() StatsCalculator {
	return &statsCalculator{}
}

func (c *statsCalculator) Calculate(samples []models.LatencySample) (*models.StatsResult, error) {
	if len(samples) == 0 {
		return nil, ErrNoData
	}

	result := &models.StatsResult{TotalRequests: int64(len(samples))}
	durations := make([]float64, len(samples))
	for i, sample := range samples {
		if sample.StatusCode < statusFailureThreshold {
			result.SuccessfulRequests++
		} else {
			result.FailedRequests++
		}
		durations[i] = sample.DurationMs
	}

	// sorted copy so ties and storage order cannot change the percentiles
	sort.Float64s(durations)

	avg := stat.Mean(durations, nil)
	median := percentile(durations, medianQuantile)
	p99 := percentile(durations, p99Quantile)
	result.AvgLatencyMs = &avg
	result.MedianLatencyMs = &median
	result.P99LatencyMs = &p99

	return result, nil
}
