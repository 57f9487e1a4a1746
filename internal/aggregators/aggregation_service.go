package aggregators

import (
	"context"
	"errors"
	"time"

	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/stores"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate computes the statistics of customerID's entries with timestamp >= since.
	// An empty selection yields an AGG_1001 not-found error.
	Aggregate(ctx context.Context, customerID string, since time.Time) (*models.StatsResult, error)
}

type aggregationService struct {
	logEntryStore   stores.LogEntryStore
	statsCalculator StatsCalculator
}

func NewAggregationService(logEntryStore stores.LogEntryStore, statsCalculator StatsCalculator) AggregationService {
	return &aggregationService{logEntryStore: logEntryStore, statsCalculator: statsCalculator}
}

func (s *aggregationService) Aggregate(ctx context.Context, customerID string, since time.Time) (*models.StatsResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldCustomerID, customerID).
		Msgf("started aggregating entries since %s", since.UTC().Format(time.RFC3339))

	samples, err := s.logEntryStore.ListLatencySamples(ctx, customerID, since)
	if err != nil {
		return nil, errInternalLogEntryStoreFailed(err)
	}
	metricSamplesScanned.Observe(float64(len(samples)))

	result, err := s.statsCalculator.Calculate(samples)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, errNoData(err)
		}
		return nil, errInternalStatsFailed(err)
	}
	return result, nil
}
