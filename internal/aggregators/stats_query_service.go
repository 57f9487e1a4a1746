package aggregators

import (
	"context"
	"fmt"
	"time"

	"log-stats/internal/models"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/shared/validators"
)

// DateLayout is the only accepted form of the from date.
const DateLayout = "2006-01-02"

// StatsQueryService validates a stats request, runs the aggregation and renders the result.
//
//go:generate mockgen -source=stats_query_service.go -destination=./mocks/stats_query_service_mock.go -package=mocks
type StatsQueryService interface {
	GetCustomerStats(ctx context.Context, customerID string, fromDateText string) (*models.CustomerStats, error)
}

type statsQueryService struct {
	aggregationService AggregationService
	validate           *validators.Validate
}

func NewStatsQueryService(aggregationService AggregationService) StatsQueryService {
	return &statsQueryService{
		aggregationService: aggregationService,
		validate:           validators.Shared(),
	}
}

func (s *statsQueryService) GetCustomerStats(ctx context.Context, customerID string, fromDateText string) (*models.CustomerStats, error) {
	start := time.Now()
	stats, err := s.getCustomerStats(ctx, customerID, fromDateText)

	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricStatsQueriesTotal.WithLabelValues(code).Inc()
	metricStatsQueryLatency.WithLabelValues(code).Observe(time.Since(start).Seconds())

	return stats, err
}

func (s *statsQueryService) getCustomerStats(ctx context.Context, customerID string, fromDateText string) (*models.CustomerStats, error) {
	if err := s.validate.Var(customerID, "required,max=255"); err != nil {
		return nil, errValidationFailed("customerID is required and must be at most 255 characters", err)
	}

	fromDate, err := time.ParseInLocation(DateLayout, fromDateText, time.UTC)
	if err != nil {
		return nil, errValidationFailed(msgInvalidDateFormat, err)
	}

	result, err := s.aggregationService.Aggregate(ctx, customerID, fromDate)
	if err != nil {
		return nil, err
	}
	return FormatCustomerStats(result), nil
}

// FormatCustomerStats renders a StatsResult: uptime as a two-decimal percentage and
// latencies as two-decimal milliseconds, nil when undefined.
func FormatCustomerStats(result *models.StatsResult) *models.CustomerStats {
	uptime := 0.0
	if result.TotalRequests > 0 {
		uptime = float64(result.SuccessfulRequests) / float64(result.TotalRequests) * 100
	}
	return &models.CustomerStats{
		TotalRequests:      result.TotalRequests,
		SuccessfulRequests: result.SuccessfulRequests,
		FailedRequests:     result.FailedRequests,
		Uptime:             fmt.Sprintf("%.2f%%", uptime),
		AvgLatency:         formatLatency(result.AvgLatencyMs),
		MedianLatency:      formatLatency(result.MedianLatencyMs),
		P99Latency:         formatLatency(result.P99LatencyMs),
	}
}

func formatLatency(ms *float64) *string {
	if ms == nil {
		return nil
	}
	s := fmt.Sprintf("%.2fms", *ms)
	return &s
}
