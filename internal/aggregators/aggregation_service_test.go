package aggregators_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"log-stats/internal/aggregators"
	aggregatormocks "log-stats/internal/aggregators/mocks"
	"log-stats/internal/models"
	"log-stats/internal/shared/svcerrors"
	storemocks "log-stats/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAggregate_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockLogEntryStore(ctrl)
	service := aggregators.NewAggregationService(store, aggregators.NewStatsCalculator())

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	store.EXPECT().ListLatencySamples(gomock.Any(), "cust_1", since).Return([]models.LatencySample{
		{StatusCode: 200, DurationMs: 0.2},
		{StatusCode: 500, DurationMs: 0.3},
	}, nil)

	result, err := service.Aggregate(context.Background(), "cust_1", since)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalRequests)
	assert.Equal(t, int64(1), result.SuccessfulRequests)
	assert.Equal(t, int64(1), result.FailedRequests)
	assert.InDelta(t, 0.25, *result.AvgLatencyMs, 1e-9)
}

func TestAggregate_Errors(t *testing.T) {
	t.Parallel()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		listErr          error
		calcErr          error
		expectedCode     string
		expectedCategory string
	}{
		{
			name:             "store failure",
			listErr:          errors.New("connection refused"),
			expectedCode:     "AGG_9000",
			expectedCategory: "internal",
		},
		{
			name:             "no data",
			calcErr:          aggregators.ErrNoData,
			expectedCode:     "AGG_1001",
			expectedCategory: "not_found",
		},
		{
			name:             "calculator failure",
			calcErr:          assert.AnError,
			expectedCode:     "AGG_9001",
			expectedCategory: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := storemocks.NewMockLogEntryStore(ctrl)
			calculator := aggregatormocks.NewMockStatsCalculator(ctrl)
			service := aggregators.NewAggregationService(store, calculator)

			store.EXPECT().ListLatencySamples(gomock.Any(), "cust_1", since).Return(nil, tt.listErr)
			if tt.listErr == nil {
				calculator.EXPECT().Calculate(gomock.Any()).Return(nil, tt.calcErr)
			}

			result, err := service.Aggregate(context.Background(), "cust_1", since)

			require.Error(t, err)
			assert.Nil(t, result)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedCategory, svcErr.Category)
		})
	}
}

func TestAggregate_NoDataMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockLogEntryStore(ctrl)
	service := aggregators.NewAggregationService(store, aggregators.NewStatsCalculator())

	store.EXPECT().ListLatencySamples(gomock.Any(), "cust_9", gomock.Any()).Return([]models.LatencySample{}, nil)

	_, err := service.Aggregate(context.Background(), "cust_9", time.Now())

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
	assert.Equal(t, "No data found for the given customer and date range", svcErr.Message)
}
