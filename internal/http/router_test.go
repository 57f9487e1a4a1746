package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	aggregatormocks "log-stats/internal/aggregators/mocks"
	"log-stats/internal/jobs"
	jobmocks "log-stats/internal/jobs/mocks"
	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/svcerrors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

type routerFixture struct {
	router       http.Handler
	statsQuery   *aggregatormocks.MockStatsQueryService
	jobService   *jobmocks.MockIngestionJobService
	serveRequest func(req *http.Request) *httptest.ResponseRecorder
}

func newRouterFixture(t *testing.T, pinger Pinger) *routerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &routerFixture{
		statsQuery: aggregatormocks.NewMockStatsQueryService(ctrl),
		jobService: jobmocks.NewMockIngestionJobService(ctrl),
	}
	f.router = NewRouter(f.statsQuery, f.jobService, pinger, loggers.Nop())
	f.serveRequest = func(req *http.Request) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)
		return rr
	}
	return f
}

func ptr(s string) *string {
	return &s
}

func TestRouter_GetCustomerStats(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, fakePinger{})
	f.statsQuery.EXPECT().
		GetCustomerStats(gomock.Any(), "cust-42", "2024-05-01").
		Return(&models.CustomerStats{
			TotalRequests:      4,
			SuccessfulRequests: 3,
			FailedRequests:     1,
			Uptime:             "75.00%",
			AvgLatency:         ptr("0.25ms"),
			MedianLatency:      ptr("0.20ms"),
			P99Latency:         nil,
		}, nil)

	rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/customers/cust-42/stats?from_date=2024-05-01", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))
	assert.JSONEq(t, `{
		"total_requests": 4,
		"successful_requests": 3,
		"failed_requests": 1,
		"uptime": "75.00%",
		"avg_latency": "0.25ms",
		"median_latency": "0.20ms",
		"p99_latency": null
	}`, rr.Body.String())
}

func TestRouter_GetCustomerStats_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		svcErr         error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid date",
			svcErr:         svcerrors.NewInvalidArgumentError("AGG_1000", "Invalid date format. Use YYYY-MM-DD", nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "AGG_1000",
		},
		{
			name:           "no data",
			svcErr:         svcerrors.NewNotFoundError("AGG_1001", "No data found for the given customer and date range", nil),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "AGG_1001",
		},
		{
			name:           "store failure",
			svcErr:         svcerrors.NewInternalError("AGG_9000", errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "AGG_9000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, fakePinger{})
			f.statsQuery.EXPECT().
				GetCustomerStats(gomock.Any(), "cust-1", "05/01/2024").
				Return(nil, tt.svcErr)

			rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/customers/cust-1/stats?from_date=05/01/2024", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, rr.Header().Get(headerRequestID), errorResponse.RequestID)
		})
	}
}

func TestRouter_SubmitIngestionJob(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, fakePinger{})
	body := "2024-05-01 12:00:00 cust-1 /api/items 200 0.25\n"
	f.jobService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r io.Reader) (*jobs.SubmitResult, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
			return &jobs.SubmitResult{JobID: "01JB7Q9RZC1D4V8W2H6J0K3M5N"}, nil
		})

	rr := f.serveRequest(httptest.NewRequest(http.MethodPost, "/ingestion-jobs", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "/ingestion-jobs/01JB7Q9RZC1D4V8W2H6J0K3M5N", rr.Header().Get("Location"))
	assert.JSONEq(t, `{"jobId":"01JB7Q9RZC1D4V8W2H6J0K3M5N"}`, rr.Body.String())
}

func TestRouter_SubmitIngestionJob_EmptyBody(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, fakePinger{})
	f.jobService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewInvalidArgumentError("JOB_1000", "request body is empty", nil))

	rr := f.serveRequest(httptest.NewRequest(http.MethodPost, "/ingestion-jobs", http.NoBody))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "JOB_1000", errorResponse.ErrorCode)
}

func TestRouter_GetIngestionJob(t *testing.T) {
	t.Parallel()

	jobID := "01JB7Q9RZC1D4V8W2H6J0K3M5N"
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := models.NewIngestionReport("01JB7Q9S3ZQ5X0W8K4M2N6P1RT", jobID, startedAt)
	report.JobID = jobID
	report.Accepted = 2
	report.Persisted = 2
	report.Batches = 1
	report.Finish(models.IngestionCompleted, startedAt.Add(time.Second))

	f := newRouterFixture(t, fakePinger{})
	f.jobService.EXPECT().GetReport(gomock.Any(), jobID).Return(report, nil)

	rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/ingestion-jobs/"+jobID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.IngestionReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, jobID, got.JobID)
	assert.Equal(t, models.IngestionCompleted, got.Status)
	assert.EqualValues(t, 2, got.Persisted)
}

func TestRouter_GetIngestionJob_NotFound(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, fakePinger{})
	f.jobService.EXPECT().
		GetReport(gomock.Any(), "01JB7Q9RZC1D4V8W2H6J0K3M5N").
		Return(nil, svcerrors.NewNotFoundError("JOB_1001", "ingestion job not found", nil))

	rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/ingestion-jobs/01JB7Q9RZC1D4V8W2H6J0K3M5N", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		pinger         Pinger
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database reachable",
			pinger:         fakePinger{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "database down",
			pinger:         fakePinger{err: errors.New("dial tcp: connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, tt.pinger)
			rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, fakePinger{})
	f.serveRequest(httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := f.serveRequest(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "log_stats_http_requests_total")
}
