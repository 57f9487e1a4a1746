package http

import (
	"net/http"

	"log-stats/internal/aggregators"
	"log-stats/internal/jobs"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(statsQueryService aggregators.StatsQueryService, jobService jobs.IngestionJobService, database Pinger, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	statsHandler := NewStatsHandler(statsQueryService)
	submitIngestionJobHandler := NewSubmitIngestionJobHandler(jobService)
	getIngestionJobHandler := NewGetIngestionJobHandler(jobService)
	healthHandler := NewHealthHandler(database)

	router.Get("/customers/{"+paramCustomerID+"}/stats", errorHandlingAdapter(statsHandler))
	router.Post("/ingestion-jobs", errorHandlingAdapter(submitIngestionJobHandler))
	router.Get("/ingestion-jobs/{"+paramJobID+"}", errorHandlingAdapter(getIngestionJobHandler))
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
