package http

import (
	"net/http"

	"log-stats/internal/jobs"

	"github.com/go-chi/chi/v5"
)

type submitIngestionJobHandler struct {
	jobService jobs.IngestionJobService
}

func NewSubmitIngestionJobHandler(jobService jobs.IngestionJobService) AppHttpHandler {
	return &submitIngestionJobHandler{jobService: jobService}
}

// Handle processes POST /ingestion-jobs requests. The body is the raw log, plain or gzip.
func (h *submitIngestionJobHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.jobService.Submit(r.Context(), r.Body)
	if err != nil {
		return err
	}
	w.Header().Set("Location", "/ingestion-jobs/"+result.JobID)
	return writeJSON(w, http.StatusAccepted, result)
}

type getIngestionJobHandler struct {
	jobService jobs.IngestionJobService
}

func NewGetIngestionJobHandler(jobService jobs.IngestionJobService) AppHttpHandler {
	return &getIngestionJobHandler{jobService: jobService}
}

// Handle processes GET /ingestion-jobs/{jobID} requests.
func (h *getIngestionJobHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.jobService.GetReport(r.Context(), chi.URLParam(r, paramJobID))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, report)
}
