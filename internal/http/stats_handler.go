package http

import (
	"net/http"

	"log-stats/internal/aggregators"

	"github.com/go-chi/chi/v5"
)

type statsHandler struct {
	statsQueryService aggregators.StatsQueryService
}

func NewStatsHandler(statsQueryService aggregators.StatsQueryService) AppHttpHandler {
	return &statsHandler{
		statsQueryService: statsQueryService,
	}
}

// Handle processes GET /customers/{customerID}/stats?from_date=YYYY-MM-DD requests.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	customerID := chi.URLParam(r, paramCustomerID)
	fromDate := r.URL.Query().Get(queryFromDate)

	stats, err := h.statsQueryService.GetCustomerStats(r.Context(), customerID, fromDate)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, stats)
}
