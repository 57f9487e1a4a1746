package http

import (
	"context"
	"net/http"
	"time"

	"log-stats/internal/shared/loggers"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

type healthHandler struct {
	database Pinger
}

func NewHealthHandler(database Pinger) AppHttpHandler {
	return &healthHandler{database: database}
}

// Handle processes GET /health requests: 200 when the database answers, 503 otherwise.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.database.PingContext(ctx); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}
	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
