package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the health check result
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports service status and database connectivity
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Health status"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  "connected",
		}

		if err := db.PingContext(r.Context()); err != nil {
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Error = err.Error()
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
