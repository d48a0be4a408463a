package handlers

import (
	"context"
	"net/http"
	"time"
)

// StorePinger reports whether the backing store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the service health snapshot
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: ok
	Status string `json:"status"`

	// Store connectivity
	// default: connected
	Store string `json:"store"`

	// Seconds since the process started
	// default: 3600
	UptimeSeconds int64 `json:"uptimeSeconds"`

	// Current server time, RFC 3339
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting liveness. The service
// stays "ok" with a degraded store marker when the store is unreachable.
// @Summary Health check
// @Description Reports process uptime and store connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Health snapshot"
// @Router /health [get]
func NewHealthHandler(pinger StorePinger, startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := "connected"
		if err := pinger.Ping(r.Context()); err != nil {
			store = "disconnected"
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status:        "ok",
			Store:         store,
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
