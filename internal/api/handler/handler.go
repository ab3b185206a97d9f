// Package handler provides HTTP handlers for the admin API. Alerts are read
// and written through the shared pool's prepared statements — no service
// layer.
package handler

import (
	"net/http"
	"time"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/api/respond"
	"github.com/mouseagents/room-finder/internal/config"
	"github.com/mouseagents/room-finder/internal/db"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	pool  *db.Pool
	store *alert.Store
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(pool *db.Pool, store *alert.Store, cfg *config.Config) *Handler {
	return &Handler{
		pool:  pool,
		store: store,
		cfg:   cfg,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Room Finder API",
		"version": "1.0.0",
		"status":  "running",
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
