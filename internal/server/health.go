package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse reports the state of the backend dependencies.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func handleHealth(logger *slog.Logger, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{
			Status: "ok",
			Checks: map[string]string{
				"sqlite":  "ok",
				"catalog": "ok",
			},
		}
		status := http.StatusOK

		if err := deps.DB.PingContext(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			resp.Checks["sqlite"] = "error"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}

		// An empty catalog is degraded but servable: the load may have
		// failed at startup and a reload can fix it.
		if deps.Catalog.Len() == 0 {
			resp.Checks["catalog"] = "empty"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}

		writeJSON(w, status, resp)
	}
}
