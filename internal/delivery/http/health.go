package http

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the liveness payload served at GET /api/health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Service   string  `json:"service"`
	Version   string  `json:"version"`
}

// Health returns a liveness handler reporting process status, uptime in
// seconds, service name, and version. It always answers 200: serving the
// request is the liveness check, there is no downstream dependency to probe.
func Health(service, version string) http.HandlerFunc {
	start := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(start).Seconds(),
			Service:   service,
			Version:   version,
		})
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
