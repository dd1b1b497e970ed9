package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db             dbPinger
	mailConfigured bool
	version        string
}

// NewHealthHandler creates a HealthHandler. mailConfigured only shows up in
// the /health report; outbound mail never makes the service unhealthy.
func NewHealthHandler(db dbPinger, mailConfigured bool, version string) *HealthHandler {
	return &HealthHandler{db: db, mailConfigured: mailConfigured, version: version}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db, _ := h.pingDB(r.Context())

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: time.Now().UTC()})
}

// Health reports every component with the database latency and the build
// version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, latency := h.pingDB(r.Context())
	if db.Status == "ok" {
		db.Latency = latency.String()
	}

	mail := CompStatus{Status: "disabled"}
	if h.mailConfigured {
		mail.Status = "configured"
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]CompStatus{
			"database": db,
			"mail":     mail,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) (CompStatus, time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}, time.Since(start)
	}
	return CompStatus{Status: "ok"}, time.Since(start)
}
