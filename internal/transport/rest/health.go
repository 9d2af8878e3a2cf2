package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the orchestrator's probes. Liveness never touches a
// dependency; readiness and the full report ping Postgres.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now()}
}

type healthReport struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Uptime  string                 `json:"uptime,omitempty"`
	Checks  map[string]checkResult `json:"checks,omitempty"`
}

type checkResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Live answers 200 as long as the process can serve HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthReport{Status: "ok"})
}

// Ready answers 200 when the database accepts connections, 503 otherwise.
// Load balancers use this to decide whether to route traffic here.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthReport{Status: "down"})
		return
	}
	writeJSON(w, http.StatusOK, healthReport{Status: "ok"})
}

// Health reports the full picture: version, uptime and per-dependency checks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	report := healthReport{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Checks:  map[string]checkResult{},
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		report.Status = "down"
		report.Checks["postgres"] = checkResult{Status: "down", Error: err.Error()}
	} else {
		report.Checks["postgres"] = checkResult{
			Status:    "ok",
			LatencyMS: time.Since(start).Milliseconds(),
		}
	}

	code := http.StatusOK
	if report.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}
