package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency the readiness probe must reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type namedCheck struct {
	name string
	p    Pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []namedCheck
	version string
}

// NewHealthHandler creates a HealthHandler that always checks the database.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		checks:  []namedCheck{{name: "database", p: db}},
		version: version,
	}
}

// WithCheck adds a named component to /ready and /health.
func (h *HealthHandler) WithCheck(name string, p Pinger) *HealthHandler {
	h.checks = append(h.checks, namedCheck{name: name, p: p})
	return h
}

// HealthResponse is the JSON response for /health and /ready.
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
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when every component answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())
	status, body := http.StatusOK, "ok"
	if !healthy {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{Status: body, Timestamp: time.Now()})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())
	status, body := http.StatusOK, "ok"
	if !healthy {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     body,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	healthy := true
	for _, c := range h.checks {
		start := time.Now()
		if err := c.p.Ping(ctx); err != nil {
			components[c.name] = CompStatus{Status: "down"}
			healthy = false
			continue
		}
		components[c.name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, healthy
}
