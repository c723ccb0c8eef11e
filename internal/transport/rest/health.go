package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// dbPinger defines the minimal interface for dependency health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck names a dependency checked by /ready and /health.
// An optional dependency being down degrades /health without failing it.
type HealthCheck struct {
	Name     string
	Pinger   dbPinger
	Optional bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
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

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 if every required dependency answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.checkAll(r.Context())

	status := "ok"
	for _, c := range h.checks {
		if !c.Optional && components[c.Name].Status != "ok" {
			status = "down"
		}
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.checkAll(r.Context())

	overall := "ok"
	for _, c := range h.checks {
		if components[c.Name].Status == "ok" {
			continue
		}
		if !c.Optional {
			overall = "down"
			break
		}
		overall = "degraded"
	}

	code := http.StatusOK
	if overall == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkAll(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		out = make(map[string]CompStatus, len(h.checks))
		g   errgroup.Group
	)
	for _, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Pinger.Ping(ctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}
			mu.Lock()
			out[c.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
