package handler

import (
	"net/http"
	"runtime"
	"time"

	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/pkg/response"
)

// Handler contains the service-level HTTP handlers and their dependencies.
type Handler struct {
	repo      repository.ScorecardRepository
	storeType string
	version   string
	startTime time.Time
}

// New creates a new handler.
func New(repo repository.ScorecardRepository, storeType, version string) *Handler {
	return &Handler{
		repo:      repo,
		storeType: storeType,
		version:   version,
		startTime: time.Now(),
	}
}

// Root handles GET / with the API banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "Cricket Scorecard API running",
	})
}

// Test handles GET /test - store connectivity introspection.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := make(map[string]interface{})

	info["backend"] = "running"
	info["store_type"] = h.storeType
	info["server_time"] = time.Now().UTC().Format(time.RFC3339)
	info["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())

	if err := h.repo.Ping(ctx); err != nil {
		info["store"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		info["store"] = map[string]interface{}{
			"status": "connected",
		}
		if stats, err := h.repo.Stats(ctx); err == nil {
			for k, v := range stats {
				info["store"].(map[string]interface{})[k] = v
			}
		}
	}

	// Runtime info
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	info["runtime"] = map[string]interface{}{
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
	}

	response.OK(w, info)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	}
	response.OK(w, resp)
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Ready     bool      `json:"ready"`
	Timestamp time.Time `json:"timestamp"`
	Checks    []Check   `json:"checks"`
}

// Check represents an individual readiness check.
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Ready handles GET /api/v1/ready. The store must answer a ping before the
// service reports ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	storeStatus := "ok"
	if err := h.repo.Ping(r.Context()); err != nil {
		storeStatus = "error"
	}

	checks := []Check{
		{Name: "api", Status: "ok"},
		{Name: "store", Status: storeStatus},
	}

	allReady := true
	for _, check := range checks {
		if check.Status != "ok" {
			allReady = false
			break
		}
	}

	resp := ReadyResponse{
		Ready:     allReady,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allReady {
		statusCode = http.StatusServiceUnavailable
	}
	response.JSON(w, statusCode, resp)
}
