package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// HealthStatus represents the overall health status.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents an individual health check.
type HealthCheck struct {
	Status   HealthStatus `json:"status"`
	Message  string       `json:"message,omitempty"`
	Duration string       `json:"duration,omitempty"`
}

// HealthCheckResponse represents a comprehensive health check response.
type HealthCheckResponse struct {
	Status        HealthStatus           `json:"status"`
	Timestamp     string                 `json:"timestamp"`
	EngineVersion string                 `json:"engine_version"`
	Uptime        string                 `json:"uptime"`
	Checks        map[string]HealthCheck `json:"checks"`
	System        SystemInfo             `json:"system"`
	RequestID     string                 `json:"request_id,omitempty"`
}

// SystemInfo contains system information.
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAlloc   uint64 `json:"memory_alloc_bytes"`
	MemorySys     uint64 `json:"memory_sys_bytes"`
	GCCycles      uint32 `json:"gc_cycles"`
}

func systemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAlloc:   mem.Alloc,
		MemorySys:     mem.Sys,
		GCCycles:      mem.NumGC,
	}
}

// checkDatabase probes the results store with a cheap read.
func (s *Server) checkDatabase() HealthCheck {
	start := time.Now()
	_, err := s.db.Leaderboard(leaderboardProbe)
	if err != nil {
		return HealthCheck{
			Status:   HealthStatusUnhealthy,
			Message:  err.Error(),
			Duration: time.Since(start).String(),
		}
	}
	return HealthCheck{
		Status:   HealthStatusHealthy,
		Duration: time.Since(start).String(),
	}
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]HealthCheck{
		"database": s.checkDatabase(),
	}

	status := HealthStatusHealthy
	httpStatus := http.StatusOK
	for _, c := range checks {
		if c.Status == HealthStatusUnhealthy {
			status = HealthStatusUnhealthy
			httpStatus = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, httpStatus, HealthCheckResponse{
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		EngineVersion: EngineVersion,
		Uptime:        time.Since(s.startTime).String(),
		Checks:        checks,
		System:        systemInfo(),
		RequestID:     middleware.GetReqID(r.Context()),
	})
}

// handleReadiness reports whether the server can take traffic.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if c := s.checkDatabase(); c.Status == HealthStatusUnhealthy {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "reason": c.Message})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleLiveness reports that the process is alive at all.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
