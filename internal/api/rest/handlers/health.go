package handlers

import (
	"net/http"
	"time"

	"github.com/exemplar/itemsvc/internal/api/rest/dto"
	"github.com/exemplar/itemsvc/internal/health"
)

const serviceName = "itemsvc"

type HealthHandler struct {
	checker *health.Checker
	version string
}

func NewHealthHandler(checker *health.Checker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Version:   h.version,
	})
}

func (h *HealthHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ReadinessResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Checks: map[string]dto.CheckResult{
			"application": {Status: health.StatusHealthy, Details: "running"},
		},
	})
}

// HandleReadiness runs every dependency check; any failure turns the
// response into a 503.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	report := h.checker.Run(r.Context())

	status := "ready"
	statusCode := http.StatusOK
	if !report.Ready {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	checks := make(map[string]dto.CheckResult, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = dto.CheckResult(result)
	}

	writeJSON(w, statusCode, dto.ReadinessResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}
