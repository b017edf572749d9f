package handler

import (
	"net/http"

	"medical-report-analyzer/internal/config"
	"medical-report-analyzer/internal/domain"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	model domain.ModelClient
	cache domain.AnalysisCache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(model domain.ModelClient, cache domain.AnalysisCache) *HealthHandler {
	return &HealthHandler{
		model: model,
		cache: cache,
	}
}

// ServiceInfo handles GET /
func (h *HealthHandler) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.ServiceInfo{
		Status:   "healthy",
		Service:  config.ServiceName,
		Version:  config.ServiceVersion,
		Features: []string{"Enhanced Medical Knowledge", "Caching", "Compression"},
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.HealthStatus{
		Status:       "ok",
		APIAvailable: h.model != nil && h.model.Available(),
		CacheEnabled: h.cache != nil && h.cache.Enabled(),
		Version:      config.ServiceVersion,
	})
}
