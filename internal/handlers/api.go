package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
)

// APIHandler serves the system endpoints: health, version, API 404
type APIHandler struct {
	storage interfaces.StorageManager
	started time.Time
}

func NewAPIHandler(storage interfaces.StorageManager) *APIHandler {
	return &APIHandler{
		storage: storage,
		started: time.Now().UTC(),
	}
}

// HealthHandler reports service liveness and store reachability
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	storeStatus := "ok"
	httpStatus := http.StatusOK
	if _, err := h.storage.RecommendationStorage().Count(r.Context()); err != nil {
		storeStatus = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	}

	WriteJSON(w, httpStatus, map[string]interface{}{
		"status":  storeStatus,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"version": common.GetVersion(),
	})
}

// VersionHandler reports build information
func (h *APIHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}

// NotFoundHandler is the catch-all for unmatched API paths
func (h *APIHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "Not found")
}
