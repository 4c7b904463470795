package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ternarybob/consilium/internal/models"
	"github.com/ternarybob/consilium/internal/services/status"
)

// StatusHandler serves the client status check endpoints
type StatusHandler struct {
	service *status.Service
}

func NewStatusHandler(service *status.Service) *StatusHandler {
	return &StatusHandler{service: service}
}

// Handle routes GET (list) and POST (create) on /api/status
func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *StatusHandler) create(w http.ResponseWriter, r *http.Request) {
	var input models.StatusCheckCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	check, err := h.service.Create(r.Context(), input)
	if err != nil {
		if strings.Contains(err.Error(), "invalid status check") {
			WriteError(w, http.StatusBadRequest, "client_name is required")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to save status check")
		return
	}
	WriteJSON(w, http.StatusOK, check)
}

func (h *StatusHandler) list(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.List(r.Context(), QueryLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to list status checks")
		return
	}
	WriteJSON(w, http.StatusOK, checks)
}
