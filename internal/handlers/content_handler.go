package handlers

import (
	"net/http"

	"github.com/ternarybob/consilium/internal/services/content"
)

// ContentHandler exposes the content maintenance jobs as HTTP triggers
type ContentHandler struct {
	service *content.Service
}

func NewContentHandler(service *content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// SeedHandler handles POST /api/content/seed
func (h *ContentHandler) SeedHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	result, err := h.service.Seed(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Seed failed")
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// UpdateHandler handles POST /api/content/update
func (h *ContentHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	updated, err := h.service.MarketUpdate(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Market update failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// RebalanceHandler handles POST /api/content/rebalance
func (h *ContentHandler) RebalanceHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	flipped, err := h.service.Rebalance(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Rebalance failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"flipped": flipped})
}

// RefreshNewsHandler handles POST /api/content/refresh-news
func (h *ContentHandler) RefreshNewsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	refreshed, err := h.service.RefreshNews(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "News refresh failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int{"refreshed": refreshed})
}
