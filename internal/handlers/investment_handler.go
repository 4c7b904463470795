package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/ternarybob/consilium/internal/services/advisor"
	"github.com/ternarybob/consilium/internal/services/investments"
	"golang.org/x/time/rate"
)

// InvestmentHandler serves the recommendation endpoints and the Q&A
// endpoint.
type InvestmentHandler struct {
	service  *investments.Service
	advisor  *advisor.Service
	validate *validator.Validate
	limiter  *rate.Limiter
}

func NewInvestmentHandler(service *investments.Service, advisorService *advisor.Service, askLimit float64, askBurst int) *InvestmentHandler {
	if askLimit <= 0 {
		askLimit = 10
	}
	if askBurst <= 0 {
		askBurst = 20
	}
	return &InvestmentHandler{
		service:  service,
		advisor:  advisorService,
		validate: validator.New(),
		limiter:  rate.NewLimiter(rate.Limit(askLimit), askBurst),
	}
}

// ListHandler handles GET /api/investments?asset_type=&limit=
func (h *InvestmentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	assetType := r.URL.Query().Get("asset_type")
	recommendations, err := h.service.List(r.Context(), assetType, QueryLimit(r))
	if err != nil {
		if strings.Contains(err.Error(), "invalid asset type") {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to list recommendations")
		return
	}
	WriteJSON(w, http.StatusOK, recommendations)
}

// GetHandler handles GET /api/investments/{id}
func (h *InvestmentHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/investments/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		if interfaces.IsNotFound(err) {
			WriteError(w, http.StatusNotFound, "Recommendation not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Failed to get recommendation")
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

// SummaryHandler handles GET /api/investments/summary
func (h *InvestmentHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

// TypesHandler handles GET /api/investments/types/list
func (h *InvestmentHandler) TypesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	types, err := h.service.Types(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to count asset types")
		return
	}
	WriteJSON(w, http.StatusOK, types)
}

// AskHandler handles POST /api/investments/ask. A well-formed question
// always gets a 200 answer; the advisor degrades internally instead of
// erroring.
func (h *InvestmentHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if !h.limiter.Allow() {
		WriteError(w, http.StatusTooManyRequests, "Too many questions, slow down")
		return
	}

	var question models.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(question); err != nil {
		WriteError(w, http.StatusBadRequest, "Question is required")
		return
	}

	answer := h.advisor.Ask(r.Context(), question)
	WriteJSON(w, http.StatusOK, answer)
}
