package handlers

import (
	"net/http"
	"strings"

	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/services/news"
)

// NewsHandler serves the news article endpoints
type NewsHandler struct {
	service *news.Service
}

func NewNewsHandler(service *news.Service) *NewsHandler {
	return &NewsHandler{service: service}
}

// ListHandler handles GET /api/news?category=&limit=
func (h *NewsHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	category := r.URL.Query().Get("category")
	articles, err := h.service.List(r.Context(), category, QueryLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to list articles")
		return
	}
	WriteJSON(w, http.StatusOK, articles)
}

// GetHandler handles GET /api/news/{id}. With ?format=html the article
// content is rendered from markdown.
func (h *NewsHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/news/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		article, html, err := h.service.RenderHTML(r.Context(), id)
		if err != nil {
			h.writeGetError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"article":      article,
			"content_html": html,
		})
		return
	}

	article, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeGetError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, article)
}

// CategoriesHandler handles GET /api/news/categories/list
func (h *NewsHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	counts, err := h.service.Categories(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to count categories")
		return
	}
	WriteJSON(w, http.StatusOK, counts)
}

func (h *NewsHandler) writeGetError(w http.ResponseWriter, err error) {
	if interfaces.IsNotFound(err) {
		WriteError(w, http.StatusNotFound, "Article not found")
		return
	}
	WriteError(w, http.StatusInternalServerError, "Failed to get article")
}
