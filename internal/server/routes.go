package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// News
	mux.HandleFunc("/api/news", s.app.NewsHandler.ListHandler)
	mux.HandleFunc("/api/news/categories/list", s.app.NewsHandler.CategoriesHandler)
	mux.HandleFunc("/api/news/", s.app.NewsHandler.GetHandler) // GET /{id}

	// Investments
	mux.HandleFunc("/api/investments", s.app.InvestmentHandler.ListHandler)
	mux.HandleFunc("/api/investments/summary", s.app.InvestmentHandler.SummaryHandler)
	mux.HandleFunc("/api/investments/types/list", s.app.InvestmentHandler.TypesHandler)
	mux.HandleFunc("/api/investments/ask", s.app.InvestmentHandler.AskHandler)
	mux.HandleFunc("/api/investments/", s.app.InvestmentHandler.GetHandler) // GET /{id}

	// Status checks
	mux.HandleFunc("/api/status", s.app.StatusHandler.Handle) // GET (list), POST (create)

	// Content job triggers
	mux.HandleFunc("/api/content/seed", s.app.ContentHandler.SeedHandler)
	mux.HandleFunc("/api/content/update", s.app.ContentHandler.UpdateHandler)
	mux.HandleFunc("/api/content/rebalance", s.app.ContentHandler.RebalanceHandler)
	mux.HandleFunc("/api/content/refresh-news", s.app.ContentHandler.RefreshNewsHandler)

	// System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
