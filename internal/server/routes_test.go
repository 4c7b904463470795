package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/app"
	"github.com/ternarybob/consilium/internal/common"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	config := common.NewDefaultConfig()
	config.Storage.Badger.Path = filepath.Join(t.TempDir(), "db")
	config.Content.SeedOnStartup = true
	config.Content.PacksDir = ""
	config.Logging.Output = []string{"stdout"}

	application, err := app.New(context.Background(), config, common.GetLogger())
	require.NoError(t, err)
	t.Cleanup(func() { application.Shutdown() })

	return New(application)
}

func (s *Server) serve(r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.withMiddleware(s.router).ServeHTTP(rec, r)
	return rec
}

func TestRoutesDispatch(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/news", http.StatusOK},
		{http.MethodGet, "/api/news/categories/list", http.StatusOK},
		{http.MethodGet, "/api/news/invalid-id-12345", http.StatusNotFound},
		{http.MethodGet, "/api/investments", http.StatusOK},
		{http.MethodGet, "/api/investments/summary", http.StatusOK},
		{http.MethodGet, "/api/investments/types/list", http.StatusOK},
		{http.MethodGet, "/api/status", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodGet, "/api/nonsense", http.StatusNotFound},
		{http.MethodPost, "/api/content/update", http.StatusOK},
		{http.MethodGet, "/api/content/update", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := srv.serve(req)
		require.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.serve(httptest.NewRequest(http.MethodOptions, "/api/news", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
