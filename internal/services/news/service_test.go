package news

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/ternarybob/consilium/internal/storage/badger"
)

func newTestService(t *testing.T) (*Service, interfaces.NewsStorage) {
	t.Helper()

	manager, err := badger.NewManager(common.GetLogger(), &common.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	storage := manager.NewsStorage()
	return NewService(storage, 100), storage
}

func seedArticles(t *testing.T, storage interfaces.NewsStorage, n int) {
	t.Helper()
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		require.NoError(t, storage.Save(context.Background(), &models.NewsArticle{
			ID:          common.NewArticleID(),
			Title:       "Article",
			Content:     "Body text.",
			Category:    "Technology",
			PublishDate: now.Add(-time.Duration(i) * time.Hour),
		}))
	}
}

func TestListClampsLimit(t *testing.T) {
	service, storage := newTestService(t)
	seedArticles(t, storage, 5)

	service.maxLimit = 3
	articles, err := service.List(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, articles, 3)
}

func TestListEmptyStoreReturnsEmptySlice(t *testing.T) {
	service, _ := newTestService(t)

	articles, err := service.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.NotNil(t, articles)
	require.Empty(t, articles)
}

func TestRenderHTML(t *testing.T) {
	service, storage := newTestService(t)

	article := &models.NewsArticle{
		ID:       common.NewArticleID(),
		Title:    "Markdown Article",
		Content:  "First paragraph with **bold** text.\n\nSecond paragraph.",
		Category: "Financial",
	}
	require.NoError(t, storage.Save(context.Background(), article))

	got, html, err := service.RenderHTML(context.Background(), article.ID)
	require.NoError(t, err)
	require.Equal(t, article.Title, got.Title)
	require.Contains(t, html, "<strong>bold</strong>")
	require.Contains(t, html, "<p>Second paragraph.</p>")
}

func TestRenderHTMLMissingArticle(t *testing.T) {
	service, _ := newTestService(t)

	_, _, err := service.RenderHTML(context.Background(), "invalid-id-12345")
	require.Error(t, err)
	require.True(t, interfaces.IsNotFound(err))
}

func TestCategories(t *testing.T) {
	service, storage := newTestService(t)
	seedArticles(t, storage, 3)
	require.NoError(t, storage.Save(context.Background(), &models.NewsArticle{
		ID:       common.NewArticleID(),
		Title:    "Other",
		Content:  "Body.",
		Category: "Financial",
	}))

	counts, err := service.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.CategoryCount{
		{Category: "Technology", Count: 3},
		{Category: "Financial", Count: 1},
	}, counts)
}
