package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
)

func testArticle(id, category string, published time.Time) *models.NewsArticle {
	return &models.NewsArticle{
		ID:          id,
		Title:       "Title " + id,
		Summary:     "Summary " + id,
		Content:     "## Content\n\nBody for " + id,
		Author:      "Test Author",
		Category:    category,
		PublishDate: published,
		Tags:        []string{"test"},
		ReadTime:    4,
	}
}

func TestNewsListSortedByPublishDate(t *testing.T) {
	db := newTestDB(t)
	storage := NewNewsStorage(db, arbor.NewLogger())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, storage.Save(ctx, testArticle("news-a", "Markets", base.Add(-8*time.Hour))))
	require.NoError(t, storage.Save(ctx, testArticle("news-b", "Technology", base)))
	require.NoError(t, storage.Save(ctx, testArticle("news-c", "Markets", base.Add(-4*time.Hour))))

	articles, err := storage.List(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	require.Equal(t, "news-b", articles[0].ID)
	require.Equal(t, "news-c", articles[1].ID)
	require.Equal(t, "news-a", articles[2].ID)

	markets, err := storage.List(ctx, "Markets", 100)
	require.NoError(t, err)
	require.Len(t, markets, 2)
	require.Equal(t, "news-c", markets[0].ID)
}

func TestNewsCategoryCounts(t *testing.T) {
	db := newTestDB(t)
	storage := NewNewsStorage(db, arbor.NewLogger())
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, storage.Save(ctx, testArticle("news-1", "Markets", now)))
	require.NoError(t, storage.Save(ctx, testArticle("news-2", "Markets", now)))
	require.NoError(t, storage.Save(ctx, testArticle("news-3", "Crypto", now)))

	counts, err := storage.CountByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	require.Equal(t, "Markets", counts[0].Category)
	require.Equal(t, 2, counts[0].Count)
	require.Equal(t, "Crypto", counts[1].Category)
	require.Equal(t, 1, counts[1].Count)
}

func TestNewsNotFound(t *testing.T) {
	db := newTestDB(t)
	storage := NewNewsStorage(db, arbor.NewLogger())

	_, err := storage.Get(context.Background(), "invalid-id-12345")
	require.Error(t, err)
	require.True(t, interfaces.IsNotFound(err))
}

func TestNewsDefaultReadTime(t *testing.T) {
	db := newTestDB(t)
	storage := NewNewsStorage(db, arbor.NewLogger())
	ctx := context.Background()

	article := testArticle("news-rt", "Markets", time.Now().UTC())
	article.ReadTime = 0
	require.NoError(t, storage.Save(ctx, article))

	got, err := storage.Get(ctx, "news-rt")
	require.NoError(t, err)
	require.Equal(t, 5, got.ReadTime)
}
