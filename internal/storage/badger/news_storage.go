package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// NewsStorage implements the NewsStorage interface for Badger
type NewsStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewNewsStorage creates a new NewsStorage instance
func NewNewsStorage(db *BadgerDB, logger arbor.ILogger) interfaces.NewsStorage {
	return &NewsStorage{
		db:     db,
		logger: logger,
	}
}

func (s *NewsStorage) Save(ctx context.Context, article *models.NewsArticle) error {
	if article.ID == "" {
		return fmt.Errorf("article ID is required")
	}
	if article.PublishDate.IsZero() {
		article.PublishDate = time.Now().UTC()
	}
	if article.ReadTime == 0 {
		article.ReadTime = 5
	}

	if err := s.db.Store().Upsert(article.ID, article); err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

func (s *NewsStorage) SaveAll(ctx context.Context, articles []*models.NewsArticle) error {
	for _, article := range articles {
		if err := s.Save(ctx, article); err != nil {
			return err
		}
	}
	return nil
}

func (s *NewsStorage) Get(ctx context.Context, id string) (*models.NewsArticle, error) {
	var article models.NewsArticle
	if err := s.db.Store().Get(id, &article); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &interfaces.NotFoundError{Collection: "article", ID: id}
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

// List returns articles sorted by PublishDate descending, optionally
// filtered by category, capped at limit.
func (s *NewsStorage) List(ctx context.Context, category string, limit int) ([]*models.NewsArticle, error) {
	var query *badgerhold.Query
	if category != "" {
		query = badgerhold.Where("Category").Eq(category).Index("Category")
	} else {
		query = badgerhold.Where("ID").Ne("")
	}
	query = query.SortBy("PublishDate").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var articles []models.NewsArticle
	if err := s.db.Store().Find(&articles, query); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	result := make([]*models.NewsArticle, len(articles))
	for i := range articles {
		result[i] = &articles[i]
	}
	return result, nil
}

func (s *NewsStorage) ListAll(ctx context.Context) ([]*models.NewsArticle, error) {
	var articles []models.NewsArticle
	if err := s.db.Store().Find(&articles, badgerhold.Where("ID").Ne("")); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	result := make([]*models.NewsArticle, len(articles))
	for i := range articles {
		result[i] = &articles[i]
	}
	return result, nil
}

// CountByCategory returns per-category article counts sorted by count descending
func (s *NewsStorage) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	articles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, article := range articles {
		counts[article.Category]++
	}

	result := make([]models.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, models.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

func (s *NewsStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.NewsArticle{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return int(count), nil
}

func (s *NewsStorage) ClearAll(ctx context.Context) error {
	return s.db.Store().DeleteMatching(&models.NewsArticle{}, nil)
}
