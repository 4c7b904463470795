package news

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/yuin/goldmark"
)

// Service exposes the news article collection
type Service struct {
	storage  interfaces.NewsStorage
	maxLimit int
	markdown goldmark.Markdown
	logger   arbor.ILogger
}

func NewService(storage interfaces.NewsStorage, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &Service{
		storage:  storage,
		maxLimit: maxLimit,
		markdown: goldmark.New(),
		logger:   common.GetLogger(),
	}
}

// List returns articles newest first, optionally filtered by category.
// The limit is clamped to the configured maximum.
func (s *Service) List(ctx context.Context, category string, limit int) ([]*models.NewsArticle, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	articles, err := s.storage.List(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.NewsArticle{}
	}
	return articles, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.NewsArticle, error) {
	return s.storage.Get(ctx, id)
}

// RenderHTML returns the article with its content converted from
// markdown to HTML.
func (s *Service) RenderHTML(ctx context.Context, id string) (*models.NewsArticle, string, error) {
	article, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(article.Content), &buf); err != nil {
		s.logger.Error().Err(err).Str("article_id", id).Msg("Markdown render failed")
		return nil, "", fmt.Errorf("failed to render article %s: %w", id, err)
	}
	return article, buf.String(), nil
}

// Categories returns per-category article counts, count descending
func (s *Service) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	counts, err := s.storage.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []models.CategoryCount{}
	}
	return counts, nil
}
