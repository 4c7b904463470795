package interfaces

import (
	"context"

	"github.com/ternarybob/consilium/internal/models"
)

// ErrNotFound is returned by storage implementations when a record
// with the requested ID does not exist.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return e.Collection + " not found: " + e.ID
}

// IsNotFound reports whether err is a storage not-found error
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// RecommendationStorage - interface for investment recommendation persistence
type RecommendationStorage interface {
	Save(ctx context.Context, rec *models.Recommendation) error
	SaveAll(ctx context.Context, recs []*models.Recommendation) error
	Get(ctx context.Context, id string) (*models.Recommendation, error)
	GetBySymbol(ctx context.Context, symbol string) (*models.Recommendation, error)
	List(ctx context.Context, assetType string, limit int) ([]*models.Recommendation, error)
	ListAll(ctx context.Context) ([]*models.Recommendation, error)
	ListByRecommendation(ctx context.Context, rating models.Rating) ([]*models.Recommendation, error)
	Count(ctx context.Context) (int, error)
	CountByAssetType(ctx context.Context) (map[string]int, error)
	CountByRecommendation(ctx context.Context) (map[string]int, error)
	ClearAll(ctx context.Context) error
}

// NewsStorage - interface for news article persistence
type NewsStorage interface {
	Save(ctx context.Context, article *models.NewsArticle) error
	SaveAll(ctx context.Context, articles []*models.NewsArticle) error
	Get(ctx context.Context, id string) (*models.NewsArticle, error)
	List(ctx context.Context, category string, limit int) ([]*models.NewsArticle, error)
	ListAll(ctx context.Context) ([]*models.NewsArticle, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
	Count(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

// StatusStorage - interface for status check persistence
type StatusStorage interface {
	Save(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}

// StorageManager provides access to all storage interfaces
type StorageManager interface {
	RecommendationStorage() RecommendationStorage
	NewsStorage() NewsStorage
	StatusStorage() StatusStorage
	Close() error
}
