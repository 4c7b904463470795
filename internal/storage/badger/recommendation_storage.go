package badger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// RecommendationStorage implements the RecommendationStorage interface for Badger
type RecommendationStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewRecommendationStorage creates a new RecommendationStorage instance
func NewRecommendationStorage(db *BadgerDB, logger arbor.ILogger) interfaces.RecommendationStorage {
	return &RecommendationStorage{
		db:     db,
		logger: logger,
	}
}

func (s *RecommendationStorage) Save(ctx context.Context, rec *models.Recommendation) error {
	if rec.ID == "" {
		return fmt.Errorf("recommendation ID is required")
	}
	if rec.LastUpdated.IsZero() {
		rec.LastUpdated = time.Now().UTC()
	}

	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}
	return nil
}

func (s *RecommendationStorage) SaveAll(ctx context.Context, recs []*models.Recommendation) error {
	for _, rec := range recs {
		if err := s.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecommendationStorage) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := s.db.Store().Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &interfaces.NotFoundError{Collection: "recommendation", ID: id}
		}
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}
	return &rec, nil
}

func (s *RecommendationStorage) GetBySymbol(ctx context.Context, symbol string) (*models.Recommendation, error) {
	var recs []models.Recommendation
	err := s.db.Store().Find(&recs, badgerhold.Where("Symbol").Eq(strings.ToUpper(symbol)).Index("Symbol"))
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendation: %w", err)
	}
	if len(recs) == 0 {
		return nil, &interfaces.NotFoundError{Collection: "recommendation", ID: symbol}
	}
	return &recs[0], nil
}

// List returns recommendations sorted by LastUpdated descending,
// optionally filtered by asset type, capped at limit.
func (s *RecommendationStorage) List(ctx context.Context, assetType string, limit int) ([]*models.Recommendation, error) {
	var query *badgerhold.Query
	if assetType != "" {
		query = badgerhold.Where("AssetType").Eq(models.AssetType(assetType)).Index("AssetType")
	} else {
		query = badgerhold.Where("ID").Ne("")
	}
	query = query.SortBy("LastUpdated").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []models.Recommendation
	if err := s.db.Store().Find(&recs, query); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	result := make([]*models.Recommendation, len(recs))
	for i := range recs {
		result[i] = &recs[i]
	}
	return result, nil
}

func (s *RecommendationStorage) ListAll(ctx context.Context) ([]*models.Recommendation, error) {
	var recs []models.Recommendation
	if err := s.db.Store().Find(&recs, badgerhold.Where("ID").Ne("")); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	result := make([]*models.Recommendation, len(recs))
	for i := range recs {
		result[i] = &recs[i]
	}
	return result, nil
}

func (s *RecommendationStorage) ListByRecommendation(ctx context.Context, rating models.Rating) ([]*models.Recommendation, error) {
	var recs []models.Recommendation
	if err := s.db.Store().Find(&recs, badgerhold.Where("Recommendation").Eq(rating)); err != nil {
		return nil, fmt.Errorf("failed to list recommendations by rating: %w", err)
	}

	result := make([]*models.Recommendation, len(recs))
	for i := range recs {
		result[i] = &recs[i]
	}
	return result, nil
}

func (s *RecommendationStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.Recommendation{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}
	return int(count), nil
}

func (s *RecommendationStorage) CountByAssetType(ctx context.Context) (map[string]int, error) {
	recs, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, rec := range recs {
		counts[string(rec.AssetType)]++
	}
	return counts, nil
}

func (s *RecommendationStorage) CountByRecommendation(ctx context.Context) (map[string]int, error) {
	recs, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, rec := range recs {
		counts[string(rec.Recommendation)]++
	}
	return counts, nil
}

func (s *RecommendationStorage) ClearAll(ctx context.Context) error {
	return s.db.Store().DeleteMatching(&models.Recommendation{}, nil)
}
