package investments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
)

// Service exposes the investment recommendation collection
type Service struct {
	storage  interfaces.RecommendationStorage
	maxLimit int
	logger   arbor.ILogger
}

func NewService(storage interfaces.RecommendationStorage, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &Service{
		storage:  storage,
		maxLimit: maxLimit,
		logger:   common.GetLogger(),
	}
}

// List returns recommendations newest first, optionally filtered by
// asset type. An unknown asset type is an error, not an empty result.
func (s *Service) List(ctx context.Context, assetType string, limit int) ([]*models.Recommendation, error) {
	if assetType != "" {
		switch models.AssetType(assetType) {
		case models.AssetTypeStock, models.AssetTypeIndex, models.AssetTypeCommodity:
		default:
			s.logger.Warn().Str("asset_type", assetType).Msg("Rejected unknown asset type filter")
			return nil, fmt.Errorf("invalid asset type %q", assetType)
		}
	}

	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	recommendations, err := s.storage.List(ctx, assetType, limit)
	if err != nil {
		return nil, err
	}
	if recommendations == nil {
		recommendations = []*models.Recommendation{}
	}
	return recommendations, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	return s.storage.Get(ctx, id)
}

// Summary aggregates the collection by rating and asset type
func (s *Service) Summary(ctx context.Context) (*models.InvestmentSummary, error) {
	total, err := s.storage.Count(ctx)
	if err != nil {
		return nil, err
	}
	byRating, err := s.storage.CountByRecommendation(ctx)
	if err != nil {
		return nil, err
	}
	byAssetType, err := s.storage.CountByAssetType(ctx)
	if err != nil {
		return nil, err
	}

	return &models.InvestmentSummary{
		TotalRecommendations: total,
		ByRecommendation:     byRating,
		ByAssetType:          byAssetType,
		LastUpdated:          time.Now().UTC(),
	}, nil
}

// Types returns per-asset-type counts, count descending
func (s *Service) Types(ctx context.Context) ([]models.AssetTypeCount, error) {
	counts, err := s.storage.CountByAssetType(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.AssetTypeCount, 0, len(counts))
	for assetType, count := range counts {
		result = append(result, models.AssetTypeCount{AssetType: assetType, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].AssetType < result[j].AssetType
	})
	return result, nil
}
