package content

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
)

// riskMultipliers scale the daily price walk by risk level
var riskMultipliers = map[models.RiskLevel]float64{
	models.RiskLow:    0.3,
	models.RiskMedium: 0.7,
	models.RiskHigh:   1.2,
}

const rebalanceSuffix = " However, current valuation appears stretched and near-term headwinds may pressure performance."

// SeedResult reports what a seed run wrote
type SeedResult struct {
	Recommendations int `json:"recommendations"`
	Articles        int `json:"articles"`
	Packs           int `json:"packs"`
}

// Service owns the content maintenance jobs: seeding, the market price
// walk, the HOLD rebalance, and the news timestamp refresh.
type Service struct {
	storage  interfaces.StorageManager
	rng      *rand.Rand
	packsDir string
	logger   arbor.ILogger
}

// NewService creates a content service. Pass a seeded rng for
// reproducible job output in tests.
func NewService(storage interfaces.StorageManager, rng *rand.Rand, packsDir string) *Service {
	return &Service{
		storage:  storage,
		rng:      rng,
		packsDir: packsDir,
		logger:   common.GetLogger(),
	}
}

// Seed clears both collections and writes the built-in corpus plus any
// packs found in the configured directory. The two collections are
// reseeded sequentially, not atomically; readers during a reseed may
// observe a partial corpus.
func (s *Service) Seed(ctx context.Context) (*SeedResult, error) {
	now := time.Now().UTC()

	recommendations := builtinRecommendations(now)
	articles := builtinArticles(now)

	packs, err := LoadPacks(s.packsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed packs: %w", err)
	}
	for _, pack := range packs {
		for i := range pack.Recommendations {
			recommendations = append(recommendations, pack.Recommendations[i].toModel(now))
		}
		for i := range pack.Articles {
			articles = append(articles, pack.Articles[i].toModel(now))
		}
	}

	recStore := s.storage.RecommendationStorage()
	newsStore := s.storage.NewsStorage()

	if err := recStore.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear recommendations: %w", err)
	}
	if err := recStore.SaveAll(ctx, recommendations); err != nil {
		return nil, fmt.Errorf("failed to seed recommendations: %w", err)
	}

	if err := newsStore.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear articles: %w", err)
	}
	if err := newsStore.SaveAll(ctx, articles); err != nil {
		return nil, fmt.Errorf("failed to seed articles: %w", err)
	}

	s.logger.Info().
		Int("recommendations", len(recommendations)).
		Int("articles", len(articles)).
		Int("packs", len(packs)).
		Msg("Seeded content collections")

	return &SeedResult{
		Recommendations: len(recommendations),
		Articles:        len(articles),
		Packs:           len(packs),
	}, nil
}

// SeedIfEmpty seeds only when the recommendation collection is empty,
// for startup use.
func (s *Service) SeedIfEmpty(ctx context.Context) (*SeedResult, error) {
	count, err := s.storage.RecommendationStorage().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recommendations: %w", err)
	}
	if count > 0 {
		s.logger.Debug().Int("count", count).Msg("Store already populated, skipping seed")
		return &SeedResult{}, nil
	}
	return s.Seed(ctx)
}

// MarketUpdate walks every recommendation's price by up to ±3% scaled
// by its risk level, drifts confidence by ±5 within 50..95, and
// regenerates technical indicators. Returns the number of records
// updated.
func (s *Service) MarketUpdate(ctx context.Context) (int, error) {
	recStore := s.storage.RecommendationStorage()
	recommendations, err := recStore.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list recommendations: %w", err)
	}

	now := time.Now().UTC()
	for _, rec := range recommendations {
		multiplier, ok := riskMultipliers[rec.RiskLevel]
		if !ok {
			multiplier = riskMultipliers[models.RiskMedium]
		}

		changePercent := s.uniform(-3.0, 3.0) * multiplier
		oldPrice := rec.CurrentPrice
		changeAmount := oldPrice * changePercent / 100
		newPrice := oldPrice + changeAmount

		// price cannot halve or double in a single walk
		if newPrice < oldPrice*0.5 {
			newPrice = oldPrice * 0.5
		} else if newPrice > oldPrice*2.0 {
			newPrice = oldPrice * 2.0
		}

		rec.CurrentPrice = round2(newPrice)
		rec.PriceChange24h = round2(changeAmount)
		rec.PriceChangePercent = round2(changePercent)
		rec.LastUpdated = now

		rec.ConfidenceScore = clampInt(rec.ConfidenceScore+s.rng.Intn(11)-5, 50, 95)

		rec.Technical = s.regenerateTechnicals(rec.CurrentPrice)

		if err := recStore.Save(ctx, rec); err != nil {
			return 0, fmt.Errorf("failed to save %s: %w", rec.Symbol, err)
		}
	}

	s.logger.Info().Int("updated", len(recommendations)).Msg("Market update completed")
	return len(recommendations), nil
}

// Rebalance flips a random sample of up to 4 HOLD records to SELL,
// lowering their targets and confidence and appending a cautionary
// sentence to the analysis. Returns the flipped symbols.
func (s *Service) Rebalance(ctx context.Context) ([]string, error) {
	recStore := s.storage.RecommendationStorage()
	holds, err := recStore.ListByRecommendation(ctx, models.RatingHold)
	if err != nil {
		return nil, fmt.Errorf("failed to list HOLD recommendations: %w", err)
	}

	sampleSize := 4
	if len(holds) < sampleSize {
		sampleSize = len(holds)
	}
	s.rng.Shuffle(len(holds), func(i, j int) {
		holds[i], holds[j] = holds[j], holds[i]
	})

	flipped := make([]string, 0, sampleSize)
	for _, rec := range holds[:sampleSize] {
		rec.Recommendation = models.RatingSell
		rec.TargetPrice = round2(rec.CurrentPrice * s.uniform(0.80, 0.95))
		rec.ConfidenceScore = 55 + s.rng.Intn(16)
		rec.Analysis += rebalanceSuffix

		if err := recStore.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", rec.Symbol, err)
		}
		flipped = append(flipped, rec.Symbol)
	}

	s.logger.Info().Int("flipped", len(flipped)).Msg("Rebalance completed")
	return flipped, nil
}

// RefreshNews restaggers article publish dates 4 hours apart, newest
// first in the current publish order. Returns the number of articles
// touched.
func (s *Service) RefreshNews(ctx context.Context) (int, error) {
	newsStore := s.storage.NewsStorage()
	articles, err := newsStore.List(ctx, "", 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list articles: %w", err)
	}

	now := time.Now().UTC()
	for i, article := range articles {
		article.PublishDate = now.Add(-time.Duration(i*4) * time.Hour)
		if err := newsStore.Save(ctx, article); err != nil {
			return 0, fmt.Errorf("failed to save article %s: %w", article.ID, err)
		}
	}

	s.logger.Info().Int("refreshed", len(articles)).Msg("News timestamps refreshed")
	return len(articles), nil
}

func (s *Service) regenerateTechnicals(price float64) *models.TechnicalIndicators {
	rsi := round1(s.uniform(30, 80))
	ma50 := round2(price * s.uniform(0.95, 1.05))
	ma200 := round2(price * s.uniform(0.90, 1.10))
	pe := round1(s.uniform(15, 45))
	vol := round2(s.uniform(0.15, 0.35))
	return &models.TechnicalIndicators{
		RSI:          &rsi,
		MovingAvg50:  &ma50,
		MovingAvg200: &ma200,
		PERatio:      &pe,
		Volatility:   &vol,
	}
}

func (s *Service) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
