package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

func newTestDB(t *testing.T) *BadgerDB {
	t.Helper()

	tmpDir := t.TempDir()

	options := badgerhold.DefaultOptions
	options.Dir = tmpDir
	options.ValueDir = tmpDir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &BadgerDB{store: store, logger: arbor.NewLogger()}
}

func testRecommendation(id, symbol string, rating models.Rating, updated time.Time) *models.Recommendation {
	return &models.Recommendation{
		ID:              id,
		Symbol:          symbol,
		Name:            symbol + " Test Corp",
		AssetType:       models.AssetTypeStock,
		CurrentPrice:    100.00,
		TargetPrice:     110.00,
		Recommendation:  rating,
		RiskLevel:       models.RiskMedium,
		ConfidenceScore: 80,
		Timeframe:       "6M",
		Analyst:         "Test Analyst",
		Analysis:        "Test analysis.",
		KeyFactors:      []string{"factor one", "factor two"},
		LastUpdated:     updated,
	}
}

func TestRecommendationRoundTrip(t *testing.T) {
	db := newTestDB(t)
	storage := NewRecommendationStorage(db, arbor.NewLogger())
	ctx := context.Background()

	rec := testRecommendation("rec-1", "AAPL", models.RatingBuy, time.Now().UTC())
	rec.MarketCap = "$3.01T"
	rec.Sector = "Technology"
	rsi := 62.5
	rec.Technical = &models.TechnicalIndicators{RSI: &rsi}

	require.NoError(t, storage.Save(ctx, rec))

	got, err := storage.Get(ctx, "rec-1")
	require.NoError(t, err)
	require.Equal(t, rec.Symbol, got.Symbol)
	require.Equal(t, rec.Name, got.Name)
	require.Equal(t, rec.AssetType, got.AssetType)
	require.Equal(t, rec.CurrentPrice, got.CurrentPrice)
	require.Equal(t, rec.TargetPrice, got.TargetPrice)
	require.Equal(t, rec.Recommendation, got.Recommendation)
	require.Equal(t, rec.RiskLevel, got.RiskLevel)
	require.Equal(t, rec.ConfidenceScore, got.ConfidenceScore)
	require.Equal(t, rec.KeyFactors, got.KeyFactors)
	require.Equal(t, rec.Sector, got.Sector)
	require.NotNil(t, got.Technical)
	require.NotNil(t, got.Technical.RSI)
	require.Equal(t, rsi, *got.Technical.RSI)
}

func TestRecommendationNotFound(t *testing.T) {
	db := newTestDB(t)
	storage := NewRecommendationStorage(db, arbor.NewLogger())

	_, err := storage.Get(context.Background(), "invalid-id-12345")
	require.Error(t, err)
	require.True(t, interfaces.IsNotFound(err))
}

func TestRecommendationListOrderingAndIdempotence(t *testing.T) {
	db := newTestDB(t)
	storage := NewRecommendationStorage(db, arbor.NewLogger())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, storage.Save(ctx, testRecommendation("rec-old", "OLD", models.RatingHold, base.Add(-48*time.Hour))))
	require.NoError(t, storage.Save(ctx, testRecommendation("rec-mid", "MID", models.RatingBuy, base.Add(-24*time.Hour))))
	require.NoError(t, storage.Save(ctx, testRecommendation("rec-new", "NEW", models.RatingSell, base)))

	first, err := storage.List(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.Equal(t, "rec-new", first[0].ID)
	require.Equal(t, "rec-mid", first[1].ID)
	require.Equal(t, "rec-old", first[2].ID)

	// Same query twice without intervening writes returns the same ordering
	second, err := storage.List(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestRecommendationAssetTypeFilter(t *testing.T) {
	db := newTestDB(t)
	storage := NewRecommendationStorage(db, arbor.NewLogger())
	ctx := context.Background()

	stock := testRecommendation("rec-s", "STK", models.RatingBuy, time.Now().UTC())
	index := testRecommendation("rec-i", "IDX", models.RatingHold, time.Now().UTC())
	index.AssetType = models.AssetTypeIndex
	require.NoError(t, storage.Save(ctx, stock))
	require.NoError(t, storage.Save(ctx, index))

	indices, err := storage.List(ctx, "index", 100)
	require.NoError(t, err)
	require.Len(t, indices, 1)
	require.Equal(t, "rec-i", indices[0].ID)

	counts, err := storage.CountByAssetType(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, counts["stock"])
	require.Equal(t, 1, counts["index"])
}

func TestRecommendationClearAll(t *testing.T) {
	db := newTestDB(t)
	storage := NewRecommendationStorage(db, arbor.NewLogger())
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, testRecommendation("rec-1", "ONE", models.RatingBuy, time.Now().UTC())))
	require.NoError(t, storage.Save(ctx, testRecommendation("rec-2", "TWO", models.RatingSell, time.Now().UTC())))

	require.NoError(t, storage.ClearAll(ctx))

	count, err := storage.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
