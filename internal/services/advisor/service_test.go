package advisor

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/models"
)

// stubRecommendations satisfies interfaces.RecommendationStorage with a
// fixed in-memory set. Only ListAll matters to the advisor.
type stubRecommendations struct {
	recs []*models.Recommendation
	err  error
}

func (s *stubRecommendations) Save(ctx context.Context, rec *models.Recommendation) error {
	return nil
}

func (s *stubRecommendations) SaveAll(ctx context.Context, recs []*models.Recommendation) error {
	return nil
}

func (s *stubRecommendations) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRecommendations) GetBySymbol(ctx context.Context, symbol string) (*models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRecommendations) List(ctx context.Context, assetType string, limit int) ([]*models.Recommendation, error) {
	return s.recs, s.err
}

func (s *stubRecommendations) ListAll(ctx context.Context) ([]*models.Recommendation, error) {
	return s.recs, s.err
}

func (s *stubRecommendations) ListByRecommendation(ctx context.Context, rating models.Rating) ([]*models.Recommendation, error) {
	return nil, nil
}

func (s *stubRecommendations) Count(ctx context.Context) (int, error) {
	return len(s.recs), s.err
}

func (s *stubRecommendations) CountByAssetType(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func (s *stubRecommendations) CountByRecommendation(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func (s *stubRecommendations) ClearAll(ctx context.Context) error {
	return nil
}

func coverageRecords() []*models.Recommendation {
	return []*models.Recommendation{
		{
			ID: "rec_aapl", Symbol: "AAPL", Name: "Apple Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 195.89, TargetPrice: 220.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 87, Timeframe: "12M",
			Analyst: "Sarah Chen, CFA", Sector: "Technology",
			KeyFactors:  []string{"Services growth", "Buyback program", "iPhone cycle", "China exposure", "Valuation premium"},
			LastUpdated: time.Now().UTC(),
		},
		{
			ID: "rec_nvda", Symbol: "NVDA", Name: "NVIDIA Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 875.30, TargetPrice: 950.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 91, Timeframe: "12M",
			Analyst: "Dr. Jennifer Park", Sector: "Technology",
			KeyFactors:  []string{"AI demand", "Data center growth", "Margin expansion"},
			LastUpdated: time.Now().UTC(),
		},
		{
			ID: "rec_btc", Symbol: "BTC-USD", Name: "Bitcoin", AssetType: models.AssetTypeCommodity,
			CurrentPrice: 67845.32, TargetPrice: 75000.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskHigh, ConfidenceScore: 69, Timeframe: "12M",
			Analyst: "Alex Thompson", Sector: "Cryptocurrency",
			KeyFactors:  []string{"Halving cycle", "Institutional adoption", "Regulatory risk"},
			LastUpdated: time.Now().UTC(),
		},
	}
}

func newTestService(recs []*models.Recommendation) *Service {
	storage := &stubRecommendations{recs: recs}
	return NewService(storage, NewGenerator(rand.New(rand.NewSource(42))))
}

func TestAskKnownSymbolRecommendation(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "Should I buy AAPL?"})

	require.Equal(t, "Should I buy AAPL?", answer.Question)
	require.Equal(t, []string{"AAPL"}, answer.RelevantSymbols)
	require.Equal(t, 0.9, answer.Confidence)
	require.Contains(t, answer.Answer, "AAPL")
	require.Contains(t, answer.Answer, "BUY")
	require.Contains(t, answer.Sources, "Analyst: Sarah Chen, CFA")
}

func TestAskKnownPairSymbolRecommendation(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "Should I buy BTC-USD?"})

	require.Equal(t, []string{"BTC-USD"}, answer.RelevantSymbols)
	require.Equal(t, 0.9, answer.Confidence)
	require.Contains(t, answer.Answer, "BTC-USD")
	require.Contains(t, answer.Sources, "Analyst: Alex Thompson")
	require.NotContains(t, answer.Sources, sourceSynthetic)
}

func TestAskPriceTargetScenario(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "What's the target price for NVDA?"})

	require.Equal(t, []string{"NVDA"}, answer.RelevantSymbols)
	require.Contains(t, answer.Answer, "$875.30")
	require.Contains(t, answer.Answer, "$950.00")
	require.Contains(t, answer.Answer, "+8.5%")
}

func TestAskCryptoPriceFormatting(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "What is the price target for bitcoin?"})

	require.Equal(t, []string{"BTC-USD"}, answer.RelevantSymbols)
	require.Contains(t, answer.Answer, "$67,845")
	require.Contains(t, answer.Answer, "$75,000")
	require.NotContains(t, answer.Answer, "$67845")
}

func TestAskGeneralHelp(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "asdfqwer"})

	require.Equal(t, 0.7, answer.Confidence)
	require.Empty(t, answer.RelevantSymbols)
	require.Contains(t, answer.Answer, "I can help with investment questions")
}

func TestAskUnknownSymbolSynthesizes(t *testing.T) {
	service := newTestService(coverageRecords())

	answer := service.Ask(context.Background(), models.Question{Question: "Should I buy QQZZ?"})

	require.Equal(t, []string{"QQZZ"}, answer.RelevantSymbols)
	require.Contains(t, answer.Answer, "QQZZ")
	require.Contains(t, answer.Answer, "pattern-based estimate")
	require.Contains(t, answer.Sources, "Synthetic Screening Model")
	require.InDelta(t, 0.75, answer.Confidence, 0.076)
}

func TestAskStorageErrorFallsBack(t *testing.T) {
	storage := &stubRecommendations{err: errors.New("store offline")}
	service := NewService(storage, NewGenerator(rand.New(rand.NewSource(42))))

	answer := service.Ask(context.Background(), models.Question{Question: "Should I buy AAPL?"})

	require.Equal(t, 0.5, answer.Confidence)
	require.Empty(t, answer.RelevantSymbols)
	require.Empty(t, answer.Sources)
	require.True(t, strings.HasPrefix(answer.Answer, "I'm sorry"))
}

func TestAskNeverReturnsNilSlices(t *testing.T) {
	service := newTestService(coverageRecords())

	for _, question := range []string{
		"What is the market outlook?",
		"How should I allocate my portfolio?",
		"hello there",
	} {
		answer := service.Ask(context.Background(), models.Question{Question: question})
		require.NotNil(t, answer.RelevantSymbols, "question: %s", question)
		require.NotNil(t, answer.Sources, "question: %s", question)
	}
}
