package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/models"
)

func factorRecord() *models.Recommendation {
	return &models.Recommendation{
		ID: "rec_x", Symbol: "AAPL", Name: "Apple Inc.", AssetType: models.AssetTypeStock,
		CurrentPrice: 195.89, TargetPrice: 220.00, Recommendation: models.RatingBuy,
		RiskLevel: models.RiskLow, ConfidenceScore: 87, Timeframe: "12M",
		Analyst: "Sarah Chen, CFA", Sector: "Technology",
		KeyFactors: []string{"one", "two", "three", "four", "five"},
	}
}

// The recommendation composer quotes the leading key factors, the risk
// composer quotes the trailing ones.
func TestComposerFactorSelection(t *testing.T) {
	rec := factorRecord()
	mentioned := []*models.Recommendation{rec}
	all := mentioned

	recommendation := composeRecommendation(mentioned, all)
	require.Contains(t, recommendation.Answer, "one; two; three")
	require.NotContains(t, recommendation.Answer, "four")

	risk := composeRisk(mentioned, all)
	require.Contains(t, risk.Answer, "three; four; five")
	require.NotContains(t, risk.Answer, "one;")
}

func TestComposeRiskDefaultVolatility(t *testing.T) {
	rec := factorRecord()
	rec.Technical = nil

	tests := []struct {
		level models.RiskLevel
		want  float64
	}{
		{models.RiskLow, 0.2},
		{models.RiskMedium, 0.3},
		{models.RiskHigh, 0.45},
	}

	for _, tt := range tests {
		rec.RiskLevel = tt.level
		require.Equal(t, tt.want, impliedVolatility(rec))
	}
}

func TestComposeMarketSentiment(t *testing.T) {
	mix := func(buy, hold, sell int) []*models.Recommendation {
		var recs []*models.Recommendation
		add := func(n int, rating models.Rating) {
			for i := 0; i < n; i++ {
				recs = append(recs, &models.Recommendation{
					Symbol: "XX", Recommendation: rating, Sector: "Technology",
				})
			}
		}
		add(buy, models.RatingBuy)
		add(hold, models.RatingHold)
		add(sell, models.RatingSell)
		return recs
	}

	bullish := composeMarket(mix(7, 2, 1))
	require.Contains(t, bullish.Answer, "bullish")

	bearish := composeMarket(mix(3, 4, 3))
	require.Contains(t, bearish.Answer, "bearish")

	neutral := composeMarket(mix(5, 3, 2))
	require.Contains(t, neutral.Answer, "neutral")
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "$195.89", formatPrice("AAPL", 195.89))
	require.Equal(t, "$67,845", formatPrice("BTC-USD", 67845.32))
	require.Equal(t, "$1,250,000", formatPrice("BTC-USD", 1250000))
	require.Equal(t, "$950", formatPrice("BTC-USD", 950))
}

func TestComposeSyntheticConfidenceHaircut(t *testing.T) {
	rec := factorRecord()

	rec.CurrentPrice = 100
	rec.TargetPrice = 110
	require.Equal(t, 0.75, composeSynthetic(rec).Confidence)

	rec.TargetPrice = 130
	require.InDelta(t, 0.675, composeSynthetic(rec).Confidence, 1e-9)

	rec.TargetPrice = 80
	require.InDelta(t, 0.675, composeSynthetic(rec).Confidence, 1e-9)
}
