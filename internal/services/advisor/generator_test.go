package advisor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/models"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(42)))
}

func TestGenerateRejectsInvalidSymbols(t *testing.T) {
	gen := newTestGenerator()

	for _, symbol := range []string{"", "TOOLONG", "AB1", "BTC-USD", "A B"} {
		require.Nil(t, gen.Generate(symbol), "symbol: %q", symbol)
	}
}

func TestGenerateInvariants(t *testing.T) {
	gen := newTestGenerator()

	symbols := []string{"ZY", "QQZ", "XWVU", "ZYXWV", "AA", "BB", "CC", "DD", "EE",
		"FF", "GG", "HH", "II", "JJ", "KK", "LL", "MM", "NN", "OO", "PP"}

	for _, symbol := range symbols {
		rec := gen.Generate(symbol)
		require.NotNil(t, rec, "symbol: %s", symbol)

		require.Equal(t, symbol, rec.Symbol)
		require.Greater(t, rec.CurrentPrice, 0.0)
		require.Greater(t, rec.TargetPrice, 0.0)
		require.GreaterOrEqual(t, rec.ConfidenceScore, 65)
		require.LessOrEqual(t, rec.ConfidenceScore, 88)
		require.Contains(t, []models.Rating{models.RatingBuy, models.RatingHold, models.RatingSell}, rec.Recommendation)
		require.Contains(t, []models.RiskLevel{models.RiskLow, models.RiskMedium, models.RiskHigh}, rec.RiskLevel)
		require.NotEmpty(t, rec.Sector)
		require.NotEmpty(t, rec.Analysis)
		require.NotEmpty(t, rec.KeyFactors)
		require.NotNil(t, rec.Technical)
		require.NotNil(t, rec.Technical.Volatility)

		// target direction must be consistent with the rating
		ratio := rec.TargetPrice / rec.CurrentPrice
		switch rec.Recommendation {
		case models.RatingBuy:
			require.Greater(t, ratio, 1.07, "BUY target must sit above current")
			require.Less(t, ratio, 1.26)
		case models.RatingSell:
			require.Less(t, ratio, 0.96, "SELL target must sit below current")
			require.Greater(t, ratio, 0.84)
		default:
			require.Greater(t, ratio, 0.94)
			require.Less(t, ratio, 1.09)
		}

		// volatility and risk level must agree
		vol := *rec.Technical.Volatility
		switch {
		case vol < 0.25:
			require.Equal(t, models.RiskLow, rec.RiskLevel)
		case vol < 0.4:
			require.Equal(t, models.RiskMedium, rec.RiskLevel)
		default:
			require.Equal(t, models.RiskHigh, rec.RiskLevel)
		}
	}
}

func TestGenerateSectorByFirstLetter(t *testing.T) {
	gen := newTestGenerator()

	tests := []struct {
		symbol string
		sector string
	}{
		{"AZ", "Technology"},
		{"BZ", "Financial Services"},
		{"EZ", "Energy"},
		{"UZ", "Utilities"},
		{"RZ", "Real Estate"},
	}

	for _, tt := range tests {
		rec := gen.Generate(tt.symbol)
		require.NotNil(t, rec)
		require.Equal(t, tt.sector, rec.Sector, "symbol: %s", tt.symbol)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	first := NewGenerator(rand.New(rand.NewSource(7))).Generate("QQZ")
	second := NewGenerator(rand.New(rand.NewSource(7))).Generate("QQZ")

	require.Equal(t, first.CurrentPrice, second.CurrentPrice)
	require.Equal(t, first.TargetPrice, second.TargetPrice)
	require.Equal(t, first.Recommendation, second.Recommendation)
	require.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
}
