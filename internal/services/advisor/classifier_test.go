package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ternarybob/consilium/internal/models"
)

func knownRecords() []*models.Recommendation {
	return []*models.Recommendation{
		{ID: "rec_1", Symbol: "AAPL", Name: "Apple Inc.", Recommendation: models.RatingBuy, Sector: "Technology"},
		{ID: "rec_2", Symbol: "NVDA", Name: "NVIDIA Corporation", Recommendation: models.RatingBuy, Sector: "Technology"},
		{ID: "rec_3", Symbol: "GLD", Name: "SPDR Gold Shares", Recommendation: models.RatingBuy, Sector: "Precious Metals"},
		{ID: "rec_4", Symbol: "BTC-USD", Name: "Bitcoin", Recommendation: models.RatingBuy, Sector: "Cryptocurrency"},
	}
}

func TestClassifyIntents(t *testing.T) {
	known := knownRecords()

	tests := []struct {
		name     string
		question string
		intent   Intent
	}{
		{"recommendation by phrase", "Should I buy AAPL?", IntentRecommendation},
		{"recommendation generic", "What do you recommend right now?", IntentRecommendation},
		{"price target", "What is the price target for AAPL?", IntentPrice},
		{"risk", "Is AAPL risky?", IntentRisk},
		{"sector", "How is the technology sector doing?", IntentSector},
		{"portfolio", "How should I structure my portfolio?", IntentPortfolio},
		{"market", "What is the market outlook?", IntentMarket},
		{"general catch-all", "hello there", IntentGeneral},
		{"general nonsense", "asdfqwer", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.question, known)
			require.Equal(t, tt.intent, result.Intent)
		})
	}
}

// A question matching several keyword rules must resolve to the
// earliest rule, not the most specific one.
func TestClassifyRuleOrder(t *testing.T) {
	known := knownRecords()

	tests := []struct {
		question string
		intent   Intent
	}{
		{"Should I buy AAPL or is it too risky?", IntentRecommendation},
		{"What is the price target, and how risky is AAPL?", IntentPrice},
		{"Is the technology sector risky?", IntentRisk},
		{"How does my portfolio compare to the market?", IntentPortfolio},
	}

	for _, tt := range tests {
		result := Classify(tt.question, known)
		require.Equal(t, tt.intent, result.Intent, "question: %s", tt.question)
	}
}

// An unrecognized ticker candidate forces the unknown-symbol intent
// even when the question also matches a keyword rule or names a known
// symbol.
func TestClassifyUnknownSymbolDominates(t *testing.T) {
	known := knownRecords()

	result := Classify("Should I buy ZZZZ?", known)
	require.Equal(t, IntentUnknownSymbol, result.Intent)
	require.Equal(t, []string{"ZZZZ"}, result.UnknownSymbols)

	result = Classify("Should I buy AAPL or QQZZ?", known)
	require.Equal(t, IntentUnknownSymbol, result.Intent)
	require.Equal(t, []string{"QQZZ"}, result.UnknownSymbols)
	require.Len(t, result.Mentioned, 1)
	require.Equal(t, "AAPL", result.Mentioned[0].Symbol)
}

// Pair symbols like BTC-USD split at the dash during extraction; the
// surviving BTC half must resolve as known, not trip the
// unknown-symbol short-circuit.
func TestClassifyPairSymbolComponents(t *testing.T) {
	known := knownRecords()

	result := Classify("Should I buy BTC-USD?", known)
	require.Equal(t, IntentRecommendation, result.Intent)
	require.Empty(t, result.UnknownSymbols)
	require.Len(t, result.Mentioned, 1)
	require.Equal(t, "BTC-USD", result.Mentioned[0].Symbol)

	result = Classify("Should I buy BTC?", known)
	require.Equal(t, IntentRecommendation, result.Intent)
	require.Empty(t, result.UnknownSymbols)
}

func TestClassifyMentionsByName(t *testing.T) {
	known := knownRecords()

	result := Classify("What is the market outlook for bitcoin?", known)
	require.Equal(t, IntentMarket, result.Intent)
	require.Len(t, result.Mentioned, 1)
	require.Equal(t, "BTC-USD", result.Mentioned[0].Symbol)
}
