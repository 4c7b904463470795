package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSymbols(t *testing.T) {
	tests := []struct {
		name     string
		question string
		expected []string
	}{
		{"bare ticker", "Should I buy AAPL?", []string{"AAPL"}},
		{"dollar prefix", "What about $TSLA this week?", []string{"TSLA", "WEEK"}},
		{"dot suffix", "BRK. looks interesting", []string{"BRK", "LOOKS"}},
		{"multiple tickers", "Compare AAPL and MSFT please", []string{"AAPL", "MSFT"}},
		{"lowercase input upper-cased", "should i buy nvda?", []string{"NVDA"}},
		{"all stop words", "BUY SELL HOLD", []string{}},
		{"no candidates", "asdfqwer", []string{}},
		{"too long filtered", "GOOGLE is huge", []string{"HUGE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractSymbols(tt.question)
			require.ElementsMatch(t, tt.expected, result)
		})
	}
}

func TestExtractSymbolsDeduplicatesAndSorts(t *testing.T) {
	result := ExtractSymbols("$NVDA or NVDA or maybe AMD")
	require.Equal(t, []string{"AMD", "NVDA"}, result)
}

func TestExtractSymbolsLengthBounds(t *testing.T) {
	// single letters never survive, five letters do
	result := ExtractSymbols("Z up, ZYXWV down")
	require.Equal(t, []string{"ZYXWV"}, result)
}
