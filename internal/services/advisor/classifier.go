package advisor

import (
	"strings"

	"github.com/ternarybob/consilium/internal/models"
)

// Classification is the result of routing a question
type Classification struct {
	Intent         Intent
	Mentioned      []*models.Recommendation
	UnknownSymbols []string
}

// Classify determines the intent of a question against the current
// recommendation set.
//
// Candidate symbols that match no known record force the
// unknown-symbol intent and short-circuit every other rule, even when
// the question also names a known symbol or matches a keyword pattern.
// Otherwise the ordered keyword rules apply, first match wins, with
// general as the catch-all. Every input resolves to exactly one intent.
func Classify(question string, known []*models.Recommendation) Classification {
	lower := strings.ToLower(question)

	var mentioned []*models.Recommendation
	for _, rec := range known {
		if strings.Contains(lower, strings.ToLower(rec.Symbol)) ||
			strings.Contains(lower, strings.ToLower(rec.Name)) {
			mentioned = append(mentioned, rec)
		}
	}

	var unknown []string
	for _, candidate := range ExtractSymbols(question) {
		if !isKnownSymbol(candidate, known) {
			unknown = append(unknown, candidate)
		}
	}
	if len(unknown) > 0 {
		return Classification{
			Intent:         IntentUnknownSymbol,
			Mentioned:      mentioned,
			UnknownSymbols: unknown,
		}
	}

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return Classification{Intent: rule.intent, Mentioned: mentioned}
			}
		}
	}

	return Classification{Intent: IntentGeneral, Mentioned: mentioned}
}

// isKnownSymbol matches a candidate against the known symbols. A
// dash-delimited component also counts: the extractor splits pair
// symbols like BTC-USD at the dash, and the BTC half must not read as
// an unknown ticker.
func isKnownSymbol(candidate string, known []*models.Recommendation) bool {
	for _, rec := range known {
		if strings.EqualFold(candidate, rec.Symbol) {
			return true
		}
		for _, part := range strings.Split(rec.Symbol, "-") {
			if strings.EqualFold(candidate, part) {
				return true
			}
		}
	}
	return false
}
