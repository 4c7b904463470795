package advisor

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/models"
)

// sectorByLetter assigns a plausible sector from the symbol's first letter
var sectorByLetter = map[byte]string{
	'A': "Technology",
	'B': "Financial Services",
	'C': "Consumer Goods",
	'D': "Healthcare",
	'E': "Energy",
	'F': "Financial Services",
	'G': "Industrials",
	'H': "Healthcare",
	'I': "Technology",
	'J': "Industrials",
	'K': "Consumer Goods",
	'L': "Communication Services",
	'M': "Materials",
	'N': "Technology",
	'O': "Energy",
	'P': "Healthcare",
	'Q': "Technology",
	'R': "Real Estate",
	'S': "Technology",
	'T': "Communication Services",
	'U': "Utilities",
	'V': "Financial Services",
	'W': "Consumer Goods",
	'X': "Technology",
	'Y': "Communication Services",
	'Z': "Technology",
}

type priceRange struct {
	min, max float64
}

// sectorMultipliers scale the length-tiered base price per sector
var sectorMultipliers = map[string]priceRange{
	"Technology":             {1.2, 2.0},
	"Financial Services":     {0.9, 1.5},
	"Healthcare":             {1.0, 1.7},
	"Energy":                 {0.8, 1.4},
	"Consumer Goods":         {0.9, 1.4},
	"Industrials":            {0.9, 1.5},
	"Communication Services": {1.0, 1.6},
	"Utilities":              {0.7, 1.2},
	"Materials":              {0.8, 1.3},
	"Real Estate":            {0.7, 1.3},
}

// Generator fabricates recommendation records for symbols that have no
// backing analyst coverage. Output is synthetic and never persisted.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with the given random source.
// Pass a seeded source for reproducible output.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate derives a fully-populated synthetic Recommendation for an
// unknown symbol. Returns nil unless the symbol is 1-5 alphabetic
// characters.
func (g *Generator) Generate(symbol string) *models.Recommendation {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if len(symbol) < 1 || len(symbol) > 5 || !isAlphabetic(symbol) {
		return nil
	}

	sector, ok := sectorByLetter[symbol[0]]
	if !ok {
		sector = "Technology"
	}

	var basePrice float64
	switch {
	case len(symbol) <= 2:
		basePrice = g.uniform(50, 300)
	case len(symbol) == 3:
		basePrice = g.uniform(20, 150)
	default:
		basePrice = g.uniform(5, 50)
	}

	multiplier, ok := sectorMultipliers[sector]
	if !ok {
		multiplier = priceRange{1.0, 1.5}
	}
	currentPrice := basePrice * g.uniform(multiplier.min, multiplier.max)

	volatility := g.uniform(0.15, 0.6)
	riskLevel := models.RiskHigh
	switch {
	case volatility < 0.25:
		riskLevel = models.RiskLow
	case volatility < 0.4:
		riskLevel = models.RiskMedium
	}

	priceChangePercent := g.uniform(-5, 5) * (volatility / 0.3)

	rating := g.pickRating(priceChangePercent)

	var targetPrice float64
	switch rating {
	case models.RatingBuy:
		targetPrice = currentPrice * g.uniform(1.08, 1.25)
	case models.RatingHold:
		targetPrice = currentPrice * g.uniform(0.95, 1.08)
	default:
		targetPrice = currentPrice * g.uniform(0.85, 0.95)
	}

	rsi := round1(g.uniform(30, 80))
	vol := round2(volatility)

	return &models.Recommendation{
		ID:                 common.NewRecommendationID(),
		Symbol:             symbol,
		Name:               symbol + " (pattern analysis)",
		AssetType:          models.AssetTypeStock,
		CurrentPrice:       round2(currentPrice),
		TargetPrice:        round2(targetPrice),
		Recommendation:     rating,
		RiskLevel:          riskLevel,
		ConfidenceScore:    65 + g.rng.Intn(24), // 65-88
		Timeframe:          "6M",
		Analyst:            "Automated Pattern Screening",
		Analysis:           g.analysisText(symbol, sector, rating, priceChangePercent),
		KeyFactors:         g.keyFactors(sector, rating, riskLevel),
		LastUpdated:        time.Now().UTC(),
		PriceChange24h:     round2(currentPrice * priceChangePercent / 100),
		PriceChangePercent: round2(priceChangePercent),
		Sector:             sector,
		Technical: &models.TechnicalIndicators{
			RSI:        &rsi,
			Volatility: &vol,
		},
	}
}

// pickRating makes a weighted choice over BUY/HOLD/SELL, shifting the
// weights with simulated momentum.
func (g *Generator) pickRating(priceChangePercent float64) models.Rating {
	buy, hold := 0.6, 0.3
	if priceChangePercent > 2 {
		buy, hold = 0.7, 0.25
	} else if priceChangePercent < -3 {
		buy, hold = 0.4, 0.4
	}

	roll := g.rng.Float64()
	switch {
	case roll < buy:
		return models.RatingBuy
	case roll < buy+hold:
		return models.RatingHold
	default:
		return models.RatingSell
	}
}

func (g *Generator) analysisText(symbol, sector string, rating models.Rating, momentum float64) string {
	direction := "mixed"
	if momentum > 2 {
		direction = "positive"
	} else if momentum < -3 {
		direction = "negative"
	}
	return fmt.Sprintf(
		"%s screens as a %s-sector candidate with %s short-term momentum. "+
			"This view is generated from symbol-level heuristics without analyst coverage; "+
			"the %s rating reflects pattern-based screening only.",
		symbol, sector, direction, rating)
}

func (g *Generator) keyFactors(sector string, rating models.Rating, risk models.RiskLevel) []string {
	return []string{
		fmt.Sprintf("%s sector exposure", sector),
		fmt.Sprintf("Screened %s rating from momentum heuristics", rating),
		fmt.Sprintf("%s risk profile from simulated volatility", risk),
		"No analyst coverage available",
	}
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
