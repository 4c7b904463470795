package models

import (
	"time"
)

// AssetType classifies a tradable symbol
type AssetType string

const (
	AssetTypeStock     AssetType = "stock"
	AssetTypeIndex     AssetType = "index"
	AssetTypeCommodity AssetType = "commodity"
)

// Rating is the analyst recommendation on a symbol
type Rating string

const (
	RatingBuy  Rating = "BUY"
	RatingHold Rating = "HOLD"
	RatingSell Rating = "SELL"
)

// RiskLevel bands the risk of a recommendation
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// TechnicalIndicators holds optional per-symbol technicals.
// Each field is independently optional.
type TechnicalIndicators struct {
	RSI          *float64 `json:"rsi,omitempty"`
	MovingAvg50  *float64 `json:"moving_avg_50,omitempty"`
	MovingAvg200 *float64 `json:"moving_avg_200,omitempty"`
	PERatio      *float64 `json:"pe_ratio,omitempty"`
	Volatility   *float64 `json:"volatility,omitempty"`
}

// Recommendation represents a point-in-time analyst view on a tradable symbol.
// Records are addressed by their own ID field, not the store's native key,
// so external references stay stable across reseeds.
type Recommendation struct {
	ID                 string               `json:"id" badgerhold:"key"`
	Symbol             string               `json:"symbol" badgerholdIndex:"Symbol"`
	Name               string               `json:"name"`
	AssetType          AssetType            `json:"asset_type" badgerholdIndex:"AssetType"`
	CurrentPrice       float64              `json:"current_price"`
	TargetPrice        float64              `json:"target_price"`
	Recommendation     Rating               `json:"recommendation"`
	RiskLevel          RiskLevel            `json:"risk_level"`
	ConfidenceScore    int                  `json:"confidence_score"` // 0-100
	Timeframe          string               `json:"timeframe"`        // horizon label, e.g. "6M"
	Analyst            string               `json:"analyst"`
	Analysis           string               `json:"analysis"`
	KeyFactors         []string             `json:"key_factors"`
	LastUpdated        time.Time            `json:"last_updated"`
	PriceChange24h     float64              `json:"price_change_24h"`
	PriceChangePercent float64              `json:"price_change_percent"`
	MarketCap          string               `json:"market_cap,omitempty"`
	Sector             string               `json:"sector,omitempty"`
	Technical          *TechnicalIndicators `json:"technical_indicators,omitempty"`
}

// UpsidePercent returns the implied return to target as a percentage
func (r *Recommendation) UpsidePercent() float64 {
	if r.CurrentPrice == 0 {
		return 0
	}
	return (r.TargetPrice - r.CurrentPrice) / r.CurrentPrice * 100
}

// InvestmentSummary aggregates the recommendation collection
type InvestmentSummary struct {
	TotalRecommendations int            `json:"total_recommendations"`
	ByRecommendation     map[string]int `json:"by_recommendation"`
	ByAssetType          map[string]int `json:"by_asset_type"`
	LastUpdated          time.Time      `json:"last_updated"`
}

// AssetTypeCount is one row of the asset type breakdown
type AssetTypeCount struct {
	AssetType string `json:"asset_type"`
	Count     int    `json:"count"`
}
