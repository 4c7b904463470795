package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/models"
)

// Pack is one seed pack file: extra recommendations and articles merged
// into the store on seeding, on top of the built-in corpus.
type Pack struct {
	Recommendations []RecommendationSeed `toml:"recommendations"`
	Articles        []ArticleSeed        `toml:"articles"`
}

// RecommendationSeed mirrors models.Recommendation with TOML field
// names. ID is assigned on load; LastUpdated defaults to load time.
type RecommendationSeed struct {
	Symbol             string   `toml:"symbol"`
	Name               string   `toml:"name"`
	AssetType          string   `toml:"asset_type"`
	CurrentPrice       float64  `toml:"current_price"`
	TargetPrice        float64  `toml:"target_price"`
	Recommendation     string   `toml:"recommendation"`
	RiskLevel          string   `toml:"risk_level"`
	ConfidenceScore    int      `toml:"confidence_score"`
	Timeframe          string   `toml:"timeframe"`
	Analyst            string   `toml:"analyst"`
	Analysis           string   `toml:"analysis"`
	KeyFactors         []string `toml:"key_factors"`
	PriceChange24h     float64  `toml:"price_change_24h"`
	PriceChangePercent float64  `toml:"price_change_percent"`
	MarketCap          string   `toml:"market_cap"`
	Sector             string   `toml:"sector"`
}

// ArticleSeed mirrors models.NewsArticle with TOML field names.
// PublishedHoursAgo offsets the publish date backwards from load time.
type ArticleSeed struct {
	Title             string   `toml:"title"`
	Summary           string   `toml:"summary"`
	Content           string   `toml:"content"`
	Author            string   `toml:"author"`
	Category          string   `toml:"category"`
	PublishedHoursAgo int      `toml:"published_hours_ago"`
	ImageURL          string   `toml:"image_url"`
	Tags              []string `toml:"tags"`
	ReadTime          int      `toml:"read_time"`
}

func (s *RecommendationSeed) validate() error {
	if s.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if s.CurrentPrice <= 0 {
		return fmt.Errorf("current_price must be positive")
	}
	switch models.Rating(s.Recommendation) {
	case models.RatingBuy, models.RatingHold, models.RatingSell:
	default:
		return fmt.Errorf("invalid recommendation %q", s.Recommendation)
	}
	switch models.RiskLevel(s.RiskLevel) {
	case models.RiskLow, models.RiskMedium, models.RiskHigh:
	default:
		return fmt.Errorf("invalid risk_level %q", s.RiskLevel)
	}
	if s.ConfidenceScore < 0 || s.ConfidenceScore > 100 {
		return fmt.Errorf("confidence_score must be 0-100")
	}
	return nil
}

func (s *RecommendationSeed) toModel(now time.Time) *models.Recommendation {
	return &models.Recommendation{
		ID:                 common.NewRecommendationID(),
		Symbol:             strings.ToUpper(s.Symbol),
		Name:               s.Name,
		AssetType:          models.AssetType(s.AssetType),
		CurrentPrice:       s.CurrentPrice,
		TargetPrice:        s.TargetPrice,
		Recommendation:     models.Rating(s.Recommendation),
		RiskLevel:          models.RiskLevel(s.RiskLevel),
		ConfidenceScore:    s.ConfidenceScore,
		Timeframe:          s.Timeframe,
		Analyst:            s.Analyst,
		Analysis:           s.Analysis,
		KeyFactors:         s.KeyFactors,
		LastUpdated:        now,
		PriceChange24h:     s.PriceChange24h,
		PriceChangePercent: s.PriceChangePercent,
		MarketCap:          s.MarketCap,
		Sector:             s.Sector,
	}
}

func (s *ArticleSeed) toModel(now time.Time) *models.NewsArticle {
	readTime := s.ReadTime
	if readTime == 0 {
		readTime = 5
	}
	return &models.NewsArticle{
		ID:          common.NewArticleID(),
		Title:       s.Title,
		Summary:     s.Summary,
		Content:     s.Content,
		Author:      s.Author,
		Category:    s.Category,
		PublishDate: now.Add(-time.Duration(s.PublishedHoursAgo) * time.Hour),
		ImageURL:    s.ImageURL,
		Tags:        s.Tags,
		ReadTime:    readTime,
	}
}

// LoadPacks reads every *.toml file in dir, in lexical order. A missing
// directory yields no packs and no error; a malformed pack file is an
// error.
func LoadPacks(dir string) ([]*Pack, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read packs directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	packs := make([]*Pack, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pack %s: %w", path, err)
		}

		var pack Pack
		if err := toml.Unmarshal(data, &pack); err != nil {
			return nil, fmt.Errorf("failed to parse pack %s: %w", path, err)
		}
		for i := range pack.Recommendations {
			if err := pack.Recommendations[i].validate(); err != nil {
				return nil, fmt.Errorf("invalid recommendation in pack %s: %w", path, err)
			}
		}
		packs = append(packs, &pack)
	}
	return packs, nil
}
