package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/consilium/internal/models"
)

// Response is a composed answer for one intent
type Response struct {
	Answer          string
	RelevantSymbols []string
	Confidence      float64
	Sources         []string
}

const sourceDatabase = "Recommendation Database"
const sourceSynthetic = "Synthetic Screening Model"

// cryptoSymbol gets thousands formatting with no decimals instead of
// the standard 2-decimal price format.
const cryptoSymbol = "BTC-USD"

// composeRecommendation renders a buy/hold/sell answer. The known-symbol
// branch quotes the record's first three key factors; the no-symbol
// branch lists the top three BUY records by confidence.
func composeRecommendation(mentioned, all []*models.Recommendation) Response {
	if len(mentioned) > 0 {
		rec := mentioned[0]
		var b strings.Builder
		fmt.Fprintf(&b, "Our analyst %s rates %s (%s) a %s with %d%% confidence. ",
			rec.Analyst, rec.Symbol, rec.Name, rec.Recommendation, rec.ConfidenceScore)
		upside := rec.UpsidePercent()
		if upside >= 0 {
			fmt.Fprintf(&b, "The %s target of %s implies %.1f%% upside from %s. ",
				rec.Timeframe, formatPrice(rec.Symbol, rec.TargetPrice), upside,
				formatPrice(rec.Symbol, rec.CurrentPrice))
		} else {
			fmt.Fprintf(&b, "The %s target of %s implies %.1f%% downside from %s. ",
				rec.Timeframe, formatPrice(rec.Symbol, rec.TargetPrice), -upside,
				formatPrice(rec.Symbol, rec.CurrentPrice))
		}
		factors := firstN(rec.KeyFactors, 3)
		if len(factors) > 0 {
			fmt.Fprintf(&b, "Key factors: %s.", strings.Join(factors, "; "))
		}
		return Response{
			Answer:          b.String(),
			RelevantSymbols: []string{rec.Symbol},
			Confidence:      0.9,
			Sources:         []string{"Analyst: " + rec.Analyst},
		}
	}

	buys := filterByRating(all, models.RatingBuy)
	sort.SliceStable(buys, func(i, j int) bool {
		return buys[i].ConfidenceScore > buys[j].ConfidenceScore
	})
	top := buys
	if len(top) > 3 {
		top = top[:3]
	}

	var b strings.Builder
	b.WriteString("Here are our highest-conviction BUY ideas right now: ")
	symbols := make([]string, 0, len(top))
	for i, rec := range top {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s (%s) with %.1f%% upside to %s at %d%% confidence.",
			rec.Symbol, rec.Name, rec.UpsidePercent(),
			formatPrice(rec.Symbol, rec.TargetPrice), rec.ConfidenceScore)
		symbols = append(symbols, rec.Symbol)
	}
	if len(top) == 0 {
		b.Reset()
		b.WriteString("No BUY-rated recommendations are available at the moment.")
	}
	return Response{
		Answer:          b.String(),
		RelevantSymbols: symbols,
		Confidence:      0.85,
		Sources:         []string{sourceDatabase},
	}
}

// composePrice renders price target commentary. BTC-USD uses thousands
// formatting; an RSI band is appended only when RSI is present.
func composePrice(mentioned, all []*models.Recommendation) Response {
	if len(mentioned) > 0 {
		rec := mentioned[0]
		var b strings.Builder
		fmt.Fprintf(&b, "%s is trading at %s with a %s price target of %s (%+.1f%%). ",
			rec.Symbol, formatPrice(rec.Symbol, rec.CurrentPrice),
			rec.Timeframe, formatPrice(rec.Symbol, rec.TargetPrice), rec.UpsidePercent())
		fmt.Fprintf(&b, "The last 24 hours moved the price %+.2f%%.", rec.PriceChangePercent)
		if rec.Technical != nil && rec.Technical.RSI != nil {
			rsi := *rec.Technical.RSI
			switch {
			case rsi > 70:
				fmt.Fprintf(&b, " RSI at %.1f suggests the symbol is overbought.", rsi)
			case rsi < 30:
				fmt.Fprintf(&b, " RSI at %.1f suggests the symbol is oversold.", rsi)
			default:
				fmt.Fprintf(&b, " RSI at %.1f is in neutral territory.", rsi)
			}
		}
		return Response{
			Answer:          b.String(),
			RelevantSymbols: []string{rec.Symbol},
			Confidence:      0.88,
			Sources:         []string{"Analyst: " + rec.Analyst},
		}
	}

	confident := make([]*models.Recommendation, 0)
	for _, rec := range all {
		if rec.ConfidenceScore >= 80 {
			confident = append(confident, rec)
		}
	}
	sort.SliceStable(confident, func(i, j int) bool {
		return confident[i].ConfidenceScore > confident[j].ConfidenceScore
	})
	if len(confident) > 4 {
		confident = confident[:4]
	}

	var b strings.Builder
	b.WriteString("High-confidence price targets: ")
	symbols := make([]string, 0, len(confident))
	for i, rec := range confident {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s targets %s from %s (%d%% confidence).",
			rec.Symbol, formatPrice(rec.Symbol, rec.TargetPrice),
			formatPrice(rec.Symbol, rec.CurrentPrice), rec.ConfidenceScore)
		symbols = append(symbols, rec.Symbol)
	}
	if len(confident) == 0 {
		b.Reset()
		b.WriteString("No high-confidence price targets are available at the moment.")
	}
	return Response{
		Answer:          b.String(),
		RelevantSymbols: symbols,
		Confidence:      0.8,
		Sources:         []string{sourceDatabase},
	}
}

// composeRisk renders risk commentary. The known-symbol branch quotes
// the record's last three key factors, not the first three; that
// asymmetry with the recommendation composer is deliberate.
func composeRisk(mentioned, all []*models.Recommendation) Response {
	if len(mentioned) > 0 {
		rec := mentioned[0]
		volatility := impliedVolatility(rec)
		var b strings.Builder
		fmt.Fprintf(&b, "%s carries %s risk. ", rec.Symbol, rec.RiskLevel)
		switch {
		case volatility > 0.4:
			fmt.Fprintf(&b, "Volatility of %.2f means high price swings are likely. ", volatility)
		case volatility > 0.25:
			fmt.Fprintf(&b, "Volatility of %.2f suggests moderate price movement. ", volatility)
		default:
			fmt.Fprintf(&b, "Volatility of %.2f points to relatively stable trading. ", volatility)
		}
		factors := lastN(rec.KeyFactors, 3)
		if len(factors) > 0 {
			fmt.Fprintf(&b, "Watch items: %s.", strings.Join(factors, "; "))
		}
		return Response{
			Answer:          b.String(),
			RelevantSymbols: []string{rec.Symbol},
			Confidence:      0.85,
			Sources:         []string{"Analyst: " + rec.Analyst},
		}
	}

	buckets := map[models.RiskLevel][]string{}
	for _, rec := range all {
		if len(buckets[rec.RiskLevel]) < 5 {
			buckets[rec.RiskLevel] = append(buckets[rec.RiskLevel], rec.Symbol)
		}
	}

	var b strings.Builder
	b.WriteString("Risk overview of our coverage: ")
	var symbols []string
	for _, level := range []models.RiskLevel{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		if names := buckets[level]; len(names) > 0 {
			fmt.Fprintf(&b, "%s risk: %s. ", level, strings.Join(names, ", "))
			symbols = append(symbols, names...)
		}
	}
	return Response{
		Answer:          strings.TrimSpace(b.String()),
		RelevantSymbols: symbols,
		Confidence:      0.8,
		Sources:         []string{sourceDatabase},
	}
}

// composeSector reports sector breakdowns. Questions naming technology
// get only the Technology bucket.
func composeSector(question string, all []*models.Recommendation) Response {
	lower := strings.ToLower(question)

	if strings.Contains(lower, "technology") || strings.Contains(lower, "tech") {
		var b strings.Builder
		b.WriteString("Technology sector coverage: ")
		var symbols []string
		count := 0
		for _, rec := range all {
			if rec.Sector != "Technology" || count >= 5 {
				continue
			}
			fmt.Fprintf(&b, "%s is rated %s (%d%% confidence). ",
				rec.Symbol, rec.Recommendation, rec.ConfidenceScore)
			symbols = append(symbols, rec.Symbol)
			count++
		}
		if count == 0 {
			b.Reset()
			b.WriteString("No Technology sector coverage is available at the moment.")
		}
		return Response{
			Answer:          strings.TrimSpace(b.String()),
			RelevantSymbols: symbols,
			Confidence:      0.8,
			Sources:         []string{sourceDatabase},
		}
	}

	totals := map[string]int{}
	buyCounts := map[string]int{}
	for _, rec := range all {
		sector := rec.Sector
		if sector == "" {
			sector = "Diversified"
		}
		totals[sector]++
		if rec.Recommendation == models.RatingBuy {
			buyCounts[sector]++
		}
	}

	sectors := make([]string, 0, len(totals))
	for sector := range totals {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	var b strings.Builder
	b.WriteString("Sector breakdown: ")
	for _, sector := range sectors {
		fmt.Fprintf(&b, "%s has %d BUY of %d covered. ", sector, buyCounts[sector], totals[sector])
	}
	return Response{
		Answer:          strings.TrimSpace(b.String()),
		RelevantSymbols: []string{},
		Confidence:      0.8,
		Sources:         []string{sourceDatabase},
	}
}

// composePortfolio builds a diversified BUY-only allocation: best record
// per sector (cap 5 sectors) plus a risk-level percentage breakdown over
// all BUY records.
func composePortfolio(all []*models.Recommendation) Response {
	buys := filterByRating(all, models.RatingBuy)
	if len(buys) == 0 {
		return Response{
			Answer:          "No BUY-rated recommendations are available to build a portfolio from.",
			RelevantSymbols: []string{},
			Confidence:      0.82,
			Sources:         []string{sourceDatabase},
		}
	}

	bestBySector := map[string]*models.Recommendation{}
	for _, rec := range buys {
		sector := rec.Sector
		if sector == "" {
			sector = "Diversified"
		}
		if best, ok := bestBySector[sector]; !ok || rec.ConfidenceScore > best.ConfidenceScore {
			bestBySector[sector] = rec
		}
	}

	sectors := make([]string, 0, len(bestBySector))
	for sector := range bestBySector {
		sectors = append(sectors, sector)
	}
	sort.Slice(sectors, func(i, j int) bool {
		return bestBySector[sectors[i]].ConfidenceScore > bestBySector[sectors[j]].ConfidenceScore
	})
	if len(sectors) > 5 {
		sectors = sectors[:5]
	}

	var b strings.Builder
	b.WriteString("A diversified allocation from our BUY list: ")
	symbols := make([]string, 0, len(sectors))
	for _, sector := range sectors {
		rec := bestBySector[sector]
		fmt.Fprintf(&b, "%s via %s (%d%% confidence). ", sector, rec.Symbol, rec.ConfidenceScore)
		symbols = append(symbols, rec.Symbol)
	}

	riskCounts := map[models.RiskLevel]int{}
	for _, rec := range buys {
		riskCounts[rec.RiskLevel]++
	}
	b.WriteString("Risk mix across BUY ideas: ")
	for i, level := range []models.RiskLevel{models.RiskLow, models.RiskMedium, models.RiskHigh} {
		pct := float64(riskCounts[level]) / float64(len(buys)) * 100
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.0f%% %s", pct, level)
	}
	b.WriteString(".")

	return Response{
		Answer:          b.String(),
		RelevantSymbols: symbols,
		Confidence:      0.82,
		Sources:         []string{sourceDatabase},
	}
}

// composeMarket reports overall sentiment from the global rating mix.
func composeMarket(all []*models.Recommendation) Response {
	if len(all) == 0 {
		return Response{
			Answer:          "No market coverage is available at the moment.",
			RelevantSymbols: []string{},
			Confidence:      0.8,
			Sources:         []string{sourceDatabase},
		}
	}

	counts := map[models.Rating]int{}
	for _, rec := range all {
		counts[rec.Recommendation]++
	}
	total := float64(len(all))
	buyPct := float64(counts[models.RatingBuy]) / total * 100
	holdPct := float64(counts[models.RatingHold]) / total * 100
	sellPct := float64(counts[models.RatingSell]) / total * 100

	sentiment := "neutral"
	if buyPct > 60 {
		sentiment = "bullish"
	} else if buyPct <= 40 {
		sentiment = "bearish"
	}

	buySectors := map[string]int{}
	for _, rec := range all {
		if rec.Recommendation != models.RatingBuy {
			continue
		}
		sector := rec.Sector
		if sector == "" {
			sector = "Diversified"
		}
		buySectors[sector]++
	}
	type sectorCount struct {
		sector string
		count  int
	}
	ranked := make([]sectorCount, 0, len(buySectors))
	for sector, count := range buySectors {
		ranked = append(ranked, sectorCount{sector, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].sector < ranked[j].sector
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Our coverage skews %s: %.0f%% BUY, %.0f%% HOLD, %.0f%% SELL across %d records. ",
		sentiment, buyPct, holdPct, sellPct, len(all))
	if len(ranked) > 0 {
		names := make([]string, 0, len(ranked))
		for _, sc := range ranked {
			names = append(names, fmt.Sprintf("%s (%d)", sc.sector, sc.count))
		}
		fmt.Fprintf(&b, "Strongest BUY concentration: %s.", strings.Join(names, ", "))
	}

	return Response{
		Answer:          strings.TrimSpace(b.String()),
		RelevantSymbols: []string{},
		Confidence:      0.8,
		Sources:         []string{sourceDatabase},
	}
}

// composeGeneral renders a profile card for a mentioned symbol, or the
// static help message with live corpus counts.
func composeGeneral(mentioned, all []*models.Recommendation) Response {
	if len(mentioned) > 0 {
		rec := mentioned[0]
		answer := fmt.Sprintf(
			"%s (%s) - %s, %s sector. Trading at %s, %s rated with %s risk, %d%% confidence. Analyst: %s, horizon %s.",
			rec.Symbol, rec.Name, rec.AssetType, orDefault(rec.Sector, "Diversified"),
			formatPrice(rec.Symbol, rec.CurrentPrice), rec.Recommendation,
			rec.RiskLevel, rec.ConfidenceScore, rec.Analyst, rec.Timeframe)
		return Response{
			Answer:          answer,
			RelevantSymbols: []string{rec.Symbol},
			Confidence:      0.85,
			Sources:         []string{"Analyst: " + rec.Analyst},
		}
	}

	sectors := map[string]struct{}{}
	for _, rec := range all {
		if rec.Sector != "" {
			sectors[rec.Sector] = struct{}{}
		}
	}

	answer := fmt.Sprintf(
		"I can help with investment questions. Try asking about: specific symbols (\"Should I buy AAPL?\"), "+
			"price targets, risk levels, sectors, portfolio ideas, or the market outlook. "+
			"I currently track %d recommendations across %d sectors.",
		len(all), len(sectors))
	return Response{
		Answer:          answer,
		RelevantSymbols: []string{},
		Confidence:      0.7,
		Sources:         []string{sourceDatabase},
	}
}

// composeSynthetic renders an answer for a generated record. Reported
// confidence takes a 10% haircut when the implied return is extreme,
// to avoid over-committing to fabricated targets.
func composeSynthetic(rec *models.Recommendation) Response {
	upside := rec.UpsidePercent()

	confidence := 0.75
	if upside > 20 || upside < -15 {
		confidence *= 0.9
	}

	volatility := impliedVolatility(rec)

	var b strings.Builder
	fmt.Fprintf(&b, "%s is not in our analyst coverage, so this is a pattern-based estimate. ", rec.Symbol)
	fmt.Fprintf(&b, "It screens as a %s-sector name around %s with simulated volatility of %.2f (%s risk). ",
		orDefault(rec.Sector, "Technology"), formatPrice(rec.Symbol, rec.CurrentPrice), volatility, rec.RiskLevel)
	fmt.Fprintf(&b, "The heuristic rating is %s with an indicative target of %s (%+.1f%%). ",
		rec.Recommendation, formatPrice(rec.Symbol, rec.TargetPrice), upside)
	b.WriteString("Treat this as illustrative only; no real market data backs it.")

	return Response{
		Answer:          b.String(),
		RelevantSymbols: []string{rec.Symbol},
		Confidence:      confidence,
		Sources:         []string{sourceSynthetic},
	}
}

// formatPrice renders a dollar amount; the crypto symbol gets grouped
// thousands with no decimals, everything else two decimals.
func formatPrice(symbol string, v float64) string {
	if symbol == cryptoSymbol {
		return "$" + groupThousands(int64(v+0.5))
	}
	return fmt.Sprintf("$%.2f", v)
}

func groupThousands(v int64) string {
	s := fmt.Sprintf("%d", v)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}

// impliedVolatility reads the technical volatility when present,
// falling back to a band derived from the stated risk level.
func impliedVolatility(rec *models.Recommendation) float64 {
	if rec.Technical != nil && rec.Technical.Volatility != nil {
		return *rec.Technical.Volatility
	}
	switch rec.RiskLevel {
	case models.RiskLow:
		return 0.2
	case models.RiskMedium:
		return 0.3
	default:
		return 0.45
	}
}

func filterByRating(recs []*models.Recommendation, rating models.Rating) []*models.Recommendation {
	out := make([]*models.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.Recommendation == rating {
			out = append(out, rec)
		}
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
