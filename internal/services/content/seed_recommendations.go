package content

import (
	"time"

	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/models"
)

func f(v float64) *float64 { return &v }

// builtinRecommendations is the baseline recommendation corpus covering
// stocks, ETFs, commodities and crypto across the major sectors.
// LastUpdated values are staggered backwards from now.
func builtinRecommendations(now time.Time) []*models.Recommendation {
	return []*models.Recommendation{
		{
			ID: common.NewRecommendationID(), Symbol: "AAPL", Name: "Apple Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 189.45, TargetPrice: 215.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 87, Timeframe: "12M", Analyst: "Sarah Chen",
			Analysis: "Apple continues to demonstrate strong fundamentals with robust iPhone demand, growing services revenue, and expansion into new product categories. The company's ecosystem lock-in effect and strong brand loyalty provide sustainable competitive advantages.",
			KeyFactors: []string{
				"Strong Q4 iPhone sales exceeding expectations",
				"Services revenue growth of 16% year-over-year",
				"Successful launch of Vision Pro creating new revenue stream",
				"Share buyback program supporting stock price",
				"AI integration across product lineup driving upgrades",
			},
			LastUpdated: now, PriceChange24h: 2.35, PriceChangePercent: 1.26,
			MarketCap: "$2.9T", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(58.3), MovingAvg50: f(185.20), MovingAvg200: f(175.80), PERatio: f(28.5), Volatility: f(0.22)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "MSFT", Name: "Microsoft Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 378.85, TargetPrice: 420.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 92, Timeframe: "12M", Analyst: "David Rodriguez",
			Analysis: "Microsoft's dominant position in cloud computing through Azure, combined with AI leadership via OpenAI partnership, positions the company for continued growth. Strong enterprise customer base and recurring revenue model provide stability.",
			KeyFactors: []string{
				"Azure revenue growth of 29% in latest quarter",
				"AI Copilot integration driving Office 365 upgrades",
				"Gaming division showing strong performance",
				"Enterprise cloud migration accelerating",
				"Strong balance sheet with $75B in cash",
			},
			LastUpdated: now.Add(-2 * time.Hour), PriceChange24h: 4.20, PriceChangePercent: 1.12,
			MarketCap: "$2.8T", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(62.1), MovingAvg50: f(370.15), MovingAvg200: f(340.90), PERatio: f(32.1), Volatility: f(0.19)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "NVDA", Name: "NVIDIA Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 875.30, TargetPrice: 1050.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskHigh, ConfidenceScore: 85, Timeframe: "18M", Analyst: "Emily Zhang",
			Analysis: "NVIDIA remains the clear leader in AI chip technology with dominant market share in data center GPUs. Strong demand for AI infrastructure and gaming recovery support continued growth despite high valuation.",
			KeyFactors: []string{
				"AI chip demand exceeding supply capacity",
				"Data center revenue up 200% year-over-year",
				"Gaming segment showing signs of recovery",
				"Strategic partnerships with major cloud providers",
				"Next-gen Blackwell architecture launching 2024",
			},
			LastUpdated: now.Add(-5 * time.Hour), PriceChange24h: -8.45, PriceChangePercent: -0.95,
			MarketCap: "$2.1T", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(71.8), MovingAvg50: f(820.40), MovingAvg200: f(650.75), PERatio: f(65.2), Volatility: f(0.45)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "TSLA", Name: "Tesla, Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 248.50, TargetPrice: 200.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskHigh, ConfidenceScore: 68, Timeframe: "12M", Analyst: "Michael Thompson",
			Analysis: "Tesla faces increasing competition in the EV market while dealing with production challenges and margin pressure. Autonomy and energy storage provide long-term upside but near-term headwinds persist.",
			KeyFactors: []string{
				"Increased EV competition from traditional automakers",
				"Production ramp challenges at new facilities",
				"Margin pressure from price cuts",
				"Autonomous driving progress slower than expected",
				"Energy storage business showing strong growth",
			},
			LastUpdated: now.Add(-1 * time.Hour), PriceChange24h: -3.75, PriceChangePercent: -1.49,
			MarketCap: "$790B", Sector: "Consumer Discretionary",
			Technical: &models.TechnicalIndicators{RSI: f(45.2), MovingAvg50: f(255.30), MovingAvg200: f(220.15), PERatio: f(78.3), Volatility: f(0.38)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", AssetType: models.AssetTypeIndex,
			CurrentPrice: 521.45, TargetPrice: 550.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 79, Timeframe: "12M", Analyst: "Robert Kim",
			Analysis: "Broad market exposure to 500 largest US companies provides diversified growth potential. Strong corporate earnings, resilient consumer spending, and Fed policy stabilization support continued upward trajectory.",
			KeyFactors: []string{
				"S&P 500 companies showing strong earnings growth",
				"Fed rate cuts expected to boost valuations",
				"Consumer spending remaining resilient",
				"Corporate profit margins stabilizing",
				"Historical long-term performance trend intact",
			},
			LastUpdated: now.Add(-3 * time.Hour), PriceChange24h: 1.85, PriceChangePercent: 0.36,
			MarketCap: "$2.1T AUM", Sector: "Diversified",
			Technical: &models.TechnicalIndicators{RSI: f(55.7), MovingAvg50: f(515.20), MovingAvg200: f(485.40), Volatility: f(0.14)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "BTC-USD", Name: "Bitcoin", AssetType: models.AssetTypeCommodity,
			CurrentPrice: 67250, TargetPrice: 85000, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskHigh, ConfidenceScore: 72, Timeframe: "18M", Analyst: "Alex Morgan",
			Analysis: "Bitcoin continues to gain institutional adoption with ETF approvals driving mainstream acceptance. Halving event and limited supply dynamics support long-term price appreciation despite short-term volatility.",
			KeyFactors: []string{
				"Bitcoin ETF approvals increasing institutional access",
				"Upcoming halving event reducing supply",
				"Corporate treasury adoption continuing",
				"Regulatory clarity improving in major markets",
				"Lightning Network adoption growing",
			},
			LastUpdated: now.Add(-30 * time.Minute), PriceChange24h: 1250, PriceChangePercent: 1.89,
			MarketCap: "$1.3T", Sector: "Cryptocurrency",
			Technical: &models.TechnicalIndicators{RSI: f(64.3), MovingAvg50: f(62500), MovingAvg200: f(45000), Volatility: f(0.65)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "AMZN", Name: "Amazon.com, Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 155.75, TargetPrice: 180.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 83, Timeframe: "12M", Analyst: "Jennifer Liu",
			Analysis: "Amazon's AWS dominance in cloud computing combined with e-commerce leadership and emerging AI capabilities position the company for sustained growth. Cost optimization efforts improving profitability.",
			KeyFactors: []string{
				"AWS maintaining 30%+ market share in cloud",
				"E-commerce margins improving through automation",
				"AI integration across business segments",
				"Advertising business growing rapidly",
				"Prime membership loyalty driving recurring revenue",
			},
			LastUpdated: now.Add(-4 * time.Hour), PriceChange24h: 2.10, PriceChangePercent: 1.37,
			MarketCap: "$1.6T", Sector: "Consumer Discretionary",
			Technical: &models.TechnicalIndicators{RSI: f(59.8), MovingAvg50: f(151.20), MovingAvg200: f(140.85), PERatio: f(45.2), Volatility: f(0.26)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "GOOGL", Name: "Alphabet Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 172.85, TargetPrice: 165.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskMedium, ConfidenceScore: 75, Timeframe: "12M", Analyst: "Kevin Park",
			Analysis: "Google maintains search dominance but faces AI competition and regulatory pressures. Strong cloud growth and YouTube performance offset concerns about core search disruption from generative AI.",
			KeyFactors: []string{
				"Search market share under pressure from AI",
				"Google Cloud growing but trailing competitors",
				"YouTube revenue growth accelerating",
				"Regulatory scrutiny increasing globally",
				"AI investments requiring significant capital",
			},
			LastUpdated: now.Add(-6 * time.Hour), PriceChange24h: -1.25, PriceChangePercent: -0.72,
			MarketCap: "$2.1T", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(48.3), MovingAvg50: f(175.40), MovingAvg200: f(165.90), PERatio: f(24.8), Volatility: f(0.23)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "META", Name: "Meta Platforms, Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 298.75, TargetPrice: 350.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 84, Timeframe: "12M", Analyst: "Sarah Chen",
			Analysis: "Meta's AI investments and metaverse pivot are showing promising results. Strong user engagement across platforms and improving ad efficiency through AI targeting.",
			KeyFactors: []string{
				"Reality Labs showing progress in VR/AR development",
				"AI-driven ad targeting improving ROAS for advertisers",
				"Instagram and WhatsApp monetization expanding",
				"Cost discipline initiatives improving margins",
				"Strong user growth in emerging markets",
			},
			LastUpdated: now.Add(-1 * time.Hour), PriceChange24h: 4.25, PriceChangePercent: 1.44,
			MarketCap: "$760B", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(61.2), MovingAvg50: f(285.40), MovingAvg200: f(260.15), PERatio: f(23.1), Volatility: f(0.28)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "NFLX", Name: "Netflix, Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 456.30, TargetPrice: 500.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 78, Timeframe: "18M", Analyst: "David Rodriguez",
			Analysis: "Netflix's content strategy and global expansion continue to drive subscriber growth. Ad-supported tier gaining traction and improving revenue per user.",
			KeyFactors: []string{
				"Ad-supported tier exceeding subscriber expectations",
				"Strong content pipeline including original productions",
				"International markets showing robust growth",
				"Gaming initiative adding new revenue streams",
				"Password sharing crackdown driving conversions",
			},
			LastUpdated: now.Add(-3 * time.Hour), PriceChange24h: -2.85, PriceChangePercent: -0.62,
			MarketCap: "$200B", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(54.8), MovingAvg50: f(445.20), MovingAvg200: f(420.75), PERatio: f(34.2), Volatility: f(0.32)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "CRM", Name: "Salesforce, Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 224.80, TargetPrice: 260.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 81, Timeframe: "12M", Analyst: "Emily Zhang",
			Analysis: "Salesforce's AI integration across its platform is driving customer adoption and retention. Strong enterprise demand for CRM solutions continues.",
			KeyFactors: []string{
				"Einstein AI platform gaining enterprise traction",
				"Subscription model providing predictable revenue",
				"Strong customer retention rates above 90%",
				"Data Cloud and analytics offerings expanding",
				"Strategic acquisitions enhancing platform capabilities",
			},
			LastUpdated: now.Add(-2 * time.Hour), PriceChange24h: 3.15, PriceChangePercent: 1.42,
			MarketCap: "$220B", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(58.7), MovingAvg50: f(218.30), MovingAvg200: f(205.40), PERatio: f(41.3), Volatility: f(0.25)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "JNJ", Name: "Johnson & Johnson", AssetType: models.AssetTypeStock,
			CurrentPrice: 162.45, TargetPrice: 180.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 89, Timeframe: "12M", Analyst: "Dr. Michael Thompson",
			Analysis: "J&J's diversified healthcare portfolio and strong pharmaceutical pipeline provide stability and growth potential. Dividend aristocrat with consistent returns.",
			KeyFactors: []string{
				"Strong pharmaceutical pipeline with multiple late-stage trials",
				"Medical device division showing recovery post-COVID",
				"Consistent dividend payments for 60+ years",
				"Global healthcare infrastructure well-positioned",
				"Recent spin-off creating focused pure-play healthcare company",
			},
			LastUpdated: now.Add(-4 * time.Hour), PriceChange24h: 1.25, PriceChangePercent: 0.77,
			MarketCap: "$435B", Sector: "Healthcare",
			Technical: &models.TechnicalIndicators{RSI: f(52.3), MovingAvg50: f(159.80), MovingAvg200: f(155.20), PERatio: f(15.8), Volatility: f(0.18)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "PFE", Name: "Pfizer Inc.", AssetType: models.AssetTypeStock,
			CurrentPrice: 28.95, TargetPrice: 35.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskMedium, ConfidenceScore: 65, Timeframe: "12M", Analyst: "Dr. Jennifer Liu",
			Analysis: "Pfizer faces post-COVID revenue normalization but maintains strong pipeline. Oncology and vaccine platforms provide long-term growth opportunities.",
			KeyFactors: []string{
				"COVID vaccine revenues normalizing to baseline",
				"Strong oncology pipeline with multiple approvals expected",
				"RSV vaccine showing commercial promise",
				"Cost reduction initiatives improving efficiency",
				"Attractive dividend yield above 5%",
			},
			LastUpdated: now.Add(-6 * time.Hour), PriceChange24h: -0.45, PriceChangePercent: -1.53,
			MarketCap: "$165B", Sector: "Healthcare",
			Technical: &models.TechnicalIndicators{RSI: f(42.1), MovingAvg50: f(29.80), MovingAvg200: f(32.15), PERatio: f(12.4), Volatility: f(0.24)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "JPM", Name: "JPMorgan Chase & Co.", AssetType: models.AssetTypeStock,
			CurrentPrice: 184.70, TargetPrice: 205.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 86, Timeframe: "12M", Analyst: "Robert Kim",
			Analysis: "JPMorgan's diversified revenue streams and strong balance sheet position it well for economic uncertainty. Rising rates benefit net interest margins.",
			KeyFactors: []string{
				"Net interest margin expansion from higher rates",
				"Strong credit quality with low loss provisions",
				"Investment banking recovery expected",
				"Robust capital ratios exceed regulatory requirements",
				"Consistent dividend growth track record",
			},
			LastUpdated: now.Add(-5 * time.Hour), PriceChange24h: 2.85, PriceChangePercent: 1.57,
			MarketCap: "$540B", Sector: "Financial Services",
			Technical: &models.TechnicalIndicators{RSI: f(64.2), MovingAvg50: f(178.90), MovingAvg200: f(165.45), PERatio: f(11.8), Volatility: f(0.22)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "BAC", Name: "Bank of America Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 33.45, TargetPrice: 40.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 79, Timeframe: "15M", Analyst: "Kevin Park",
			Analysis: "Bank of America benefits significantly from rising interest rates given its large deposit base. Strong consumer banking franchise provides stability.",
			KeyFactors: []string{
				"Large deposit base benefits from rate increases",
				"Consumer banking showing resilient performance",
				"Credit card spending remaining strong",
				"Wealth management division growing assets",
				"Efficiency initiatives reducing operational costs",
			},
			LastUpdated: now.Add(-7 * time.Hour), PriceChange24h: 0.75, PriceChangePercent: 2.29,
			MarketCap: "$270B", Sector: "Financial Services",
			Technical: &models.TechnicalIndicators{RSI: f(59.8), MovingAvg50: f(32.10), MovingAvg200: f(29.85), PERatio: f(12.3), Volatility: f(0.25)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "XOM", Name: "Exxon Mobil Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 108.25, TargetPrice: 125.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 74, Timeframe: "12M", Analyst: "Alex Morgan",
			Analysis: "Exxon's disciplined capital allocation and focus on high-return projects in Permian Basin drive strong cash generation. Dividend sustainability improved.",
			KeyFactors: []string{
				"Permian Basin production ramping significantly",
				"Strong free cash flow generation at current oil prices",
				"Capital discipline maintaining returns focus",
				"Dividend coverage substantially improved",
				"Refining margins providing additional upside",
			},
			LastUpdated: now.Add(-8 * time.Hour), PriceChange24h: 1.95, PriceChangePercent: 1.83,
			MarketCap: "$475B", Sector: "Energy",
			Technical: &models.TechnicalIndicators{RSI: f(56.4), MovingAvg50: f(105.80), MovingAvg200: f(98.30), PERatio: f(14.2), Volatility: f(0.29)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "CVX", Name: "Chevron Corporation", AssetType: models.AssetTypeStock,
			CurrentPrice: 154.80, TargetPrice: 170.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 82, Timeframe: "12M", Analyst: "Maria Santos",
			Analysis: "Chevron's conservative financial management and consistent dividend policy make it a defensive energy play. Strong downstream operations provide stability.",
			KeyFactors: []string{
				"Consistent dividend payments for decades",
				"Strong balance sheet with low debt levels",
				"Diversified operations including refining",
				"Permian and international projects delivering",
				"Share buyback program returning cash to shareholders",
			},
			LastUpdated: now.Add(-9 * time.Hour), PriceChange24h: 0.85, PriceChangePercent: 0.55,
			MarketCap: "$290B", Sector: "Energy",
			Technical: &models.TechnicalIndicators{RSI: f(51.7), MovingAvg50: f(152.40), MovingAvg200: f(148.90), PERatio: f(13.8), Volatility: f(0.21)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "PG", Name: "Procter & Gamble Company", AssetType: models.AssetTypeStock,
			CurrentPrice: 158.30, TargetPrice: 170.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 85, Timeframe: "12M", Analyst: "Lisa Wong",
			Analysis: "P&G's strong brand portfolio and pricing power provide resilience during economic uncertainty. Consistent dividend growth makes it a defensive staple.",
			KeyFactors: []string{
				"Strong brand portfolio with pricing power",
				"Consistent market share in key categories",
				"Innovation pipeline driving premium positioning",
				"Emerging markets growth acceleration",
				"Dividend aristocrat with 67 years of increases",
			},
			LastUpdated: now.Add(-10 * time.Hour), PriceChange24h: 1.45, PriceChangePercent: 0.92,
			MarketCap: "$375B", Sector: "Consumer Staples",
			Technical: &models.TechnicalIndicators{RSI: f(54.2), MovingAvg50: f(156.70), MovingAvg200: f(152.30), PERatio: f(24.1), Volatility: f(0.16)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "KO", Name: "The Coca-Cola Company", AssetType: models.AssetTypeStock,
			CurrentPrice: 62.15, TargetPrice: 68.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskLow, ConfidenceScore: 71, Timeframe: "12M", Analyst: "James Miller",
			Analysis: "Coca-Cola's global brand strength and diversified beverage portfolio provide stability. Health consciousness trends present long-term challenges.",
			KeyFactors: []string{
				"Global brand recognition and distribution network",
				"Diversification into healthier beverage options",
				"Strong emerging markets presence",
				"Reliable dividend payments for 60+ years",
				"Bottling partner relationships providing operational leverage",
			},
			LastUpdated: now.Add(-11 * time.Hour), PriceChange24h: 0.25, PriceChangePercent: 0.40,
			MarketCap: "$270B", Sector: "Consumer Staples",
			Technical: &models.TechnicalIndicators{RSI: f(48.9), MovingAvg50: f(61.80), MovingAvg200: f(59.45), PERatio: f(26.3), Volatility: f(0.14)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "QQQ", Name: "Invesco QQQ Trust ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 428.75, TargetPrice: 465.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 83, Timeframe: "12M", Analyst: "Robert Kim",
			Analysis: "Technology-focused ETF provides exposure to innovation leaders. AI and cloud computing trends support continued outperformance of tech sector.",
			KeyFactors: []string{
				"Exposure to leading technology companies",
				"AI revolution benefiting major holdings",
				"Strong historical performance track record",
				"Liquid trading with tight spreads",
				"Growing influence of technology in economy",
			},
			LastUpdated: now.Add(-2 * time.Hour), PriceChange24h: 3.25, PriceChangePercent: 0.76,
			MarketCap: "$240B AUM", Sector: "Technology",
			Technical: &models.TechnicalIndicators{RSI: f(62.8), MovingAvg50: f(418.30), MovingAvg200: f(385.60), Volatility: f(0.22)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 243.85, TargetPrice: 260.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskLow, ConfidenceScore: 88, Timeframe: "12M", Analyst: "Sarah Chen",
			Analysis: "Broad market exposure with low fees provides excellent diversification. Long-term secular growth of US economy supports continued appreciation.",
			KeyFactors: []string{
				"Complete US stock market exposure",
				"Ultra-low expense ratio of 0.03%",
				"Strong long-term historical returns",
				"Automatic rebalancing and diversification",
				"Backed by Vanguard's reputation and scale",
			},
			LastUpdated: now.Add(-1 * time.Hour), PriceChange24h: 1.85, PriceChangePercent: 0.76,
			MarketCap: "$1.8T AUM", Sector: "Diversified",
			Technical: &models.TechnicalIndicators{RSI: f(57.2), MovingAvg50: f(239.40), MovingAvg200: f(225.80), Volatility: f(0.16)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "IWM", Name: "iShares Russell 2000 ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 198.45, TargetPrice: 220.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskHigh, ConfidenceScore: 76, Timeframe: "18M", Analyst: "David Rodriguez",
			Analysis: "Small-cap stocks positioned to benefit from economic recovery and domestic growth. Higher volatility but greater upside potential than large caps.",
			KeyFactors: []string{
				"Small-cap valuations attractive relative to large caps",
				"Domestic focus benefits from US economic strength",
				"Higher beta provides leverage to market upside",
				"M&A activity supporting small-cap premiums",
				"Fed policy normalization benefiting smaller companies",
			},
			LastUpdated: now.Add(-3 * time.Hour), PriceChange24h: -1.25, PriceChangePercent: -0.63,
			MarketCap: "$72B AUM", Sector: "Small Cap",
			Technical: &models.TechnicalIndicators{RSI: f(44.3), MovingAvg50: f(202.10), MovingAvg200: f(185.75), Volatility: f(0.28)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "GLD", Name: "SPDR Gold Trust ETF", AssetType: models.AssetTypeCommodity,
			CurrentPrice: 184.25, TargetPrice: 210.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 79, Timeframe: "18M", Analyst: "Alex Morgan",
			Analysis: "Gold provides portfolio diversification and inflation hedge. Central bank buying and geopolitical tensions support higher prices.",
			KeyFactors: []string{
				"Central banks increasing gold reserves globally",
				"Inflation hedge during monetary uncertainty",
				"Geopolitical tensions driving safe-haven demand",
				"Dollar weakness supporting gold prices",
				"Portfolio diversification benefits during volatility",
			},
			LastUpdated: now.Add(-4 * time.Hour), PriceChange24h: 2.15, PriceChangePercent: 1.18,
			MarketCap: "$68B AUM", Sector: "Precious Metals",
			Technical: &models.TechnicalIndicators{RSI: f(61.7), MovingAvg50: f(178.90), MovingAvg200: f(172.40), Volatility: f(0.19)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "USO", Name: "United States Oil Fund ETF", AssetType: models.AssetTypeCommodity,
			CurrentPrice: 72.80, TargetPrice: 85.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskHigh, ConfidenceScore: 68, Timeframe: "12M", Analyst: "Emily Zhang",
			Analysis: "Oil prices supported by supply constraints but face headwinds from economic uncertainty and renewable energy transition.",
			KeyFactors: []string{
				"OPEC+ production cuts supporting prices",
				"Strategic petroleum reserve releases ending",
				"Refining capacity constraints",
				"Economic growth uncertainty affecting demand",
				"Long-term transition to renewable energy",
			},
			LastUpdated: now.Add(-5 * time.Hour), PriceChange24h: -1.45, PriceChangePercent: -1.95,
			MarketCap: "$2.1B AUM", Sector: "Energy",
			Technical: &models.TechnicalIndicators{RSI: f(46.2), MovingAvg50: f(75.30), MovingAvg200: f(68.15), Volatility: f(0.35)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "EFA", Name: "iShares MSCI EAFE ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 78.45, TargetPrice: 85.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskMedium, ConfidenceScore: 74, Timeframe: "15M", Analyst: "Maria Santos",
			Analysis: "European and Asian developed markets offer geographic diversification and attractive valuations relative to US markets.",
			KeyFactors: []string{
				"Attractive valuations vs US markets",
				"European economic recovery gaining momentum",
				"Currency diversification benefits",
				"Strong dividend yields from international stocks",
				"Japan showing signs of sustained growth",
			},
			LastUpdated: now.Add(-6 * time.Hour), PriceChange24h: 0.95, PriceChangePercent: 1.22,
			MarketCap: "$98B AUM", Sector: "International",
			Technical: &models.TechnicalIndicators{RSI: f(53.8), MovingAvg50: f(77.20), MovingAvg200: f(74.85), Volatility: f(0.21)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "EEM", Name: "iShares MSCI Emerging Markets ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 42.30, TargetPrice: 50.00, Recommendation: models.RatingBuy,
			RiskLevel: models.RiskHigh, ConfidenceScore: 71, Timeframe: "24M", Analyst: "Kevin Park",
			Analysis: "Emerging markets offer long-term growth potential as demographics and infrastructure development drive economic expansion.",
			KeyFactors: []string{
				"Favorable demographics in key markets",
				"Infrastructure investment driving growth",
				"Commodity exporters benefiting from supply constraints",
				"Technology adoption accelerating",
				"Valuations attractive relative to developed markets",
			},
			LastUpdated: now.Add(-7 * time.Hour), PriceChange24h: 0.65, PriceChangePercent: 1.56,
			MarketCap: "$25B AUM", Sector: "Emerging Markets",
			Technical: &models.TechnicalIndicators{RSI: f(49.7), MovingAvg50: f(41.85), MovingAvg200: f(39.20), Volatility: f(0.26)},
		},
		{
			ID: common.NewRecommendationID(), Symbol: "VNQ", Name: "Vanguard Real Estate ETF", AssetType: models.AssetTypeIndex,
			CurrentPrice: 89.75, TargetPrice: 98.00, Recommendation: models.RatingHold,
			RiskLevel: models.RiskMedium, ConfidenceScore: 69, Timeframe: "12M", Analyst: "Jennifer Liu",
			Analysis: "REITs face pressure from higher interest rates but offer attractive dividend yields and inflation protection over long term.",
			KeyFactors: []string{
				"Attractive dividend yields above 3.5%",
				"Inflation protection through rent escalations",
				"Commercial real estate fundamentals mixed",
				"Interest rate sensitivity creating headwinds",
				"Data centers and logistics showing strength",
			},
			LastUpdated: now.Add(-8 * time.Hour), PriceChange24h: -0.75, PriceChangePercent: -0.83,
			MarketCap: "$28B AUM", Sector: "Real Estate",
			Technical: &models.TechnicalIndicators{RSI: f(45.1), MovingAvg50: f(91.30), MovingAvg200: f(85.60), Volatility: f(0.24)},
		},
	}
}
