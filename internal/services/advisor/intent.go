package advisor

// Intent is the classified purpose of a free-text question
type Intent string

const (
	IntentRecommendation Intent = "recommendation"
	IntentPrice          Intent = "price"
	IntentRisk           Intent = "risk"
	IntentSector         Intent = "sector"
	IntentPortfolio      Intent = "portfolio"
	IntentMarket         Intent = "market"
	IntentUnknownSymbol  Intent = "unknown_symbol"
	IntentGeneral        Intent = "general"
)

// keywordRule pairs an intent with the phrases that select it
type keywordRule struct {
	intent   Intent
	keywords []string
}

// keywordRules is evaluated top to bottom, first match wins. The order
// is part of the contract: a question matching several rules resolves
// to the earliest one. Do not reorder.
var keywordRules = []keywordRule{
	{IntentRecommendation, []string{"should i buy", "recommend", "good investment"}},
	{IntentPrice, []string{"price target", "target price", "price prediction"}},
	{IntentRisk, []string{"risk", "risky", "safe", "volatile"}},
	{IntentSector, []string{"sector", "industry", "technology", "healthcare", "financial"}},
	{IntentPortfolio, []string{"portfolio", "diversification", "allocation"}},
	{IntentMarket, []string{"market", "economy", "outlook", "trend"}},
}
