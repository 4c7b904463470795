package advisor

import (
	"regexp"
	"sort"
	"strings"
)

// Ticker candidate patterns: bare uppercase run, $-prefixed, dot-suffixed.
var (
	bareSymbolPattern   = regexp.MustCompile(`\b[A-Z]{1,5}\b`)
	dollarSymbolPattern = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	dottedSymbolPattern = regexp.MustCompile(`\b([A-Z]{1,5})\.`)
)

// symbolStopWords filters common English words and finance jargon out
// of the candidate set. The list is an implementation contract: tokens
// like CEO or USA intentionally pass through, that imprecision is
// accepted behavior.
var symbolStopWords = map[string]struct{}{
	// common English
	"A": {}, "AN": {}, "AND": {}, "ARE": {}, "AT": {}, "BE": {}, "BY": {},
	"CAN": {}, "DID": {}, "DO": {}, "DOES": {}, "FOR": {}, "FROM": {},
	"GET": {}, "GO": {}, "GOOD": {}, "HAS": {}, "HAVE": {}, "HOW": {},
	"I": {}, "IF": {}, "IN": {}, "IS": {}, "IT": {}, "ITS": {}, "MAY": {},
	"ME": {}, "MORE": {}, "MOST": {}, "MY": {}, "NEW": {}, "NO": {},
	"NOT": {}, "NOW": {}, "OF": {}, "ON": {}, "OR": {}, "OUT": {},
	"SHALL": {}, "SO": {}, "SOME": {}, "THAT": {}, "THE": {}, "THIS": {},
	"TIME": {}, "TO": {}, "UP": {}, "WAS": {}, "WHAT": {}, "WHEN": {},
	"WHICH": {}, "WHO": {}, "WHY": {}, "WILL": {}, "WITH": {}, "YOU": {},
	"YOUR": {}, "ABOUT": {}, "ALSO": {}, "ANY": {}, "BEEN": {}, "BEST": {},
	"GIVE": {}, "INTO": {}, "JUST": {}, "LIKE": {}, "MANY": {}, "NEED": {},
	"OVER": {}, "TELL": {}, "THAN": {}, "THEIR": {}, "THEM": {}, "THEN": {},
	"THERE": {}, "THEY": {}, "THINK": {}, "TODAY": {}, "VERY": {},
	"WANT": {}, "WERE": {}, "WORTH": {}, "COULD": {}, "WOULD": {},
	"DOING": {}, "HELLO": {}, "KNOW": {}, "LOOK": {}, "MAKE": {},
	"MAYBE": {}, "WHILE": {},
	"MUCH": {}, "RIGHT": {}, "STILL": {}, "TOO": {}, "WELL": {},
	// finance jargon
	"BUY": {}, "SELL": {}, "HOLD": {}, "STOCK": {}, "PRICE": {},
	"RISK": {}, "RISKY": {}, "SAFE": {}, "CASH": {}, "GAIN": {}, "LOSS": {},
	"BULL": {}, "BEAR": {}, "HIGH": {}, "LOW": {}, "RATE": {},
	"DOWN": {},
	"BOND": {}, "FUND": {}, "ETF": {}, "USD": {}, "GOLD": {}, "OIL": {},
	"MONEY": {}, "TRADE": {}, "SHARE": {}, "OWN": {}, "LONG": {},
	"SHORT": {}, "YIELD": {}, "VALUE": {}, "ASSET": {}, "TREND": {},
}

// ExtractSymbols scans a question for ticker-like tokens: 1-5 letter
// uppercase runs, bare or $-prefixed or dot-suffixed, in the upper-cased
// question text. Stop-words are removed and survivors are constrained
// to 2-5 characters. The result is sorted and deduplicated.
func ExtractSymbols(question string) []string {
	upper := strings.ToUpper(question)

	seen := make(map[string]struct{})
	collect := func(tokens []string) {
		for _, token := range tokens {
			seen[token] = struct{}{}
		}
	}

	collect(bareSymbolPattern.FindAllString(upper, -1))
	for _, match := range dollarSymbolPattern.FindAllStringSubmatch(upper, -1) {
		seen[match[1]] = struct{}{}
	}
	for _, match := range dottedSymbolPattern.FindAllStringSubmatch(upper, -1) {
		seen[match[1]] = struct{}{}
	}

	symbols := make([]string, 0, len(seen))
	for token := range seen {
		if len(token) < 2 || len(token) > 5 {
			continue
		}
		if _, stop := symbolStopWords[token]; stop {
			continue
		}
		symbols = append(symbols, token)
	}
	sort.Strings(symbols)
	return symbols
}
