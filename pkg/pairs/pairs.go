package pairs

import (
	"strings"

	"dexboard-api/pkg/market"
	"dexboard-api/pkg/tokens"
)

const (
	// maxPairs caps how many base candidates are considered per pass.
	maxPairs = 4
	// liquidityRatio estimates pair liquidity from the base token's market
	// cap; liquidity is never fetched.
	liquidityRatio = 0.10
)

// preferredQuotes orders the conventional USD-pegged symbols when choosing
// the reference token.
var preferredQuotes = []string{"USDC", "USDT"}

// Pair is one dashboard row. Ids are assigned in construction order and are
// stable only within a single aggregation pass.
type Pair struct {
	ID        int
	Base      tokens.Token
	Quote     tokens.Token
	Price     float64
	Change24h float64
	Volume24h float64
	Liquidity float64
}

// Stats summarizes the currently visible pair set.
type Stats struct {
	TotalPairs     int
	TotalVolume    float64
	TotalLiquidity float64
	ActiveWallets  int
	CapChange24h   float64
}

// QuoteToken selects the reference token all pairs are denominated in: the
// first stable token carrying a conventional USD-pegged symbol, else the
// first stable token in whitelist order.
func QuoteToken(list []tokens.Token) (tokens.Token, bool) {
	for _, symbol := range preferredQuotes {
		for _, token := range list {
			if token.IsStable && strings.EqualFold(token.Symbol, symbol) {
				return token, true
			}
		}
	}
	for _, token := range list {
		if token.IsStable {
			return token, true
		}
	}
	return tokens.Token{}, false
}

// Build constructs trading pairs from the whitelist and the current price
// records. The reference token, wrapped variants, and temporarily hidden
// tokens never become bases; at most the first maxPairs eligible candidates
// are considered, in whitelist order. A candidate without a matching record
// is silently omitted. Without a stable token there is nothing to quote
// against and the result is empty.
func Build(list []tokens.Token, records []market.PriceRecord) []Pair {
	quote, ok := QuoteToken(list)
	if !ok {
		return nil
	}

	candidates := make([]tokens.Token, 0, maxPairs)
	for _, token := range list {
		if len(candidates) == maxPairs {
			break
		}
		if strings.EqualFold(token.Symbol, quote.Symbol) {
			continue
		}
		if token.IsWrapped || token.IsTempHidden {
			continue
		}
		candidates = append(candidates, token)
	}

	pairs := make([]Pair, 0, len(candidates))
	for _, base := range candidates {
		record, ok := matchRecord(base, records)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{
			ID:        len(pairs) + 1,
			Base:      base,
			Quote:     quote,
			Price:     record.Price,
			Change24h: record.Change24h,
			Volume24h: record.Volume24h,
			Liquidity: record.MarketCap * liquidityRatio,
		})
	}
	return pairs
}

// matchRecord returns the first record whose symbol equals the candidate's,
// or whose display name contains the candidate symbol, case-insensitively.
func matchRecord(base tokens.Token, records []market.PriceRecord) (market.PriceRecord, bool) {
	needle := strings.ToLower(base.Symbol)
	for _, record := range records {
		if strings.EqualFold(record.Symbol, base.Symbol) {
			return record, true
		}
		if needle != "" && strings.Contains(strings.ToLower(record.Name), needle) {
			return record, true
		}
	}
	return market.PriceRecord{}, false
}

// Filter keeps the pairs whose base or quote symbol contains term,
// case-insensitively. An empty term keeps everything.
func Filter(list []Pair, term string) []Pair {
	term = strings.ToLower(term)
	if term == "" {
		return list
	}
	filtered := make([]Pair, 0, len(list))
	for _, pair := range list {
		if strings.Contains(strings.ToLower(pair.Base.Symbol), term) ||
			strings.Contains(strings.ToLower(pair.Quote.Symbol), term) {
			filtered = append(filtered, pair)
		}
	}
	return filtered
}

// Compute folds the visible pair set into summary statistics. The sums cover
// exactly the pairs passed in, never a pre-filter set.
func Compute(visible []Pair, walletConnected bool, global *market.GlobalMarketSummary) Stats {
	stats := Stats{TotalPairs: len(visible)}
	for _, pair := range visible {
		stats.TotalVolume += pair.Volume24h
		stats.TotalLiquidity += pair.Liquidity
	}
	if walletConnected {
		stats.ActiveWallets = 1
	}
	if global != nil {
		stats.CapChange24h = global.CapChange24h
	}
	return stats
}
