package market

import "context"

// Provider issues the two upstream reads the dashboard depends on. Each call
// performs exactly one outbound request; retry policy does not exist at this
// layer and fallback substitution belongs to the Loader.
type Provider interface {
	// FetchPrices returns one normalized record per requested token id.
	FetchPrices(ctx context.Context, ids []string) ([]PriceRecord, error)
	// FetchGlobalSummary returns the aggregate market view.
	FetchGlobalSummary(ctx context.Context) (*GlobalMarketSummary, error)
}

// PriceRecord is a normalized per-token price snapshot. Records are immutable
// once built and are replaced wholesale on the next fetch cycle.
type PriceRecord struct {
	ID        string  // Provider token id, e.g. "bitcoin"
	Symbol    string  // Ticker symbol as reported, e.g. "btc"
	Name      string  // Display name, e.g. "Bitcoin"
	Price     float64 // Current price in USD
	Change24h float64 // 24h price change, signed percent
	Volume24h float64 // 24h traded volume in USD
	MarketCap float64 // Market capitalization in USD
	ImageURL  string  // Token icon URL
}

// GlobalMarketSummary aggregates the market as a whole.
type GlobalMarketSummary struct {
	TotalMarketCapUSD float64            // Total tracked capitalization in USD
	TotalVolumeUSD    float64            // 24h volume in USD; NaN when the source omitted it
	MarketCapShare    map[string]float64 // Asset symbol -> percentage of total cap
	CapChange24h      float64            // 24h capitalization change, percent
}
