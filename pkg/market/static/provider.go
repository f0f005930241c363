package static

import (
	"context"
	"strings"

	"dexboard-api/pkg/market"
)

// fixtures is a small plausible dataset so the service can run without any
// outbound access, e.g. in development or CI. Values are intentionally
// frozen; freshness semantics still come from the cache layer, which treats
// these rows like any other provider response.
var fixtures = []market.PriceRecord{
	{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Price: 64200.00, Change24h: -1.21, Volume24h: 3.10e10, MarketCap: 1.26e12},
	{ID: "ethereum", Symbol: "eth", Name: "Ethereum", Price: 3150.00, Change24h: 0.94, Volume24h: 1.40e10, MarketCap: 3.80e11},
	{ID: "solana", Symbol: "sol", Name: "Solana", Price: 148.50, Change24h: 2.37, Volume24h: 2.60e9, MarketCap: 6.70e10},
	{ID: "usd-coin", Symbol: "usdc", Name: "USDC", Price: 1.00, Change24h: 0.01, Volume24h: 6.80e9, MarketCap: 3.30e10},
	{ID: "wrapped-bitcoin", Symbol: "wbtc", Name: "Wrapped Bitcoin", Price: 64100.00, Change24h: -1.18, Volume24h: 3.10e8, MarketCap: 1.00e10},
	{ID: "chainlink", Symbol: "link", Name: "Chainlink", Price: 14.20, Change24h: -0.45, Volume24h: 4.10e8, MarketCap: 8.90e9},
	{ID: "uniswap", Symbol: "uni", Name: "Uniswap", Price: 7.85, Change24h: 1.12, Volume24h: 2.20e8, MarketCap: 5.90e9},
}

var fixtureSummary = market.GlobalMarketSummary{
	TotalMarketCapUSD: 2.43e12,
	TotalVolumeUSD:    9.40e10,
	MarketCapShare:    map[string]float64{"btc": 52.4, "eth": 16.2, "usdt": 4.8},
	CapChange24h:      0.82,
}

// Provider serves the fixture dataset behind the market.Provider contract.
type Provider struct{}

// NewProvider constructs a static market provider.
func NewProvider() *Provider {
	return &Provider{}
}

func init() {
	market.RegisterProvider("static", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		return NewProvider(), nil
	})
}

// FetchPrices returns fixture records for the requested ids in request
// order. Unknown ids are omitted, matching live provider behavior.
func (p *Provider) FetchPrices(_ context.Context, ids []string) ([]market.PriceRecord, error) {
	records := make([]market.PriceRecord, 0, len(ids))
	for _, raw := range ids {
		id := strings.ToLower(strings.TrimSpace(raw))
		for _, rec := range fixtures {
			if rec.ID == id {
				records = append(records, rec)
				break
			}
		}
	}
	return records, nil
}

// FetchGlobalSummary returns the fixture aggregate view.
func (p *Provider) FetchGlobalSummary(_ context.Context) (*market.GlobalMarketSummary, error) {
	summary := fixtureSummary
	share := make(map[string]float64, len(fixtureSummary.MarketCapShare))
	for symbol, pct := range fixtureSummary.MarketCapShare {
		share[symbol] = pct
	}
	summary.MarketCapShare = share
	return &summary, nil
}
