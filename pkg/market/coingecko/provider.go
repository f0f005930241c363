package coingecko

import (
	"context"
	"net/http"

	"dexboard-api/pkg/market"
)

// Provider adapts the CoinGecko client to the generic market.Provider
// contract. It is stateless; caching and fallback live with the caller.
type Provider struct {
	client *Client
}

// NewProvider constructs a CoinGecko market provider.
func NewProvider(opts ...Option) *Provider {
	return &Provider{client: NewClient(opts...)}
}

func init() {
	market.RegisterProvider("coingecko", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		opts := []Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			opts = append(opts, WithAPIKey(cfg.APIKey))
		}
		if cfg.HTTPTimeout > 0 {
			opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
		}
		return NewProvider(opts...), nil
	})
}

// FetchPrices implements market.Provider.
func (p *Provider) FetchPrices(ctx context.Context, ids []string) ([]market.PriceRecord, error) {
	return p.client.FetchPrices(ctx, ids)
}

// FetchGlobalSummary implements market.Provider.
func (p *Provider) FetchGlobalSummary(ctx context.Context) (*market.GlobalMarketSummary, error) {
	return p.client.FetchGlobalSummary(ctx)
}
