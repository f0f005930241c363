package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dexboard-api/pkg/market"
)

const (
	defaultBaseURL     = "https://api.coingecko.com/api/v3"
	defaultHTTPTimeout = 10 * time.Second

	apiKeyHeader = "x-cg-demo-api-key"
)

// Client wraps access to the CoinGecko REST API. Every method performs
// exactly one HTTP request; there is no retry budget here. The layer above
// substitutes fallback data on failure, so a failed attempt costs nothing
// but a log line.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API root.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithAPIKey attaches an API key header to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient constructs a CoinGecko API client.
func NewClient(opts ...Option) *Client {
	httpClient := &http.Client{Timeout: defaultHTTPTimeout}
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = httpClient
	}
	return client
}

// FetchPrices returns one normalized record per token in the provider's
// response, in response order.
func (c *Client) FetchPrices(ctx context.Context, ids []string) ([]market.PriceRecord, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("ids", strings.Join(ids, ","))
	query.Set("order", "market_cap_desc")
	query.Set("per_page", "100")
	query.Set("page", "1")
	query.Set("sparkline", "false")

	var rows []MarketRow
	if err := c.doGet(ctx, "/coins/markets", query, &rows); err != nil {
		return nil, err
	}

	records := make([]market.PriceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

// FetchGlobalSummary returns the aggregate market view.
func (c *Client) FetchGlobalSummary(ctx context.Context) (*market.GlobalMarketSummary, error) {
	var payload GlobalResponse
	if err := c.doGet(ctx, "/global", nil, &payload); err != nil {
		return nil, err
	}
	summary := payload.Data.toSummary()
	return &summary, nil
}

// doGet issues a single GET and decodes the body into result. Errors come
// back classified so the caller can record why live data was unavailable.
func (c *Client) doGet(ctx context.Context, endpoint string, query url.Values, result any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return market.NewProviderError(market.FailTransport, fmt.Errorf("coingecko: build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return market.NewProviderError(market.FailTransport, fmt.Errorf("coingecko: do request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return market.NewProviderError(market.FailTransport, fmt.Errorf("coingecko: read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return market.NewProviderError(market.FailStatus, fmt.Errorf("coingecko: http status %d: %s", resp.StatusCode, truncateBody(body)))
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return market.NewProviderError(market.FailParse, fmt.Errorf("coingecko: decode response: %w", err))
		}
	}
	return nil
}

func truncateBody(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
