package market_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexboard-api/pkg/cache"
	market "dexboard-api/pkg/market"
)

// fakeProvider scripts upstream behavior per call and counts invocations.
type fakeProvider struct {
	mu          sync.Mutex
	priceCalls  int
	globalCalls int

	pricesFn func(ids []string) ([]market.PriceRecord, error)
	globalFn func() (*market.GlobalMarketSummary, error)
}

func (p *fakeProvider) FetchPrices(_ context.Context, ids []string) ([]market.PriceRecord, error) {
	p.mu.Lock()
	p.priceCalls++
	p.mu.Unlock()
	if p.pricesFn == nil {
		return nil, errors.New("no prices scripted")
	}
	return p.pricesFn(ids)
}

func (p *fakeProvider) FetchGlobalSummary(_ context.Context) (*market.GlobalMarketSummary, error) {
	p.mu.Lock()
	p.globalCalls++
	p.mu.Unlock()
	if p.globalFn == nil {
		return nil, errors.New("no summary scripted")
	}
	return p.globalFn()
}

func (p *fakeProvider) calls() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.priceCalls, p.globalCalls
}

func liveRecords() []market.PriceRecord {
	return []market.PriceRecord{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Price: 64200, Volume24h: 3.1e10, MarketCap: 1.26e12},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", Price: 3150, Volume24h: 1.4e10, MarketCap: 3.8e11},
	}
}

func TestLoaderMissFetchesAndCaches(t *testing.T) {
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return liveRecords(), nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	res := loader.Prices(context.Background(), []string{"bitcoin", "ethereum"})
	require.Equal(t, market.OriginLive, res.Origin)
	require.Len(t, res.Value, 2)
	assert.False(t, res.Fallback())

	key := cache.PricesKey([]string{"bitcoin", "ethereum"})
	assert.True(t, store.IsValid(key))

	priceCalls, _ := provider.calls()
	assert.Equal(t, 1, priceCalls)
}

func TestLoaderCacheHitSkipsProviderUntilTTL(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	now := base
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return liveRecords(), nil }}
	store := cache.New(cache.WithClock(func() time.Time { return now }))
	loader := market.NewLoader(provider, store)

	ids := []string{"bitcoin", "ethereum"}
	first := loader.Prices(context.Background(), ids)
	require.Equal(t, market.OriginLive, first.Origin)

	// One millisecond inside the 300000ms window: served from cache, no I/O.
	now = base.Add(5*time.Minute - time.Millisecond)
	hit := loader.Prices(context.Background(), ids)
	assert.Equal(t, market.OriginCache, hit.Origin)
	assert.Equal(t, first.Value, hit.Value)
	priceCalls, _ := provider.calls()
	assert.Equal(t, 1, priceCalls)

	// One millisecond past the window: the entry is stale and the provider
	// is consulted again.
	now = base.Add(5*time.Minute + time.Millisecond)
	refetched := loader.Prices(context.Background(), ids)
	assert.Equal(t, market.OriginLive, refetched.Origin)
	priceCalls, _ = provider.calls()
	assert.Equal(t, 2, priceCalls)
}

func TestLoaderEmptyListNeverServedLive(t *testing.T) {
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return []market.PriceRecord{}, nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	res := loader.Prices(context.Background(), []string{"bitcoin"})
	require.Equal(t, market.OriginFallback, res.Origin)
	assert.Equal(t, market.FailShape, res.Reason)
	require.Len(t, res.Value, 1, "fallback still populates the request")
	assert.Equal(t, "BITCOIN", res.Value[0].Symbol)

	// The invalid payload must not have been cached.
	assert.Equal(t, 0, store.Len())
}

func TestLoaderFetchErrorYieldsFallbackUncached(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want market.FailureKind
	}{
		{name: "transport", err: errors.New("dial tcp: connection refused"), want: market.FailTransport},
		{name: "http status", err: market.NewProviderError(market.FailStatus, errors.New("status 503")), want: market.FailStatus},
		{name: "parse", err: market.NewProviderError(market.FailParse, errors.New("unexpected EOF")), want: market.FailParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return nil, tc.err }}
			store := cache.New()
			loader := market.NewLoader(provider, store)

			res := loader.Prices(context.Background(), []string{"bitcoin", "pepe"})
			require.Equal(t, market.OriginFallback, res.Origin)
			assert.Equal(t, tc.want, res.Reason)
			assert.Len(t, res.Value, 2)
			assert.Equal(t, 0, store.Len(), "fallback is never cached")
		})
	}
}

func TestLoaderInvalidCachedEntryBehavesLikeMiss(t *testing.T) {
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return liveRecords(), nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	key := cache.PricesKey([]string{"bitcoin", "ethereum"})
	store.Put(key, []market.PriceRecord{})

	res := loader.Prices(context.Background(), []string{"bitcoin", "ethereum"})
	require.Equal(t, market.OriginLive, res.Origin, "invalid entry falls through to a live fetch")
	priceCalls, _ := provider.calls()
	assert.Equal(t, 1, priceCalls)
}

func TestLoaderForeignPayloadTypeBehavesLikeMiss(t *testing.T) {
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return liveRecords(), nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	store.Put(cache.PricesKey([]string{"bitcoin"}), "not a record list")

	res := loader.Prices(context.Background(), []string{"bitcoin"})
	assert.Equal(t, market.OriginLive, res.Origin)
}

func TestLoaderGlobalSummaryFlow(t *testing.T) {
	summary := &market.GlobalMarketSummary{
		TotalMarketCapUSD: 2.4e12,
		TotalVolumeUSD:    9.1e10,
		MarketCapShare:    map[string]float64{"btc": 52.3, "eth": 16.8},
		CapChange24h:      1.4,
	}
	provider := &fakeProvider{globalFn: func() (*market.GlobalMarketSummary, error) { return summary, nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	res := loader.Global(context.Background())
	require.Equal(t, market.OriginLive, res.Origin)
	assert.InDelta(t, 9.1e10, res.Value.TotalVolumeUSD, 1e-6)

	hit := loader.Global(context.Background())
	assert.Equal(t, market.OriginCache, hit.Origin)
	_, globalCalls := provider.calls()
	assert.Equal(t, 1, globalCalls)
}

func TestLoaderGlobalNaNVolumeFallsBack(t *testing.T) {
	provider := &fakeProvider{globalFn: func() (*market.GlobalMarketSummary, error) {
		return &market.GlobalMarketSummary{TotalVolumeUSD: math.NaN()}, nil
	}}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	res := loader.Global(context.Background())
	require.Equal(t, market.OriginFallback, res.Origin)
	assert.Equal(t, market.FailShape, res.Reason)
	require.NotNil(t, res.Value)
	assert.False(t, math.IsNaN(res.Value.TotalVolumeUSD))
	assert.Equal(t, 0, store.Len())
}

func TestLoaderCoalescesConcurrentMisses(t *testing.T) {
	gate := make(chan struct{})
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) {
		<-gate
		return liveRecords(), nil
	}}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	const workers = 4
	var wg sync.WaitGroup
	results := make([]market.Result[[]market.PriceRecord], workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = loader.Prices(context.Background(), []string{"bitcoin", "ethereum"})
		}(i)
	}

	// Give every worker time to miss the cache and join the shared call,
	// then let the single fetch complete.
	time.Sleep(100 * time.Millisecond)
	close(gate)
	wg.Wait()

	priceCalls, _ := provider.calls()
	assert.Equal(t, 1, priceCalls, "concurrent identical misses share one provider call")
	for _, res := range results {
		assert.Equal(t, market.OriginLive, res.Origin)
		assert.Len(t, res.Value, 2)
	}
}

func TestLoaderCacheHitReturnsDefensiveCopy(t *testing.T) {
	provider := &fakeProvider{pricesFn: func([]string) ([]market.PriceRecord, error) { return liveRecords(), nil }}
	store := cache.New()
	loader := market.NewLoader(provider, store)

	ids := []string{"bitcoin", "ethereum"}
	loader.Prices(context.Background(), ids)

	hit := loader.Prices(context.Background(), ids)
	require.Equal(t, market.OriginCache, hit.Origin)
	hit.Value[0].Price = -1

	again := loader.Prices(context.Background(), ids)
	assert.Equal(t, 64200.0, again.Value[0].Price, "caller mutation must not reach the cache")
}
