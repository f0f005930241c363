package market

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"

	"dexboard-api/pkg/cache"
)

// Origin tags where a result's data came from.
type Origin string

const (
	OriginCache    Origin = "cache"
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Result carries data together with its origin. Reason is set only on
// fallback results and names the failure kind that forced the substitution.
type Result[T any] struct {
	Value  T
	Origin Origin
	Reason FailureKind
}

// Fallback reports whether the value is synthetic.
func (r Result[T]) Fallback() bool { return r.Origin == OriginFallback }

// Source is the read contract the dashboard consumes. Implementations never
// return errors: every failure resolves to a fallback result.
type Source interface {
	Prices(ctx context.Context, ids []string) Result[[]PriceRecord]
	Global(ctx context.Context) Result[*GlobalMarketSummary]
}

// Loader implements Source with the cache-aside flow: a valid cached entry is
// served after a shape check, a miss goes to the provider exactly once, and
// any failure substitutes generated data. Fallback values are never written
// to the store. Concurrent misses on one key share a single provider call.
type Loader struct {
	provider Provider
	store    *cache.Store
	flight   syncx.SingleFlight
}

// NewLoader wires a provider to an injected cache store.
func NewLoader(provider Provider, store *cache.Store) *Loader {
	return &Loader{
		provider: provider,
		store:    store,
		flight:   syncx.NewSingleFlight(),
	}
}

// Prices resolves price records for ids, live when possible. A cached entry
// that fails the shape check is treated exactly like a miss.
func (l *Loader) Prices(ctx context.Context, ids []string) Result[[]PriceRecord] {
	key := cache.PricesKey(ids)
	if l.store.IsValid(key) {
		if payload, _, ok := l.store.Get(key); ok {
			if records, ok := payload.([]PriceRecord); ok && ValidatePriceRecords(records) == nil {
				return Result[[]PriceRecord]{Value: clonePriceRecords(records), Origin: OriginCache}
			}
			logx.WithContext(ctx).Errorf("market: discarding invalid cached prices key=%s", key)
		}
	}

	shared, _ := l.flight.Do(key, func() (any, error) {
		return l.fetchPrices(ctx, ids, key), nil
	})
	return shared.(Result[[]PriceRecord])
}

// Global resolves the market summary, live when possible.
func (l *Loader) Global(ctx context.Context) Result[*GlobalMarketSummary] {
	key := cache.GlobalKey()
	if l.store.IsValid(key) {
		if payload, _, ok := l.store.Get(key); ok {
			if summary, ok := payload.(*GlobalMarketSummary); ok && ValidateGlobalSummary(summary) == nil {
				return Result[*GlobalMarketSummary]{Value: cloneSummary(summary), Origin: OriginCache}
			}
			logx.WithContext(ctx).Errorf("market: discarding invalid cached summary key=%s", key)
		}
	}

	shared, _ := l.flight.Do(key, func() (any, error) {
		return l.fetchGlobal(ctx, key), nil
	})
	return shared.(Result[*GlobalMarketSummary])
}

func (l *Loader) fetchPrices(ctx context.Context, ids []string, key string) Result[[]PriceRecord] {
	records, err := l.provider.FetchPrices(ctx, ids)
	if err == nil {
		err = ValidatePriceRecords(records)
	}
	if err != nil {
		kind := Classify(err)
		logx.WithContext(ctx).Errorf("market: price fetch failed key=%s kind=%s err=%v", key, kind, err)
		return Result[[]PriceRecord]{Value: FallbackPrices(ids), Origin: OriginFallback, Reason: kind}
	}
	l.store.Put(key, records)
	// Hand out a copy; the stored slice stays canonical.
	return Result[[]PriceRecord]{Value: clonePriceRecords(records), Origin: OriginLive}
}

func (l *Loader) fetchGlobal(ctx context.Context, key string) Result[*GlobalMarketSummary] {
	summary, err := l.provider.FetchGlobalSummary(ctx)
	if err == nil {
		err = ValidateGlobalSummary(summary)
	}
	if err != nil {
		kind := Classify(err)
		logx.WithContext(ctx).Errorf("market: global fetch failed key=%s kind=%s err=%v", key, kind, err)
		return Result[*GlobalMarketSummary]{Value: FallbackGlobalSummary(), Origin: OriginFallback, Reason: kind}
	}
	l.store.Put(key, summary)
	return Result[*GlobalMarketSummary]{Value: cloneSummary(summary), Origin: OriginLive}
}

func clonePriceRecords(records []PriceRecord) []PriceRecord {
	cloned := make([]PriceRecord, len(records))
	copy(cloned, records)
	return cloned
}

func cloneSummary(summary *GlobalMarketSummary) *GlobalMarketSummary {
	copied := *summary
	if summary.MarketCapShare != nil {
		copied.MarketCapShare = make(map[string]float64, len(summary.MarketCapShare))
		for k, v := range summary.MarketCapShare {
			copied.MarketCapShare[k] = v
		}
	}
	return &copied
}
