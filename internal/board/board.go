package board

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"

	"dexboard-api/internal/session"
	"dexboard-api/pkg/journal"
	"dexboard-api/pkg/market"
	"dexboard-api/pkg/pairs"
	"dexboard-api/pkg/tokens"
)

// WalletRequiredMessage is the only user-visible error the board produces: a
// trade was attempted with no wallet session connected.
const WalletRequiredMessage = "Please connect your wallet to trade"

// Refresh triggers, recorded in logs and the journal.
const (
	TriggerInitial  = "initial"
	TriggerManual   = "manual"
	TriggerInterval = "interval"
)

// Config wires a board's collaborators. Journal is optional.
type Config struct {
	Tracked []string // provider token ids fetched each cycle
	Network string   // active network id for the whitelist
	Tokens  *tokens.Config
	Session *session.Store
	Journal *journal.Writer
}

// Board holds the dashboard state and orchestrates refresh cycles. Reads are
// cheap snapshots; a refresh fetches both data kinds concurrently and swaps
// the completed state in under a short lock. No lock is held across a
// network call.
type Board struct {
	source market.Source
	cfg    Config

	mu          sync.RWMutex
	pairList    []pairs.Pair
	global      *market.GlobalMarketSummary
	searchTerm  string
	tradeError  string
	refreshedAt time.Time
	refreshed   bool
	inflight    int
	lastInfo    RefreshInfo
}

// View is the read model served to clients. Pairs holds the post-filter set.
type View struct {
	Pairs       []pairs.Pair
	Stats       pairs.Stats
	IsLoading   bool
	RefreshedAt time.Time
	SearchTerm  string
	TradeError  string
}

// RefreshInfo describes the outcome of one refresh cycle.
type RefreshInfo struct {
	CycleID      string
	Trigger      string
	PricesOrigin market.Origin
	PricesReason market.FailureKind
	GlobalOrigin market.Origin
	GlobalReason market.FailureKind
	RecordCount  int
	PairCount    int
	Elapsed      time.Duration
	At           time.Time
}

// TradeResult reports whether a trade request was taken. Execution is out of
// scope; an accepted trade is only echoed.
type TradeResult struct {
	Accepted bool
	Message  string
}

// New constructs a board over the given market source.
func New(source market.Source, cfg Config) *Board {
	return &Board{source: source, cfg: cfg}
}

// Refresh fetches both data kinds concurrently, rebuilds the pair set, and
// swaps it in. Each kind resolves independently to live or fallback data; the
// fetch closures never return an error, so one failure cannot cancel the
// other fetch.
func (b *Board) Refresh(ctx context.Context, trigger string) RefreshInfo {
	b.mu.Lock()
	b.inflight++
	b.mu.Unlock()

	start := time.Now()
	var (
		prices market.Result[[]market.PriceRecord]
		global market.Result[*market.GlobalMarketSummary]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prices = b.source.Prices(gctx, b.cfg.Tracked)
		return nil
	})
	g.Go(func() error {
		global = b.source.Global(gctx)
		return nil
	})
	_ = g.Wait()

	built := pairs.Build(b.cfg.Tokens.Whitelist(b.cfg.Network), prices.Value)
	info := RefreshInfo{
		CycleID:      uuid.NewString(),
		Trigger:      trigger,
		PricesOrigin: prices.Origin,
		PricesReason: prices.Reason,
		GlobalOrigin: global.Origin,
		GlobalReason: global.Reason,
		RecordCount:  len(prices.Value),
		PairCount:    len(built),
		Elapsed:      time.Since(start),
		At:           time.Now(),
	}

	b.mu.Lock()
	b.pairList = built
	b.global = global.Value
	b.refreshedAt = info.At
	b.refreshed = true
	b.inflight--
	b.lastInfo = info
	b.mu.Unlock()

	logx.WithContext(ctx).Infof("refresh %s (%s): prices=%s global=%s records=%d pairs=%d elapsed=%s",
		info.CycleID, trigger, info.PricesOrigin, info.GlobalOrigin, info.RecordCount, info.PairCount, info.Elapsed)

	if b.cfg.Journal != nil {
		if _, err := b.cfg.Journal.WriteRefresh(journalRecord(info)); err != nil {
			logx.WithContext(ctx).Errorf("journal refresh %s: %v", info.CycleID, err)
		}
	}
	return info
}

// View returns the current read model. The first call on a never-refreshed
// board performs a synchronous refresh; afterwards reads are pure and
// IsLoading reflects only in-flight refreshes.
func (b *Board) View(ctx context.Context) View {
	b.mu.RLock()
	ready := b.refreshed
	b.mu.RUnlock()
	if !ready {
		b.Refresh(ctx, TriggerInitial)
	}
	return b.snapshot()
}

// SetSearch updates the filter term and returns the resulting view.
func (b *Board) SetSearch(ctx context.Context, term string) View {
	b.mu.Lock()
	b.searchTerm = term
	b.mu.Unlock()
	return b.View(ctx)
}

// Trade handles a trade request. Without a wallet session it records the
// user-visible error and rejects; with one it accepts without executing and
// clears any previous error.
func (b *Board) Trade(ctx context.Context, pairID int, side string, amount float64) TradeResult {
	if !b.cfg.Session.Connected() {
		b.mu.Lock()
		b.tradeError = WalletRequiredMessage
		b.mu.Unlock()
		return TradeResult{Message: WalletRequiredMessage}
	}
	b.mu.Lock()
	b.tradeError = ""
	b.mu.Unlock()
	logx.WithContext(ctx).Infof("trade accepted: pair=%d side=%s amount=%v", pairID, side, amount)
	return TradeResult{Accepted: true}
}

// LastRefresh returns the most recent refresh outcome.
func (b *Board) LastRefresh() (RefreshInfo, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastInfo, b.refreshed
}

func (b *Board) snapshot() View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	visible := pairs.Filter(b.pairList, b.searchTerm)
	out := make([]pairs.Pair, len(visible))
	copy(out, visible)
	return View{
		Pairs:       out,
		Stats:       pairs.Compute(visible, b.cfg.Session.Connected(), b.global),
		IsLoading:   b.inflight > 0,
		RefreshedAt: b.refreshedAt,
		SearchTerm:  b.searchTerm,
		TradeError:  b.tradeError,
	}
}

func journalRecord(info RefreshInfo) *journal.RefreshRecord {
	return &journal.RefreshRecord{
		Timestamp:    info.At,
		CycleID:      info.CycleID,
		Trigger:      info.Trigger,
		PricesOrigin: string(info.PricesOrigin),
		PricesReason: string(info.PricesReason),
		GlobalOrigin: string(info.GlobalOrigin),
		GlobalReason: string(info.GlobalReason),
		RecordCount:  info.RecordCount,
		PairCount:    info.PairCount,
		ElapsedMS:    info.Elapsed.Milliseconds(),
	}
}
