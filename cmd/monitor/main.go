package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"dexboard-api/internal/board"
	"dexboard-api/internal/cli"
	"dexboard-api/internal/config"
	"dexboard-api/internal/session"
	"dexboard-api/pkg/cache"
	"dexboard-api/pkg/journal"
	"dexboard-api/pkg/market"
	"dexboard-api/pkg/pairs"

	// Import for side-effects: registers market providers
	_ "dexboard-api/pkg/market/coingecko"
	_ "dexboard-api/pkg/market/static"
)

const (
	refreshInterval = 2 * time.Minute  // Board refresh interval
	cycleTimeout    = 15 * time.Second // Timeout for one refresh cycle
	shutdownTimeout = 10 * time.Second // Grace period for shutdown
)

var configFile = flag.String("f", "etc/dexboard.yaml", "the config file")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting board monitor...")

	appCfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("[main] Warning: Failed to load app config: %v", err)
		log.Printf("[main] Using default configuration")
		appCfg = &config.Config{Env: "test", Network: "1", CacheTTL: 300}
	}

	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(appCfg) {
		log.Printf("  - %s", line)
	}

	marketCfg := appCfg.Market.Value
	if marketCfg == nil {
		marketCfg = config.MustLoadMarket()
	}
	tokensCfg := appCfg.Tokens.Value
	if tokensCfg == nil {
		tokensCfg = config.MustLoadTokens()
	}

	providers, err := marketCfg.BuildProviders()
	if err != nil {
		log.Fatalf("[main] Failed to build market providers: %v", err)
	}
	provider, err := marketCfg.DefaultProvider(providers)
	if err != nil {
		log.Fatalf("[main] Failed to select market provider: %v", err)
	}

	store := cache.New(cache.WithTTL(cache.TTLFromSeconds(appCfg.CacheTTL)))
	var writer *journal.Writer
	if appCfg.JournalDir != "" {
		writer = journal.NewWriter(appCfg.JournalDir)
	}
	b := board.New(market.NewLoader(provider, store), board.Config{
		Tracked: marketCfg.Tracked,
		Network: appCfg.Network,
		Tokens:  tokensCfg,
		Session: session.NewStore(),
		Journal: writer,
	})

	log.Printf("  - Tracked ids: %v", marketCfg.Tracked)
	log.Printf("  - Refresh interval: %s", refreshInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runBoardMonitor(ctx, b)
	}()

	log.Println("[main] Board monitor started. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping tasks...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("[main] All tasks stopped cleanly")
	case <-shutdownCtx.Done():
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}

	log.Println("[main] Board monitor stopped")
}

// runBoardMonitor refreshes the board on a schedule until ctx is cancelled.
func runBoardMonitor(ctx context.Context, b *board.Board) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	// Run once immediately on startup
	monitorBoard(ctx, b)

	for {
		select {
		case <-ctx.Done():
			log.Println("[board] Stopping board monitor")
			return
		case <-ticker.C:
			monitorBoard(ctx, b)
		}
	}
}

// monitorBoard runs one refresh cycle and logs the outcome.
func monitorBoard(parentCtx context.Context, b *board.Board) {
	if parentCtx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parentCtx, cycleTimeout)
	defer cancel()

	info := b.Refresh(ctx, board.TriggerInterval)
	status := "[OK]"
	if info.PricesOrigin == market.OriginFallback || info.GlobalOrigin == market.OriginFallback {
		status = "[DEGRADED]"
	}
	log.Printf("[board.refresh] %s cycle=%s prices=%s global=%s records=%d pairs=%d took %dms",
		status, info.CycleID, info.PricesOrigin, info.GlobalOrigin,
		info.RecordCount, info.PairCount, info.Elapsed.Milliseconds())
	if info.PricesOrigin == market.OriginFallback {
		log.Printf("  - prices fallback reason: %s", info.PricesReason)
	}
	if info.GlobalOrigin == market.OriginFallback {
		log.Printf("  - global fallback reason: %s", info.GlobalReason)
	}

	view := b.View(ctx)
	log.Printf("[board.view] pairs=%d volume=%s liquidity=%s cap_change=%.2f%%",
		view.Stats.TotalPairs,
		pairs.FormatNumber(view.Stats.TotalVolume),
		pairs.FormatNumber(view.Stats.TotalLiquidity),
		view.Stats.CapChange24h)
	for _, pair := range view.Pairs {
		log.Printf("  - %s/%s price=%s change=%.2f%% volume=%s",
			pair.Base.Symbol, pair.Quote.Symbol, pairs.FormatUSD(pair.Price),
			pair.Change24h, pairs.FormatNumber(pair.Volume24h))
	}
}
