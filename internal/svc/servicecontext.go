package svc

import (
	"log"
	"sort"
	"strings"

	"dexboard-api/internal/board"
	"dexboard-api/internal/config"
	"dexboard-api/internal/session"
	"dexboard-api/pkg/cache"
	"dexboard-api/pkg/journal"
	marketpkg "dexboard-api/pkg/market"
	_ "dexboard-api/pkg/market/coingecko"
	_ "dexboard-api/pkg/market/static"
	tokenspkg "dexboard-api/pkg/tokens"
)

type ServiceContext struct {
	Config config.Config

	MarketConfig    *marketpkg.Config
	MarketProviders map[string]marketpkg.Provider
	DefaultMarket   marketpkg.Provider
	TokensConfig    *tokenspkg.Config

	Store   *cache.Store
	Loader  *marketpkg.Loader
	Session *session.Store
	Journal *journal.Writer
	Board   *board.Board
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	marketCfg := c.Market.Value
	if marketCfg == nil {
		marketCfg = config.MustLoadMarket()
	}
	// Test environment prefers an offline provider when one is configured.
	if c.IsTestEnv() {
		if name, ok := staticProviderName(marketCfg); ok {
			marketCfg.Default = name
		}
	}
	providers, err := marketCfg.BuildProviders()
	if err != nil {
		log.Fatalf("failed to build market providers: %v", err)
	}
	defaultProvider, err := marketCfg.DefaultProvider(providers)
	if err != nil {
		log.Fatalf("failed to select market provider: %v", err)
	}
	svc.MarketConfig = marketCfg
	svc.MarketProviders = providers
	svc.DefaultMarket = defaultProvider

	tokensCfg := c.Tokens.Value
	if tokensCfg == nil {
		tokensCfg = config.MustLoadTokens()
	}
	if _, ok := tokensCfg.Network(c.Network); !ok {
		log.Fatalf("tokens config does not define network %q", c.Network)
	}
	svc.TokensConfig = tokensCfg

	svc.Store = cache.New(cache.WithTTL(cache.TTLFromSeconds(c.CacheTTL)))
	svc.Loader = marketpkg.NewLoader(defaultProvider, svc.Store)
	svc.Session = session.NewStore()
	if c.JournalDir != "" {
		svc.Journal = journal.NewWriter(c.JournalDir)
	}
	svc.Board = board.New(svc.Loader, board.Config{
		Tracked: marketCfg.Tracked,
		Network: c.Network,
		Tokens:  tokensCfg,
		Session: svc.Session,
		Journal: svc.Journal,
	})
	return svc
}

func staticProviderName(cfg *marketpkg.Config) (string, bool) {
	names := make([]string, 0, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		if pc != nil && strings.EqualFold(pc.Type, "static") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}
