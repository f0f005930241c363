package config

import (
	"dexboard-api/pkg/market"
	"dexboard-api/pkg/tokens"
)

// MustLoadMarket loads etc/market.yaml from the project root and panics on error.
// It isolates the market section so tests that only need providers can skip the
// rest of the service config.
func MustLoadMarket() *market.Config {
	return market.MustLoad()
}

// MustLoadTokens loads etc/tokens.yaml from the project root and panics on error.
func MustLoadTokens() *tokens.Config {
	return tokens.MustLoad()
}
