package config

import (
	"os"
	"path/filepath"
	"testing"

	_ "dexboard-api/pkg/market/static"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeSections(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "market.yaml"), `
default: offline
tracked:
  - bitcoin
  - ethereum
providers:
  offline:
    type: static
`)
	writeFile(t, filepath.Join(dir, "tokens.yaml"), `
networks:
  "1":
    name: Ethereum Mainnet
    currency: ETH
    tokens:
      - symbol: USDC
        name: USD Coin
        is_stable: true
      - symbol: ETH
        name: Ethereum
`)
}

func TestLoadHydratesSections(t *testing.T) {
	dir := t.TempDir()
	writeSections(t, dir)
	writeFile(t, filepath.Join(dir, "dexboard.yaml"), `
Name: dexboard-api
Host: 0.0.0.0
Port: 8890
Market:
  File: market.yaml
Tokens:
  File: tokens.yaml
`)

	cfg, err := Load(filepath.Join(dir, "dexboard.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "test" || !cfg.IsTestEnv() {
		t.Fatalf("Env default, got %q", cfg.Env)
	}
	if cfg.Network != "1" {
		t.Fatalf("Network default, got %q", cfg.Network)
	}
	if cfg.CacheTTL != 300 {
		t.Fatalf("CacheTTL default, got %d", cfg.CacheTTL)
	}
	if cfg.Market.Value == nil || cfg.Market.Value.Default != "offline" {
		t.Fatalf("market section not hydrated: %+v", cfg.Market.Value)
	}
	if cfg.Tokens.Value == nil {
		t.Fatalf("tokens section not hydrated")
	}
	if _, ok := cfg.Tokens.Value.Network("1"); !ok {
		t.Fatalf("tokens network 1 missing after hydration")
	}
	if cfg.BaseDir() != dir {
		t.Fatalf("BaseDir got %q want %q", cfg.BaseDir(), dir)
	}
}

func TestValidateRejectsUnknownEnv(t *testing.T) {
	cfg := &Config{Env: "staging", Network: "1", CacheTTL: 300}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected env validation error")
	}
}

func TestValidateBounds(t *testing.T) {
	cfg := &Config{Env: "dev", Network: "  ", CacheTTL: 300}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected network validation error")
	}
	cfg = &Config{Env: "dev", Network: "1", CacheTTL: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected cacheTTL validation error")
	}
}

func TestValidateDefaultsEmptyEnv(t *testing.T) {
	cfg := &Config{Network: "1", CacheTTL: 300}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Env != "test" {
		t.Fatalf("empty env should default to test, got %q", cfg.Env)
	}
}
