package tokens_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dexboard-api/pkg/tokens"
)

const sampleConfig = `
networks:
  "1":
    name: Ethereum Mainnet
    currency: ETH
    tokens:
      - symbol: USDC
        name: USD Coin
        address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
        decimals: 6
        is_stable: true
      - symbol: ETH
        name: Ethereum
        address: "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"
        decimals: 18
      - symbol: WBTC
        name: Wrapped Bitcoin
        address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"
        decimals: 8
        is_wrapped: true
      - symbol: SOL
        name: Solana
        address: "0xD31a59c85aE9D8edEFeC411D448f90841571b89c"
        decimals: 9
  "137":
    name: Polygon
    currency: MATIC
    tokens:
      - symbol: USDC
        name: USD Coin
        address: "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"
        decimals: 6
        is_stable: true
      - symbol: WETH
        name: Wrapped Ether
        address: "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"
        decimals: 18
        is_wrapped: true
`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTokensConfig(t *testing.T) {
	cfg, err := tokens.LoadConfig(writeSample(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	network, ok := cfg.Network("1")
	if !ok {
		t.Fatalf("network 1 missing")
	}
	if network.Name != "Ethereum Mainnet" || network.Currency != "ETH" {
		t.Fatalf("unexpected network metadata: %+v", network)
	}

	list := cfg.Whitelist("1")
	if len(list) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(list))
	}
	if !list[0].IsStable || list[0].Symbol != "USDC" {
		t.Fatalf("first token should be the stable USDC, got %+v", list[0])
	}
	if !list[2].IsWrapped {
		t.Fatalf("WBTC should be flagged wrapped")
	}
}

func TestWhitelistUnknownNetwork(t *testing.T) {
	cfg, err := tokens.LoadConfig(writeSample(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if list := cfg.Whitelist("424242"); list != nil {
		t.Fatalf("expected nil whitelist for unknown network, got %v", list)
	}
}

func TestCurrencyDefaultsToETH(t *testing.T) {
	body := `
networks:
  "8453":
    name: Base
    tokens:
      - symbol: USDC
        name: USD Coin
        decimals: 6
        is_stable: true
`
	cfg, err := tokens.LoadConfig(writeSample(t, body))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	network, _ := cfg.Network("8453")
	if network.Currency != "ETH" {
		t.Fatalf("expected currency default ETH, got %q", network.Currency)
	}
}

func TestTokensConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "no networks", body: `networks: {}`, want: "networks cannot be empty"},
		{name: "empty token list", body: "networks:\n  \"1\":\n    name: Mainnet\n    tokens: []\n", want: "has no tokens"},
		{name: "missing symbol", body: "networks:\n  \"1\":\n    name: Mainnet\n    tokens:\n      - name: Mystery\n        decimals: 18\n", want: "missing symbol"},
		{name: "negative decimals", body: "networks:\n  \"1\":\n    name: Mainnet\n    tokens:\n      - symbol: BAD\n        name: Bad Token\n        decimals: -1\n", want: "negative decimals"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokens.LoadConfig(writeSample(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
