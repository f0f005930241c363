package tokens

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dexboard-api/pkg/confkit"
)

// Token describes one whitelisted asset on a network. The aggregation layer
// consumes these descriptors as-is; flags decide pair eligibility.
type Token struct {
	Symbol       string `yaml:"symbol"`
	Name         string `yaml:"name"`
	Address      string `yaml:"address"`
	Decimals     int    `yaml:"decimals"`
	ImageURL     string `yaml:"image_url"`
	IsStable     bool   `yaml:"is_stable"`
	IsWrapped    bool   `yaml:"is_wrapped"`
	IsTempHidden bool   `yaml:"is_temp_hidden"`
}

// Network groups the whitelist for one chain id.
type Network struct {
	Name     string  `yaml:"name"`
	Currency string  `yaml:"currency"`
	Tokens   []Token `yaml:"tokens"`
}

// Config maps network ids to their whitelists.
type Config struct {
	Networks map[string]*Network `yaml:"networks"`
}

// LoadConfig reads token whitelists from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tokens config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads the whitelist from the default project location and panics
// on error.
func MustLoad() *Config {
	path := confkit.MustProjectPath("etc/tokens.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tokens config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal tokens config: %w", err)
	}
	cfg.normalise()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalise() {
	for _, network := range c.Networks {
		if network == nil {
			continue
		}
		network.Name = strings.TrimSpace(network.Name)
		network.Currency = strings.TrimSpace(network.Currency)
		if network.Currency == "" {
			network.Currency = "ETH"
		}
		for i := range network.Tokens {
			token := &network.Tokens[i]
			token.Symbol = strings.TrimSpace(token.Symbol)
			token.Name = strings.TrimSpace(token.Name)
			token.Address = strings.TrimSpace(token.Address)
			token.ImageURL = strings.TrimSpace(token.ImageURL)
		}
	}
}

// Validate ensures every network carries a usable whitelist.
func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("tokens config: networks cannot be empty")
	}
	for id, network := range c.Networks {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("tokens config: network id cannot be empty")
		}
		if network == nil || len(network.Tokens) == 0 {
			return fmt.Errorf("tokens config: network %s has no tokens", id)
		}
		for i, token := range network.Tokens {
			if token.Symbol == "" {
				return fmt.Errorf("tokens config: network %s token %d missing symbol", id, i)
			}
			if token.Name == "" {
				return fmt.Errorf("tokens config: network %s token %q missing name", id, token.Symbol)
			}
			if token.Decimals < 0 {
				return fmt.Errorf("tokens config: network %s token %q has negative decimals", id, token.Symbol)
			}
		}
	}
	return nil
}

// Network returns the whitelist entry for a network id.
func (c *Config) Network(id string) (*Network, bool) {
	network, ok := c.Networks[strings.TrimSpace(id)]
	if !ok || network == nil {
		return nil, false
	}
	return network, true
}

// Whitelist returns the token list for a network id, or nil when the network
// is not configured.
func (c *Config) Whitelist(id string) []Token {
	network, ok := c.Network(id)
	if !ok {
		return nil
	}
	return network.Tokens
}
