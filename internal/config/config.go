package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/rest"

	"dexboard-api/pkg/confkit"
	marketpkg "dexboard-api/pkg/market"
	tokenspkg "dexboard-api/pkg/tokens"
)

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	// Defaults to test.
	Env string `json:",default=test"`
	// Network selects the token whitelist the board serves.
	Network string `json:",default=1"`
	// CacheTTL is the uniform cache entry lifetime in seconds.
	CacheTTL int `json:",default=300"`
	// JournalDir enables the refresh journal when set.
	JournalDir string `json:",optional"`

	Market confkit.Section[marketpkg.Config] `json:",optional"`
	Tokens confkit.Section[tokenspkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	cfg, err := confkit.LoadFile[Config](absPath, true)
	if err != nil {
		return nil, err
	}

	cfg.mainPath = absPath
	cfg.baseDir = confkit.BaseDir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.Network) == "" {
		return errors.New("config: network is required")
	}
	if c.CacheTTL <= 0 {
		return errors.New("config: cacheTTL must be positive")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir

	if err := c.Market.Hydrate(base, marketpkg.LoadConfig); err != nil {
		return fmt.Errorf("load market config: %w", err)
	}
	if err := c.Tokens.Hydrate(base, tokenspkg.LoadConfig); err != nil {
		return fmt.Errorf("load tokens config: %w", err)
	}
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
