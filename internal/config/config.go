package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL       string `yaml:"base_url"`
		MembershipURL string `yaml:"membership_url"`
	} `yaml:"provider"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Cache struct {
		PriceTTLMinutes        int `yaml:"price_ttl_minutes"`
		FundamentalsTTLMinutes int `yaml:"fundamentals_ttl_minutes"`
	} `yaml:"cache"`
	Corpus struct {
		SnapshotPath   string `yaml:"snapshot_path"`
		FastPrefixSize int    `yaml:"fast_prefix_size"`
	} `yaml:"corpus"`
	Schedule struct {
		CacheSweepCron        string `yaml:"cache_sweep_cron"`
		MembershipRefreshCron string `yaml:"membership_refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("MEMBERSHIP_URL"); v != "" {
		cfg.Provider.MembershipURL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.Corpus.SnapshotPath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("FAST_PREFIX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.FastPrefixSize = n
		}
	}

	// Defaults
	if cfg.Provider.MembershipURL == "" {
		cfg.Provider.MembershipURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Cache.PriceTTLMinutes == 0 {
		cfg.Cache.PriceTTLMinutes = 60
	}
	if cfg.Cache.FundamentalsTTLMinutes == 0 {
		cfg.Cache.FundamentalsTTLMinutes = 24 * 60
	}
	if cfg.Corpus.FastPrefixSize == 0 {
		cfg.Corpus.FastPrefixSize = 100
	}
	if cfg.Schedule.CacheSweepCron == "" {
		cfg.Schedule.CacheSweepCron = "0 0 * * * *"
	}
	if cfg.Schedule.MembershipRefreshCron == "" {
		cfg.Schedule.MembershipRefreshCron = "0 30 6 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.MembershipURL == "" {
		return fmt.Errorf("provider.membership_url is required")
	}
	if c.Cache.PriceTTLMinutes < 0 || c.Cache.FundamentalsTTLMinutes < 0 {
		return fmt.Errorf("cache TTLs must be non-negative")
	}
	if c.Corpus.FastPrefixSize <= 0 {
		return fmt.Errorf("corpus.fast_prefix_size must be positive")
	}
	return nil
}

// PriceTTL returns the configured price cache TTL as a duration.
func (c *Config) PriceTTL() time.Duration {
	return time.Duration(c.Cache.PriceTTLMinutes) * time.Minute
}

// FundamentalsTTL returns the configured fundamentals cache TTL as a duration.
func (c *Config) FundamentalsTTL() time.Duration {
	return time.Duration(c.Cache.FundamentalsTTLMinutes) * time.Minute
}
