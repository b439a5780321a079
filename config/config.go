package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is immutable after Load.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Currency CurrencyConfig `mapstructure:"currency"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// CurrencyConfig fixes the display/parse behaviour of the economy for the
// process lifetime.
type CurrencyConfig struct {
	Symbol         string `mapstructure:"symbol"`
	Locale         string `mapstructure:"locale"`          // BCP 47 tag, e.g. en-US
	Fallback       string `mapstructure:"fallback"`        // placeholder when formatting fails
	DefaultBalance int64  `mapstructure:"default_balance"` // fixed-point units for new accounts
}

type LedgerConfig struct {
	Path             string        `mapstructure:"path"`
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
}

type RemoteConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type CacheConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate rejects configuration the engine cannot run with.
func (c *Config) Validate() error {
	if c.Currency.DefaultBalance < 0 {
		return fmt.Errorf("currency.default_balance must be non-negative, got %d", c.Currency.DefaultBalance)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	// The autosave ticker cannot run on a non-positive interval.
	if c.Ledger.AutosaveInterval <= 0 {
		return fmt.Errorf("ledger.autosave_interval must be positive, got %s", c.Ledger.AutosaveInterval)
	}
	if c.Remote.ConnectTimeout <= 0 {
		return fmt.Errorf("remote.connect_timeout must be positive, got %s", c.Remote.ConnectTimeout)
	}
	if c.Remote.RequestTimeout <= 0 {
		return fmt.Errorf("remote.request_timeout must be positive, got %s", c.Remote.RequestTimeout)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ECON_.
// Nested keys use underscore: ECON_CURRENCY_SYMBOL, ECON_REMOTE_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "release")
	v.SetDefault("currency.symbol", "$")
	v.SetDefault("currency.locale", "en-US")
	v.SetDefault("currency.fallback", "---")
	v.SetDefault("currency.default_balance", 0)
	v.SetDefault("ledger.path", "data/balances.yaml")
	v.SetDefault("ledger.autosave_interval", "5m")
	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.connect_timeout", "5s")
	v.SetDefault("remote.request_timeout", "10s")
	v.SetDefault("cache.ttl", "30m")
	v.SetDefault("cache.max_entries", 10000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ECON_CURRENCY_SYMBOL -> currency.symbol
	v.SetEnvPrefix("ECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
