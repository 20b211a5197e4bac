// Package config loads and persists the application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// Config is the persistent application configuration
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr"`

	// Sources overrides the built-in source list when non-empty.
	Sources []feeds.Source `json:"sources,omitempty"`

	// CacheTTLMinutes is how long an aggregation result stays fresh.
	CacheTTLMinutes int `json:"cache_ttl_minutes"`

	// FetchTimeoutSeconds bounds each source HTTP request.
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`

	// PostLimit caps posts returned per aggregation run.
	PostLimit int `json:"post_limit"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Addr:                ":8080",
		CacheTTLMinutes:     10,
		FetchTimeoutSeconds: 18,
		PostLimit:           150,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pressdeck", "config.json")
}

// Load reads config from path, or from ConfigPath() when path is
// empty. Missing or unreadable files fall back to defaults; a present
// file with partial fields keeps defaults for whatever it omits.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.fillZeroes()
	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SourceList returns the configured sources, or the built-in list.
func (c *Config) SourceList() []feeds.Source {
	if len(c.Sources) > 0 {
		return c.Sources
	}
	return feeds.DefaultSources
}

// CacheTTL returns the cache freshness window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// FetchTimeout returns the per-request timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// fillZeroes restores defaults for fields a config file zeroed out.
func (c *Config) fillZeroes() {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = def.CacheTTLMinutes
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}
	if c.PostLimit <= 0 {
		c.PostLimit = def.PostLimit
	}
}
