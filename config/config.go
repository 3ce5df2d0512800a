// Package config loads service configuration from an optional YAML file,
// with environment variables taking precedence over file values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type RateLimitConfig struct {
	Rate       float64 `yaml:"rate"`
	BucketSize float64 `yaml:"bucket_size"`
}

type FetchConfig struct {
	TimeoutSec   int `yaml:"timeout_sec"`
	CacheTTLMin  int `yaml:"cache_ttl_min"`
	MaxCacheSize int `yaml:"max_cache_size"`
}

type Config struct {
	Server          ServerConfig    `yaml:"server"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Fetch           FetchConfig     `yaml:"fetch"`
	DataDir         string          `yaml:"data_dir"`
	DefaultLanguage string          `yaml:"default_language"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "release",
		},
		RateLimit: RateLimitConfig{
			Rate:       5,
			BucketSize: 10,
		},
		Fetch: FetchConfig{
			TimeoutSec:   15,
			CacheTTLMin:  30,
			MaxCacheSize: 1000,
		},
		DataDir:         "./data",
		DefaultLanguage: "en",
	}
}

// Load reads path (if it exists) over the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.GinMode = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit.Rate = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BUCKET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit.BucketSize = f
		}
	}
	if v := os.Getenv("FETCH_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Fetch.TimeoutSec = n
		}
	}
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSec) * time.Second
}

// FetchCacheTTL returns the fetch cache TTL as a duration.
func (c *Config) FetchCacheTTL() time.Duration {
	return time.Duration(c.Fetch.CacheTTLMin) * time.Minute
}
