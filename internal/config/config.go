package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageBackendRedis    = "redis"
	StorageBackendPostgres = "postgres"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StorageBackend string `toml:"storage_backend"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	RedisKeyPrefix string `toml:"redis_key_prefix"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// weight
	Timezone                string `toml:"timezone"`
	ChartCacheSizeMegabytes int    `toml:"chart_cache_size_mb"`
	ChartCacheTTLSeconds    int    `toml:"chart_cache_ttl_seconds"`
	WriteRateLimitPerMin    int    `toml:"write_rate_limit_per_min"`
}

// Location resolves the configured timezone. Calendar days of the weight log
// are computed in it. An empty timezone means the local one.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) ChartCacheTTL() time.Duration {
	return time.Duration(c.ChartCacheTTLSeconds) * time.Second
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageBackendRedis, StorageBackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend: [%s]", c.StorageBackend)
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ChartCacheSizeMegabytes <= 0 {
		return fmt.Errorf("invalid chart cache size: %d", c.ChartCacheSizeMegabytes)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone [%s]: %w", c.Timezone, err)
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in [%s]", env, path)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config [%s]: %w", env, err)
	}

	return cfg, nil
}
