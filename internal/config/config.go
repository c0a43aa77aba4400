// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// Config is the CLI's runtime configuration. Flags override these values.
type Config struct {
	// RedisAddr selects the redis-backed registries; empty keeps everything in memory
	RedisAddr        string        `env:"RPG_PARTY_REDIS_ADDR"`
	RedisDB          int           `env:"RPG_PARTY_REDIS_DB"           envDefault:"0"`
	RedisDialTimeout time.Duration `env:"RPG_PARTY_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	RedisTLS         bool          `env:"RPG_PARTY_REDIS_TLS"`

	Format   string `env:"RPG_PARTY_FORMAT"    envDefault:"text"`
	LogLevel string `env:"RPG_PARTY_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env").WithMeta("source", "environment")
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.RedisDB < 0 {
		vb.Field("RedisDB", "must not be negative")
	}
	if c.RedisDialTimeout < 0 {
		vb.Field("RedisDialTimeout", "must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	return vb.Build()
}

// UseRedis reports whether the registries should be redis-backed
func (c *Config) UseRedis() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// ParseLevel accepts slog level names in any case, e.g. "debug" or "WARN"
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("invalid log level %q", s)
	}
	return level, nil
}
