// Package config loads process configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the process configuration of the codex CLI
type Config struct {
	// DataDir holds one <table>.json per game table
	DataDir string `env:"CODEX_DATA_DIR" envDefault:"./data/excel"`
	// RedisAddr enables the table cache when set
	RedisAddr   string        `env:"CODEX_REDIS_ADDR"`
	CacheTTL    time.Duration `env:"CODEX_CACHE_TTL" envDefault:"24h"`
	CachePrefix string        `env:"CODEX_CACHE_PREFIX" envDefault:"codex:table:"`
	// ClassificationFile replaces the embedded classification tables when set
	ClassificationFile string `env:"CODEX_CLASSIFICATION_FILE"`
	// RecruitableIDs marks operators obtainable through recruitment
	RecruitableIDs []string `env:"CODEX_RECRUITABLE" envSeparator:","`
	LogLevel       string   `env:"CODEX_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DataDir", c.DataDir, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)
	if c.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
