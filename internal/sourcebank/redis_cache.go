package sourcebank

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	redisclient "github.com/KirkDiggler/operator-codex/internal/redis"
)

const (
	// DefaultCacheTTL keeps a table cached for a day
	DefaultCacheTTL = 24 * time.Hour
	// DefaultCachePrefix namespaces cached tables
	DefaultCachePrefix = "codex:table:"
)

// RedisCacheConfig configures a read-through table cache
type RedisCacheConfig struct {
	Client redisclient.Client
	// Source is consulted on a cache miss
	Source Bank
	// TTL defaults to DefaultCacheTTL; negative values are rejected
	TTL time.Duration
	// KeyPrefix defaults to DefaultCachePrefix
	KeyPrefix string
}

// Validate validates the RedisCacheConfig
func (cfg *RedisCacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisCache struct {
	client    redisclient.Client
	source    Bank
	ttl       time.Duration
	keyPrefix string
}

// NewRedisCache wraps source with a Redis read-through cache
func NewRedisCache(cfg *RedisCacheConfig) (Bank, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &redisCache{
		client:    cfg.Client,
		source:    cfg.Source,
		ttl:       ttl,
		keyPrefix: cachePrefix(cfg.KeyPrefix),
	}, nil
}

func (c *redisCache) Table(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	key := c.keyPrefix + name
	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case err == redisclient.Nil:
		slog.DebugContext(ctx, "table cache miss", "table", name, "key", key)
	default:
		slog.WarnContext(ctx, "table cache read failed, using source",
			"table", name,
			"key", key,
			"error", err)
	}

	raw, err := c.source.Table(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to cache table",
			"table", name,
			"key", key,
			"error", err)
	}

	return raw, nil
}
