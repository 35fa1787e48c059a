package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/operator-codex/internal/classification"
	"github.com/KirkDiggler/operator-codex/internal/config"
	catalogorch "github.com/KirkDiggler/operator-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/operator-codex/internal/redis"
	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
)

// buildService wires the directory bank, the optional Redis cache and the
// classification tables into a catalog orchestrator
func buildService(ctx context.Context, cfg *config.Config) (catalog.Service, func(), error) {
	classes, err := loadClassification(cfg.ClassificationFile)
	if err != nil {
		return nil, nil, err
	}

	var bank sourcebank.Bank
	bank, err = sourcebank.NewDir(&sourcebank.DirConfig{Root: cfg.DataDir})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	if cfg.RedisAddr != "" {
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, err
		}

		if err := redis.Ping(ctx, client); err != nil {
			slog.WarnContext(ctx, "table cache unavailable, reading tables from disk",
				"redis_addr", cfg.RedisAddr,
				"error", err)
			_ = client.Close()
		} else {
			bank, err = sourcebank.NewRedisCache(&sourcebank.RedisCacheConfig{
				Client:    client,
				Source:    bank,
				TTL:       cfg.CacheTTL,
				KeyPrefix: cfg.CachePrefix,
			})
			if err != nil {
				_ = client.Close()
				return nil, nil, err
			}
			cleanup = func() { _ = client.Close() }
		}
	}

	service, err := catalogorch.New(&catalogorch.Config{
		Bank:           bank,
		Classification: classes,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return service, cleanup, nil
}

func loadClassification(path string) (*classification.Config, error) {
	if path == "" {
		return classification.Default()
	}
	return classification.Load(path)
}
