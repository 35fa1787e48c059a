package sourcebank

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	redisclient "github.com/KirkDiggler/operator-codex/internal/redis"
)

const scanBatch = 100

// CheckCacheInput selects the cached tables to inspect
type CheckCacheInput struct {
	Client redisclient.Client
	// KeyPrefix defaults to DefaultCachePrefix
	KeyPrefix string
	// Fix deletes the corrupt entries so the next read goes back to the source
	Fix bool
}

// CheckCacheOutput reports what a cache check found
type CheckCacheOutput struct {
	// Tables are the table names found in the cache, in scan order
	Tables []string
	// Corrupt are the table names whose cached bytes are not valid JSON
	Corrupt []string
	// Deleted counts corrupt entries removed when Fix was set
	Deleted int
}

// CheckCache scans the cached tables and reports entries that are not valid JSON
func CheckCache(ctx context.Context, input *CheckCacheInput) (*CheckCacheOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	prefix := cachePrefix(input.KeyPrefix)

	output := &CheckCacheOutput{}
	iter := input.Client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		name := strings.TrimPrefix(key, prefix)
		output.Tables = append(output.Tables, name)

		raw, err := input.Client.Get(ctx, key).Bytes()
		if err == redisclient.Nil {
			// expired between SCAN and GET
			continue
		}
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", key)
		}

		if gjson.ValidBytes(raw) {
			continue
		}

		slog.WarnContext(ctx, "corrupt cached table", "table", name, "key", key)
		output.Corrupt = append(output.Corrupt, name)

		if input.Fix {
			if err := input.Client.Del(ctx, key).Err(); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete %s", key)
			}
			output.Deleted++
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan cache")
	}

	return output, nil
}

// PurgeCache deletes every cached table under the prefix and returns how many were removed
func PurgeCache(ctx context.Context, client redisclient.Client, keyPrefix string) (int, error) {
	if client == nil {
		return 0, errors.InvalidArgument("client is required")
	}
	prefix := cachePrefix(keyPrefix)

	var deleted int
	iter := client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		n, err := client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete %s", iter.Val())
		}
		deleted += int(n)
	}
	if err := iter.Err(); err != nil {
		return deleted, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan cache")
	}

	slog.InfoContext(ctx, "purged table cache", "prefix", prefix, "deleted", deleted)
	return deleted, nil
}

func cachePrefix(prefix string) string {
	if prefix == "" {
		return DefaultCachePrefix
	}
	return prefix
}
