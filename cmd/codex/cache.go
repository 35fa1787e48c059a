package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/operator-codex/internal/errors"
	"github.com/KirkDiggler/operator-codex/internal/redis"
	"github.com/KirkDiggler/operator-codex/internal/sourcebank"
)

// newCacheCmd groups maintenance of the Redis table cache. It replaces the
// root setup since it needs a Redis client rather than the catalog.
func newCacheCmd(a *app) *cobra.Command {
	var client redis.Client

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the Redis table cache",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.RedisAddr == "" {
				return errors.InvalidArgument("the cache commands need --redis-addr or CODEX_REDIS_ADDR")
			}

			client, err = redis.NewClient(cfg.RedisAddr, nil)
			if err != nil {
				return err
			}
			if err := redis.Ping(cmd.Context(), client); err != nil {
				_ = client.Close()
				return err
			}

			a.cleanup = func() { _ = client.Close() }
			return nil
		},
	}

	var fix bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report cached tables that are not valid JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			output, err := sourcebank.CheckCache(cmd.Context(), &sourcebank.CheckCacheInput{
				Client:    client,
				KeyPrefix: a.cfg.CachePrefix,
				Fix:       fix,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range output.Corrupt {
				fmt.Fprintf(out, "corrupt: %s\n", name)
			}
			fmt.Fprintf(out, "checked %d tables, %d corrupt, %d deleted\n",
				len(output.Tables), len(output.Corrupt), output.Deleted)
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&fix, "fix", false, "delete corrupt entries")

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every cached table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			deleted, err := sourcebank.PurgeCache(cmd.Context(), client, a.cfg.CachePrefix)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d cached tables\n", deleted)
			return nil
		},
	}

	cacheCmd.AddCommand(checkCmd)
	cacheCmd.AddCommand(purgeCmd)

	return cacheCmd
}
