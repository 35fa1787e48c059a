package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/operator-codex/internal/config"
	"github.com/KirkDiggler/operator-codex/internal/services/catalog"
)

// serviceFactory builds the catalog service for a command run. The returned
// cleanup func is always non-nil when err is nil.
type serviceFactory func(ctx context.Context, cfg *config.Config) (catalog.Service, func(), error)

// app carries the state shared by every subcommand of one invocation
type app struct {
	factory serviceFactory

	// flag values; they override the environment when set
	dataDir            string
	redisAddr          string
	classificationFile string
	recruitable        []string

	cfg     *config.Config
	service catalog.Service
	cleanup func()
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	a := &app{factory: factory}

	rootCmd := &cobra.Command{
		Use:   "codex",
		Short: "Operator codex",
		Long: `codex turns raw game-data tables into display-ready operator profiles.
Tables are read from a directory of <table>.json files, optionally through a Redis cache.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", "", "directory of raw <table>.json files (env CODEX_DATA_DIR)")
	flags.StringVar(&a.redisAddr, "redis-addr", "", "redis address for the table cache (env CODEX_REDIS_ADDR)")
	flags.StringVar(&a.classificationFile, "classification", "", "YAML classification override (env CODEX_CLASSIFICATION_FILE)")
	flags.StringSliceVar(&a.recruitable, "recruit", nil, "ids of recruitable operators (env CODEX_RECRUITABLE)")

	rootCmd.AddCommand(newOperatorCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCacheCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	service, cleanup, err := a.factory(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	a.service = service
	a.cleanup = cleanup
	return nil
}

// loadConfig reads the environment, applies the flags that were set and
// installs the default logger
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = a.redisAddr
	}
	if flags.Changed("classification") {
		cfg.ClassificationFile = a.classificationFile
	}
	if flags.Changed("recruit") {
		cfg.RecruitableIDs = a.recruitable
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	a.cfg = cfg
	return cfg, nil
}

// close releases whatever setup acquired; subcommands defer it so it also runs
// when they fail
func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) isRecruitable(id string) bool {
	for _, r := range a.cfg.RecruitableIDs {
		if r == id {
			return true
		}
	}
	return false
}
