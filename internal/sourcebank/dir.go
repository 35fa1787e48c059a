package sourcebank

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

const tableExt = ".json"

// DirConfig configures a directory-backed bank
type DirConfig struct {
	// Root holds one <name>.json file per table
	Root string
}

// Validate validates the DirConfig
func (cfg *DirConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", cfg.Root, vb)

	return vb.Build()
}

type dirBank struct {
	root string

	mu     sync.Mutex
	tables map[string][]byte
}

// NewDir creates a bank reading tables from a directory. Each table is read
// from disk at most once per bank.
func NewDir(cfg *DirConfig) (Bank, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("data directory %s not found", cfg.Root)
		}
		return nil, errors.Wrapf(err, "failed to stat data directory %s", cfg.Root)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("data path %s is not a directory", cfg.Root)
	}

	return &dirBank{
		root:   cfg.Root,
		tables: make(map[string][]byte),
	}, nil
}

func (b *dirBank) Table(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if raw, ok := b.tables[name]; ok {
		return raw, nil
	}

	path := filepath.Join(b.root, name+tableExt)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("table %s not found", name).WithTable(name)
		}
		return nil, errors.Wrapf(err, "failed to read table %s", name).WithTable(name)
	}

	slog.DebugContext(ctx, "loaded table from disk",
		"table", name,
		"path", path,
		"bytes", len(raw))

	b.tables[name] = raw
	return raw, nil
}
