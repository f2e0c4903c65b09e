package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/muhammad-fiaz/portfolio/config"
	"github.com/muhammad-fiaz/portfolio/internal/cache"
	"github.com/muhammad-fiaz/portfolio/internal/github"
	"github.com/muhammad-fiaz/portfolio/internal/log"
	"github.com/muhammad-fiaz/portfolio/internal/output"
	"github.com/muhammad-fiaz/portfolio/internal/wakatime"
)

// session bundles the config, cache backend and data clients shared by
// every subcommand.
type session struct {
	cfg   *config.Config
	cache cache.Store
	repos *github.Store
	stats *wakatime.Client
}

// newSession loads the configuration, initializes logging, opens the
// configured cache backend and wires the data clients. The returned
// cleanup func closes the backend and must always be called.
func newSession(ctx context.Context, opts *Options) (*session, func(), error) {
	log.Initialize(opts.Verbosity, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.Owner != "" {
		cfg.Owner = opts.Owner
	}

	store, cleanup, err := openCache(cfg)
	if err != nil {
		return nil, nil, err
	}

	client := github.NewClient(ctx, cfg.GetGitHubToken())
	repos := github.NewStore(client, store, github.Options{
		ExcludedRepos: cfg.ExcludeRepos,
		TTL:           cfg.CacheTTL(),
	})

	stats := wakatime.NewClient(store, wakatime.Options{
		Username: cfg.WakaTimeUsername(),
		ShareID:  cfg.WakaTimeShareID(),
		TTL:      cfg.CacheTTL(),
	})

	return &session{cfg: cfg, cache: store, repos: repos, stats: stats}, cleanup, nil
}

// openCache opens the configured cache backend. The memory backend keeps
// nothing between runs; sqlite persists under the config directory.
func openCache(cfg *config.Config) (cache.Store, func(), error) {
	switch backend := cfg.CacheBackend(); backend {
	case "memory":
		return cache.NewMemory(), func() {}, nil
	case "sqlite":
		db, err := cache.OpenSQLite(cfg.CachePath())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				log.Debug("closing cache database", "error", err)
			}
		}
		return db, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q (expected memory or sqlite)", backend)
	}
}

// formatter resolves the output format from the flag, falling back to the
// configured default.
func (s *session) formatter(opts *Options) (output.Formatter, error) {
	format := opts.Format
	if format == "" {
		format = s.cfg.DefaultFormat
	}
	return output.NewFormatter(output.Format(format))
}
