package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/muhammad-fiaz/portfolio/internal/cache"
)

// NewCmdCache creates the cache command with subcommands.
func NewCmdCache(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the portfolio data cache",
	}

	cmd.AddCommand(newCmdCacheStatus(opts))
	cmd.AddCommand(newCmdCacheClear(opts))

	return cmd
}

// newCmdCacheStatus creates the cache status subcommand.
func newCmdCacheStatus(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show freshness of every cached dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheStatus(cmd, opts)
		},
	}
}

// newCmdCacheClear creates the cache clear subcommand.
func newCmdCacheClear(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear every cached dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClear(cmd, opts)
		},
	}
}

func runCacheStatus(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	fmt.Printf("Cache backend: %s\n", sess.cfg.CacheBackend())
	for _, key := range cache.Keys(sess.cfg.Owner) {
		entry, ok := sess.cache.Info(ctx, key)
		if !ok {
			fmt.Printf("  %-28s missing\n", key)
			continue
		}
		if entry.Expired(now) {
			age := now.Sub(time.UnixMilli(entry.Timestamp)).Round(time.Minute)
			fmt.Printf("  %-28s stale (written %s ago)\n", key, age)
			continue
		}
		fmt.Printf("  %-28s fresh (expires in %s)\n", key, entry.ExpiresIn(now).Round(time.Second))
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := sess.cache.Clear(ctx, cache.Keys(sess.cfg.Owner)...); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Println("Cache cleared.")
	return nil
}
