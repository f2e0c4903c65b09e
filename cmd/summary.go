package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/muhammad-fiaz/portfolio/internal/github"
	"github.com/muhammad-fiaz/portfolio/internal/view"
	"github.com/muhammad-fiaz/portfolio/internal/wakatime"
)

// NewCmdSummary creates the summary command.
func NewCmdSummary(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a portfolio rollup of repositories and coding stats",
		Long: `Fetches repositories and coding statistics concurrently and prints
aggregate totals: stars, forks, language distribution and weekly
coding activity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "GitHub account to summarize (default: configured owner)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the cache freshness check")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")

	return cmd
}

func runSummary(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter, err := sess.formatter(opts)
	if err != nil {
		return err
	}

	// The two datasets are independent; fetch them concurrently. The
	// stats client never fails (it degrades to defaults), so only the
	// repository fetch can abort the group.
	var (
		repos []github.Repository
		stats *wakatime.Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repos, err = sess.repos.FetchRepositories(gctx, sess.cfg.Owner, opts.Refresh)
		return err
	})
	g.Go(func() error {
		stats = sess.stats.FetchStats(gctx, opts.Refresh)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch repositories for %s: %w", sess.cfg.Owner, err)
	}

	summary := view.Aggregate(repos)
	return formatter.FormatSummary(summary, stats, os.Stdout)
}
