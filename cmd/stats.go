package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewCmdStats creates the stats command.
func NewCmdStats(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show coding activity statistics",
		Long: `Fetches the configured WakaTime public share feed and prints the
weekly coding activity. When the feed is unconfigured or unreachable,
a representative default dataset is shown instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the cache freshness check")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")

	return cmd
}

func runStats(cmd *cobra.Command, opts *Options) error {
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

	stats := sess.stats.FetchStats(ctx, opts.Refresh)
	return formatter.FormatStats(stats, os.Stdout)
}
