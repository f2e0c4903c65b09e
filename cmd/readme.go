package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCmdReadme creates the readme command.
func NewCmdReadme(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme <repo>",
		Short: "Print one repository's README",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReadme(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "GitHub account owning the repository (default: configured owner)")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the cache freshness check")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")

	return cmd
}

func runReadme(cmd *cobra.Command, opts *Options, repo string) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	readme, err := sess.repos.FetchReadme(ctx, sess.cfg.Owner, repo, opts.Refresh)
	if err != nil {
		return fmt.Errorf("failed to fetch readme for %s/%s: %w", sess.cfg.Owner, repo, err)
	}

	fmt.Print(readme)
	return nil
}
