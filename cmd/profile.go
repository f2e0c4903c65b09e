package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muhammad-fiaz/portfolio/internal/format"
	"github.com/muhammad-fiaz/portfolio/internal/output"
)

// NewCmdProfile creates the profile command.
func NewCmdProfile(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the configured account's GitHub profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfile(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "GitHub account to show (default: configured owner)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the cache freshness check")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")

	return cmd
}

func runProfile(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	profile, err := sess.repos.FetchProfile(ctx, sess.cfg.Owner, opts.Refresh)
	if err != nil {
		return fmt.Errorf("failed to fetch profile for %s: %w", sess.cfg.Owner, err)
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = sess.cfg.DefaultFormat
	}
	if output.Format(formatName) == output.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	fmt.Printf("%s (@%s)\n", profile.Name, profile.Login)
	if profile.Bio != "" {
		fmt.Printf("  %s\n", profile.Bio)
	}
	if profile.Location != "" {
		fmt.Printf("  Location:  %s\n", profile.Location)
	}
	if profile.Blog != "" {
		fmt.Printf("  Blog:      %s\n", profile.Blog)
	}
	fmt.Printf("  Repos:     %d public\n", profile.PublicRepos)
	fmt.Printf("  Followers: %s\n", format.Count(profile.Followers))
	fmt.Printf("  Following: %d\n", profile.Following)
	fmt.Printf("  Joined:    %s\n", format.Date(profile.CreatedAt))
	return nil
}
