package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio data fetcher for GitHub repositories and coding stats",
		Long: `A CLI tool that fetches and caches the datasets behind a developer
portfolio: public GitHub repositories and WakaTime coding activity.
Every fetch is cache-first; stale data is served when the network fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepos(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add repos flags to root command so `portfolio` and `portfolio repos`
	// work identically
	addRepoFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdRepos(opts))
	rootCmd.AddCommand(NewCmdProfile(opts))
	rootCmd.AddCommand(NewCmdReadme(opts))
	rootCmd.AddCommand(NewCmdStats(opts))
	rootCmd.AddCommand(NewCmdSummary(opts))
	rootCmd.AddCommand(NewCmdCache(opts))
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
