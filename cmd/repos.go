package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muhammad-fiaz/portfolio/internal/log"
	"github.com/muhammad-fiaz/portfolio/internal/view"
)

// NewCmdRepos creates the repos command.
func NewCmdRepos(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List public repositories (same as root portfolio)",
		Long: `Fetches the configured account's public repositories, applies the
requested filters and prints one page of results.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepos(cmd, opts)
		},
	}

	addRepoFlags(cmd, opts)
	return cmd
}

// addRepoFlags adds the repos-specific flags to a command.
func addRepoFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "GitHub account to list (default: configured owner)")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the cache freshness check")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")

	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Filter by name, description or topic substring")
	cmd.Flags().StringVarP(&opts.Language, "language", "l", "", "Filter by primary language")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "stars", "Sort key (stars, forks, updated, created, name)")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "desc", "Sort direction (asc, desc)")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Result page (1-indexed)")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "Repositories per page (default: configured per_page)")
	cmd.Flags().BoolVar(&opts.IncludeForks, "forks", true, "Include forked repositories")
	cmd.Flags().BoolVar(&opts.IncludeArchived, "archived", false, "Include archived repositories")
	cmd.Flags().BoolVar(&opts.FeaturedOnly, "featured", false, "Show only the configured featured repositories")
}

// filterState builds the view filter from the command-line flags,
// starting from the canonical defaults.
func filterState(opts *Options) (view.FilterState, error) {
	state := view.DefaultFilterState()
	state.Search = opts.Search
	state.Language = opts.Language
	state.IncludeForks = opts.IncludeForks
	state.IncludeArchived = opts.IncludeArchived

	if opts.Sort != "" {
		switch key := view.SortKey(opts.Sort); key {
		case view.SortStars, view.SortForks, view.SortUpdated, view.SortCreated, view.SortName:
			state.Sort = key
		default:
			return state, fmt.Errorf("unknown sort key %q (expected stars, forks, updated, created or name)", opts.Sort)
		}
	}

	switch opts.Direction {
	case "", string(view.Desc):
		state.Direction = view.Desc
	case string(view.Asc):
		state.Direction = view.Asc
	default:
		return state, fmt.Errorf("unknown sort direction %q (expected asc or desc)", opts.Direction)
	}

	return state, nil
}

func runRepos(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	sess, cleanup, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := filterState(opts)
	if err != nil {
		return err
	}

	formatter, err := sess.formatter(opts)
	if err != nil {
		return err
	}

	repos, err := sess.repos.FetchRepositories(ctx, sess.cfg.Owner, opts.Refresh)
	if err != nil {
		return fmt.Errorf("failed to fetch repositories for %s: %w", sess.cfg.Owner, err)
	}
	log.Info("fetched repositories", "owner", sess.cfg.Owner, "count", len(repos))

	if opts.FeaturedOnly {
		repos = view.Featured(repos, sess.cfg.FeaturedRepos)
	}

	filtered := view.Filter(repos, state)
	sorted := view.Sort(filtered, state.Sort, state.Direction)

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = sess.cfg.PerPage
	}
	page := view.Paginate(sorted, opts.Page, perPage)

	return formatter.FormatRepositories(page, os.Stdout)
}
