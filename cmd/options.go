package cmd

// Options holds the shared command-line options for the portfolio CLI.
type Options struct {
	Owner     string
	Format    string
	Refresh   bool
	Verbosity int

	// Repository view options
	Search          string
	Language        string
	Sort            string
	Direction       string
	Page            int
	PerPage         int
	IncludeForks    bool
	IncludeArchived bool
	FeaturedOnly    bool
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Page:         1,
		IncludeForks: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithOwner sets the GitHub account whose repositories are shown.
func WithOwner(owner string) Option {
	return func(o *Options) {
		o.Owner = owner
	}
}

// WithFormat sets the output format (table, json).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithRefresh bypasses the cache freshness check.
func WithRefresh(refresh bool) Option {
	return func(o *Options) {
		o.Refresh = refresh
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithSearch sets the free-text search term.
func WithSearch(search string) Option {
	return func(o *Options) {
		o.Search = search
	}
}

// WithLanguage sets the primary-language filter.
func WithLanguage(language string) Option {
	return func(o *Options) {
		o.Language = language
	}
}

// WithSort sets the sort key (stars, forks, updated, created, name).
func WithSort(sort string) Option {
	return func(o *Options) {
		o.Sort = sort
	}
}

// WithPage sets the 1-indexed result page.
func WithPage(page int) Option {
	return func(o *Options) {
		o.Page = page
	}
}
