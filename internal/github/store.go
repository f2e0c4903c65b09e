package github

import (
	"context"
	"strings"
	"time"

	"github.com/muhammad-fiaz/portfolio/internal/cache"
	"github.com/muhammad-fiaz/portfolio/internal/log"
	"github.com/muhammad-fiaz/portfolio/internal/retry"
)

const (
	retryAttempts = 3
	backoffStep   = time.Second
)

// Options configures a Store.
type Options struct {
	// ExcludedRepos are repository names hidden from every consumer,
	// independent of any user-facing filter.
	ExcludedRepos []string

	// TTL overrides the cache freshness window. Zero means
	// cache.DefaultTTL.
	TTL time.Duration
}

// Store is the cache-aware repository client. It is the error boundary:
// callers receive either data (possibly stale) or one normalized error.
type Store struct {
	fetcher  Fetcher
	store    cache.Store
	excluded map[string]struct{}
	ttl      time.Duration
	policy   retry.Policy
}

// NewStore creates a Store over the given fetcher and cache backend.
func NewStore(fetcher Fetcher, store cache.Store, opts Options) *Store {
	excluded := make(map[string]struct{}, len(opts.ExcludedRepos))
	for _, name := range opts.ExcludedRepos {
		excluded[strings.ToLower(name)] = struct{}{}
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	return &Store{
		fetcher:  fetcher,
		store:    store,
		excluded: excluded,
		ttl:      ttl,
		policy: retry.Policy{
			MaxAttempts: retryAttempts,
			Backoff:     retry.Linear(backoffStep),
			Retryable:   retryable,
		},
	}
}

// FetchRepositories returns the owner's full repository collection,
// excluding configured hidden repositories.
//
// Cache-first: a fresh cache entry is returned without touching the
// network. On a miss (or forceRefresh) the listing endpoint is paged
// through with per-page retry; rate-limit responses short-circuit. If the
// fetch ultimately fails, any cached copy, however old, is preferred over
// the error.
func (s *Store) FetchRepositories(ctx context.Context, owner string, forceRefresh bool) ([]Repository, error) {
	key := cache.RepositoriesKey(owner)

	if !forceRefresh {
		if repos, ok := cache.GetJSON[[]Repository](ctx, s.store, key); ok {
			log.Info("using cached repositories", "owner", owner, "count", len(repos))
			return repos, nil
		}
	}

	repos, err := s.fetchAllPages(ctx, owner)
	if err != nil {
		if stale, ok := cache.GetStaleJSON[[]Repository](ctx, s.store, key); ok {
			log.Warn("repository fetch failed, returning stale cache",
				"owner", owner, "count", len(stale), "error", err)
			return stale, nil
		}
		return nil, err
	}

	repos = s.applyExclusions(repos)

	if err := cache.SetJSON(ctx, s.store, key, repos, s.ttl); err != nil {
		log.Debug("failed to cache repositories", "owner", owner, "error", err)
	}

	log.Info("fetched repositories", "owner", owner, "count", len(repos))
	return repos, nil
}

// FetchProfile returns the owner's public profile with the same
// cache-first and stale-fallback contract. A profile is one document, so
// there is no pagination and no retry loop.
func (s *Store) FetchProfile(ctx context.Context, owner string, forceRefresh bool) (*Profile, error) {
	key := cache.ProfileKey(owner)

	if !forceRefresh {
		if profile, ok := cache.GetJSON[*Profile](ctx, s.store, key); ok {
			log.Info("using cached profile", "owner", owner)
			return profile, nil
		}
	}

	profile, err := s.fetcher.GetProfile(ctx, owner)
	if err != nil {
		if stale, ok := cache.GetStaleJSON[*Profile](ctx, s.store, key); ok {
			log.Warn("profile fetch failed, returning stale cache", "owner", owner, "error", err)
			return stale, nil
		}
		return nil, err
	}

	if err := cache.SetJSON(ctx, s.store, key, profile, s.ttl); err != nil {
		log.Debug("failed to cache profile", "owner", owner, "error", err)
	}
	return profile, nil
}

// FetchReadme returns one repository's README as plain text, with the
// same cache-first and stale-fallback contract as the profile fetch.
func (s *Store) FetchReadme(ctx context.Context, owner, repo string, forceRefresh bool) (string, error) {
	key := cache.ReadmeKey(owner, repo)

	if !forceRefresh {
		if readme, ok := cache.GetJSON[string](ctx, s.store, key); ok {
			log.Info("using cached readme", "repo", repo)
			return readme, nil
		}
	}

	readme, err := s.fetcher.GetReadme(ctx, owner, repo)
	if err != nil {
		if stale, ok := cache.GetStaleJSON[string](ctx, s.store, key); ok {
			log.Warn("readme fetch failed, returning stale cache", "repo", repo, "error", err)
			return stale, nil
		}
		return "", err
	}

	if err := cache.SetJSON(ctx, s.store, key, readme, s.ttl); err != nil {
		log.Debug("failed to cache readme", "repo", repo, "error", err)
	}
	return readme, nil
}

// fetchAllPages pages through the listing endpoint until a short page.
func (s *Store) fetchAllPages(ctx context.Context, owner string) ([]Repository, error) {
	var all []Repository

	for page := 1; ; page++ {
		var repos []Repository
		err := s.policy.Do(ctx, func() error {
			var ferr error
			repos, ferr = s.fetcher.ListPage(ctx, owner, page, PageSize)
			return ferr
		})
		if err != nil {
			return nil, err
		}

		all = append(all, repos...)
		if len(repos) < PageSize {
			return all, nil
		}
	}
}

func (s *Store) applyExclusions(repos []Repository) []Repository {
	if len(s.excluded) == 0 {
		return repos
	}
	filtered := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if _, hidden := s.excluded[strings.ToLower(r.Name)]; hidden {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
