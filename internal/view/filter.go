// Package view provides pure projections over the cached repository
// collection: filtering, sorting, pagination and aggregate rollups. No
// function here touches the network or the cache.
package view

import (
	"sort"
	"strings"

	"github.com/muhammad-fiaz/portfolio/internal/github"
)

// SortKey selects the comparator used by Sort.
type SortKey string

const (
	SortStars   SortKey = "stars"
	SortForks   SortKey = "forks"
	SortUpdated SortKey = "updated"
	SortCreated SortKey = "created"
	SortName    SortKey = "name"
)

// SortDirection orders the comparator result.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// FilterState is the fully-defined filter configuration. Use
// DefaultFilterState for the canonical defaults; a zero value is not a
// valid state.
type FilterState struct {
	Search          string        `json:"search"`
	Language        string        `json:"language"`
	Sort            SortKey       `json:"sort"`
	Direction       SortDirection `json:"direction"`
	IncludeForks    bool          `json:"includeForks"`
	IncludeArchived bool          `json:"includeArchived"`
}

// DefaultFilterState returns the fixed reset state.
func DefaultFilterState() FilterState {
	return FilterState{
		Search:          "",
		Language:        "",
		Sort:            SortStars,
		Direction:       Desc,
		IncludeForks:    true,
		IncludeArchived: false,
	}
}

// Filter keeps the repositories satisfying every predicate of state:
// search term, language, fork inclusion and archived inclusion. The
// predicates are conjunctive.
func Filter(repos []github.Repository, state FilterState) []github.Repository {
	search := strings.ToLower(strings.TrimSpace(state.Search))
	language := strings.ToLower(state.Language)

	filtered := make([]github.Repository, 0, len(repos))
	for _, r := range repos {
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if language != "" && strings.ToLower(r.PrimaryLanguage) != language {
			continue
		}
		if !state.IncludeForks && r.IsFork {
			continue
		}
		if !state.IncludeArchived && r.IsArchived {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchesSearch reports a case-insensitive substring match against name,
// description or any topic. The term is already lowercased.
func matchesSearch(r github.Repository, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, topic := range r.Topics {
		if strings.Contains(strings.ToLower(topic), term) {
			return true
		}
	}
	return false
}

// Languages returns the sorted set of distinct primary languages, for
// populating a language filter control.
func Languages(repos []github.Repository) []string {
	seen := make(map[string]struct{})
	var languages []string
	for _, r := range repos {
		if r.PrimaryLanguage == "" {
			continue
		}
		if _, ok := seen[r.PrimaryLanguage]; ok {
			continue
		}
		seen[r.PrimaryLanguage] = struct{}{}
		languages = append(languages, r.PrimaryLanguage)
	}

	sort.Strings(languages)
	return languages
}

// Featured selects the named repositories, preserving the configured
// name order. Names with no matching repository are skipped.
func Featured(repos []github.Repository, names []string) []github.Repository {
	byName := make(map[string]github.Repository, len(repos))
	for _, r := range repos {
		byName[strings.ToLower(r.Name)] = r
	}

	featured := make([]github.Repository, 0, len(names))
	for _, name := range names {
		if r, ok := byName[strings.ToLower(name)]; ok {
			featured = append(featured, r)
		}
	}
	return featured
}
