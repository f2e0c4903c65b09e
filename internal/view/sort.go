package view

import (
	"sort"
	"strings"

	"github.com/muhammad-fiaz/portfolio/internal/github"
)

// Sort returns a new slice ordered by key and direction. The sort is
// stable: repositories comparing equal keep their input order regardless
// of direction.
func Sort(repos []github.Repository, key SortKey, direction SortDirection) []github.Repository {
	sorted := make([]github.Repository, len(repos))
	copy(sorted, repos)

	less := lessFunc(key)
	if direction == Desc {
		asc := less
		less = func(a, b github.Repository) bool { return asc(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(key SortKey) func(a, b github.Repository) bool {
	switch key {
	case SortForks:
		return func(a, b github.Repository) bool { return a.ForkCount < b.ForkCount }
	case SortUpdated:
		return func(a, b github.Repository) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case SortCreated:
		return func(a, b github.Repository) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortName:
		return func(a, b github.Repository) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	default: // SortStars
		return func(a, b github.Repository) bool { return a.StarCount < b.StarCount }
	}
}
