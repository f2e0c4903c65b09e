package view

import (
	"sort"

	"github.com/muhammad-fiaz/portfolio/internal/github"
)

// LanguageCount is one language with its repository count.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the aggregate rollup over a repository collection.
type Summary struct {
	TotalRepos    int                `json:"totalRepos"`
	TotalStars    int                `json:"totalStars"`
	TotalForks    int                `json:"totalForks"`
	TotalWatchers int                `json:"totalWatchers"`
	Languages     []LanguageCount    `json:"languages"`
	TopLanguage   string             `json:"topLanguage"`
	MostStarred   *github.Repository `json:"mostStarred,omitempty"`
}

// Aggregate computes the rollup in a single pass. Languages is sorted by
// repository count descending; ties keep first-encountered order, so
// TopLanguage is stable with respect to input order.
func Aggregate(repos []github.Repository) Summary {
	summary := Summary{TotalRepos: len(repos)}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var mostStarred *github.Repository

	for i := range repos {
		r := &repos[i]
		summary.TotalStars += r.StarCount
		summary.TotalForks += r.ForkCount
		summary.TotalWatchers += r.WatcherCount

		if r.PrimaryLanguage != "" {
			if _, ok := counts[r.PrimaryLanguage]; !ok {
				firstSeen[r.PrimaryLanguage] = i
			}
			counts[r.PrimaryLanguage]++
		}

		if mostStarred == nil || r.StarCount > mostStarred.StarCount {
			mostStarred = r
		}
	}

	summary.Languages = make([]LanguageCount, 0, len(counts))
	for name, count := range counts {
		summary.Languages = append(summary.Languages, LanguageCount{Name: name, Count: count})
	}
	sort.SliceStable(summary.Languages, func(i, j int) bool {
		a, b := summary.Languages[i], summary.Languages[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return firstSeen[a.Name] < firstSeen[b.Name]
	})

	if len(summary.Languages) > 0 {
		summary.TopLanguage = summary.Languages[0].Name
	}
	if mostStarred != nil {
		repo := *mostStarred
		summary.MostStarred = &repo
	}
	return summary
}
