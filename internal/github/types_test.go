package github

import (
	"testing"
	"time"

	gh "github.com/google/go-github/v57/github"
)

func TestFromRepository(t *testing.T) {
	created := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

	src := &gh.Repository{
		ID:              gh.Int64(42),
		Name:            gh.String("logly"),
		FullName:        gh.String("octocat/logly"),
		Description:     gh.String("structured logging"),
		HTMLURL:         gh.String("https://github.com/octocat/logly"),
		Homepage:        gh.String("https://logly.dev"),
		Language:        gh.String("Python"),
		StargazersCount: gh.Int(120),
		ForksCount:      gh.Int(8),
		WatchersCount:   gh.Int(120),
		OpenIssuesCount: gh.Int(3),
		Topics:          []string{"logging", "python"},
		CreatedAt:       &gh.Timestamp{Time: created},
		UpdatedAt:       &gh.Timestamp{Time: updated},
		PushedAt:        &gh.Timestamp{Time: updated},
		Fork:            gh.Bool(false),
		Archived:        gh.Bool(false),
		Disabled:        gh.Bool(false),
		Visibility:      gh.String("public"),
		License: &gh.License{
			Key:    gh.String("mit"),
			Name:   gh.String("MIT License"),
			SPDXID: gh.String("MIT"),
		},
		DefaultBranch: gh.String("main"),
		Size:          gh.Int(2048),
	}

	got := fromRepository(src)

	if got.ID != 42 || got.Name != "logly" || got.FullName != "octocat/logly" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.PrimaryLanguage != "Python" {
		t.Errorf("PrimaryLanguage = %q, want Python", got.PrimaryLanguage)
	}
	if got.StarCount != 120 || got.ForkCount != 8 || got.OpenIssueCount != 3 {
		t.Errorf("count fields wrong: %+v", got)
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(updated) {
		t.Errorf("timestamps wrong: %+v", got)
	}
	if got.License == nil || got.License.SPDXID != "MIT" {
		t.Errorf("license wrong: %+v", got.License)
	}
	if got.SizeKB != 2048 {
		t.Errorf("SizeKB = %d, want 2048", got.SizeKB)
	}
	if len(got.Topics) != 2 {
		t.Errorf("topics wrong: %v", got.Topics)
	}
}

func TestFromRepositoryNilOptionals(t *testing.T) {
	got := fromRepository(&gh.Repository{
		ID:   gh.Int64(1),
		Name: gh.String("bare"),
	})

	if got.License != nil {
		t.Errorf("License = %+v, want nil", got.License)
	}
	if got.Description != "" || got.HomepageURL != "" || got.PrimaryLanguage != "" {
		t.Errorf("optional strings should be empty: %+v", got)
	}
}
