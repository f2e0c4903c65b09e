package cmd

import (
	"testing"

	"github.com/muhammad-fiaz/portfolio/internal/view"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "portfolio" {
		t.Errorf("expected Use to be 'portfolio', got %q", cmd.Use)
	}
}

func TestNewCmdRepos(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdRepos(opts)
	if cmd == nil {
		t.Fatal("NewCmdRepos() returned nil")
	}
	if cmd.Use != "repos" {
		t.Errorf("expected Use to be 'repos', got %q", cmd.Use)
	}
}

func TestNewCmdProfile(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdProfile(opts)
	if cmd == nil {
		t.Fatal("NewCmdProfile() returned nil")
	}
	if cmd.Use != "profile" {
		t.Errorf("expected Use to be 'profile', got %q", cmd.Use)
	}
}

func TestNewCmdReadme(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdReadme(opts)
	if cmd == nil {
		t.Fatal("NewCmdReadme() returned nil")
	}
	if cmd.Use != "readme <repo>" {
		t.Errorf("expected Use to be 'readme <repo>', got %q", cmd.Use)
	}
}

func TestNewCmdStats(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdStats(opts)
	if cmd == nil {
		t.Fatal("NewCmdStats() returned nil")
	}
	if cmd.Use != "stats" {
		t.Errorf("expected Use to be 'stats', got %q", cmd.Use)
	}
}

func TestNewCmdSummary(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdSummary(opts)
	if cmd == nil {
		t.Fatal("NewCmdSummary() returned nil")
	}
	if cmd.Use != "summary" {
		t.Errorf("expected Use to be 'summary', got %q", cmd.Use)
	}
}

func TestNewCmdCache(t *testing.T) {
	opts := &Options{}
	cmd := NewCmdCache(opts)
	if cmd == nil {
		t.Fatal("NewCmdCache() returned nil")
	}
	if cmd.Use != "cache" {
		t.Errorf("expected Use to be 'cache', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	// Just verify it doesn't panic - version info is in package vars
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions(WithFormat("json"), WithSort("name"), WithPage(3))
	if opts.Format != "json" {
		t.Errorf("Format = %q", opts.Format)
	}
	if opts.Sort != "name" {
		t.Errorf("Sort = %q", opts.Sort)
	}
	if opts.Page != 3 {
		t.Errorf("Page = %d", opts.Page)
	}
	if !opts.IncludeForks {
		t.Error("IncludeForks should default to true")
	}
}

func TestFilterState(t *testing.T) {
	opts := &Options{
		Search:          "cli",
		Language:        "Go",
		Sort:            "updated",
		Direction:       "asc",
		IncludeForks:    false,
		IncludeArchived: true,
	}

	state, err := filterState(opts)
	if err != nil {
		t.Fatalf("filterState: %v", err)
	}
	if state.Search != "cli" || state.Language != "Go" {
		t.Errorf("unexpected predicates: %+v", state)
	}
	if state.Sort != view.SortUpdated || state.Direction != view.Asc {
		t.Errorf("unexpected ordering: %+v", state)
	}
	if state.IncludeForks || !state.IncludeArchived {
		t.Errorf("unexpected inclusion flags: %+v", state)
	}
}

func TestFilterStateDefaults(t *testing.T) {
	state, err := filterState(&Options{IncludeForks: true})
	if err != nil {
		t.Fatalf("filterState: %v", err)
	}
	want := view.DefaultFilterState()
	if state != want {
		t.Errorf("filterState(defaults) = %+v, want %+v", state, want)
	}
}

func TestFilterStateRejectsUnknownKeys(t *testing.T) {
	if _, err := filterState(&Options{Sort: "popularity"}); err == nil {
		t.Error("expected error for unknown sort key")
	}
	if _, err := filterState(&Options{Direction: "sideways"}); err == nil {
		t.Error("expected error for unknown direction")
	}
}
