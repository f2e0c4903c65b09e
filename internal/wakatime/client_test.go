package wakatime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammad-fiaz/portfolio/internal/cache"
)

const shareDoc = `{
	"data": {
		"grand_total": {"total_seconds": 725400, "text": "201 hrs 30 mins"},
		"daily_average": {"seconds": 14508, "text": "4 hrs 1 min"},
		"languages": [
			{"name": "Go", "total_seconds": 400000, "percent": 55.1, "text": "111 hrs", "digital": "111:06"},
			{"name": "Zig", "total_seconds": 100000, "percent": 13.8, "text": "27 hrs", "digital": "27:46"},
			{"name": "Python", "total_seconds": 50000, "percent": 6.9, "text": "13 hrs", "digital": "13:53"},
			{"name": "TypeScript", "total_seconds": 40000, "percent": 5.5, "text": "11 hrs", "digital": "11:06"},
			{"name": "Rust", "total_seconds": 35000, "percent": 4.8, "text": "9 hrs", "digital": "9:43"},
			{"name": "C", "total_seconds": 30000, "percent": 4.1, "text": "8 hrs", "digital": "8:20"},
			{"name": "Shell", "total_seconds": 25000, "percent": 3.4, "text": "6 hrs", "digital": "6:56"},
			{"name": "YAML", "total_seconds": 20000, "percent": 2.8, "text": "5 hrs", "digital": "5:33"},
			{"name": "Markdown", "total_seconds": 15000, "percent": 2.1, "text": "4 hrs", "digital": "4:10"},
			{"name": "JSON", "total_seconds": 10400, "percent": 1.4, "text": "2 hrs", "digital": "2:53"}
		],
		"editors": [{"name": "VS Code", "percent": 90.5, "text": "182 hrs"}],
		"operating_systems": [{"name": "Linux", "percent": 100, "text": "201 hrs"}],
		"best_day": {"date": "2025-05-12", "text": "9 hrs 2 mins", "total_seconds": 32520},
		"range": {"start": "2025-04-28", "end": "2025-05-28", "text": "Last 30 Days"}
	}
}`

func newShareServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchStatsNormalizes(t *testing.T) {
	ctx := context.Background()
	calls := 0
	srv := newShareServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if want := "/share/@gopher/deadbeef.json"; r.URL.Path != want {
			t.Errorf("request path = %q, want %q", r.URL.Path, want)
		}
		w.Write([]byte(shareDoc))
	})

	mem := cache.NewMemory()
	c := NewClient(mem, Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})

	stats := c.FetchStats(ctx, false)

	if stats.TotalSeconds != 725400 {
		t.Errorf("TotalSeconds = %v, want 725400", stats.TotalSeconds)
	}
	if stats.TotalHours != 201 {
		t.Errorf("TotalHours = %d, want 201 (integer division)", stats.TotalHours)
	}
	if len(stats.Languages) != maxLanguages {
		t.Fatalf("got %d languages, want capped at %d", len(stats.Languages), maxLanguages)
	}
	// Provider rank order preserved.
	if stats.Languages[0].Name != "Go" || stats.Languages[7].Name != "YAML" {
		t.Errorf("language rank order broken: first=%q last=%q",
			stats.Languages[0].Name, stats.Languages[7].Name)
	}
	// Per-language hours/minutes derived from total seconds.
	if got := stats.Languages[0]; got.Hours != 111 || got.Minutes != 6 {
		t.Errorf("Go breakdown = %dh %dm, want 111h 6m", got.Hours, got.Minutes)
	}
	if stats.BestDay == nil || stats.BestDay.Date != "2025-05-12" {
		t.Errorf("BestDay = %+v, want 2025-05-12", stats.BestDay)
	}
	if stats.Range.DisplayText != "Last 30 Days" {
		t.Errorf("Range text = %q", stats.Range.DisplayText)
	}
	if calls != 1 {
		t.Errorf("got %d network calls, want 1", calls)
	}

	// Second call is a cache hit, no network.
	c.FetchStats(ctx, false)
	if calls != 1 {
		t.Errorf("got %d network calls after cached read, want still 1", calls)
	}
}

func TestFetchStatsDefaultWhenUnconfigured(t *testing.T) {
	c := NewClient(cache.NewMemory(), Options{})

	stats := c.FetchStats(context.Background(), false)

	if stats == nil {
		t.Fatal("FetchStats must never return nil")
	}
	if stats.TotalSeconds <= 0 {
		t.Error("default dataset must have TotalSeconds > 0")
	}
	if len(stats.Languages) == 0 {
		t.Error("default dataset must have a non-empty language breakdown")
	}
	if stats.Range.DisplayText == "" {
		t.Error("default dataset must carry the full canonical shape")
	}
}

func TestFetchStatsDefaultWhenNetworkFailsCold(t *testing.T) {
	srv := newShareServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := NewClient(cache.NewMemory(), Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})

	stats := c.FetchStats(context.Background(), false)
	if stats == nil || stats.TotalSeconds <= 0 || len(stats.Languages) == 0 {
		t.Fatalf("expected complete default dataset, got %+v", stats)
	}
}

func TestFetchStatsStaleFallbackPreferredOverDefault(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	snapshot := &Stats{
		TotalSeconds:     999,
		TotalHours:       0,
		TotalDisplayText: "cached snapshot",
		Languages:        []Language{{Name: "Go", TotalSeconds: 999, Percent: 100}},
		Range:            Range{DisplayText: "Last 7 Days"},
	}
	if err := cache.SetJSON(ctx, mem, cache.KeyCodingStats, snapshot, time.Hour); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	srv := newShareServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := NewClient(mem, Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})

	// forceRefresh skips the fresh-cache check; the cached copy must come
	// back through the stale fallback.
	stats := c.FetchStats(ctx, true)
	if stats.TotalDisplayText != "cached snapshot" {
		t.Errorf("got %q, want the stale snapshot over the default dataset", stats.TotalDisplayText)
	}
}

func TestFetchStatsExpiredCacheSurvivesFailedFetch(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()

	// Expired snapshot: the normal read misses, the fetch runs and
	// fails, and the fallback must still find the cached copy.
	snapshot := &Stats{
		TotalSeconds:     999,
		TotalDisplayText: "real snapshot",
		Languages:        []Language{{Name: "Go", TotalSeconds: 999, Percent: 100}},
		Range:            Range{DisplayText: "Last 7 Days"},
	}
	if err := cache.SetJSON(ctx, mem, cache.KeyCodingStats, snapshot, -time.Minute); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	srv := newShareServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := NewClient(mem, Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})

	stats := c.FetchStats(ctx, false)
	if stats.TotalDisplayText != "real snapshot" {
		t.Errorf("got %q, want the expired snapshot over the default dataset", stats.TotalDisplayText)
	}
}

func TestFetchStatsMalformedBodyFallsBack(t *testing.T) {
	srv := newShareServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{not json"))
	})

	c := NewClient(cache.NewMemory(), Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})

	stats := c.FetchStats(context.Background(), false)
	if stats == nil || len(stats.Languages) == 0 {
		t.Fatal("malformed response must resolve to the default dataset")
	}
}

func TestFetchStatsSingleAttempt(t *testing.T) {
	calls := 0
	srv := newShareServer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewClient(cache.NewMemory(), Options{Username: "gopher", ShareID: "deadbeef", BaseURL: srv.URL})
	c.FetchStats(context.Background(), false)

	if calls != 1 {
		t.Errorf("got %d attempts, want exactly 1 (no retry loop)", calls)
	}
}
