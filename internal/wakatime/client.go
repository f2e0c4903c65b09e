// Package wakatime fetches, normalizes and caches coding-time statistics
// from the tracking service's public share endpoint.
//
// The feed is decorative rather than primary content, so the client never
// fails its caller: any fetch problem resolves to a cached snapshot of any
// age, and failing that, to a fixed default dataset.
package wakatime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammad-fiaz/portfolio/internal/cache"
	"github.com/muhammad-fiaz/portfolio/internal/log"
)

const (
	defaultBaseURL = "https://wakatime.com"

	// maxLanguages caps the normalized language breakdown.
	maxLanguages = 8
)

// Options configures a Client.
type Options struct {
	// Username is the tracked account identity.
	Username string

	// ShareID is the opaque share token authorizing the public stats
	// read. Empty means the feed is unconfigured; FetchStats then
	// serves the default dataset without touching the network.
	ShareID string

	// BaseURL overrides the service endpoint, for tests. Empty means
	// the production endpoint.
	BaseURL string

	// TTL overrides the cache freshness window. Zero means
	// cache.DefaultTTL.
	TTL time.Duration

	// HTTPClient overrides the transport. Nil means http.DefaultClient.
	HTTPClient *http.Client
}

// Client is the cache-aware statistics client.
type Client struct {
	http    *http.Client
	store   cache.Store
	baseURL string
	user    string
	shareID string
	ttl     time.Duration
}

// NewClient creates a statistics client over the given cache backend.
func NewClient(store cache.Store, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	return &Client{
		http:    httpClient,
		store:   store,
		baseURL: baseURL,
		user:    opts.Username,
		shareID: opts.ShareID,
		ttl:     ttl,
	}
}

// FetchStats returns one coding-statistics snapshot. Never returns an
// error alongside a nil snapshot: the fallback chain is fresh cache ->
// network -> stale cache (any age) -> built-in default dataset.
func (c *Client) FetchStats(ctx context.Context, forceRefresh bool) *Stats {
	if !forceRefresh {
		if stats, ok := cache.GetJSON[*Stats](ctx, c.store, cache.KeyCodingStats); ok {
			log.Info("using cached coding stats")
			return stats
		}
	}

	if c.shareID == "" || c.user == "" {
		log.Debug("stats feed unconfigured, serving default dataset")
		return c.fallback(ctx)
	}

	stats, err := c.fetch(ctx)
	if err != nil {
		log.Warn("coding stats fetch failed", "error", err)
		return c.fallback(ctx)
	}

	if err := cache.SetJSON(ctx, c.store, cache.KeyCodingStats, stats, c.ttl); err != nil {
		log.Debug("failed to cache coding stats", "error", err)
	}

	log.Info("fetched coding stats", "total", stats.TotalDisplayText)
	return stats
}

// fetch performs the single network call. No retry loop: a failure is a
// fallback decision, not a retryable condition.
func (c *Client) fetch(ctx context.Context) (*Stats, error) {
	url := fmt.Sprintf("%s/share/@%s/%s.json", c.baseURL, c.user, c.shareID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("stats endpoint returned status %d", resp.StatusCode)
	}

	var doc shareResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding stats response: %w", err)
	}

	return normalize(&doc), nil
}

// fallback serves a stale snapshot of any age, else the default dataset.
func (c *Client) fallback(ctx context.Context) *Stats {
	if stats, ok := cache.GetStaleJSON[*Stats](ctx, c.store, cache.KeyCodingStats); ok {
		log.Info("serving stale coding stats")
		return stats
	}
	return DefaultStats()
}
