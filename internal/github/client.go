// Package github fetches, normalizes and caches the repository collection
// and owner profile from the hosting API.
package github

import (
	"context"
	"fmt"
	"os"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/muhammad-fiaz/portfolio/internal/log"
)

// PageSize is the number of repositories requested per listing page.
// A short or empty page terminates pagination.
const PageSize = 100

// Fetcher is the network boundary of the repository client. It exists so
// the cache-aware Store can be tested with a stub.
type Fetcher interface {
	// ListPage fetches one page of the owner's repositories.
	ListPage(ctx context.Context, owner string, page, perPage int) ([]Repository, error)

	// GetProfile fetches the owner's public profile.
	GetProfile(ctx context.Context, owner string) (*Profile, error)

	// GetReadme fetches one repository's README as plain text.
	GetReadme(ctx context.Context, owner, repo string) (string, error)
}

// Client implements Fetcher against the live API.
type Client struct {
	client *gh.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates an API client. The token is optional: public data is
// readable unauthenticated, a token only raises the rate limit. An empty
// token falls back to the GITHUB_TOKEN environment variable.
func NewClient(ctx context.Context, token string) *Client {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	if token == "" {
		return &Client{client: gh.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{client: gh.NewClient(oauth2.NewClient(ctx, ts))}
}

// ListPage fetches one page of the owner's public repositories, newest
// pushed first, and normalizes them into the canonical model.
func (c *Client) ListPage(ctx context.Context, owner string, page, perPage int) ([]Repository, error) {
	opts := &gh.RepositoryListOptions{
		Type:      "owner",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	log.Debug("listing repositories", "owner", owner, "page", page, "per_page", perPage)
	repos, _, err := c.client.Repositories.List(ctx, owner, opts)
	if err != nil {
		return nil, classify(err)
	}

	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, fromRepository(r))
	}
	return out, nil
}

// GetProfile fetches the owner's public profile.
func (c *Client) GetProfile(ctx context.Context, owner string) (*Profile, error) {
	log.Debug("fetching profile", "owner", owner)
	user, _, err := c.client.Users.Get(ctx, owner)
	if err != nil {
		return nil, classify(err)
	}
	return fromUser(user), nil
}

// GetReadme fetches the default-branch README of one repository, decoded
// to plain text.
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (string, error) {
	log.Debug("fetching readme", "owner", owner, "repo", repo)
	readme, _, err := c.client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", classify(err)
	}
	content, err := readme.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: decoding readme: %v", ErrTransient, err)
	}
	return content, nil
}
