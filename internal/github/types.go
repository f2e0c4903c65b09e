package github

import (
	"time"

	gh "github.com/google/go-github/v57/github"
)

// License identifies a repository license.
type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdxId"`
}

// Repository is the canonical repository model used throughout the
// application. It is owned by the cache entry holding the full collection
// and is never mutated in place; a refresh replaces the whole collection.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"fullName"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url"`
	HomepageURL     string    `json:"homepageUrl,omitempty"`
	PrimaryLanguage string    `json:"primaryLanguage,omitempty"`
	StarCount       int       `json:"starCount"`
	ForkCount       int       `json:"forkCount"`
	WatcherCount    int       `json:"watcherCount"`
	OpenIssueCount  int       `json:"openIssueCount"`
	Topics          []string  `json:"topics"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	PushedAt        time.Time `json:"pushedAt"`
	IsFork          bool      `json:"isFork"`
	IsArchived      bool      `json:"isArchived"`
	IsDisabled      bool      `json:"isDisabled"`
	Visibility      string    `json:"visibility"`
	License         *License  `json:"license,omitempty"`
	DefaultBranch   string    `json:"defaultBranch"`
	SizeKB          int       `json:"sizeKb"`
}

// Profile is the public profile of the owner identity.
type Profile struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	Location    string    `json:"location,omitempty"`
	Email       string    `json:"email,omitempty"`
	AvatarURL   string    `json:"avatarUrl"`
	URL         string    `json:"url"`
	PublicRepos int       `json:"publicRepos"`
	PublicGists int       `json:"publicGists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
}

func fromRepository(r *gh.Repository) Repository {
	repo := Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		URL:             r.GetHTMLURL(),
		HomepageURL:     r.GetHomepage(),
		PrimaryLanguage: r.GetLanguage(),
		StarCount:       r.GetStargazersCount(),
		ForkCount:       r.GetForksCount(),
		WatcherCount:    r.GetWatchersCount(),
		OpenIssueCount:  r.GetOpenIssuesCount(),
		Topics:          r.Topics,
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		PushedAt:        r.GetPushedAt().Time,
		IsFork:          r.GetFork(),
		IsArchived:      r.GetArchived(),
		IsDisabled:      r.GetDisabled(),
		Visibility:      r.GetVisibility(),
		DefaultBranch:   r.GetDefaultBranch(),
		SizeKB:          r.GetSize(),
	}
	if lic := r.GetLicense(); lic != nil {
		repo.License = &License{
			Key:    lic.GetKey(),
			Name:   lic.GetName(),
			SPDXID: lic.GetSPDXID(),
		}
	}
	return repo
}

func fromUser(u *gh.User) *Profile {
	return &Profile{
		Login:       u.GetLogin(),
		ID:          u.GetID(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Blog:        u.GetBlog(),
		Location:    u.GetLocation(),
		Email:       u.GetEmail(),
		AvatarURL:   u.GetAvatarURL(),
		URL:         u.GetHTMLURL(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}
