package view

import "github.com/muhammad-fiaz/portfolio/internal/github"

// Page is one window of a paginated collection. Pages are 1-indexed.
type Page struct {
	Items      []github.Repository `json:"items"`
	TotalCount int                 `json:"totalCount"`
	TotalPages int                 `json:"totalPages"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"perPage"`
	HasNext    bool                `json:"hasNext"`
	HasPrev    bool                `json:"hasPrev"`
}

// Paginate slices repos into the requested page. Pages beyond the last
// yield an empty item slice, not an error.
func Paginate(repos []github.Repository, page, perPage int) Page {
	if perPage < 1 {
		perPage = 1
	}
	totalCount := len(repos)
	totalPages := (totalCount + perPage - 1) / perPage

	p := Page{
		Items:      []github.Repository{},
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
		HasNext:    page*perPage < totalCount,
		HasPrev:    page > 1,
	}

	start := (page - 1) * perPage
	if start < 0 || start >= totalCount {
		return p
	}
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}
	p.Items = repos[start:end]
	return p
}
