package common

import "net/http"

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
}

// ParsePagination reads page and limit query parameters, falling back to page
// 1 and the provided default page size.
func ParsePagination(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = AtoiDefault(r.URL.Query().Get("page"), 1)
	if page < 1 {
		page = 1
	}
	perPage = AtoiDefault(r.URL.Query().Get("limit"), defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return
}

// Slice returns the window of n items covered by the page, clamped to valid
// bounds.
func (p Pagination) Slice(n int) (lo, hi int) {
	lo = (p.Page - 1) * p.PerPage
	if lo > n {
		lo = n
	}
	hi = lo + p.PerPage
	if hi > n {
		hi = n
	}
	return
}
