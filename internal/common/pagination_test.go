package common

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url           string
		page, perPage int
	}{
		{"/items", 1, 25},
		{"/items?page=3&limit=10", 3, 10},
		{"/items?page=abc&limit=xyz", 1, 25},
		{"/items?page=-2&limit=0", 1, 25},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		page, perPage := ParsePagination(r, 25)
		if page != tc.page || perPage != tc.perPage {
			t.Fatalf("%s: got page=%d perPage=%d, want %d/%d", tc.url, page, perPage, tc.page, tc.perPage)
		}
	}
}

func TestPaginationSliceClampsBounds(t *testing.T) {
	p := Pagination{Page: 3, PerPage: 10}
	if lo, hi := p.Slice(25); lo != 20 || hi != 25 {
		t.Fatalf("got [%d,%d), want [20,25)", lo, hi)
	}
	if lo, hi := p.Slice(5); lo != 5 || hi != 5 {
		t.Fatalf("past-the-end page must be empty, got [%d,%d)", lo, hi)
	}
}
