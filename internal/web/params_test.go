package web

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

func TestParseQuery_Full(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cutoffs?rank_min=1000&percentile_max=90.5&q=computer&sort=percentile&dir=desc&page=3", nil)

	q := parseQuery(r)

	if q.Filters.RankThreshold == nil || *q.Filters.RankThreshold != 1000 {
		t.Errorf("RankThreshold = %v, want 1000", q.Filters.RankThreshold)
	}
	if q.Filters.PercentileThreshold == nil || *q.Filters.PercentileThreshold != 90.5 {
		t.Errorf("PercentileThreshold = %v, want 90.5", q.Filters.PercentileThreshold)
	}
	if q.Filters.SearchText != "computer" {
		t.Errorf("SearchText = %q, want %q", q.Filters.SearchText, "computer")
	}
	if q.Sort.Field != cutoff.SortByPercentile || q.Sort.Order != cutoff.Descending {
		t.Errorf("Sort = %+v, want percentile desc", q.Sort)
	}
	if q.Page.Number != 3 {
		t.Errorf("Page.Number = %d, want 3", q.Page.Number)
	}
}

func TestParseQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cutoffs", nil)

	q := parseQuery(r)

	if !q.Filters.IsZero() {
		t.Errorf("Filters = %+v, want zero", q.Filters)
	}
	if q.Sort != cutoff.DefaultSort() {
		t.Errorf("Sort = %+v, want default", q.Sort)
	}
	if q.Page.Number != 1 {
		t.Errorf("Page.Number = %d, want 1", q.Page.Number)
	}
}

// Unusable parameter values fall back to unset so the table always renders.
func TestParseQuery_InvalidValuesIgnored(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric rank", "rank_min=abc"},
		{"zero rank", "rank_min=0"},
		{"negative rank", "rank_min=-5"},
		{"percentile above range", "percentile_max=101"},
		{"percentile below range", "percentile_max=-1"},
		{"non-numeric percentile", "percentile_max=high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/cutoffs?"+tt.query, nil)
			q := parseQuery(r)
			if q.Filters.RankThreshold != nil || q.Filters.PercentileThreshold != nil {
				t.Errorf("filters = %+v, want thresholds unset", q.Filters)
			}
		})
	}

	r := httptest.NewRequest("GET", "/api/cutoffs?page=0", nil)
	if q := parseQuery(r); q.Page.Number != 1 {
		t.Errorf("Page.Number = %d, want 1 for page=0", q.Page.Number)
	}
	r = httptest.NewRequest("GET", "/api/cutoffs?sort=institute", nil)
	if q := parseQuery(r); q.Sort.Field != cutoff.SortByRank {
		t.Errorf("Sort.Field = %q, want default for unknown sort", q.Sort.Field)
	}
}

func TestToggleSortQuery(t *testing.T) {
	rank := 500
	base := cutoff.Query{
		Filters: cutoff.FilterCriteria{RankThreshold: &rank, SearchText: "civil"},
		Sort:    cutoff.SortCriteria{Field: cutoff.SortByRank, Order: cutoff.Ascending},
		Page:    cutoff.PageState{Number: 4},
	}

	// Same field: flip direction, back to page 1, filters kept.
	vals, err := url.ParseQuery(toggleSortQuery(base, cutoff.SortByRank))
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("sort") != "rank" || vals.Get("dir") != "desc" {
		t.Errorf("same-field toggle = %v, want rank desc", vals)
	}
	if vals.Get("page") != "" {
		t.Errorf("page = %q, want unset (reset to 1)", vals.Get("page"))
	}
	if vals.Get("rank_min") != "500" || vals.Get("q") != "civil" {
		t.Errorf("filters not preserved: %v", vals)
	}

	// Different field: ascending, page reset.
	vals, err = url.ParseQuery(toggleSortQuery(base, cutoff.SortByPercentile))
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("sort") != "percentile" || vals.Get("dir") != "asc" {
		t.Errorf("new-field toggle = %v, want percentile asc", vals)
	}

	// Toggling back to the default sort drops the parameters entirely.
	desc := base
	desc.Sort.Order = cutoff.Descending
	vals, err = url.ParseQuery(toggleSortQuery(desc, cutoff.SortByRank))
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("sort") != "" || vals.Get("dir") != "" {
		t.Errorf("default sort should encode as empty, got %v", vals)
	}
}

func TestPageQuery(t *testing.T) {
	pct := 95.0
	q := cutoff.Query{
		Filters: cutoff.FilterCriteria{PercentileThreshold: &pct},
		Sort:    cutoff.SortCriteria{Field: cutoff.SortByPercentile, Order: cutoff.Descending},
		Page:    cutoff.PageState{Number: 2},
	}

	vals, err := url.ParseQuery(pageQuery(q, 3))
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("page") != "3" {
		t.Errorf("page = %q, want 3", vals.Get("page"))
	}
	if vals.Get("percentile_max") != "95" {
		t.Errorf("percentile_max = %q, want 95", vals.Get("percentile_max"))
	}
	if vals.Get("sort") != "percentile" || vals.Get("dir") != "desc" {
		t.Errorf("sort not preserved: %v", vals)
	}
}
