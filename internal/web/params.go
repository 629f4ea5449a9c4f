package web

// params.go translates URL query parameters into query pipeline inputs and
// builds the links that drive the UI state machine: toggling the sorted
// column, stepping pages, and clearing filters. Any change to filters or
// sort resets the page to 1; only the pager links carry a page number.

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

// Query parameter names.
const (
	paramRankMin       = "rank_min"
	paramPercentileMax = "percentile_max"
	paramSearch        = "q"
	paramSort          = "sort"
	paramDir           = "dir"
	paramPage          = "page"
)

// parseQuery extracts filter, sort, and page state from the request.
// Invalid or out-of-range values are treated as unset rather than errors:
// the table should always render with whatever state is usable.
func parseQuery(r *http.Request) cutoff.Query {
	vals := r.URL.Query()

	var filters cutoff.FilterCriteria
	if v := vals.Get(paramRankMin); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.RankThreshold = &n
		}
	}
	if v := vals.Get(paramPercentileMax); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 100 {
			filters.PercentileThreshold = &f
		}
	}
	filters.SearchText = vals.Get(paramSearch)

	sort := cutoff.DefaultSort()
	switch cutoff.SortField(vals.Get(paramSort)) {
	case cutoff.SortByPercentile:
		sort.Field = cutoff.SortByPercentile
	case cutoff.SortByRank:
		sort.Field = cutoff.SortByRank
	}
	if vals.Get(paramDir) == string(cutoff.Descending) {
		sort.Order = cutoff.Descending
	}

	page := parseIntParam(r, paramPage, 1)

	return cutoff.Query{
		Filters: filters,
		Sort:    sort,
		Page:    cutoff.PageState{Number: page},
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// queryValues encodes the query state back into URL parameters. Defaults
// are omitted to keep the URLs short and shareable.
func queryValues(q cutoff.Query) url.Values {
	vals := url.Values{}

	if q.Filters.RankThreshold != nil {
		vals.Set(paramRankMin, strconv.Itoa(*q.Filters.RankThreshold))
	}
	if q.Filters.PercentileThreshold != nil {
		vals.Set(paramPercentileMax, strconv.FormatFloat(*q.Filters.PercentileThreshold, 'f', -1, 64))
	}
	if s := strings.TrimSpace(q.Filters.SearchText); s != "" {
		vals.Set(paramSearch, s)
	}

	if q.Sort != cutoff.DefaultSort() {
		vals.Set(paramSort, string(q.Sort.Field))
		vals.Set(paramDir, string(q.Sort.Order))
	}

	if q.Page.Number > 1 {
		vals.Set(paramPage, strconv.Itoa(q.Page.Number))
	}

	return vals
}

// toggleSortQuery returns the query string for clicking a column header:
// clicking the current sort field flips the direction, clicking a different
// field sorts ascending by it. Either way the page resets to 1.
func toggleSortQuery(q cutoff.Query, field cutoff.SortField) string {
	next := q
	next.Page = cutoff.PageState{Number: 1}

	if q.Sort.Field == field {
		if q.Sort.Order == cutoff.Ascending {
			next.Sort.Order = cutoff.Descending
		} else {
			next.Sort.Order = cutoff.Ascending
		}
	} else {
		next.Sort = cutoff.SortCriteria{Field: field, Order: cutoff.Ascending}
	}

	return queryValues(next).Encode()
}

// pageQuery returns the query string for jumping to the given page while
// keeping filters and sort intact.
func pageQuery(q cutoff.Query, page int) string {
	next := q
	next.Page = cutoff.PageState{Number: page}
	return queryValues(next).Encode()
}
