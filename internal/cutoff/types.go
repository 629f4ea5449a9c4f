package cutoff

// PageSize is the fixed number of records per page.
const PageSize = 20

// Record is one admissions cutoff row. Records are immutable after load;
// the pipeline never modifies them.
type Record struct {
	Rank          int     `json:"rank"`
	Percentile    float64 `json:"percentile"`
	ChoiceCode    string  `json:"choice_code"`
	InstituteName string  `json:"institute_name"`
	CourseName    string  `json:"course_name"`
	Category      string  `json:"category,omitempty"`
}

// SortField selects which numeric column the pipeline sorts by.
type SortField string

const (
	SortByRank       SortField = "rank"
	SortByPercentile SortField = "percentile"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// FilterCriteria holds the transient filter state for a query.
// Nil thresholds mean "not set"; an empty SearchText disables the search
// stage. A record passes the threshold stage when it satisfies at least one
// of the set thresholds (inclusive OR).
type FilterCriteria struct {
	// RankThreshold keeps records with rank >= the threshold.
	RankThreshold *int

	// PercentileThreshold keeps records with percentile <= the threshold.
	PercentileThreshold *float64

	// SearchText is matched case-insensitively as a substring of the
	// institute or course name. Leading/trailing whitespace is ignored.
	SearchText string
}

// IsZero reports whether no filter is active.
func (f FilterCriteria) IsZero() bool {
	return f.RankThreshold == nil && f.PercentileThreshold == nil && trimmedSearch(f.SearchText) == ""
}

// SortCriteria holds the sort state for a query.
type SortCriteria struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is the initial sort state: by rank, ascending.
func DefaultSort() SortCriteria {
	return SortCriteria{Field: SortByRank, Order: Ascending}
}

// PageState holds the 1-based page number for a query. The page size is
// fixed at PageSize.
type PageState struct {
	Number int
}

// Query bundles the three transient pipeline inputs owned by the session.
// The pipeline never mutates them; filter and sort changes reset the page
// at the layer that owns the state, not here.
type Query struct {
	Filters FilterCriteria
	Sort    SortCriteria
	Page    PageState
}

// Run executes the pipeline over the given records.
func (q Query) Run(records []Record) QueryResult {
	return Apply(records, q.Filters, q.Sort, q.Page)
}

// QueryResult is the output of one pipeline run.
type QueryResult struct {
	// Visible is the slice of records on the requested page.
	Visible []Record

	// TotalMatches is the number of records that survived both filter
	// stages, across all pages.
	TotalMatches int

	// TotalPages is ceil(TotalMatches / PageSize); 0 when nothing matched.
	TotalPages int
}

// HasPrevious reports whether a page before the given one exists.
func (r QueryResult) HasPrevious(page PageState) bool {
	return page.Number > 1 && r.TotalPages > 0
}

// HasNext reports whether a page after the given one exists.
func (r QueryResult) HasNext(page PageState) bool {
	return page.Number < r.TotalPages
}
