package cutoff

import (
	"sort"
	"strings"
)

// Apply runs the query pipeline over the full dataset: threshold filter,
// text search, stable sort, then pagination. It is pure and
// deterministic: the input slice is never modified, and identical inputs
// always produce identical output, so it is safe to re-run on every state
// change.
//
// Pagination does not clamp the page number; requesting a page past the end
// yields an empty Visible slice. Callers own page clamping.
func Apply(records []Record, filters FilterCriteria, sortBy SortCriteria, page PageState) QueryResult {
	filtered := applyThresholds(records, filters)
	filtered = applySearch(filtered, filters.SearchText)
	sorted := sortRecords(filtered, sortBy)

	total := len(sorted)
	return QueryResult{
		Visible:      pageOf(sorted, page),
		TotalMatches: total,
		TotalPages:   (total + PageSize - 1) / PageSize,
	}
}

// applyThresholds keeps records matching at least one of the set thresholds.
// The inclusive-OR across the two criteria is intentional, observable
// behavior: setting either threshold broadens rather than narrows results.
func applyThresholds(records []Record, f FilterCriteria) []Record {
	if f.RankThreshold == nil && f.PercentileThreshold == nil {
		return records
	}

	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if f.PercentileThreshold != nil && rec.Percentile <= *f.PercentileThreshold {
			kept = append(kept, rec)
			continue
		}
		if f.RankThreshold != nil && rec.Rank >= *f.RankThreshold {
			kept = append(kept, rec)
		}
	}
	return kept
}

// applySearch keeps records whose institute or course name contains the
// trimmed search text, case-insensitively. Empty name fields simply never
// match; they are not an error.
func applySearch(records []Record, search string) []Record {
	needle := trimmedSearch(search)
	if needle == "" {
		return records
	}

	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.InstituteName), needle) ||
			strings.Contains(strings.ToLower(rec.CourseName), needle) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// sortRecords returns a stably sorted copy; the input slice is left intact.
// An unrecognized sort field compares everything equal, which under a stable
// sort preserves the prior relative order.
func sortRecords(records []Record, by SortCriteria) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping the operands inverts the order while keeping stability.
		if by.Order == Descending {
			i, j = j, i
		}
		switch by.Field {
		case SortByRank:
			return sorted[i].Rank < sorted[j].Rank
		case SortByPercentile:
			return sorted[i].Percentile < sorted[j].Percentile
		default:
			return false
		}
	})

	return sorted
}

// pageOf slices out the requested 1-based page. Pages before the first or
// past the last yield an empty slice.
func pageOf(records []Record, page PageState) []Record {
	start := (page.Number - 1) * PageSize
	if start < 0 || start >= len(records) {
		return nil
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// trimmedSearch normalizes search input for matching.
func trimmedSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
