// Package cutoff provides the domain logic for the admissions cutoff
// explorer: the record model, the dataset snapshot store, and the pure
// query pipeline that filters, searches, sorts, and paginates records.
//
// This package has no UI or transport dependencies and can be used by web
// handlers, CLI tools, or tests without modification.
//
// # Query Pipeline
//
// [Apply] is the heart of the package. It is a pure function over an
// in-memory record slice, recomputed on every input change:
//
//	result := cutoff.Apply(records, filters, sort, page)
//
// Stages run in a fixed order: threshold filter, text search, stable sort,
// pagination. The threshold stage keeps a record when it satisfies at least
// one of the configured thresholds (inclusive OR), while the search stage
// composes with it as a sequential AND. Both behaviors are observable
// dataset semantics and must not change.
//
// # Dataset Lifecycle
//
// The full dataset is loaded once per process (or on explicit reload) via a
// [Loader] and held in a [Store]. Records are immutable after load; a reload
// swaps in a whole new snapshot rather than mutating the current one.
package cutoff
