// Package templates renders the HTML fragments swapped into the cutoff
// explorer page. Components are written directly against the templ API so
// the rendering contract (templ.Component) matches the rest of the UI
// toolchain.
package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/a-h/templ"
)

// TableView is everything the results table fragment needs: the visible
// rows plus the precomputed navigation state. Handlers own the query
// semantics; this package only renders.
type TableView struct {
	Rows         []cutoff.Record
	TotalMatches int
	TotalPages   int
	Page         int
	FromRow      int
	ToRow        int

	HasPrevious bool
	HasNext     bool
	PrevQuery   string
	NextQuery   string

	SortField       string
	SortOrder       string
	RankQuery       string
	PercentileQuery string
}

// ResultsTable renders the table fragment: summary line, sortable headers,
// rows, and the pager.
func ResultsTable(v TableView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if v.TotalMatches == 0 {
			_, err := io.WriteString(w, `<div class="summary" id="summary">No cutoff records match your filters.</div>`)
			return err
		}

		if len(v.Rows) == 0 {
			// Page past the end; the pager never links here, but a
			// hand-edited URL can.
			if _, err := fmt.Fprintf(w,
				`<div class="summary" id="summary">No records on this page (%d matches over %d pages).</div>`,
				v.TotalMatches, v.TotalPages,
			); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintf(w,
			`<div class="summary" id="summary">Showing %d&ndash;%d of %d records</div>`,
			v.FromRow, v.ToRow, v.TotalMatches,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="cutoffs"><thead><tr>`); err != nil {
			return err
		}
		if err := sortableHeader(w, "Rank", "rank", v); err != nil {
			return err
		}
		if err := sortableHeader(w, "Percentile", "percentile", v); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<th>Choice Code</th><th>Institute</th><th>Course</th><th>Category</th></tr></thead><tbody>`); err != nil {
			return err
		}

		for _, rec := range v.Rows {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				rec.Rank,
				strconv.FormatFloat(rec.Percentile, 'f', 2, 64),
				templ.EscapeString(rec.ChoiceCode),
				templ.EscapeString(rec.InstituteName),
				templ.EscapeString(rec.CourseName),
				templ.EscapeString(rec.Category),
			); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		return pager(w, v)
	})
}

// sortableHeader writes one clickable header cell. The query string encodes
// the next sort state for this column; the arrow marks the active one.
func sortableHeader(w io.Writer, label, field string, v TableView) error {
	query := v.RankQuery
	if field == "percentile" {
		query = v.PercentileQuery
	}

	indicator := ""
	if v.SortField == field {
		if v.SortOrder == "desc" {
			indicator = " &#9660;"
		} else {
			indicator = " &#9650;"
		}
	}

	_, err := fmt.Fprintf(w,
		`<th><a href="/?%s" data-query="%s">%s%s</a></th>`,
		templ.EscapeString(query), templ.EscapeString(query), templ.EscapeString(label), indicator,
	)
	return err
}

// pager writes the Previous/Next controls, disabled at the first and last
// page respectively.
func pager(w io.Writer, v TableView) error {
	if _, err := io.WriteString(w, `<div class="pager" id="pager">`); err != nil {
		return err
	}

	if err := pagerLink(w, "Previous", v.PrevQuery, v.HasPrevious); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<span class="page-info">Page %d of %d</span>`, v.Page, v.TotalPages); err != nil {
		return err
	}
	if err := pagerLink(w, "Next", v.NextQuery, v.HasNext); err != nil {
		return err
	}

	_, err := io.WriteString(w, `</div>`)
	return err
}

func pagerLink(w io.Writer, label, query string, enabled bool) error {
	if !enabled {
		_, err := fmt.Fprintf(w, `<span class="pager-link disabled">%s</span>`, label)
		return err
	}
	_, err := fmt.Fprintf(w,
		`<a class="pager-link" href="/?%s" data-query="%s">%s</a>`,
		templ.EscapeString(query), templ.EscapeString(query), label,
	)
	return err
}

// ErrorAlert renders the blocking error state with a retry affordance.
// The retry button re-runs the whole source chain from the first candidate.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="alert error" role="alert"><p>%s</p><p class="action">%s</p><button type="button" id="retry">Retry</button><p class="code">Code: %s</p></div>`,
			templ.EscapeString(message), templ.EscapeString(action), templ.EscapeString(code),
		)
		return err
	})
}
