package web

import (
	"net/http"
	"time"

	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/M4yank09/AI-cet/internal/web/templates"
)

// handleIndex serves the explorer page shell. All table state lives in the
// URL query string; the page's script populates the form from it and loads
// the table fragment.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, staticFiles, "static/index.html")
}

// handleTablePartial renders the results table fragment for the current
// query state.
func (s *Server) handleTablePartial(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r)

	snap, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	res := q.Run(snap.Records)
	s.metrics.ObserveQuery(time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.ResultsTable(buildTableView(q, res)).Render(r.Context(), w)
}

// buildTableView precomputes the navigation state the fragment renders:
// row range, pager targets, and the per-column sort toggle links.
func buildTableView(q cutoff.Query, res cutoff.QueryResult) templates.TableView {
	fromRow := 0
	toRow := 0
	if len(res.Visible) > 0 {
		fromRow = (q.Page.Number-1)*cutoff.PageSize + 1
		toRow = fromRow + len(res.Visible) - 1
	}

	return templates.TableView{
		Rows:         res.Visible,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         q.Page.Number,
		FromRow:      fromRow,
		ToRow:        toRow,

		HasPrevious: res.HasPrevious(q.Page),
		HasNext:     res.HasNext(q.Page),
		PrevQuery:   pageQuery(q, q.Page.Number-1),
		NextQuery:   pageQuery(q, q.Page.Number+1),

		SortField:       string(q.Sort.Field),
		SortOrder:       string(q.Sort.Order),
		RankQuery:       toggleSortQuery(q, cutoff.SortByRank),
		PercentileQuery: toggleSortQuery(q, cutoff.SortByPercentile),
	}
}
