package web

import (
	"context"
	"net/http"
	"time"

	"github.com/M4yank09/AI-cet/internal/cutoff"
)

// PaginationMeta describes where a page sits in the full result set.
type PaginationMeta struct {
	Page         int  `json:"page"`
	PageSize     int  `json:"page_size"`
	TotalMatches int  `json:"total_matches"`
	TotalPages   int  `json:"total_pages"`
	HasPrevious  bool `json:"has_previous"`
	HasNext      bool `json:"has_next"`
}

// FiltersMeta echoes the filter state the page was computed under.
type FiltersMeta struct {
	RankMin       *int     `json:"rank_min,omitempty"`
	PercentileMax *float64 `json:"percentile_max,omitempty"`
	Search        string   `json:"search,omitempty"`
}

// SortMeta echoes the sort state.
type SortMeta struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// SnapshotMeta identifies the dataset generation a response was served
// from.
type SnapshotMeta struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at"`
}

// CutoffsPage is the JSON response for one page of query results.
type CutoffsPage struct {
	Data       []cutoff.Record `json:"data"`
	Pagination PaginationMeta  `json:"pagination"`
	Filters    FiltersMeta     `json:"filters"`
	Sort       SortMeta        `json:"sort"`
	Snapshot   SnapshotMeta    `json:"snapshot"`
}

// handleListCutoffs runs the query pipeline and returns one page of results
// as JSON.
func (s *Server) handleListCutoffs(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r)

	snap, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	res := q.Run(snap.Records)
	s.metrics.ObserveQuery(time.Since(start))

	data := res.Visible
	if data == nil {
		data = []cutoff.Record{}
	}

	writeJSON(w, CutoffsPage{
		Data: data,
		Pagination: PaginationMeta{
			Page:         q.Page.Number,
			PageSize:     cutoff.PageSize,
			TotalMatches: res.TotalMatches,
			TotalPages:   res.TotalPages,
			HasPrevious:  res.HasPrevious(q.Page),
			HasNext:      res.HasNext(q.Page),
		},
		Filters: FiltersMeta{
			RankMin:       q.Filters.RankThreshold,
			PercentileMax: q.Filters.PercentileThreshold,
			Search:        q.Filters.SearchText,
		},
		Sort: SortMeta{
			Field: string(q.Sort.Field),
			Order: string(q.Sort.Order),
		},
		Snapshot: snapshotMeta(snap),
	})
}

// handleReload re-runs the whole source chain from the first candidate.
// Reloads are serialized; a click storm on the retry button runs the chain
// once at a time.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Sources.LoadTimeout)
	defer cancel()

	if err := s.store.Load(ctx, s.chain); err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	s.metrics.DatasetLoaded(len(snap.Records))

	writeJSON(w, map[string]any{"snapshot": snapshotMeta(snap)})
}

// handleHealth reports liveness plus the dataset state. The process is
// healthy even while the dataset is unavailable; the dataset block tells
// operators which of the two they are looking at.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dataset := map[string]any{"loaded": s.store.Ready()}

	if snap, err := s.store.Snapshot(); err == nil {
		dataset["snapshot"] = snapshotMeta(snap)
	}
	if err := s.store.LastError(); err != nil {
		dataset["last_error"] = err.Error()
	}

	writeJSON(w, map[string]any{
		"status":  "ok",
		"dataset": dataset,
	})
}

func snapshotMeta(snap *cutoff.Snapshot) SnapshotMeta {
	return SnapshotMeta{
		ID:       snap.ID.String(),
		Source:   snap.Source,
		Records:  len(snap.Records),
		LoadedAt: snap.LoadedAt,
	}
}
