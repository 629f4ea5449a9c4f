package source

import (
	"context"
	"fmt"

	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/jackc/pgx/v5/pgxpool"
)

// cutoffQuery reads the whole dataset; ordering by rank keeps the default
// view identical to the upstream JSON exports.
const cutoffQuery = `
SELECT rank, percentile, choice_code, institute_name, course_name, COALESCE(category, '')
FROM cutoffs
ORDER BY rank
`

// PostgresSource reads the dataset from a local cutoffs table. It joins the
// chain only when a database is configured, typically as the first
// candidate so a seeded database acts as the local proxy for the upstream
// dataset.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a database candidate over an existing pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name implements Source.
func (s *PostgresSource) Name() string { return "postgres" }

// Load queries the cutoffs table into records. An empty table is a failure,
// not an empty dataset: it means the database has not been seeded and the
// chain should fall through to the network candidates.
func (s *PostgresSource) Load(ctx context.Context) ([]cutoff.Record, error) {
	rows, err := s.pool.Query(ctx, cutoffQuery)
	if err != nil {
		return nil, fmt.Errorf("query cutoffs: %w", err)
	}
	defer rows.Close()

	var records []cutoff.Record
	for rows.Next() {
		var rec cutoff.Record
		if err := rows.Scan(&rec.Rank, &rec.Percentile, &rec.ChoiceCode, &rec.InstituteName, &rec.CourseName, &rec.Category); err != nil {
			return nil, fmt.Errorf("scan cutoff row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cutoff rows: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("cutoffs table is empty")
	}
	return records, nil
}
