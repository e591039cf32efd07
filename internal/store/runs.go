package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/google/uuid"
)

// Run is one persisted analysis: the headline numbers of a report plus
// where and when it came from. The report itself is not stored; it is
// cheap to rebuild from the source file.
type Run struct {
	ID         string
	SourceFile string
	Role       domain.Role
	GroupCount int
	TotalHours float64
	TotalCost  float64
	FirstEvent *time.Time
	LastEvent  *time.Time
	CreatedAt  time.Time
}

// RunRepo persists analysis runs in SQLite.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a RunRepo on the given database.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// SaveReport records the outcome of one analysis of sourceFile and returns
// the stored run.
func (r *RunRepo) SaveReport(ctx context.Context, sourceFile string, rep *domain.Report, now time.Time) (*Run, error) {
	run := &Run{
		ID:         uuid.New().String(),
		SourceFile: sourceFile,
		Role:       rep.Role,
		GroupCount: len(rep.Groups),
		TotalHours: rep.TotalHours,
		TotalCost:  rep.TotalCost,
		CreatedAt:  now.UTC(),
	}
	if rep.Timespan != nil {
		first, last := rep.Timespan.First, rep.Timespan.Last
		run.FirstEvent = &first
		run.LastEvent = &last
	}

	query := `INSERT INTO analysis_runs (id, source_file, role, group_count, total_hours, total_cost, first_event, last_event, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.SourceFile,
		string(run.Role),
		run.GroupCount,
		run.TotalHours,
		run.TotalCost,
		formatOptionalTime(run.FirstEvent),
		formatOptionalTime(run.LastEvent),
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting analysis run: %w", err)
	}
	return run, nil
}

// ListRecent returns the most recent runs, newest first.
func (r *RunRepo) ListRecent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, source_file, role, group_count, total_hours, total_cost, first_event, last_event, created_at
		FROM analysis_runs ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var run Run
	var role, createdAt string
	var first, last sql.NullString

	if err := rows.Scan(&run.ID, &run.SourceFile, &role, &run.GroupCount,
		&run.TotalHours, &run.TotalCost, &first, &last, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning analysis run: %w", err)
	}

	run.Role = domain.Role(role)

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	run.CreatedAt = created

	if run.FirstEvent, err = parseOptionalTime(first); err != nil {
		return nil, fmt.Errorf("parsing first_event: %w", err)
	}
	if run.LastEvent, err = parseOptionalTime(last); err != nil {
		return nil, fmt.Errorf("parsing last_event: %w", err)
	}
	return &run, nil
}

func formatOptionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseOptionalTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
