package repo

import (
	"context"

	"github.com/google/uuid"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// RunningRepositoryPG implements domain.RunningRepository backed by PostgreSQL.
type RunningRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewRunningRepository creates a new RunningRepositoryPG.
func NewRunningRepository(sql infra.SQLExecutor) *RunningRepositoryPG {
	return &RunningRepositoryPG{sql: sql}
}

// Create inserts a logged run.
func (r *RunningRepositoryPG) Create(ctx context.Context, run *domain.RunningActivity) (*domain.RunningActivity, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertRun,
		run.ID,
		run.UserID,
		run.Date,
		run.DistanceKm,
		run.DurationMin,
		run.PaceMinPerKm,
		run.CaloriesBurned,
		run.Source,
	)
	if err := row.Scan(&run.CreatedAt); err != nil {
		return nil, err
	}
	return run, nil
}

// ListByUser returns the newest runs first, up to limit.
func (r *RunningRepositoryPG) ListByUser(ctx context.Context, userID string, limit int) ([]domain.RunningActivity, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectRunsByUser, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RunningActivity
	for rows.Next() {
		var a domain.RunningActivity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.DistanceKm, &a.DurationMin, &a.PaceMinPerKm, &a.CaloriesBurned, &a.Source, &a.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Stats aggregates the user's running history. Average pace is derived from
// the totals rather than averaged per-run so long runs weigh in properly.
func (r *RunningRepositoryPG) Stats(ctx context.Context, userID string) (*domain.RunningStats, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectRunningStats, userID)
	var s domain.RunningStats
	if err := row.Scan(&s.TotalDistanceKm, &s.TotalTimeMin, &s.TotalCalories, &s.LongestRunKm, &s.TotalRuns); err != nil {
		return nil, err
	}
	if s.TotalDistanceKm > 0 {
		s.AveragePace = s.TotalTimeMin / s.TotalDistanceKm
	}
	return &s, nil
}
