package repo

import (
	"context"
	"time"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// ProgressRepositoryPG implements domain.ProgressRepository backed by PostgreSQL.
type ProgressRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProgressRepository creates a new ProgressRepositoryPG.
func NewProgressRepository(sql infra.SQLExecutor) *ProgressRepositoryPG {
	return &ProgressRepositoryPG{sql: sql}
}

// GetByDate fetches the accumulator row for a local calendar day.
func (r *ProgressRepositoryPG) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.DailyProgress, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDailyProgress, userID, domain.DayOf(day))
	var p domain.DailyProgress
	err := row.Scan(&p.ID, &p.UserID, &p.Date, &p.CaloriesConsumed, &p.CaloriesGoal, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListRecent returns the newest rows first, up to limit.
func (r *ProgressRepositoryPG) ListRecent(ctx context.Context, userID string, limit int) ([]domain.DailyProgress, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectRecentProgress, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.DailyProgress
	for rows.Next() {
		var p domain.DailyProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.Date, &p.CaloriesConsumed, &p.CaloriesGoal, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListDatesDesc returns every recorded day, newest first, for streak walks.
func (r *ProgressRepositoryPG) ListDatesDesc(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectProgressDatesDesc, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}
