package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// WeightRepositoryPG implements domain.WeightRepository backed by PostgreSQL.
type WeightRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewWeightRepository creates a new WeightRepositoryPG.
func NewWeightRepository(sql infra.SQLExecutor) *WeightRepositoryPG {
	return &WeightRepositoryPG{sql: sql}
}

// Upsert records the weight for (user, day), replacing an earlier entry.
func (r *WeightRepositoryPG) Upsert(ctx context.Context, entry *domain.WeightProgress) (*domain.WeightProgress, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertWeightEntry,
		entry.ID,
		entry.UserID,
		domain.DayOf(entry.Date),
		entry.WeightKg,
	)
	var out domain.WeightProgress
	if err := row.Scan(&out.ID, &out.UserID, &out.Date, &out.WeightKg); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSince returns entries on or after since, oldest first.
func (r *WeightRepositoryPG) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.WeightProgress, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectWeightSince, userID, domain.DayOf(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.WeightProgress
	for rows.Next() {
		var w domain.WeightProgress
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.WeightKg); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
