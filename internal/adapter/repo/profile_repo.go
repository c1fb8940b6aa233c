package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// Create inserts the onboarded profile and returns the stored row.
func (r *ProfileRepositoryPG) Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProfile,
		p.ID,
		p.Name,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		p.Gender,
		p.Goal,
		p.TargetWeightKg,
		p.ActivityLevel,
		p.DailyCalorieGoal,
		p.WorkoutsPerWeek,
		p.WeightGoal,
		p.Subscription,
		p.TrialStartDate,
	)
	return scanProfile(row)
}

// GetByID fetches a profile by its UUID.
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProfileByID, id)
	return scanProfile(row)
}

// Update persists the mutable profile fields.
func (r *ProfileRepositoryPG) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateProfile,
		p.ID,
		p.Name,
		p.Age,
		p.WeightKg,
		p.HeightCm,
		p.TargetWeightKg,
		p.ActivityLevel,
		p.DailyCalorieGoal,
	)
	return scanProfile(row)
}

// SetSubscription flips the billing state of the profile.
func (r *ProfileRepositoryPG) SetSubscription(ctx context.Context, id string, status domain.SubscriptionStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetSubscriptionStatus, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.WeightKg,
		&p.HeightCm,
		&p.Gender,
		&p.Goal,
		&p.TargetWeightKg,
		&p.ActivityLevel,
		&p.DailyCalorieGoal,
		&p.WorkoutsPerWeek,
		&p.WeightGoal,
		&p.Subscription,
		&p.TrialStartDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
