package domain

import (
	"context"
	"time"
)

// ProfileRepository defines access methods for user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *UserProfile) (*UserProfile, error)
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	Update(ctx context.Context, profile *UserProfile) (*UserProfile, error)
	SetSubscription(ctx context.Context, id string, status SubscriptionStatus) error
}

// MealRepository persists meals together with their food items. CreateLogged
// commits the meal, its food items and the daily-progress accumulation as one
// transaction so a failed save leaves nothing behind.
type MealRepository interface {
	CreateLogged(ctx context.Context, meal *Meal, goalSnapshot int) (*Meal, error)
	ListByDate(ctx context.Context, userID string, day time.Time) ([]Meal, error)
	Delete(ctx context.Context, userID, mealID string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

// ProgressRepository reads the per-day accumulator rows.
type ProgressRepository interface {
	GetByDate(ctx context.Context, userID string, day time.Time) (*DailyProgress, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]DailyProgress, error)
	ListDatesDesc(ctx context.Context, userID string) ([]time.Time, error)
}

// WeightRepository upserts per-day weight measurements.
type WeightRepository interface {
	Upsert(ctx context.Context, entry *WeightProgress) (*WeightProgress, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]WeightProgress, error)
}

// RunningRepository persists logged runs.
type RunningRepository interface {
	Create(ctx context.Context, run *RunningActivity) (*RunningActivity, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]RunningActivity, error)
	Stats(ctx context.Context, userID string) (*RunningStats, error)
}

// AffiliateRepository maintains the referral ledger and payout requests.
type AffiliateRepository interface {
	GetAccount(ctx context.Context, userID string) (*AffiliateAccount, error)
	ListReferrals(ctx context.Context, userID string, limit int) ([]Referral, error)
	RequestWithdrawal(ctx context.Context, w *Withdrawal) (*Withdrawal, error)
	ListWithdrawals(ctx context.Context, userID string) ([]Withdrawal, error)
}
