package domain

import "time"

// DailyProgress holds one accumulator row per user per calendar day.
// CaloriesConsumed only ever grows; CaloriesGoal is snapshotted from the
// profile when the row is first created and never updated afterwards.
type DailyProgress struct {
	ID               string
	UserID           string
	Date             time.Time // local calendar day, time truncated
	CaloriesConsumed int
	CaloriesGoal     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WeightProgress is a per-day weight measurement, upserted on (user, date).
type WeightProgress struct {
	ID       string
	UserID   string
	Date     time.Time
	WeightKg float64
}

// UserStats is the aggregate view rendered on the dashboard.
type UserStats struct {
	TotalMeals      int
	AverageCalories int
	CurrentStreak   int
	TotalDays       int
}
