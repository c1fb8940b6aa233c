// Package tracker maintains per-day calorie accumulators and the dashboard
// aggregates derived from them.
package tracker

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"caltrack/internal/domain"
)

// DefaultCalorieGoal is snapshotted into a new daily row when the profile
// goal cannot be read.
const DefaultCalorieGoal = 2000

// averageWindow is how many recent days feed the average-calories figure.
const averageWindow = 7

// Service wires the aggregation flows on top of the repositories.
type Service struct {
	profiles domain.ProfileRepository
	meals    domain.MealRepository
	progress domain.ProgressRepository
	now      func() time.Time
}

// NewService creates a tracker service. A nil now falls back to time.Now.
func NewService(profiles domain.ProfileRepository, meals domain.MealRepository, progress domain.ProgressRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{profiles: profiles, meals: meals, progress: progress, now: now}
}

// LogMeal totalizes and persists the meal together with the day's calorie
// accumulation. Saving the same meal twice records two meals and accumulates
// twice: deduplication is deliberately not provided.
func (s *Service) LogMeal(ctx context.Context, userID string, meal *domain.Meal) (*domain.Meal, error) {
	meal.UserID = userID
	if meal.Timestamp.IsZero() {
		meal.Timestamp = s.now()
	}
	meal.Totalize()

	goal := DefaultCalorieGoal
	if profile, err := s.profiles.GetByID(ctx, userID); err == nil && profile.DailyCalorieGoal > 0 {
		goal = profile.DailyCalorieGoal
	}

	saved, err := s.meals.CreateLogged(ctx, meal, goal)
	if err != nil {
		return nil, fmt.Errorf("log meal: %w", err)
	}
	return saved, nil
}

// Streak counts consecutive recorded days ending today. A missing row for
// today breaks the chain immediately and yields zero.
func (s *Service) Streak(ctx context.Context, userID string) (int, error) {
	dates, err := s.progress.ListDatesDesc(ctx, userID)
	if err != nil {
		return 0, err
	}
	return streakFrom(domain.DayOf(s.now()), dates), nil
}

func streakFrom(today time.Time, datesDesc []time.Time) int {
	streak := 0
	for i, d := range datesDesc {
		expected := today.AddDate(0, 0, -i)
		if !sameCalendarDay(d, expected) {
			break
		}
		streak++
	}
	return streak
}

// sameCalendarDay compares dates by their calendar components so rows read
// back as UTC midnights still match locally computed days.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Stats assembles the dashboard aggregates, fanning the independent reads
// out concurrently.
func (s *Service) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var (
		totalMeals int
		recent     []domain.DailyProgress
		dates      []time.Time
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.meals.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		totalMeals = n
		return nil
	})

	g.Go(func() error {
		items, err := s.progress.ListRecent(ctx, userID, averageWindow)
		if err != nil {
			return err
		}
		recent = items
		return nil
	})

	g.Go(func() error {
		ds, err := s.progress.ListDatesDesc(ctx, userID)
		if err != nil {
			return err
		}
		dates = ds
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.UserStats{
		TotalMeals:      totalMeals,
		AverageCalories: averageCalories(recent),
		CurrentStreak:   streakFrom(domain.DayOf(s.now()), dates),
		TotalDays:       len(dates),
	}, nil
}

// averageCalories is the rounded mean over the provided rows; the window is
// the most recent rows available, not necessarily contiguous days.
func averageCalories(rows []domain.DailyProgress) int {
	if len(rows) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rows {
		sum += r.CaloriesConsumed
	}
	return int(math.Round(float64(sum) / float64(len(rows))))
}
