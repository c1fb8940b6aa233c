package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"caltrack/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

func fixedNow() time.Time { return testNow }

type fakeProfiles struct {
	getByIDFn func(context.Context, string) (*domain.UserProfile, error)
}

func (f *fakeProfiles) Create(context.Context, *domain.UserProfile) (*domain.UserProfile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProfiles) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfiles) Update(context.Context, *domain.UserProfile) (*domain.UserProfile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProfiles) SetSubscription(context.Context, string, domain.SubscriptionStatus) error {
	return errors.New("not implemented")
}

type fakeMeals struct {
	createLoggedFn func(context.Context, *domain.Meal, int) (*domain.Meal, error)
	countFn        func(context.Context, string) (int, error)
}

func (f *fakeMeals) CreateLogged(ctx context.Context, meal *domain.Meal, goal int) (*domain.Meal, error) {
	if f.createLoggedFn != nil {
		return f.createLoggedFn(ctx, meal, goal)
	}
	return meal, nil
}

func (f *fakeMeals) ListByDate(context.Context, string, time.Time) ([]domain.Meal, error) {
	return nil, nil
}

func (f *fakeMeals) Delete(context.Context, string, string) error { return nil }

func (f *fakeMeals) CountByUser(ctx context.Context, userID string) (int, error) {
	if f.countFn != nil {
		return f.countFn(ctx, userID)
	}
	return 0, nil
}

type fakeProgress struct {
	listRecentFn func(context.Context, string, int) ([]domain.DailyProgress, error)
	listDatesFn  func(context.Context, string) ([]time.Time, error)
}

func (f *fakeProgress) GetByDate(context.Context, string, time.Time) (*domain.DailyProgress, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProgress) ListRecent(ctx context.Context, userID string, limit int) ([]domain.DailyProgress, error) {
	if f.listRecentFn != nil {
		return f.listRecentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeProgress) ListDatesDesc(ctx context.Context, userID string) ([]time.Time, error) {
	if f.listDatesFn != nil {
		return f.listDatesFn(ctx, userID)
	}
	return nil, nil
}

func day(offset int) time.Time {
	return domain.DayOf(testNow).AddDate(0, 0, offset)
}

func TestLogMealTotalizesAndSnapshotsGoal(t *testing.T) {
	var gotGoal int
	var gotMeal *domain.Meal
	meals := &fakeMeals{
		createLoggedFn: func(_ context.Context, m *domain.Meal, goal int) (*domain.Meal, error) {
			gotGoal = goal
			gotMeal = m
			return m, nil
		},
	}
	profiles := &fakeProfiles{
		getByIDFn: func(context.Context, string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: "u1", DailyCalorieGoal: 1800}, nil
		},
	}
	svc := NewService(profiles, meals, &fakeProgress{}, fixedNow)

	meal := &domain.Meal{Foods: []domain.FoodItem{
		{Name: "Arroz Branco", Calories: 206, ProteinG: 4.3, CarbsG: 45, FatG: 0.4},
		{Name: "Frango Grelhado", Calories: 165, ProteinG: 31, FatG: 3.6},
	}}
	saved, err := svc.LogMeal(context.Background(), "u1", meal)
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}
	if saved.TotalCalories != 371 {
		t.Fatalf("TotalCalories = %d, want 371", saved.TotalCalories)
	}
	if gotGoal != 1800 {
		t.Fatalf("goal snapshot = %d, want 1800", gotGoal)
	}
	if gotMeal.UserID != "u1" {
		t.Fatalf("UserID = %q, want u1", gotMeal.UserID)
	}
	if gotMeal.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}
}

func TestLogMealDefaultsGoalWhenProfileMissing(t *testing.T) {
	var gotGoal int
	meals := &fakeMeals{
		createLoggedFn: func(_ context.Context, m *domain.Meal, goal int) (*domain.Meal, error) {
			gotGoal = goal
			return m, nil
		},
	}
	svc := NewService(&fakeProfiles{}, meals, &fakeProgress{}, fixedNow)

	if _, err := svc.LogMeal(context.Background(), "u1", &domain.Meal{}); err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}
	if gotGoal != DefaultCalorieGoal {
		t.Fatalf("goal snapshot = %d, want %d", gotGoal, DefaultCalorieGoal)
	}
}

func TestLogMealPropagatesSaveFailure(t *testing.T) {
	boom := errors.New("relation \"meals\" does not exist")
	meals := &fakeMeals{
		createLoggedFn: func(context.Context, *domain.Meal, int) (*domain.Meal, error) {
			return nil, boom
		},
	}
	svc := NewService(&fakeProfiles{}, meals, &fakeProgress{}, fixedNow)

	if _, err := svc.LogMeal(context.Background(), "u1", &domain.Meal{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped save failure, got %v", err)
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	progress := &fakeProgress{
		listDatesFn: func(context.Context, string) ([]time.Time, error) {
			return []time.Time{day(0), day(-1), day(-2), day(-4)}, nil
		},
	}
	svc := NewService(&fakeProfiles{}, &fakeMeals{}, progress, fixedNow)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 3 {
		t.Fatalf("streak = %d, want 3", streak)
	}
}

func TestStreakZeroWithoutToday(t *testing.T) {
	progress := &fakeProgress{
		listDatesFn: func(context.Context, string) ([]time.Time, error) {
			return []time.Time{day(-1), day(-2)}, nil
		},
	}
	svc := NewService(&fakeProfiles{}, &fakeMeals{}, progress, fixedNow)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 0 {
		t.Fatalf("streak = %d, want 0", streak)
	}
}

func TestStreakMatchesUTCMidnightRows(t *testing.T) {
	// Dates read back from a SQL date column come in as UTC midnights.
	progress := &fakeProgress{
		listDatesFn: func(context.Context, string) ([]time.Time, error) {
			today := domain.DayOf(testNow)
			return []time.Time{
				time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	svc := NewService(&fakeProfiles{}, &fakeMeals{}, progress, fixedNow)

	streak, err := svc.Streak(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Streak returned error: %v", err)
	}
	if streak != 1 {
		t.Fatalf("streak = %d, want 1", streak)
	}
}

func TestStatsAggregates(t *testing.T) {
	meals := &fakeMeals{
		countFn: func(context.Context, string) (int, error) { return 42, nil },
	}
	progress := &fakeProgress{
		listRecentFn: func(_ context.Context, _ string, limit int) ([]domain.DailyProgress, error) {
			if limit != averageWindow {
				t.Fatalf("limit = %d, want %d", limit, averageWindow)
			}
			return []domain.DailyProgress{
				{CaloriesConsumed: 1800},
				{CaloriesConsumed: 2100},
				{CaloriesConsumed: 1900},
			}, nil
		},
		listDatesFn: func(context.Context, string) ([]time.Time, error) {
			return []time.Time{day(0), day(-1), day(-3)}, nil
		},
	}
	svc := NewService(&fakeProfiles{}, meals, progress, fixedNow)

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalMeals != 42 {
		t.Fatalf("TotalMeals = %d, want 42", stats.TotalMeals)
	}
	if stats.AverageCalories != 1933 {
		t.Fatalf("AverageCalories = %d, want 1933", stats.AverageCalories)
	}
	if stats.CurrentStreak != 2 {
		t.Fatalf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
	if stats.TotalDays != 3 {
		t.Fatalf("TotalDays = %d, want 3", stats.TotalDays)
	}
}

func TestStatsEmptyHistory(t *testing.T) {
	svc := NewService(&fakeProfiles{}, &fakeMeals{}, &fakeProgress{}, fixedNow)

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.AverageCalories != 0 || stats.CurrentStreak != 0 || stats.TotalMeals != 0 || stats.TotalDays != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
