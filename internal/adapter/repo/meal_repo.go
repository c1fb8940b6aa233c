package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"caltrack/internal/domain"
	"caltrack/internal/infra"
	"caltrack/internal/sqlinline"
)

// MealRepositoryPG implements domain.MealRepository backed by PostgreSQL.
// It holds the pool directly because the logged-meal save is transactional.
type MealRepositoryPG struct {
	pool *pgxpool.Pool
	sql  infra.SQLExecutor
}

// NewMealRepository creates a new MealRepositoryPG.
func NewMealRepository(pool *pgxpool.Pool, sql infra.SQLExecutor) *MealRepositoryPG {
	return &MealRepositoryPG{pool: pool, sql: sql}
}

// CreateLogged commits the meal, its food items and the daily-progress
// accumulation as a single transaction. If any insert fails, nothing is
// committed, so re-invoking the save never double-counts calories.
func (r *MealRepositoryPG) CreateLogged(ctx context.Context, meal *domain.Meal, goalSnapshot int) (*domain.Meal, error) {
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	day := domain.DayOf(meal.Timestamp)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, sqlinline.QInsertMeal,
			meal.ID,
			meal.UserID,
			meal.Timestamp,
			nullableString(meal.ImageURL),
			meal.TotalCalories,
			meal.TotalProteinG,
			meal.TotalCarbsG,
			meal.TotalFatG,
		)
		if err := row.Scan(&meal.CreatedAt); err != nil {
			return fmt.Errorf("insert meal: %w", err)
		}

		for i := range meal.Foods {
			item := &meal.Foods[i]
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			item.MealID = meal.ID
			if _, err := tx.Exec(ctx, sqlinline.QInsertFoodItem,
				item.ID,
				item.MealID,
				item.Name,
				item.Calories,
				item.ProteinG,
				item.CarbsG,
				item.FatG,
				item.Portion,
			); err != nil {
				return fmt.Errorf("insert food item: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, sqlinline.QAccumulateDailyProgress,
			uuid.NewString(),
			meal.UserID,
			day,
			meal.TotalCalories,
			goalSnapshot,
		); err != nil {
			return fmt.Errorf("accumulate daily progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// ListByDate returns the user's meals for a local calendar day, food items
// attached, newest first.
func (r *MealRepositoryPG) ListByDate(ctx context.Context, userID string, day time.Time) ([]domain.Meal, error) {
	start := domain.DayOf(day)
	end := start.AddDate(0, 0, 1)

	rows, err := r.sql.Query(ctx, sqlinline.QSelectMealsByDate, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []domain.Meal
	index := map[string]int{}
	var mealIDs []string
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Timestamp, &m.ImageURL, &m.TotalCalories, &m.TotalProteinG, &m.TotalCarbsG, &m.TotalFatG, &m.CreatedAt); err != nil {
			return nil, err
		}
		index[m.ID] = len(meals)
		mealIDs = append(mealIDs, m.ID)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}

	itemRows, err := r.sql.Query(ctx, sqlinline.QSelectFoodItemsByMeals, mealIDs)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var f domain.FoodItem
		if err := itemRows.Scan(&f.ID, &f.MealID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.Portion); err != nil {
			return nil, err
		}
		if i, ok := index[f.MealID]; ok {
			meals[i].Foods = append(meals[i].Foods, f)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}

// Delete removes a meal owned by the user; food items cascade in the schema.
func (r *MealRepositoryPG) Delete(ctx context.Context, userID, mealID string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteMeal, mealID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByUser counts every meal the user ever logged.
func (r *MealRepositoryPG) CountByUser(ctx context.Context, userID string) (int, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QCountMealsByUser, userID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
