package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caltrack/internal/domain"
)

type foodItemPayload struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Calories int     `json:"calories" validate:"gte=0"`
	ProteinG float64 `json:"protein_g" validate:"gte=0"`
	CarbsG   float64 `json:"carbs_g" validate:"gte=0"`
	FatG     float64 `json:"fat_g" validate:"gte=0"`
	Portion  string  `json:"portion" validate:"max=120"`
}

type mealCreateRequest struct {
	ImageURL  string            `json:"image_url" validate:"omitempty,max=2048"`
	Timestamp *time.Time        `json:"timestamp"`
	Foods     []foodItemPayload `json:"foods" validate:"omitempty,dive"`
}

type foodItemResponse struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Portion  string  `json:"portion,omitempty"`
}

type mealResponse struct {
	ID            string             `json:"id"`
	Timestamp     string             `json:"timestamp"`
	ImageURL      string             `json:"image_url,omitempty"`
	Foods         []foodItemResponse `json:"foods"`
	TotalCalories int                `json:"total_calories"`
	TotalProteinG float64            `json:"total_protein_g"`
	TotalCarbsG   float64            `json:"total_carbs_g"`
	TotalFatG     float64            `json:"total_fat_g"`
}

func toMealResponse(m *domain.Meal) mealResponse {
	foods := make([]foodItemResponse, 0, len(m.Foods))
	for _, f := range m.Foods {
		foods = append(foods, foodItemResponse{
			ID:       f.ID,
			Name:     f.Name,
			Calories: f.Calories,
			ProteinG: f.ProteinG,
			CarbsG:   f.CarbsG,
			FatG:     f.FatG,
			Portion:  f.Portion,
		})
	}
	return mealResponse{
		ID:            m.ID,
		Timestamp:     m.Timestamp.Format(time.RFC3339),
		ImageURL:      m.ImageURL,
		Foods:         foods,
		TotalCalories: m.TotalCalories,
		TotalProteinG: m.TotalProteinG,
		TotalCarbsG:   m.TotalCarbsG,
		TotalFatG:     m.TotalFatG,
	}
}

// MealsCreate logs a meal. When no foods are provided the image is run
// through the analyzer first; the resulting meal, its items and the daily
// accumulation commit together, so a failed save leaves nothing behind.
func (a *App) MealsCreate(w http.ResponseWriter, r *http.Request) {
	var req mealCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "food items must have a name and non-negative macros")
		return
	}
	if len(req.Foods) == 0 && req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "provide foods or an image to analyze")
		return
	}

	meal := &domain.Meal{ImageURL: req.ImageURL}
	if req.Timestamp != nil {
		meal.Timestamp = *req.Timestamp
	}

	if len(req.Foods) > 0 {
		meal.Foods = make([]domain.FoodItem, 0, len(req.Foods))
		for _, f := range req.Foods {
			meal.Foods = append(meal.Foods, domain.FoodItem{
				Name:     f.Name,
				Calories: f.Calories,
				ProteinG: f.ProteinG,
				CarbsG:   f.CarbsG,
				FatG:     f.FatG,
				Portion:  f.Portion,
			})
		}
	} else {
		foods, err := a.Vision.Analyze(r.Context(), req.ImageURL)
		if err != nil {
			a.failure(w, r, err)
			return
		}
		meal.Foods = foods
	}

	saved, err := a.Tracker.LogMeal(r.Context(), a.currentUserID(r), meal)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, toMealResponse(saved))
}

// MealsList returns the meals of one calendar day, food items included.
// The date defaults to today.
func (a *App) MealsList(w http.ResponseWriter, r *http.Request) {
	day := domain.DayOf(a.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	meals, err := a.Meals.ListByDate(r.Context(), a.currentUserID(r), day)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	items := make([]mealResponse, 0, len(meals))
	for i := range meals {
		items = append(items, toMealResponse(&meals[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// MealsDelete removes a meal. Deletion is the only mutation a logged meal
// supports; the day's accumulated calories are deliberately left as they are.
func (a *App) MealsDelete(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "id")
	if err := a.Meals.Delete(r.Context(), a.currentUserID(r), mealID); err != nil {
		a.failure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
