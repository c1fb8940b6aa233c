package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"caltrack/internal/domain"
	"caltrack/internal/providers/vision"
	"caltrack/internal/tracker"
)

func mealsApp(meals *fakeMeals, profiles *fakeProfiles) *App {
	return &App{
		Profiles: profiles,
		Meals:    meals,
		Tracker:  tracker.NewService(profiles, meals, &fakeProgress{}, handlerFixedNow),
		Vision:   &vision.Mock{},
		Logger:   zerolog.Nop(),
		Now:      handlerFixedNow,
	}
}

func TestMealsCreateFromImageUsesAnalyzer(t *testing.T) {
	var gotGoal int
	meals := &fakeMeals{
		createLoggedFn: func(_ context.Context, m *domain.Meal, goal int) (*domain.Meal, error) {
			gotGoal = goal
			m.ID = "m1"
			return m, nil
		},
	}
	profiles := &fakeProfiles{
		getByIDFn: func(context.Context, string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: "u1", DailyCalorieGoal: 2100}, nil
		},
	}
	app := mealsApp(meals, profiles)

	req := authedRequest(http.MethodPost, "/v1/meals", `{"image_url":"https://cdn.example/prato.jpg"}`, "u1")
	rr := httptest.NewRecorder()
	app.MealsCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp mealResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.TotalCalories != 528 {
		t.Fatalf("total calories = %d, want 528 from the analyzed plate", resp.TotalCalories)
	}
	if len(resp.Foods) != 4 {
		t.Fatalf("foods = %d, want 4", len(resp.Foods))
	}
	if gotGoal != 2100 {
		t.Fatalf("goal snapshot = %d, want 2100", gotGoal)
	}
}

func TestMealsCreateWithExplicitFoods(t *testing.T) {
	meals := &fakeMeals{}
	app := mealsApp(meals, &fakeProfiles{})

	body := `{"foods":[{"name":"Tapioca","calories":230,"protein_g":2,"carbs_g":56,"fat_g":0.3}]}`
	req := authedRequest(http.MethodPost, "/v1/meals", body, "u1")
	rr := httptest.NewRecorder()
	app.MealsCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp mealResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.TotalCalories != 230 {
		t.Fatalf("total calories = %d, want 230", resp.TotalCalories)
	}
}

func TestMealsCreateRequiresFoodsOrImage(t *testing.T) {
	app := mealsApp(&fakeMeals{}, &fakeProfiles{})

	req := authedRequest(http.MethodPost, "/v1/meals", `{}`, "u1")
	rr := httptest.NewRecorder()
	app.MealsCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestMealsCreateSurfacesSchemaFailure(t *testing.T) {
	meals := &fakeMeals{
		createLoggedFn: func(context.Context, *domain.Meal, int) (*domain.Meal, error) {
			return nil, &textError{`ERROR: relation "meals" does not exist (SQLSTATE 42P01)`}
		},
	}
	app := mealsApp(meals, &fakeProfiles{})

	body := `{"foods":[{"name":"Tapioca","calories":230}]}`
	req := authedRequest(http.MethodPost, "/v1/meals", body, "u1")
	rr := httptest.NewRecorder()
	app.MealsCreate(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var resp map[string]map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp["error"]["code"] != "schema_missing" {
		t.Fatalf("error code = %q, want schema_missing", resp["error"]["code"])
	}
}

func TestMealsDelete(t *testing.T) {
	var deletedUser, deletedMeal string
	meals := &fakeMeals{
		deleteFn: func(_ context.Context, userID, mealID string) error {
			deletedUser, deletedMeal = userID, mealID
			return nil
		},
	}
	app := mealsApp(meals, &fakeProfiles{})

	req := authedRequest(http.MethodDelete, "/v1/meals/m42", "", "u1")
	req = withChiParam(req, "id", "m42")
	rr := httptest.NewRecorder()
	app.MealsDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if deletedUser != "u1" || deletedMeal != "m42" {
		t.Fatalf("deleted (%q, %q), want (u1, m42)", deletedUser, deletedMeal)
	}
}

type textError struct{ text string }

func (e *textError) Error() string { return e.text }
