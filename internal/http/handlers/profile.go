package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"caltrack/internal/domain"
	"caltrack/internal/nutrition"
)

type onboardingRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=120"`
	Age             int     `json:"age" validate:"required,gt=0,lte=120"`
	WeightKg        float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm        float64 `json:"height_cm" validate:"required,gt=0"`
	Gender          string  `json:"gender" validate:"required,oneof=male female other"`
	Goal            string  `json:"goal" validate:"required,oneof=lose maintain gain"`
	TargetWeightKg  float64 `json:"target_weight_kg" validate:"omitempty,gt=0"`
	ActivityLevel   string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
	WorkoutsPerWeek string  `json:"workouts_per_week" validate:"omitempty,oneof=0-2 3-5 6+"`
	WeightGoal      string  `json:"weight_goal" validate:"omitempty,oneof=lose_fast lose_moderate lose_slow maintain gain_slow gain_moderate gain_fast"`
}

type profileUpdateRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Age             *int     `json:"age" validate:"omitempty,gt=0,lte=120"`
	WeightKg        *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	HeightCm        *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	Gender          *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Goal            *string  `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
	TargetWeightKg  *float64 `json:"target_weight_kg" validate:"omitempty,gt=0"`
	ActivityLevel   *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	WorkoutsPerWeek *string  `json:"workouts_per_week" validate:"omitempty,oneof=0-2 3-5 6+"`
	WeightGoal      *string  `json:"weight_goal" validate:"omitempty,oneof=lose_fast lose_moderate lose_slow maintain gain_slow gain_moderate gain_fast"`
}

type profileResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	WeightKg         float64 `json:"weight_kg"`
	HeightCm         float64 `json:"height_cm"`
	Gender           string  `json:"gender"`
	Goal             string  `json:"goal"`
	TargetWeightKg   float64 `json:"target_weight_kg,omitempty"`
	ActivityLevel    string  `json:"activity_level"`
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	WorkoutsPerWeek  string  `json:"workouts_per_week,omitempty"`
	WeightGoal       string  `json:"weight_goal,omitempty"`
	Subscription     string  `json:"subscription_status"`
	TrialStartDate   string  `json:"trial_start_date,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	resp := profileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Age:              p.Age,
		WeightKg:         p.WeightKg,
		HeightCm:         p.HeightCm,
		Gender:           string(p.Gender),
		Goal:             string(p.Goal),
		TargetWeightKg:   p.TargetWeightKg,
		ActivityLevel:    string(p.ActivityLevel),
		DailyCalorieGoal: p.DailyCalorieGoal,
		WorkoutsPerWeek:  string(p.WorkoutsPerWeek),
		WeightGoal:       string(p.WeightGoal),
		Subscription:     string(p.Subscription),
	}
	if !p.TrialStartDate.IsZero() {
		resp.TrialStartDate = p.TrialStartDate.Format(time.RFC3339)
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// deriveCalorieGoal runs the onboarding chain: Harris-Benedict BMR, the
// activity multiplier, then the pace adjustment. The seven-way pace table
// wins when a pace target was picked; the coarse goal applies otherwise.
func deriveCalorieGoal(p *domain.UserProfile) int {
	bmr := nutrition.BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := nutrition.TDEE(bmr, p.ActivityLevel)
	if p.WeightGoal != "" {
		return nutrition.CalorieGoalForWeightGoal(tdee, p.WeightGoal)
	}
	return nutrition.CalorieGoal(tdee, p.Goal)
}

// ProfilesCreate onboards a new account: validates biometrics, derives the
// daily calorie goal and opens the free trial.
func (a *App) ProfilesCreate(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "age, weight and height must be positive and enums valid")
		return
	}

	now := a.now()
	profile := &domain.UserProfile{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Age:             req.Age,
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
		Gender:          domain.Gender(req.Gender),
		Goal:            domain.Goal(req.Goal),
		TargetWeightKg:  req.TargetWeightKg,
		ActivityLevel:   domain.ActivityLevel(req.ActivityLevel),
		WorkoutsPerWeek: domain.WorkoutsPerWeek(req.WorkoutsPerWeek),
		WeightGoal:      domain.WeightGoal(req.WeightGoal),
		Subscription:    domain.SubscriptionTrial,
		TrialStartDate:  now,
	}
	profile.DailyCalorieGoal = deriveCalorieGoal(profile)

	saved, err := a.Profiles.Create(r.Context(), profile)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, toProfileResponse(saved))
}

func (a *App) ProfilesMe(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.GetByID(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toProfileResponse(profile))
}

// ProfilesUpdate applies a partial update. The calorie goal is recomputed
// only when a field feeding the derivation changes; renames and target
// tweaks keep the existing goal untouched.
func (a *App) ProfilesUpdate(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "updated fields must be positive and enums valid")
		return
	}

	profile, err := a.Profiles.GetByID(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}

	recompute := false
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Age != nil && *req.Age != profile.Age {
		profile.Age = *req.Age
		recompute = true
	}
	if req.WeightKg != nil && *req.WeightKg != profile.WeightKg {
		profile.WeightKg = *req.WeightKg
		recompute = true
	}
	if req.HeightCm != nil && *req.HeightCm != profile.HeightCm {
		profile.HeightCm = *req.HeightCm
		recompute = true
	}
	if req.Gender != nil && domain.Gender(*req.Gender) != profile.Gender {
		profile.Gender = domain.Gender(*req.Gender)
		recompute = true
	}
	if req.Goal != nil {
		profile.Goal = domain.Goal(*req.Goal)
	}
	if req.TargetWeightKg != nil {
		profile.TargetWeightKg = *req.TargetWeightKg
	}
	if req.ActivityLevel != nil && domain.ActivityLevel(*req.ActivityLevel) != profile.ActivityLevel {
		profile.ActivityLevel = domain.ActivityLevel(*req.ActivityLevel)
		recompute = true
	}
	if req.WorkoutsPerWeek != nil {
		profile.WorkoutsPerWeek = domain.WorkoutsPerWeek(*req.WorkoutsPerWeek)
	}
	if req.WeightGoal != nil && domain.WeightGoal(*req.WeightGoal) != profile.WeightGoal {
		profile.WeightGoal = domain.WeightGoal(*req.WeightGoal)
		recompute = true
	}
	if recompute {
		profile.DailyCalorieGoal = deriveCalorieGoal(profile)
	}

	saved, err := a.Profiles.Update(r.Context(), profile)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toProfileResponse(saved))
}
