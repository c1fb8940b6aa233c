package handlers

import (
	"net/http"
	"strconv"
	"time"

	"caltrack/internal/domain"
	"caltrack/internal/running"
)

type runCreateRequest struct {
	DistanceKm  float64 `json:"distance_km" validate:"required,gt=0"`
	DurationMin float64 `json:"duration_min" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Source      string  `json:"source" validate:"omitempty,oneof=manual smartwatch"`
}

type runResponse struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	DistanceKm        float64 `json:"distance_km"`
	DurationMin       float64 `json:"duration_min"`
	DurationFormatted string  `json:"duration_formatted"`
	PaceMinPerKm      float64 `json:"pace_min_per_km"`
	PaceFormatted     string  `json:"pace_formatted"`
	CaloriesBurned    int     `json:"calories_burned"`
	Source            string  `json:"source"`
}

func toRunResponse(run *domain.RunningActivity) runResponse {
	return runResponse{
		ID:                run.ID,
		Date:              run.Date.Format("2006-01-02"),
		DistanceKm:        run.DistanceKm,
		DurationMin:       run.DurationMin,
		DurationFormatted: running.FormatDuration(run.DurationMin),
		PaceMinPerKm:      run.PaceMinPerKm,
		PaceFormatted:     running.FormatPace(run.PaceMinPerKm),
		CaloriesBurned:    run.CaloriesBurned,
		Source:            string(run.Source),
	}
}

// RunsCreate logs a run, manual or handed over from the simulated tracker.
// Pace and calories are always computed server-side from the runner's
// profile weight; client-supplied values for them are not accepted.
func (a *App) RunsCreate(w http.ResponseWriter, r *http.Request) {
	var req runCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "distance and duration must be positive")
		return
	}

	userID := a.currentUserID(r)
	profile, err := a.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	day := domain.DayOf(a.now())
	if req.Date != "" {
		day, _ = time.ParseInLocation("2006-01-02", req.Date, time.Local)
	}
	source := domain.RunSourceManual
	if req.Source != "" {
		source = domain.RunSource(req.Source)
	}

	run := &domain.RunningActivity{
		UserID:         userID,
		Date:           day,
		DistanceKm:     req.DistanceKm,
		DurationMin:    req.DurationMin,
		PaceMinPerKm:   running.Pace(req.DistanceKm, req.DurationMin),
		CaloriesBurned: running.Calories(profile.WeightKg, req.DistanceKm, req.DurationMin),
		Source:         source,
	}

	saved, err := a.Runs.Create(r.Context(), run)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, toRunResponse(saved))
}

// RunsList returns the most recent runs, newest first.
func (a *App) RunsList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	runs, err := a.Runs.ListByUser(r.Context(), a.currentUserID(r), limit)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	items := make([]runResponse, 0, len(runs))
	for i := range runs {
		items = append(items, toRunResponse(&runs[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// RunsStats aggregates the user's running history.
func (a *App) RunsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Runs.Stats(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_runs":             stats.TotalRuns,
		"total_distance_km":      stats.TotalDistanceKm,
		"total_time_min":         stats.TotalTimeMin,
		"total_calories":         stats.TotalCalories,
		"longest_run_km":         stats.LongestRunKm,
		"average_pace":           stats.AveragePace,
		"average_pace_formatted": running.FormatPace(stats.AveragePace),
	})
}
