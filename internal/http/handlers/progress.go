package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"caltrack/internal/domain"
	"caltrack/internal/nutrition"
	"caltrack/internal/tracker"
)

type dailyProgressResponse struct {
	Date             string `json:"date"`
	CaloriesConsumed int    `json:"calories_consumed"`
	CaloriesGoal     int    `json:"calories_goal"`
	Remaining        int    `json:"remaining_calories"`
	Percent          int    `json:"percent"`
}

func toDailyProgressResponse(p *domain.DailyProgress) dailyProgressResponse {
	return dailyProgressResponse{
		Date:             p.Date.Format("2006-01-02"),
		CaloriesConsumed: p.CaloriesConsumed,
		CaloriesGoal:     p.CaloriesGoal,
		Remaining:        nutrition.RemainingCalories(p.CaloriesConsumed, p.CaloriesGoal),
		Percent:          nutrition.Progress(p.CaloriesConsumed, p.CaloriesGoal),
	}
}

// ProgressDaily returns one day's accumulator. A day with no logged meals
// yields zero consumption against the profile's current goal.
func (a *App) ProgressDaily(w http.ResponseWriter, r *http.Request) {
	day := domain.DayOf(a.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	userID := a.currentUserID(r)
	row, err := a.Progress.GetByDate(r.Context(), userID, day)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.failure(w, r, err)
			return
		}
		row = &domain.DailyProgress{UserID: userID, Date: day, CaloriesGoal: tracker.DefaultCalorieGoal}
		if profile, perr := a.Profiles.GetByID(r.Context(), userID); perr == nil && profile.DailyCalorieGoal > 0 {
			row.CaloriesGoal = profile.DailyCalorieGoal
		}
	}
	a.json(w, http.StatusOK, toDailyProgressResponse(row))
}

// ProgressHistory returns the most recent accumulator rows, newest first.
func (a *App) ProgressHistory(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			a.error(w, http.StatusBadRequest, "bad_request", "days must be between 1 and 365")
			return
		}
		days = parsed
	}

	rows, err := a.Progress.ListRecent(r.Context(), a.currentUserID(r), days)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	items := make([]dailyProgressResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toDailyProgressResponse(&rows[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
