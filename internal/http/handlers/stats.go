package handlers

import "net/http"

// Stats renders the dashboard aggregates.
func (a *App) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Tracker.Stats(r.Context(), a.currentUserID(r))
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_meals":      stats.TotalMeals,
		"average_calories": stats.AverageCalories,
		"current_streak":   stats.CurrentStreak,
		"total_days":       stats.TotalDays,
	})
}
