package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"caltrack/internal/domain"
	archive "caltrack/pkg/zip"
)

// exportHistoryDays caps how far back the export walks per collection.
const exportHistoryDays = 365

// Export bundles the account's data as a zip of JSON files.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := a.currentUserID(r)

	profile, err := a.Profiles.GetByID(ctx, userID)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	progress, err := a.Progress.ListRecent(ctx, userID, exportHistoryDays)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	dates, err := a.Progress.ListDatesDesc(ctx, userID)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	if len(dates) > exportHistoryDays {
		dates = dates[:exportHistoryDays]
	}
	var meals []mealResponse
	for _, day := range dates {
		dayMeals, err := a.Meals.ListByDate(ctx, userID, day)
		if err != nil {
			a.failure(w, r, err)
			return
		}
		for i := range dayMeals {
			meals = append(meals, toMealResponse(&dayMeals[i]))
		}
	}

	runs, err := a.Runs.ListByUser(ctx, userID, 100)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	runItems := make([]runResponse, 0, len(runs))
	for i := range runs {
		runItems = append(runItems, toRunResponse(&runs[i]))
	}

	weights, err := a.Weights.ListSince(ctx, userID, domain.DayOf(a.now()).AddDate(0, 0, -exportHistoryDays))
	if err != nil {
		a.failure(w, r, err)
		return
	}

	progressItems := make([]dailyProgressResponse, 0, len(progress))
	for i := range progress {
		progressItems = append(progressItems, toDailyProgressResponse(&progress[i]))
	}
	weightItems := make([]weightEntryResponse, 0, len(weights))
	for _, entry := range weights {
		weightItems = append(weightItems, weightEntryResponse{
			Date:     entry.Date.Format("2006-01-02"),
			WeightKg: entry.WeightKg,
		})
	}

	entries := make([]archive.Entry, 0, 5)
	for _, part := range []struct {
		name string
		v    any
	}{
		{"profile.json", toProfileResponse(profile)},
		{"meals.json", meals},
		{"progress.json", progressItems},
		{"runs.json", runItems},
		{"weight.json", weightItems},
	} {
		data, err := json.MarshalIndent(part.v, "", "  ")
		if err != nil {
			a.failure(w, r, err)
			return
		}
		entries = append(entries, archive.Entry{Name: part.name, Data: data})
	}

	bundle, err := archive.Archive(entries)
	if err != nil {
		a.failure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "caltrack-export.zip"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bundle)
}
