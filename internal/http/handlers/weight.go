package handlers

import (
	"net/http"
	"strconv"
	"time"

	"caltrack/internal/domain"
)

type weightUpsertRequest struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
	Date     string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type weightEntryResponse struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

// WeightUpsert records the day's weight; a second measurement on the same
// day replaces the first.
func (a *App) WeightUpsert(w http.ResponseWriter, r *http.Request) {
	var req weightUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "weight must be positive and date YYYY-MM-DD")
		return
	}

	day := domain.DayOf(a.now())
	if req.Date != "" {
		day, _ = time.ParseInLocation("2006-01-02", req.Date, time.Local)
	}

	saved, err := a.Weights.Upsert(r.Context(), &domain.WeightProgress{
		UserID:   a.currentUserID(r),
		Date:     day,
		WeightKg: req.WeightKg,
	})
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, weightEntryResponse{
		Date:     saved.Date.Format("2006-01-02"),
		WeightKg: saved.WeightKg,
	})
}

// WeightHistory lists measurements over the trailing window, default 30 days.
func (a *App) WeightHistory(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			a.error(w, http.StatusBadRequest, "bad_request", "days must be between 1 and 365")
			return
		}
		days = parsed
	}
	since := domain.DayOf(a.now()).AddDate(0, 0, -days)

	entries, err := a.Weights.ListSince(r.Context(), a.currentUserID(r), since)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	items := make([]weightEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, weightEntryResponse{
			Date:     e.Date.Format("2006-01-02"),
			WeightKg: e.WeightKg,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
