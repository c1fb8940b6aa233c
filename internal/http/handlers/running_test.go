package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"caltrack/internal/domain"
)

func TestRunsCreateComputesPaceAndCalories(t *testing.T) {
	var saved *domain.RunningActivity
	runs := &fakeRuns{
		createFn: func(_ context.Context, run *domain.RunningActivity) (*domain.RunningActivity, error) {
			saved = run
			run.ID = "run1"
			return run, nil
		},
	}
	profiles := &fakeProfiles{
		getByIDFn: func(context.Context, string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: "u1", WeightKg: 70}, nil
		},
	}
	app := &App{Profiles: profiles, Runs: runs, Logger: zerolog.Nop(), Now: handlerFixedNow}

	body := `{"distance_km":5,"duration_min":30}`
	req := authedRequest(http.MethodPost, "/v1/runs", body, "u1")
	rr := httptest.NewRecorder()
	app.RunsCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	// 10 km/h for 30 min at 70 kg burns 350 kcal.
	if saved.CaloriesBurned != 350 {
		t.Fatalf("calories = %d, want 350", saved.CaloriesBurned)
	}
	if saved.PaceMinPerKm != 6 {
		t.Fatalf("pace = %v, want 6", saved.PaceMinPerKm)
	}
	if saved.Source != domain.RunSourceManual {
		t.Fatalf("source = %q, want manual", saved.Source)
	}

	var resp runResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.PaceFormatted != "6:00" {
		t.Fatalf("pace formatted = %q, want 6:00", resp.PaceFormatted)
	}
}

func TestRunsCreateRejectsNonPositiveInput(t *testing.T) {
	app := &App{Profiles: &fakeProfiles{}, Runs: &fakeRuns{}, Logger: zerolog.Nop(), Now: handlerFixedNow}

	for _, body := range []string{
		`{"distance_km":0,"duration_min":30}`,
		`{"distance_km":5,"duration_min":0}`,
		`{"distance_km":-5,"duration_min":30}`,
	} {
		req := authedRequest(http.MethodPost, "/v1/runs", body, "u1")
		rr := httptest.NewRecorder()
		app.RunsCreate(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d for %s, want 400", rr.Code, body)
		}
	}
}

func TestRunsStatsFormatsAveragePace(t *testing.T) {
	runs := &fakeRuns{
		statsFn: func(context.Context, string) (*domain.RunningStats, error) {
			return &domain.RunningStats{
				TotalRuns:       3,
				TotalDistanceKm: 15,
				TotalTimeMin:    97.5,
				TotalCalories:   1100,
				LongestRunKm:    7,
				AveragePace:     6.5,
			}, nil
		},
	}
	app := &App{Runs: runs, Logger: zerolog.Nop(), Now: handlerFixedNow}

	rr := httptest.NewRecorder()
	app.RunsStats(rr, authedRequest(http.MethodGet, "/v1/runs/stats", "", "u1"))

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp["average_pace_formatted"] != "6:30" {
		t.Fatalf("average pace = %v, want 6:30", resp["average_pace_formatted"])
	}
}
