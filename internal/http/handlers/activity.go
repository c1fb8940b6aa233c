package handlers

import (
	"errors"
	"net/http"

	"caltrack/internal/providers/activity"
	"caltrack/internal/running"
)

type trackerSnapshotResponse struct {
	Tracking          bool    `json:"tracking"`
	Paused            bool    `json:"paused"`
	DistanceKm        float64 `json:"distance_km"`
	DurationSec       int     `json:"duration_sec"`
	DurationFormatted string  `json:"duration_formatted"`
	PaceFormatted     string  `json:"pace_formatted,omitempty"`
}

func toTrackerSnapshotResponse(s activity.Snapshot) trackerSnapshotResponse {
	durationMin := float64(s.DurationSec) / 60
	resp := trackerSnapshotResponse{
		Tracking:          s.Tracking,
		Paused:            s.Paused,
		DistanceKm:        s.DistanceKm,
		DurationSec:       s.DurationSec,
		DurationFormatted: running.FormatDuration(durationMin),
	}
	if s.DistanceKm > 0 {
		resp.PaceFormatted = running.FormatPace(running.Pace(s.DistanceKm, durationMin))
	}
	return resp
}

func (a *App) trackerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activity.ErrAlreadyTracking):
		a.error(w, http.StatusConflict, "already_tracking", "a run session is already active")
	case errors.Is(err, activity.ErrNotTracking):
		a.error(w, http.StatusConflict, "not_tracking", "no run session is active")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "something went wrong, please try again")
	}
}

// TrackerStart begins the simulated run session. State is in-memory only
// and gone after a restart.
func (a *App) TrackerStart(w http.ResponseWriter, r *http.Request) {
	if err := a.Activity.Start(); err != nil {
		a.trackerError(w, err)
		return
	}
	a.json(w, http.StatusOK, toTrackerSnapshotResponse(a.Activity.Current()))
}

func (a *App) TrackerPause(w http.ResponseWriter, r *http.Request) {
	if err := a.Activity.Pause(); err != nil {
		a.trackerError(w, err)
		return
	}
	a.json(w, http.StatusOK, toTrackerSnapshotResponse(a.Activity.Current()))
}

func (a *App) TrackerResume(w http.ResponseWriter, r *http.Request) {
	if err := a.Activity.Resume(); err != nil {
		a.trackerError(w, err)
		return
	}
	a.json(w, http.StatusOK, toTrackerSnapshotResponse(a.Activity.Current()))
}

// TrackerStop ends the session and returns the final reading; the client
// submits it as a run if it wants it kept.
func (a *App) TrackerStop(w http.ResponseWriter, r *http.Request) {
	final, err := a.Activity.Stop()
	if err != nil {
		a.trackerError(w, err)
		return
	}
	a.json(w, http.StatusOK, toTrackerSnapshotResponse(final))
}

// TrackerStatus returns the live reading.
func (a *App) TrackerStatus(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, toTrackerSnapshotResponse(a.Activity.Current()))
}
