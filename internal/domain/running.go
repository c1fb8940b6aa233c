package domain

import "time"

// RunSource indicates how a running activity was captured.
type RunSource string

const (
	RunSourceManual     RunSource = "manual"
	RunSourceSmartwatch RunSource = "smartwatch"
)

// RunningActivity is an immutable logged run. Pace and calories are derived
// server-side from distance, duration and the runner's weight.
type RunningActivity struct {
	ID             string
	UserID         string
	Date           time.Time
	DistanceKm     float64
	DurationMin    float64
	PaceMinPerKm   float64
	CaloriesBurned int
	Source         RunSource
	CreatedAt      time.Time
}

// RunningStats aggregates a user's running history.
type RunningStats struct {
	TotalDistanceKm float64
	TotalTimeMin    float64
	TotalCalories   int
	AveragePace     float64
	LongestRunKm    float64
	TotalRuns       int
}

// SmartwatchConnection describes the locally persisted device pairing state.
type SmartwatchConnection struct {
	IsConnected bool       `json:"is_connected"`
	DeviceName  string     `json:"device_name,omitempty"`
	DeviceType  string     `json:"device_type,omitempty"`
	LastSync    *time.Time `json:"last_sync,omitempty"`
}
