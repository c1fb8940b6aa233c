// Package running implements speed, pace and calorie math for logged runs.
package running

import (
	"fmt"
	"math"
)

// met returns the metabolic equivalent for a running speed in km/h.
// Thresholds are checked lowest to highest so the last match wins.
func met(speedKmh float64) float64 {
	m := 8.0
	if speedKmh >= 8 {
		m = 9
	}
	if speedKmh >= 10 {
		m = 10
	}
	if speedKmh >= 12 {
		m = 11
	}
	if speedKmh >= 14 {
		m = 12
	}
	return m
}

// Calories estimates the energy burned: MET x weight x hours, rounded.
func Calories(weightKg, distanceKm, durationMin float64) int {
	hours := durationMin / 60
	speed := distanceKm / hours
	return int(math.Round(met(speed) * weightKg * hours))
}

// Pace returns minutes per kilometer; a zero distance yields zero.
func Pace(distanceKm, durationMin float64) float64 {
	if distanceKm == 0 {
		return 0
	}
	return durationMin / distanceKm
}

// FormatPace renders a pace as "M:SS".
func FormatPace(pace float64) string {
	minutes := int(math.Floor(pace))
	seconds := int(math.Round((pace - float64(minutes)) * 60))
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatDuration renders minutes as "H:MM:SS" past the hour, "M:SS" below it.
func FormatDuration(durationMin float64) string {
	hours := int(math.Floor(durationMin / 60))
	minutes := int(math.Floor(math.Mod(durationMin, 60)))
	seconds := int(math.Round(math.Mod(durationMin, 1) * 60))

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
