// Package subscription evaluates the free-trial window for an account.
package subscription

import (
	"fmt"
	"math"
	"time"
)

// DefaultTrialDays is the trial length applied when none is configured.
const DefaultTrialDays = 7

const millisPerDay = 24 * 60 * 60 * 1000

// Window evaluates trial state against a fixed trial length.
type Window struct {
	days int
}

// NewWindow returns a Window with the given trial length in days.
func NewWindow(days int) Window {
	if days <= 0 {
		days = DefaultTrialDays
	}
	return Window{days: days}
}

// elapsedDays floors whole milliseconds elapsed into days. Day boundaries are
// deliberately not calendar-aligned; partial-day drift near midnight is part
// of the contract.
func elapsedDays(start, now time.Time) int {
	return int(math.Floor(float64(now.Sub(start).Milliseconds()) / millisPerDay))
}

// Active reports whether the trial started at start is still running at now.
// A zero start means the trial never began and is treated as expired.
func (w Window) Active(start, now time.Time) bool {
	if start.IsZero() {
		return false
	}
	return elapsedDays(start, now) < w.days
}

// RemainingDays returns the number of whole trial days left; zero or
// negative means expired.
func (w Window) RemainingDays(start, now time.Time) int {
	return w.days - elapsedDays(start, now)
}

// Remaining renders the remaining trial time for the given locale.
func (w Window) Remaining(start, now time.Time, locale string) string {
	msgs := messagesFor(locale)
	if start.IsZero() {
		return msgs.expired
	}
	remaining := w.RemainingDays(start, now)
	if remaining <= 0 {
		return msgs.expired
	}
	if remaining == 1 {
		return msgs.oneDay
	}
	return fmt.Sprintf(msgs.manyDays, remaining)
}

type messages struct {
	expired  string
	oneDay   string
	manyDays string
}

var trialMessages = map[string]messages{
	"pt": {
		expired:  "Trial expirado",
		oneDay:   "1 dia restante",
		manyDays: "%d dias restantes",
	},
	"en": {
		expired:  "Trial expired",
		oneDay:   "1 day remaining",
		manyDays: "%d days remaining",
	},
}

func messagesFor(locale string) messages {
	if m, ok := trialMessages[locale]; ok {
		return m
	}
	return trialMessages["pt"]
}
