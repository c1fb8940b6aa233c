package domain

import "time"

// DayOf truncates a timestamp to its local calendar day. Daily aggregation
// is keyed on local day boundaries.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
