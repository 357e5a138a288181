package workhours

import "time"

// Entry is a single worked time interval for one user on one calendar day.
// StartTime and EndTime are zone-less "HH:mm" labels; EndTime is strictly
// after StartTime (no overnight spans). Entries for the same (user, date)
// must not pairwise overlap.
type Entry struct {
	ID        string
	UserID    string
	Date      time.Time
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultEntry is a personal recurring daily template used to prefill
// entries. Same shape as Entry without a date, same no-overlap invariant
// within one user's template set.
type DefaultEntry struct {
	ID        string
	UserID    string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
