package holiday

import "time"

// PublicHoliday is a calendar-wide non-working date tied to a named holiday
// calendar. It participates in aggregation only for the calendar referenced
// by the active configuration.
type PublicHoliday struct {
	ID         string
	Date       time.Time
	Name       string
	CalendarID string
	CreatedAt  time.Time
}
