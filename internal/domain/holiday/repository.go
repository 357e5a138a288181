package holiday

import (
	"context"
	"time"
)

// Repository defines data access for public holidays.
type Repository interface {
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)

	// ListByCalendarAndRange retrieves holidays of one calendar with dates
	// in [from, to]. Aggregation consumes this pre-filtered view.
	ListByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]PublicHoliday, error)

	// ListByCalendar retrieves all holidays of one calendar
	ListByCalendar(ctx context.Context, calendarID string) ([]PublicHoliday, error)

	Delete(ctx context.Context, id string) error
}
