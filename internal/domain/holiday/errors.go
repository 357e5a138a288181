package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("public holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists for this date and calendar")
)
