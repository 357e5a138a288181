package timeoff

import (
	"sort"
	"time"
)

// Unit is the denomination of a time-off request.
type Unit string

const (
	// UnitDay means UnitsPerDay holds day fractions (1, 0.5, 0.25)
	UnitDay Unit = "day"
	// UnitHour means UnitsPerDay holds hour counts
	UnitHour Unit = "hour"
)

var UnitValues = []string{string(UnitDay), string(UnitHour)}

type Status string

const (
	StatusWaitingApproval Status = "waiting_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

// Request is a time-off request spanning one or more dates. UnitsPerDay maps
// a "YYYY-MM-DD" key to that date's day fraction or hour count depending on
// Unit. Only approved requests participate in aggregation.
type Request struct {
	ID          string
	UserID      string
	Unit        Unit
	UnitsPerDay map[string]float64
	Reason      *string
	Status      Status

	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dates returns the request's covered dates as sorted "YYYY-MM-DD" keys.
func (r Request) Dates() []string {
	dates := make([]string, 0, len(r.UnitsPerDay))
	for d := range r.UnitsPerDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
