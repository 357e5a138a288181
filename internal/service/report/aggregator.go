package report

import (
	"time"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// GroupBy selects the period granularity of a summary.
type GroupBy string

const (
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

var GroupByValues = []string{
	string(GroupByWeek),
	string(GroupByMonth),
}

// PeriodStart maps a date to the key of its period: the Monday of its ISO
// week or the first of its month.
func PeriodStart(t time.Time, groupBy GroupBy) string {
	if groupBy == GroupByMonth {
		return timeutil.DateKey(timeutil.StartOfMonth(t))
	}
	return timeutil.DateKey(timeutil.StartOfISOWeek(t))
}

// TotalWorkingTime sums the recorded intervals of a set of entries. Nil when
// nothing was recorded.
func TotalWorkingTime(entries []workhours.Entry) *timeutil.Duration {
	total := 0
	for _, e := range entries {
		minutes, err := timeutil.Interval(e.StartTime, e.EndTime)
		if err != nil {
			continue
		}
		total += minutes
	}
	return timeutil.FromMinutes(total)
}

// TotalTimeOff values a set of approved time-off requests inside [from, to].
// Day-denominated units convert at the config's hours-per-working-day rate;
// hour-denominated units count as-is. Nil config means no valuation.
func TotalTimeOff(from, to time.Time, requests []timeoff.Request, cfg *workconfig.MergedConfig) *timeutil.Duration {
	if cfg == nil {
		return nil
	}

	hoursPerDay := cfg.HoursPerWorkingDay()
	var hours float64
	for _, req := range requests {
		for dateKey, units := range req.UnitsPerDay {
			day, err := timeutil.ParseDate(dateKey)
			if err != nil {
				continue
			}
			if day.Before(from) || day.After(to) {
				continue
			}
			if req.Unit == timeoff.UnitDay {
				hours += units * hoursPerDay
			} else {
				hours += units
			}
		}
	}
	return timeutil.FromHours(hours)
}

// TotalPublicHolidays values holidays at one working day's worth of hours
// each. Nil config means no valuation.
func TotalPublicHolidays(holidays []holiday.PublicHoliday, cfg *workconfig.MergedConfig) *timeutil.Duration {
	if cfg == nil {
		return nil
	}
	return timeutil.FromHours(float64(len(holidays)) * cfg.HoursPerWorkingDay())
}

// GroupEntriesByPeriod buckets entries by the period key of their date.
func GroupEntriesByPeriod(entries []workhours.Entry, groupBy GroupBy) map[string][]workhours.Entry {
	grouped := make(map[string][]workhours.Entry)
	for _, e := range entries {
		key := PeriodStart(e.Date, groupBy)
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}

// GroupTimeOffByPeriod buckets requests by period. A request spanning a
// period boundary appears in every period it touches, narrowed to the
// UnitsPerDay dates inside that period.
func GroupTimeOffByPeriod(requests []timeoff.Request, groupBy GroupBy) map[string][]timeoff.Request {
	grouped := make(map[string][]timeoff.Request)
	for _, req := range requests {
		perPeriod := make(map[string]map[string]float64)
		for dateKey, units := range req.UnitsPerDay {
			day, err := timeutil.ParseDate(dateKey)
			if err != nil {
				continue
			}
			key := PeriodStart(day, groupBy)
			if perPeriod[key] == nil {
				perPeriod[key] = make(map[string]float64)
			}
			perPeriod[key][dateKey] = units
		}
		for key, unitsPerDay := range perPeriod {
			narrowed := req
			narrowed.UnitsPerDay = unitsPerDay
			grouped[key] = append(grouped[key], narrowed)
		}
	}
	return grouped
}

// GroupHolidaysByPeriod buckets holidays by the period key of their date.
func GroupHolidaysByPeriod(holidays []holiday.PublicHoliday, groupBy GroupBy) map[string][]holiday.PublicHoliday {
	grouped := make(map[string][]holiday.PublicHoliday)
	for _, h := range holidays {
		key := PeriodStart(h.Date, groupBy)
		grouped[key] = append(grouped[key], h)
	}
	return grouped
}
