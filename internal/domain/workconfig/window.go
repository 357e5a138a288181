package workconfig

import (
	"time"

	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// EditablePeriod resolves today's period boundary at the configured
// granularity and expands it by the extra edge days. ok is false when no
// config applies, which callers must treat as "nothing editable".
func EditablePeriod(cfg *MergedConfig, today time.Time) (start, end time.Time, ok bool) {
	if cfg == nil {
		return time.Time{}, time.Time{}, false
	}
	switch cfg.EditablePeriod.Unit {
	case PeriodDay:
		start = timeutil.Midnight(today)
		end = start
	case PeriodISOWeek:
		start = timeutil.StartOfISOWeek(today)
		end = start.AddDate(0, 0, 6)
	case PeriodMonth:
		start = timeutil.StartOfMonth(today)
		end = timeutil.EndOfMonth(today)
	default:
		return time.Time{}, time.Time{}, false
	}
	start = start.AddDate(0, 0, -cfg.EditablePeriod.ExtraDaysBefore)
	end = end.AddDate(0, 0, cfg.EditablePeriod.ExtraDaysAfter)
	return start, end, true
}

// EditableDates returns every date of the editable period as an explicit
// set keyed by "YYYY-MM-DD", so membership tests are O(1). The set depends
// on today and must not be cached across day boundaries. The engine only
// computes the set; enforcement is the calling layer's job.
func EditableDates(cfg *MergedConfig, today time.Time) map[string]struct{} {
	start, end, ok := EditablePeriod(cfg, today)
	if !ok {
		return map[string]struct{}{}
	}
	dates := make(map[string]struct{})
	for _, d := range timeutil.DatesInRange(start, end) {
		dates[timeutil.DateKey(d)] = struct{}{}
	}
	return dates
}
