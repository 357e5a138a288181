package workhours

import (
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// ValidateInterval checks a single start/end pair: both labels must match
// "HH:mm" and the end must be strictly after the start. A zero-length
// interval is invalid.
func ValidateInterval(start, end string) error {
	if !timeutil.IsValidClock(start) || !timeutil.IsValidClock(end) {
		return ErrInvalidTimeFormat
	}
	minutes, err := timeutil.Interval(start, end)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	if minutes <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

type span struct {
	start, end int
}

func toSpan(start, end string) (span, error) {
	s, err := timeutil.ParseToMinutes(start)
	if err != nil {
		return span{}, ErrInvalidTimeFormat
	}
	e, err := timeutil.ParseToMinutes(end)
	if err != nil {
		return span{}, ErrInvalidTimeFormat
	}
	return span{start: s, end: e}, nil
}

// Intervals are closed-open: [s1,e1) and [s2,e2) intersect iff
// s1 < e2 && s2 < e1. An entry ending exactly when another starts
// does not overlap.
func (a span) overlaps(b span) bool {
	return a.start < b.end && b.start < a.end
}

func validateSpans(spans []span) error {
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].overlaps(spans[j]) {
				return ErrOverlapConflict
			}
		}
	}
	return nil
}

// ValidateDayEntries checks every unordered pair of entries for one date and
// returns ErrOverlapConflict on the first intersection found. Callers must
// merge a new or edited entry with all persisted entries for that date and
// re-run this over the merged set before writing; a conflict aborts the
// whole write.
func ValidateDayEntries(entries []Entry) error {
	spans := make([]span, 0, len(entries))
	for _, e := range entries {
		s, err := toSpan(e.StartTime, e.EndTime)
		if err != nil {
			return err
		}
		spans = append(spans, s)
	}
	return validateSpans(spans)
}

// ValidateTemplates applies the same pairwise check to a user's default
// entry templates.
func ValidateTemplates(templates []DefaultEntry) error {
	spans := make([]span, 0, len(templates))
	for _, t := range templates {
		s, err := toSpan(t.StartTime, t.EndTime)
		if err != nil {
			return err
		}
		spans = append(spans, s)
	}
	return validateSpans(spans)
}
