package timeutil

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a clock string does not match "HH:mm".
var ErrInvalidTimeFormat = errors.New("time must be in HH:mm format")

// Clock strings are zone-less wall-clock labels between 00:00 and 23:59.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// IsValidClock reports whether s is a valid "HH:mm" label.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// ParseToMinutes converts an "HH:mm" label to minutes since midnight.
func ParseToMinutes(s string) (int, error) {
	if !clockRegex.MatchString(s) {
		return 0, ErrInvalidTimeFormat
	}
	parts := strings.SplitN(s, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, nil
}

// MinutesToClock is the inverse of ParseToMinutes.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Interval returns the signed minute count from start to end on the same day.
// Callers must reject results <= 0 before using them as a duration.
func Interval(start, end string) (int, error) {
	s, err := ParseToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseToMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// Duration is an amount of worked time. A nil *Duration means "no time
// recorded", which is distinct from a zero value and renders as "–" upstream.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// FromMinutes converts a minute total to a Duration, nil when m is zero.
func FromMinutes(m int) *Duration {
	if m == 0 {
		return nil
	}
	return &Duration{Hours: m / 60, Minutes: m % 60}
}

// FromHours converts a fractional hour count to a Duration, rounding to the
// nearest minute. Nil when the rounded total is zero.
func FromHours(h float64) *Duration {
	return FromMinutes(int(math.Round(h * 60)))
}

// TotalMinutes returns the duration as a flat minute count, 0 for nil.
func (d *Duration) TotalMinutes() int {
	if d == nil {
		return 0
	}
	return d.Hours*60 + d.Minutes
}

// Sum adds duration pairs with minute carry. Nil entries count as nothing;
// a total of exactly zero collapses back to nil.
func Sum(ds ...*Duration) *Duration {
	total := 0
	for _, d := range ds {
		total += d.TotalMinutes()
	}
	return FromMinutes(total)
}

// ExactHours returns the unrounded fractional hour value. The overwork
// classifier compares this against thresholds, so it must not round.
func ExactHours(d *Duration) float64 {
	if d == nil {
		return 0
	}
	return float64(d.Hours) + float64(d.Minutes)/60
}

// RoundedHours returns hours rounded to one decimal place, for display only.
func RoundedHours(d *Duration) float64 {
	return math.Round(ExactHours(d)*10) / 10
}

// Difference returns the unsigned absolute difference between two durations.
func Difference(a, b *Duration) *Duration {
	diff := a.TotalMinutes() - b.TotalMinutes()
	if diff < 0 {
		diff = -diff
	}
	return FromMinutes(diff)
}

// DurationString renders a duration as "8h 30m", omitting zero components
// ("8h", "30m"). Nil renders as the empty string. The CSV export depends on
// this exact text, so changes here are breaking.
func DurationString(d *Duration) string {
	if d == nil {
		return ""
	}
	var parts []string
	if d.Hours != 0 {
		parts = append(parts, strconv.Itoa(d.Hours)+"h")
	}
	if d.Minutes != 0 {
		parts = append(parts, strconv.Itoa(d.Minutes)+"m")
	}
	return strings.Join(parts, " ")
}

const dateLayout = "2006-01-02"

// DateKey formats t as a calendar-day key ("2006-01-02").
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a "2006-01-02" calendar-day string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfISOWeek returns the Monday of t's ISO week.
func StartOfISOWeek(t time.Time) time.Time {
	t = Midnight(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DatesInRange enumerates every calendar day from a through b inclusive.
func DatesInRange(a, b time.Time) []time.Time {
	a, b = Midnight(a), Midnight(b)
	var dates []time.Time
	for d := a; !d.After(b); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
