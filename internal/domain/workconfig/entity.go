package workconfig

import "time"

// PeriodUnit is the granularity of the editable period.
type PeriodUnit string

const (
	PeriodDay     PeriodUnit = "day"
	PeriodISOWeek PeriodUnit = "isoWeek"
	PeriodMonth   PeriodUnit = "month"
)

var PeriodUnitValues = []string{
	string(PeriodDay),
	string(PeriodISOWeek),
	string(PeriodMonth),
}

// EditablePeriodRule describes the rolling window of dates a user may edit:
// the current period at Unit granularity, padded by extra days on each edge.
type EditablePeriodRule struct {
	Unit            PeriodUnit `json:"unit"`
	ExtraDaysBefore int        `json:"extra_days_before"`
	ExtraDaysAfter  int        `json:"extra_days_after"`
}

// TemplateEntry is one (start, end) tuple of a role's default entry set.
type TemplateEntry struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RoleConfig is the per-role working hours policy. WorkingDays uses Go
// weekday numbering (0=Sunday .. 6=Saturday). Overtime thresholds are
// expressed as hours on top of WeeklyWorkingHours.
type RoleConfig struct {
	Role                       string
	WorkingDays                []int
	DefaultEntries             []TemplateEntry
	WeeklyWorkingHours         float64
	WeeklyOvertimeHoursNotice  float64
	WeeklyOvertimeHoursWarning float64
	EditablePeriod             EditablePeriodRule
	PublicHolidayCalendarID    *string
	CanPrefillDay              bool
	CanPrefillWeek             bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// UserConfigOverride is a partial per-user policy; fields it defines take
// precedence over the role config field-by-field.
type UserConfigOverride struct {
	UserID             string
	WeeklyWorkingHours *float64
	WorkingDays        []int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MergedConfig is a role config with any per-user override applied. All
// aggregation, classification, window, and prefill logic works on the
// merged config, never the bare role config.
type MergedConfig RoleConfig

// HoursPerWorkingDay pro-rates the weekly target over the configured
// working days. Day-denominated time-off and public holidays are valued at
// this rate.
func (c *MergedConfig) HoursPerWorkingDay() float64 {
	if c == nil || len(c.WorkingDays) == 0 {
		return 0
	}
	return c.WeeklyWorkingHours / float64(len(c.WorkingDays))
}

// IsWorkingDay reports whether t's weekday is in the configured set.
func (c *MergedConfig) IsWorkingDay(t time.Time) bool {
	if c == nil {
		return false
	}
	day := int(t.Weekday())
	for _, d := range c.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}
