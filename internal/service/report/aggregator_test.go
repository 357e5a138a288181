package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

func date(s string) time.Time {
	t, err := timeutil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func weekEntry(day, start, end string) workhours.Entry {
	return workhours.Entry{UserID: "u1", Date: date(day), StartTime: start, EndTime: end}
}

func TestTotalWorkingTime(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "09:00", "17:00"),
		weekEntry("2024-07-09", "09:00", "13:30"),
	}
	total := TotalWorkingTime(entries)
	require.NotNil(t, total)
	assert.Equal(t, 12, total.Hours)
	assert.Equal(t, 30, total.Minutes)
}

func TestTotalWorkingTime_Empty(t *testing.T) {
	assert.Nil(t, TotalWorkingTime(nil))
}

func TestTotalTimeOff_DayUnit(t *testing.T) {
	// 40h over 5 working days = 8h per day; half a day = 4h.
	requests := []timeoff.Request{{
		UserID:      "u1",
		Unit:        timeoff.UnitDay,
		Status:      timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{"2024-07-10": 0.5},
	}}
	total := TotalTimeOff(date("2024-07-08"), date("2024-07-14"), requests, standardConfig())
	require.NotNil(t, total)
	assert.Equal(t, 4, total.Hours)
	assert.Equal(t, 0, total.Minutes)
}

func TestTotalTimeOff_HourUnit(t *testing.T) {
	requests := []timeoff.Request{{
		UserID:      "u1",
		Unit:        timeoff.UnitHour,
		Status:      timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{"2024-07-10": 2.5, "2024-07-11": 3},
	}}
	total := TotalTimeOff(date("2024-07-08"), date("2024-07-14"), requests, standardConfig())
	require.NotNil(t, total)
	assert.Equal(t, 5, total.Hours)
	assert.Equal(t, 30, total.Minutes)
}

func TestTotalTimeOff_OutsideInterval(t *testing.T) {
	requests := []timeoff.Request{{
		UserID:      "u1",
		Unit:        timeoff.UnitDay,
		Status:      timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{"2024-07-01": 1},
	}}
	total := TotalTimeOff(date("2024-07-08"), date("2024-07-14"), requests, standardConfig())
	assert.Nil(t, total)
}

func TestTotalTimeOff_NilConfig(t *testing.T) {
	requests := []timeoff.Request{{
		Unit:        timeoff.UnitDay,
		UnitsPerDay: map[string]float64{"2024-07-10": 1},
	}}
	assert.Nil(t, TotalTimeOff(date("2024-07-08"), date("2024-07-14"), requests, nil))
}

func TestTotalPublicHolidays(t *testing.T) {
	holidays := []holiday.PublicHoliday{
		{Date: date("2024-07-10"), Name: "Founders Day", CalendarID: "de-by"},
	}
	total := TotalPublicHolidays(holidays, standardConfig())
	require.NotNil(t, total)
	assert.Equal(t, 8, total.Hours)

	assert.Nil(t, TotalPublicHolidays(nil, standardConfig()))
	assert.Nil(t, TotalPublicHolidays(holidays, nil))
}

func TestGroupEntriesByPeriod_Week(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "09:00", "17:00"), // Monday week 28
		weekEntry("2024-07-14", "09:00", "12:00"), // Sunday week 28
		weekEntry("2024-07-15", "09:00", "17:00"), // Monday week 29
	}
	grouped := GroupEntriesByPeriod(entries, GroupByWeek)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2024-07-08"], 2)
	assert.Len(t, grouped["2024-07-15"], 1)
}

func TestGroupTimeOffByPeriod_SplitsAcrossPeriods(t *testing.T) {
	requests := []timeoff.Request{{
		UserID: "u1",
		Unit:   timeoff.UnitDay,
		UnitsPerDay: map[string]float64{
			"2024-07-12": 1, // week of 07-08
			"2024-07-15": 1, // week of 07-15
		},
	}}
	grouped := GroupTimeOffByPeriod(requests, GroupByWeek)
	require.Len(t, grouped, 2)
	assert.Equal(t, map[string]float64{"2024-07-12": 1}, grouped["2024-07-08"][0].UnitsPerDay)
	assert.Equal(t, map[string]float64{"2024-07-15": 1}, grouped["2024-07-15"][0].UnitsPerDay)
}

// Two full 8h days plus half a day off on Wednesday: composite of 20h stays
// well under the 40h target.
func TestBuildPeriods_CompositeUnderTarget(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "09:00", "17:00"),
		weekEntry("2024-07-09", "09:00", "17:00"),
	}
	requests := []timeoff.Request{{
		UserID:      "u1",
		Unit:        timeoff.UnitDay,
		Status:      timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{"2024-07-10": 0.5},
	}}

	periods := buildPeriods(entries, requests, nil, standardConfig(), GroupByWeek, date("2024-07-08"), date("2024-07-14"))
	require.Len(t, periods, 1)

	p := periods[0]
	assert.Equal(t, "2024-07-08", p.PeriodStart)
	assert.Equal(t, &timeutil.Duration{Hours: 16}, p.WorkingTime)
	assert.Equal(t, &timeutil.Duration{Hours: 4}, p.TimeOff)
	assert.Nil(t, p.PublicHolidays)
	assert.Equal(t, &timeutil.Duration{Hours: 20}, p.Total)
	assert.Empty(t, p.Classification.Level)
	assert.Nil(t, p.Classification.Excess)
}

// Entries summing to 46h in one week classify gray with a 6h excess.
func TestBuildPeriods_OverworkGray(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "08:00", "18:00"), // 10h
		weekEntry("2024-07-09", "08:00", "18:00"), // 10h
		weekEntry("2024-07-10", "08:00", "18:00"), // 10h
		weekEntry("2024-07-11", "08:00", "16:00"), // 8h
		weekEntry("2024-07-12", "08:00", "16:00"), // 8h
	}

	periods := buildPeriods(entries, nil, nil, standardConfig(), GroupByWeek, date("2024-07-08"), date("2024-07-14"))
	require.Len(t, periods, 1)

	p := periods[0]
	assert.Equal(t, &timeutil.Duration{Hours: 46}, p.Total)
	assert.Equal(t, LevelGray, p.Classification.Level)
	assert.Equal(t, &timeutil.Duration{Hours: 6}, p.Classification.Excess)
}

// Holidays count toward the target like worked hours.
func TestBuildPeriods_HolidayInComposite(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "08:00", "18:00"),
		weekEntry("2024-07-09", "08:00", "18:00"),
		weekEntry("2024-07-11", "08:00", "18:00"),
		weekEntry("2024-07-12", "08:00", "18:00"),
	}
	holidays := []holiday.PublicHoliday{
		{Date: date("2024-07-10"), Name: "Founders Day", CalendarID: "de-by"},
	}

	periods := buildPeriods(entries, nil, holidays, standardConfig(), GroupByWeek, date("2024-07-08"), date("2024-07-14"))
	require.Len(t, periods, 1)

	p := periods[0]
	// 40h worked + 8h holiday
	assert.Equal(t, &timeutil.Duration{Hours: 48}, p.Total)
	assert.Equal(t, LevelRed, p.Classification.Level)
	assert.Equal(t, &timeutil.Duration{Hours: 8}, p.Classification.Excess)
}

// Without a config the summary still reports raw worked time but carries no
// valuation or classification.
func TestBuildPeriods_NoConfigDegradesToWorkedTimeOnly(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-07-08", "08:00", "18:00"),
	}
	periods := buildPeriods(entries, nil, nil, nil, GroupByWeek, date("2024-07-08"), date("2024-07-14"))
	require.Len(t, periods, 1)
	assert.Equal(t, &timeutil.Duration{Hours: 10}, periods[0].WorkingTime)
	assert.Nil(t, periods[0].TimeOff)
	assert.Empty(t, periods[0].Classification.Level)
}

func TestBuildPeriods_MonthGrouping(t *testing.T) {
	entries := []workhours.Entry{
		weekEntry("2024-06-28", "09:00", "17:00"),
		weekEntry("2024-07-01", "09:00", "17:00"),
	}
	periods := buildPeriods(entries, nil, nil, standardConfig(), GroupByMonth, date("2024-06-28"), date("2024-07-01"))
	require.Len(t, periods, 2)
	assert.Equal(t, "2024-06-01", periods[0].PeriodStart)
	assert.Equal(t, "2024-07-01", periods[1].PeriodStart)
}

// A request reaching back before the summary range must only contribute its
// in-range dates; worked time is already cut to the range by the repository
// query and the time-off valuation has to match that scope.
func TestBuildPeriods_TimeOffClampedToRequestedRange(t *testing.T) {
	requests := []timeoff.Request{{
		UserID: "u1",
		Unit:   timeoff.UnitDay,
		Status: timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{
			"2024-07-08": 1, // before the range
			"2024-07-10": 1,
		},
	}}

	periods := buildPeriods(nil, requests, nil, standardConfig(), GroupByWeek, date("2024-07-10"), date("2024-07-14"))
	require.Len(t, periods, 1)

	p := periods[0]
	assert.Equal(t, "2024-07-08", p.PeriodStart)
	assert.Equal(t, &timeutil.Duration{Hours: 8}, p.TimeOff)
	assert.Equal(t, &timeutil.Duration{Hours: 8}, p.Total)
}

// The same clamp applies at the upper edge.
func TestBuildPeriods_TimeOffClampedAtUpperBound(t *testing.T) {
	requests := []timeoff.Request{{
		UserID: "u1",
		Unit:   timeoff.UnitDay,
		Status: timeoff.StatusApproved,
		UnitsPerDay: map[string]float64{
			"2024-07-10": 1,
			"2024-07-12": 1, // past the range
		},
	}}

	periods := buildPeriods(nil, requests, nil, standardConfig(), GroupByWeek, date("2024-07-08"), date("2024-07-11"))
	require.Len(t, periods, 1)
	assert.Equal(t, &timeutil.Duration{Hours: 8}, periods[0].TimeOff)
}
