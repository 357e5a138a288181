package workhours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
)

func prefillConfig() *workconfig.MergedConfig {
	return &workconfig.MergedConfig{
		Role:               "engineer",
		WorkingDays:        []int{1, 2, 3, 4, 5},
		WeeklyWorkingHours: 40,
		DefaultEntries: []workconfig.TemplateEntry{
			{StartTime: "09:00", EndTime: "12:00"},
			{StartTime: "13:00", EndTime: "18:00"},
		},
		EditablePeriod: workconfig.EditablePeriodRule{Unit: workconfig.PeriodISOWeek},
		CanPrefillDay:  true,
		CanPrefillWeek: true,
	}
}

func dateSet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func weekEditable() map[string]struct{} {
	return dateSet(
		"2024-07-08", "2024-07-09", "2024-07-10", "2024-07-11",
		"2024-07-12", "2024-07-13", "2024-07-14",
	)
}

var anchorMonday = time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC)

func TestPrefillCandidates_WeekSkipsHoliday(t *testing.T) {
	// holiday on Wednesday; working days Mon-Fri; no time-off
	candidates := PrefillCandidates(
		workhours.PrefillModeWeek,
		anchorMonday,
		prefillConfig(),
		nil,
		weekEditable(),
		nil,
		dateSet("2024-07-10"),
	)

	// Mon, Tue, Thu, Fri x 2 templates
	require.Len(t, candidates, 8)
	covered := make(map[string]int)
	for _, c := range candidates {
		covered[c.Date]++
	}
	assert.Equal(t, map[string]int{
		"2024-07-08": 2,
		"2024-07-09": 2,
		"2024-07-11": 2,
		"2024-07-12": 2,
	}, covered)
}

func TestPrefillCandidates_WeekSkipsNonWorkingDaysAndTimeOff(t *testing.T) {
	candidates := PrefillCandidates(
		workhours.PrefillModeWeek,
		anchorMonday,
		prefillConfig(),
		nil,
		weekEditable(),
		dateSet("2024-07-09"),
		nil,
	)

	covered := make(map[string]struct{})
	for _, c := range candidates {
		covered[c.Date] = struct{}{}
	}
	// weekend excluded by working days, Tuesday by time-off
	assert.NotContains(t, covered, "2024-07-09")
	assert.NotContains(t, covered, "2024-07-13")
	assert.NotContains(t, covered, "2024-07-14")
	assert.Contains(t, covered, "2024-07-08")
}

func TestPrefillCandidates_WeekRespectsEditableWindow(t *testing.T) {
	// only Thursday and Friday still editable
	candidates := PrefillCandidates(
		workhours.PrefillModeWeek,
		anchorMonday,
		prefillConfig(),
		nil,
		dateSet("2024-07-11", "2024-07-12"),
		nil,
		nil,
	)
	require.Len(t, candidates, 4)
	for _, c := range candidates {
		assert.Contains(t, []string{"2024-07-11", "2024-07-12"}, c.Date)
	}
}

func TestPrefillCandidates_Day(t *testing.T) {
	candidates := PrefillCandidates(
		workhours.PrefillModeDay,
		anchorMonday,
		prefillConfig(),
		nil,
		weekEditable(),
		nil,
		nil,
	)
	require.Len(t, candidates, 2)
	assert.Equal(t, "2024-07-08", candidates[0].Date)
	assert.Equal(t, "09:00", candidates[0].StartTime)
	assert.Equal(t, "12:00", candidates[0].EndTime)
	assert.Equal(t, "13:00", candidates[1].StartTime)
}

func TestPrefillCandidates_DayBlocked(t *testing.T) {
	// any blocker on the anchor date empties the day prefill
	blocked := []struct {
		name     string
		editable map[string]struct{}
		timeOff  map[string]struct{}
		holidays map[string]struct{}
	}{
		{"not editable", dateSet(), nil, nil},
		{"time-off", weekEditable(), dateSet("2024-07-08"), nil},
		{"holiday", weekEditable(), nil, dateSet("2024-07-08")},
	}
	for _, c := range blocked {
		t.Run(c.name, func(t *testing.T) {
			candidates := PrefillCandidates(
				workhours.PrefillModeDay,
				anchorMonday,
				prefillConfig(),
				nil,
				c.editable,
				c.timeOff,
				c.holidays,
			)
			assert.Empty(t, candidates)
		})
	}
}

func TestPrefillCandidates_PersonalTemplatesWin(t *testing.T) {
	personal := []workhours.DefaultEntry{
		{UserID: "u1", StartTime: "07:30", EndTime: "15:30"},
	}
	candidates := PrefillCandidates(
		workhours.PrefillModeDay,
		anchorMonday,
		prefillConfig(),
		personal,
		weekEditable(),
		nil,
		nil,
	)
	require.Len(t, candidates, 1)
	assert.Equal(t, "07:30", candidates[0].StartTime)
	assert.Equal(t, "15:30", candidates[0].EndTime)
}

func TestPrefillCandidates_NilConfig(t *testing.T) {
	candidates := PrefillCandidates(
		workhours.PrefillModeWeek,
		anchorMonday,
		nil,
		nil,
		weekEditable(),
		nil,
		nil,
	)
	assert.Empty(t, candidates)
}
