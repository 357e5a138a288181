package workconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NoOverride(t *testing.T) {
	role := RoleConfig{
		Role:               "engineer",
		WorkingDays:        []int{1, 2, 3, 4, 5},
		WeeklyWorkingHours: 40,
	}

	merged := Resolve(role, nil)
	assert.Equal(t, 40.0, merged.WeeklyWorkingHours)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, merged.WorkingDays)
}

func TestResolve_OverrideTakesPrecedenceFieldByField(t *testing.T) {
	role := RoleConfig{
		Role:               "engineer",
		WorkingDays:        []int{1, 2, 3, 4, 5},
		WeeklyWorkingHours: 40,
	}
	hours := 32.0
	override := &UserConfigOverride{
		UserID:             "u1",
		WeeklyWorkingHours: &hours,
	}

	merged := Resolve(role, override)
	assert.Equal(t, 32.0, merged.WeeklyWorkingHours)
	// fields the override does not define keep the role values
	assert.Equal(t, []int{1, 2, 3, 4, 5}, merged.WorkingDays)
}

func TestResolve_OverrideWorkingDays(t *testing.T) {
	role := RoleConfig{
		Role:               "engineer",
		WorkingDays:        []int{1, 2, 3, 4, 5},
		WeeklyWorkingHours: 40,
	}
	override := &UserConfigOverride{
		UserID:      "u1",
		WorkingDays: []int{1, 2, 3, 4},
	}

	merged := Resolve(role, override)
	assert.Equal(t, []int{1, 2, 3, 4}, merged.WorkingDays)
	assert.Equal(t, 40.0, merged.WeeklyWorkingHours)
	assert.Equal(t, 10.0, merged.HoursPerWorkingDay())
}

func TestHoursPerWorkingDay(t *testing.T) {
	cfg := &MergedConfig{WeeklyWorkingHours: 40, WorkingDays: []int{1, 2, 3, 4, 5}}
	assert.Equal(t, 8.0, cfg.HoursPerWorkingDay())

	var nilCfg *MergedConfig
	assert.Equal(t, 0.0, nilCfg.HoursPerWorkingDay())

	empty := &MergedConfig{WeeklyWorkingHours: 40}
	assert.Equal(t, 0.0, empty.HoursPerWorkingDay())
}
