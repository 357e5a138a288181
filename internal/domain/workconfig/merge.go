package workconfig

// Resolve applies a per-user override on top of a role config. Precedence is
// field-by-field: an override field that is unset leaves the role value in
// place. The result is what every consumer of configuration must use.
func Resolve(role RoleConfig, override *UserConfigOverride) MergedConfig {
	merged := MergedConfig(role)
	if override == nil {
		return merged
	}
	if override.WeeklyWorkingHours != nil {
		merged.WeeklyWorkingHours = *override.WeeklyWorkingHours
	}
	if len(override.WorkingDays) > 0 {
		merged.WorkingDays = override.WorkingDays
	}
	return merged
}
