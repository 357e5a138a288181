package report

import (
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// Level is an overwork tier. The zero value means "no overwork".
type Level string

const (
	LevelGray   Level = "gray"
	LevelYellow Level = "yellow"
	LevelRed    Level = "red"
)

// Classification is the overwork verdict for one period. Excess is the
// absolute distance from the weekly target, set only when the total exceeds
// the target.
type Classification struct {
	Level  Level              `json:"level,omitempty"`
	Excess *timeutil.Duration `json:"excess,omitempty"`
}

// Classify compares a period total against the merged config's weekly target
// and overtime thresholds. Comparison uses exact fractional hours so a single
// minute over a threshold counts; landing exactly on a threshold does not
// escalate to the next tier.
func Classify(total *timeutil.Duration, cfg *workconfig.MergedConfig) Classification {
	if total == nil || cfg == nil {
		return Classification{}
	}

	hours := timeutil.ExactHours(total)
	target := cfg.WeeklyWorkingHours
	if hours <= target {
		return Classification{}
	}

	level := LevelGray
	switch {
	case hours > target+cfg.WeeklyOvertimeHoursWarning:
		level = LevelRed
	case hours > target+cfg.WeeklyOvertimeHoursNotice:
		level = LevelYellow
	}

	return Classification{
		Level:  level,
		Excess: timeutil.Difference(total, timeutil.FromHours(target)),
	}
}
