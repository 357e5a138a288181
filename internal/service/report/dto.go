package report

import (
	"strings"

	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
	"github.com/tracklight/workhours-backend-go/internal/pkg/validator"
)

type SummaryFilter struct {
	From    string `json:"from"`
	To      string `json:"to"`
	GroupBy string `json:"group_by"`
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.GroupBy == "" {
		f.GroupBy = string(GroupByWeek)
	}
	if !validator.IsInSlice(f.GroupBy, GroupByValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_by",
			Message: "group_by must be one of: " + strings.Join(GroupByValues, ", "),
		})
	}

	from, fromOK := validator.IsValidDate(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodSummary is one period row of a summary. Duration fields are nil when
// the period has nothing of that kind.
type PeriodSummary struct {
	PeriodStart    string             `json:"period_start"`
	WorkingTime    *timeutil.Duration `json:"working_time"`
	TimeOff        *timeutil.Duration `json:"time_off"`
	PublicHolidays *timeutil.Duration `json:"public_holidays"`
	Total          *timeutil.Duration `json:"total"`
	Classification Classification     `json:"classification"`
}

type SummaryResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	GroupBy string          `json:"group_by"`
	Periods []PeriodSummary `json:"periods"`
}
