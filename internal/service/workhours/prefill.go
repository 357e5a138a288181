package workhours

import (
	"time"

	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// PrefillCandidates generates the entry creation requests for a day or week
// prefill. It is a pure candidate-set generator: it never touches storage,
// and the caller persists the results with the usual merge-and-validate
// step (templates are internally non-overlapping, but combination with
// already persisted entries still needs re-validation).
//
// Personal templates take precedence over the role's default entries when
// the user has any. A date is skipped when it is outside the editable
// window, has time-off, or falls on a public holiday; week mode also skips
// non-working days.
func PrefillCandidates(
	mode workhours.PrefillMode,
	anchor time.Time,
	cfg *workconfig.MergedConfig,
	personalTemplates []workhours.DefaultEntry,
	editableDates map[string]struct{},
	timeOffDates map[string]struct{},
	holidayDates map[string]struct{},
) []workhours.CreateEntryRequest {
	if cfg == nil {
		return nil
	}

	templates := roleTemplates(cfg)
	if len(personalTemplates) > 0 {
		templates = templates[:0]
		for _, t := range personalTemplates {
			templates = append(templates, workconfig.TemplateEntry{StartTime: t.StartTime, EndTime: t.EndTime})
		}
	}
	if len(templates) == 0 {
		return nil
	}

	var dates []time.Time
	switch mode {
	case workhours.PrefillModeDay:
		dates = []time.Time{timeutil.Midnight(anchor)}
	case workhours.PrefillModeWeek:
		monday := timeutil.StartOfISOWeek(anchor)
		dates = timeutil.DatesInRange(monday, monday.AddDate(0, 0, 6))
	default:
		return nil
	}

	var requests []workhours.CreateEntryRequest
	for _, d := range dates {
		if mode == workhours.PrefillModeWeek && !cfg.IsWorkingDay(d) {
			continue
		}
		key := timeutil.DateKey(d)
		if _, ok := editableDates[key]; !ok {
			continue
		}
		if _, ok := timeOffDates[key]; ok {
			continue
		}
		if _, ok := holidayDates[key]; ok {
			continue
		}
		for _, t := range templates {
			requests = append(requests, workhours.CreateEntryRequest{
				Date:      key,
				StartTime: t.StartTime,
				EndTime:   t.EndTime,
			})
		}
	}
	return requests
}

func roleTemplates(cfg *workconfig.MergedConfig) []workconfig.TemplateEntry {
	templates := make([]workconfig.TemplateEntry, len(cfg.DefaultEntries))
	copy(templates, cfg.DefaultEntries)
	return templates
}
