package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/export"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

// Service produces per-period working time summaries with overwork
// classification for the authenticated user.
type Service interface {
	GetSummary(ctx context.Context, filter SummaryFilter) (SummaryResponse, error)

	// WriteSummaryCSV streams the same summary as CSV
	WriteSummaryCSV(ctx context.Context, filter SummaryFilter, w io.Writer) error
}

type reportServiceImpl struct {
	entryRepo      workhours.EntryRepository
	timeOffRepo    timeoff.Repository
	holidayRepo    holiday.Repository
	configResolver workconfig.Resolver
}

func NewReportService(
	entryRepo workhours.EntryRepository,
	timeOffRepo timeoff.Repository,
	holidayRepo holiday.Repository,
	configResolver workconfig.Resolver,
) Service {
	return &reportServiceImpl{
		entryRepo:      entryRepo,
		timeOffRepo:    timeOffRepo,
		holidayRepo:    holidayRepo,
		configResolver: configResolver,
	}
}

func (s *reportServiceImpl) GetSummary(ctx context.Context, filter SummaryFilter) (SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return SummaryResponse{}, err
	}

	userID, role, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	from, _ := timeutil.ParseDate(filter.From)
	to, _ := timeutil.ParseDate(filter.To)
	groupBy := GroupBy(filter.GroupBy)

	// A user whose role has no working hours configuration still gets their
	// raw worked time; time-off and holiday valuation need the config.
	cfg, err := s.configResolver.ResolveForUser(ctx, role, userID)
	if err != nil {
		return SummaryResponse{}, err
	}

	entries, err := s.entryRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("failed to list entries: %w", err)
	}

	var requests []timeoff.Request
	var holidays []holiday.PublicHoliday
	if cfg != nil {
		requests, err = s.timeOffRepo.ListApprovedInRange(ctx, userID, from, to)
		if err != nil {
			return SummaryResponse{}, fmt.Errorf("failed to list time-off: %w", err)
		}
		if cfg.PublicHolidayCalendarID != nil {
			holidays, err = s.holidayRepo.ListByCalendarAndRange(ctx, *cfg.PublicHolidayCalendarID, from, to)
			if err != nil {
				return SummaryResponse{}, fmt.Errorf("failed to list holidays: %w", err)
			}
		}
	}

	response := SummaryResponse{
		From:    filter.From,
		To:      filter.To,
		GroupBy: filter.GroupBy,
		Periods: buildPeriods(entries, requests, holidays, cfg, groupBy, from, to),
	}
	return response, nil
}

func (s *reportServiceImpl) WriteSummaryCSV(ctx context.Context, filter SummaryFilter, w io.Writer) error {
	summary, err := s.GetSummary(ctx, filter)
	if err != nil {
		return err
	}

	rows := make([]export.SummaryRow, 0, len(summary.Periods))
	for _, p := range summary.Periods {
		rows = append(rows, export.SummaryRow{
			Period:         p.PeriodStart,
			WorkingTime:    timeutil.DurationString(p.WorkingTime),
			TimeOff:        timeutil.DurationString(p.TimeOff),
			PublicHolidays: timeutil.DurationString(p.PublicHolidays),
			Total:          timeutil.DurationString(p.Total),
			Level:          string(p.Classification.Level),
			Excess:         timeutil.DurationString(p.Classification.Excess),
		})
	}
	return export.WriteSummaryCSV(w, rows)
}

func buildPeriods(
	entries []workhours.Entry,
	requests []timeoff.Request,
	holidays []holiday.PublicHoliday,
	cfg *workconfig.MergedConfig,
	groupBy GroupBy,
	from, to time.Time,
) []PeriodSummary {
	entryGroups := GroupEntriesByPeriod(entries, groupBy)
	timeOffGroups := GroupTimeOffByPeriod(requests, groupBy)
	holidayGroups := GroupHolidaysByPeriod(holidays, groupBy)

	keys := make(map[string]struct{})
	for k := range entryGroups {
		keys[k] = struct{}{}
	}
	for k := range timeOffGroups {
		keys[k] = struct{}{}
	}
	for k := range holidayGroups {
		keys[k] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	periods := make([]PeriodSummary, 0, len(sorted))
	for _, key := range sorted {
		start, _ := timeutil.ParseDate(key)
		end := periodEnd(start, groupBy)

		// Worked entries arrive pre-clamped to [from, to] by the repository
		// query; time-off requests are only clamped to their request span, so
		// the valuation window must be cut to the requested interval too or
		// edge periods count days the caller never asked about.
		valFrom, valTo := start, end
		if valFrom.Before(from) {
			valFrom = from
		}
		if valTo.After(to) {
			valTo = to
		}

		worked := TotalWorkingTime(entryGroups[key])
		off := TotalTimeOff(valFrom, valTo, timeOffGroups[key], cfg)
		hols := TotalPublicHolidays(holidayGroups[key], cfg)
		total := timeutil.Sum(worked, off, hols)

		periods = append(periods, PeriodSummary{
			PeriodStart:    key,
			WorkingTime:    worked,
			TimeOff:        off,
			PublicHolidays: hols,
			Total:          total,
			Classification: Classify(total, cfg),
		})
	}
	return periods
}

func periodEnd(start time.Time, groupBy GroupBy) time.Time {
	if groupBy == GroupByMonth {
		return timeutil.EndOfMonth(start)
	}
	return start.AddDate(0, 0, 6)
}
