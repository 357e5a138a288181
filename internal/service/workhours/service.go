package workhours

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
	"github.com/tracklight/workhours-backend-go/internal/repository/postgresql"
)

type entryServiceImpl struct {
	db             *database.DB
	entryRepo      workhours.EntryRepository
	defaultRepo    workhours.DefaultEntryRepository
	timeOffRepo    timeoff.Repository
	holidayRepo    holiday.Repository
	configResolver workconfig.Resolver

	// now is injected so that "today", and with it the editable window,
	// stays deterministic in tests
	now func() time.Time
}

func NewEntryService(
	db *database.DB,
	entryRepo workhours.EntryRepository,
	defaultRepo workhours.DefaultEntryRepository,
	timeOffRepo timeoff.Repository,
	holidayRepo holiday.Repository,
	configResolver workconfig.Resolver,
) workhours.Service {
	return &entryServiceImpl{
		db:             db,
		entryRepo:      entryRepo,
		defaultRepo:    defaultRepo,
		timeOffRepo:    timeOffRepo,
		holidayRepo:    holidayRepo,
		configResolver: configResolver,
		now:            time.Now,
	}
}

// CreateEntry implements workhours.Service. The merge with existing entries
// and the insert run inside one transaction so two writers on the same
// (user, date) cannot sneak an overlap past validation.
func (s *entryServiceImpl) CreateEntry(ctx context.Context, req workhours.CreateEntryRequest) (workhours.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.EntryResponse{}, err
	}

	userID, role, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return workhours.EntryResponse{}, err
	}

	if err := s.requireEditable(ctx, role, userID, req.Date); err != nil {
		return workhours.EntryResponse{}, err
	}

	date, _ := timeutil.ParseDate(req.Date)
	candidate := workhours.Entry{
		UserID:    userID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	var created workhours.Entry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.entryRepo.ListByUserAndDate(txCtx, userID, date)
		if err != nil {
			return fmt.Errorf("failed to list day entries: %w", err)
		}
		if err := workhours.ValidateDayEntries(append(existing, candidate)); err != nil {
			return err
		}

		created, err = s.entryRepo.Create(txCtx, candidate)
		return err
	})
	if err != nil {
		return workhours.EntryResponse{}, err
	}

	return workhours.NewEntryResponse(created), nil
}

// UpdateEntry implements workhours.Service.
func (s *entryServiceImpl) UpdateEntry(ctx context.Context, req workhours.UpdateEntryRequest) (workhours.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.EntryResponse{}, err
	}

	userID, role, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return workhours.EntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return workhours.EntryResponse{}, err
	}
	if entry.UserID != userID {
		return workhours.EntryResponse{}, workhours.ErrUnauthorized
	}

	if err := s.requireEditable(ctx, role, userID, timeutil.DateKey(entry.Date)); err != nil {
		return workhours.EntryResponse{}, err
	}

	entry.StartTime = req.StartTime
	entry.EndTime = req.EndTime

	var updated workhours.Entry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.entryRepo.ListByUserAndDate(txCtx, userID, entry.Date)
		if err != nil {
			return fmt.Errorf("failed to list day entries: %w", err)
		}
		// swap in the edited times before re-checking the whole day
		merged := make([]workhours.Entry, 0, len(existing))
		for _, e := range existing {
			if e.ID == entry.ID {
				continue
			}
			merged = append(merged, e)
		}
		merged = append(merged, entry)
		if err := workhours.ValidateDayEntries(merged); err != nil {
			return err
		}

		updated, err = s.entryRepo.Update(txCtx, entry)
		return err
	})
	if err != nil {
		return workhours.EntryResponse{}, err
	}

	return workhours.NewEntryResponse(updated), nil
}

// DeleteEntry implements workhours.Service.
func (s *entryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	userID, role, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return workhours.ErrUnauthorized
	}

	if err := s.requireEditable(ctx, role, userID, timeutil.DateKey(entry.Date)); err != nil {
		return err
	}

	return s.entryRepo.Delete(ctx, id)
}

// ListMyEntries implements workhours.Service.
func (s *entryServiceImpl) ListMyEntries(ctx context.Context, filter workhours.ListEntriesFilter) ([]workhours.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	from, _ := timeutil.ParseDate(filter.From)
	to, _ := timeutil.ParseDate(filter.To)

	entries, err := s.entryRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	responses := make([]workhours.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, workhours.NewEntryResponse(e))
	}
	return responses, nil
}

// GetMyDefaults implements workhours.Service.
func (s *entryServiceImpl) GetMyDefaults(ctx context.Context) ([]workhours.DefaultEntryResponse, error) {
	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := s.defaultRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list default entries: %w", err)
	}
	return defaultResponses(templates), nil
}

// UpdateMyDefaults implements workhours.Service. The whole template set is
// replaced atomically after the same no-overlap check entries get.
func (s *entryServiceImpl) UpdateMyDefaults(ctx context.Context, req workhours.UpdateDefaultsRequest) ([]workhours.DefaultEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]workhours.DefaultEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		templates = append(templates, workhours.DefaultEntry{
			UserID:    userID,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	if err := workhours.ValidateTemplates(templates); err != nil {
		return nil, err
	}

	replaced, err := s.defaultRepo.Replace(ctx, userID, templates)
	if err != nil {
		return nil, fmt.Errorf("failed to replace default entries: %w", err)
	}
	return defaultResponses(replaced), nil
}

// Prefill implements workhours.Service.
func (s *entryServiceImpl) Prefill(ctx context.Context, req workhours.PrefillRequest) ([]workhours.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, role, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configResolver.ResolveForUser(ctx, role, userID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, workhours.ErrPrefillNotAllowed
	}

	mode := workhours.PrefillMode(req.Mode)
	if (mode == workhours.PrefillModeDay && !cfg.CanPrefillDay) ||
		(mode == workhours.PrefillModeWeek && !cfg.CanPrefillWeek) {
		return nil, workhours.ErrPrefillNotAllowed
	}

	anchor, _ := timeutil.ParseDate(req.Date)
	from, to := prefillRange(mode, anchor)

	personal, err := s.defaultRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list default entries: %w", err)
	}

	timeOffDates, err := s.timeOffDates(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	holidayDates, err := s.holidayDates(ctx, cfg, from, to)
	if err != nil {
		return nil, err
	}

	candidates := PrefillCandidates(
		mode,
		anchor,
		cfg,
		personal,
		workconfig.EditableDates(cfg, s.now()),
		timeOffDates,
		holidayDates,
	)
	if len(candidates) == 0 {
		return []workhours.EntryResponse{}, nil
	}

	var created []workhours.Entry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		byDate := make(map[string][]workhours.CreateEntryRequest)
		for _, c := range candidates {
			byDate[c.Date] = append(byDate[c.Date], c)
		}
		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		for _, dateKey := range dates {
			date, _ := timeutil.ParseDate(dateKey)
			existing, err := s.entryRepo.ListByUserAndDate(txCtx, userID, date)
			if err != nil {
				return fmt.Errorf("failed to list day entries: %w", err)
			}

			batch := existing
			for _, c := range byDate[dateKey] {
				batch = append(batch, workhours.Entry{
					UserID:    userID,
					Date:      date,
					StartTime: c.StartTime,
					EndTime:   c.EndTime,
				})
			}
			if err := workhours.ValidateDayEntries(batch); err != nil {
				return err
			}

			for _, c := range byDate[dateKey] {
				entry, err := s.entryRepo.Create(txCtx, workhours.Entry{
					UserID:    userID,
					Date:      date,
					StartTime: c.StartTime,
					EndTime:   c.EndTime,
				})
				if err != nil {
					return err
				}
				created = append(created, entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]workhours.EntryResponse, 0, len(created))
	for _, e := range created {
		responses = append(responses, workhours.NewEntryResponse(e))
	}
	return responses, nil
}

func (s *entryServiceImpl) requireEditable(ctx context.Context, role, userID, dateKey string) error {
	cfg, err := s.configResolver.ResolveForUser(ctx, role, userID)
	if err != nil {
		return err
	}
	editable := workconfig.EditableDates(cfg, s.now())
	if _, ok := editable[dateKey]; !ok {
		return workhours.ErrDateNotEditable
	}
	return nil
}

func (s *entryServiceImpl) timeOffDates(ctx context.Context, userID string, from, to time.Time) (map[string]struct{}, error) {
	requests, err := s.timeOffRepo.ListApprovedInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off: %w", err)
	}
	dates := make(map[string]struct{})
	for _, r := range requests {
		for d := range r.UnitsPerDay {
			dates[d] = struct{}{}
		}
	}
	return dates, nil
}

func (s *entryServiceImpl) holidayDates(ctx context.Context, cfg *workconfig.MergedConfig, from, to time.Time) (map[string]struct{}, error) {
	dates := make(map[string]struct{})
	if cfg.PublicHolidayCalendarID == nil {
		return dates, nil
	}
	holidays, err := s.holidayRepo.ListByCalendarAndRange(ctx, *cfg.PublicHolidayCalendarID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		dates[timeutil.DateKey(h.Date)] = struct{}{}
	}
	return dates, nil
}

func prefillRange(mode workhours.PrefillMode, anchor time.Time) (time.Time, time.Time) {
	if mode == workhours.PrefillModeWeek {
		monday := timeutil.StartOfISOWeek(anchor)
		return monday, monday.AddDate(0, 0, 6)
	}
	day := timeutil.Midnight(anchor)
	return day, day
}

func defaultResponses(templates []workhours.DefaultEntry) []workhours.DefaultEntryResponse {
	responses := make([]workhours.DefaultEntryResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, workhours.DefaultEntryResponse{
			ID:        t.ID,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
		})
	}
	return responses
}
