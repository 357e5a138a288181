package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tracklight/workhours-backend-go/internal/domain/holiday"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.Repository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (id, date, name, calendar_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, date, name, calendar_id, created_at
	`

	var created holiday.PublicHoliday
	err := q.QueryRow(ctx, query, uuid.New().String(), h.Date, h.Name, h.CalendarID).Scan(
		&created.ID, &created.Date, &created.Name, &created.CalendarID, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// unique violation on (date, calendar_id)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.PublicHoliday{}, holiday.ErrHolidayExists
		}
		return holiday.PublicHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// ListByCalendarAndRange implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByCalendarAndRange(ctx context.Context, calendarID string, from, to time.Time) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, calendar_id, created_at
		FROM public_holidays
		WHERE calendar_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, calendarID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// ListByCalendar implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByCalendar(ctx context.Context, calendarID string) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, calendar_id, created_at
		FROM public_holidays
		WHERE calendar_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Delete implements holiday.Repository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.PublicHoliday, error) {
	var holidays []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CalendarID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
