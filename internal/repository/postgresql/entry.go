package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) workhours.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

// Create implements workhours.EntryRepository.
func (r *entryRepositoryImpl) Create(ctx context.Context, entry workhours.Entry) (workhours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_hours_entries (id, user_id, date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, user_id, date, start_time, end_time, created_at, updated_at
	`

	var created workhours.Entry
	err := q.QueryRow(ctx, query,
		uuid.New().String(), entry.UserID, entry.Date, entry.StartTime, entry.EndTime,
	).Scan(
		&created.ID, &created.UserID, &created.Date,
		&created.StartTime, &created.EndTime, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return workhours.Entry{}, fmt.Errorf("failed to create entry: %w", err)
	}
	return created, nil
}

// GetByID implements workhours.EntryRepository.
func (r *entryRepositoryImpl) GetByID(ctx context.Context, id string) (workhours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM working_hours_entries
		WHERE id = $1
	`

	var e workhours.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.Date, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return workhours.Entry{}, workhours.ErrEntryNotFound
	}
	if err != nil {
		return workhours.Entry{}, fmt.Errorf("failed to get entry: %w", err)
	}
	return e, nil
}

// ListByUserAndDate implements workhours.EntryRepository. Inside a
// transaction the FOR UPDATE lock serializes concurrent writers touching
// the same (user, date), which the overlap invariant depends on.
func (r *entryRepositoryImpl) ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]workhours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM working_hours_entries
		WHERE user_id = $1 AND date = $2
		ORDER BY start_time
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list day entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByUserAndRange implements workhours.EntryRepository.
func (r *entryRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]workhours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM working_hours_entries
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Update implements workhours.EntryRepository.
func (r *entryRepositoryImpl) Update(ctx context.Context, entry workhours.Entry) (workhours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE working_hours_entries
		SET start_time = $1, end_time = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, date, start_time, end_time, created_at, updated_at
	`

	var updated workhours.Entry
	err := q.QueryRow(ctx, query, entry.StartTime, entry.EndTime, entry.ID).Scan(
		&updated.ID, &updated.UserID, &updated.Date,
		&updated.StartTime, &updated.EndTime, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return workhours.Entry{}, workhours.ErrEntryNotFound
	}
	if err != nil {
		return workhours.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	return updated, nil
}

// Delete implements workhours.EntryRepository.
func (r *entryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM working_hours_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workhours.ErrEntryNotFound
	}
	return nil
}

func scanEntries(rows pgx.Rows) ([]workhours.Entry, error) {
	var entries []workhours.Entry
	for rows.Next() {
		var e workhours.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
