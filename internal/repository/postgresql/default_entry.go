package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
)

type defaultEntryRepositoryImpl struct {
	db *database.DB
}

func NewDefaultEntryRepository(db *database.DB) workhours.DefaultEntryRepository {
	return &defaultEntryRepositoryImpl{db: db}
}

// ListByUser implements workhours.DefaultEntryRepository.
func (r *defaultEntryRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]workhours.DefaultEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_time, end_time, created_at, updated_at
		FROM default_working_hours_entries
		WHERE user_id = $1
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list default entries: %w", err)
	}
	defer rows.Close()

	return scanDefaultEntries(rows)
}

// Replace implements workhours.DefaultEntryRepository. The whole template
// set is swapped in one transaction.
func (r *defaultEntryRepositoryImpl) Replace(ctx context.Context, userID string, templates []workhours.DefaultEntry) ([]workhours.DefaultEntry, error) {
	var replaced []workhours.DefaultEntry
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM default_working_hours_entries WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("failed to clear default entries: %w", err)
		}

		query := `
			INSERT INTO default_working_hours_entries (id, user_id, start_time, end_time, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING id, user_id, start_time, end_time, created_at, updated_at
		`
		for _, t := range templates {
			var created workhours.DefaultEntry
			err := tx.QueryRow(ctx, query, uuid.New().String(), userID, t.StartTime, t.EndTime).Scan(
				&created.ID, &created.UserID, &created.StartTime, &created.EndTime,
				&created.CreatedAt, &created.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert default entry: %w", err)
			}
			replaced = append(replaced, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return replaced, nil
}

func scanDefaultEntries(rows pgx.Rows) ([]workhours.DefaultEntry, error) {
	var templates []workhours.DefaultEntry
	for rows.Next() {
		var t workhours.DefaultEntry
		if err := rows.Scan(&t.ID, &t.UserID, &t.StartTime, &t.EndTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan default entry: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
