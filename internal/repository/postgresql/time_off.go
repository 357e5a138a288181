package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
)

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.Repository {
	return &timeOffRepositoryImpl{db: db}
}

// Create implements timeoff.Repository. first_date and last_date are
// denormalized from the units_per_day keys so range queries stay indexable.
func (r *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.Request) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	dates := req.Dates()
	if len(dates) == 0 {
		return timeoff.Request{}, fmt.Errorf("time-off request covers no dates")
	}

	query := `
		INSERT INTO time_off_requests
			(id, user_id, unit, units_per_day, first_date, last_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, user_id, unit, units_per_day, reason, status, approved_by, approved_at, rejection_reason, created_at, updated_at
	`

	row := q.QueryRow(ctx, query,
		uuid.New().String(), req.UserID, req.Unit, req.UnitsPerDay,
		dates[0], dates[len(dates)-1], req.Reason, req.Status,
	)
	created, err := scanTimeOffRow(row)
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to create time-off request: %w", err)
	}
	return created, nil
}

// GetByID implements timeoff.Repository.
func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, unit, units_per_day, reason, status, approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM time_off_requests
		WHERE id = $1
	`

	request, err := scanTimeOffRow(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return timeoff.Request{}, timeoff.ErrRequestNotFound
	}
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to get time-off request: %w", err)
	}
	return request, nil
}

// ListByUser implements timeoff.Repository.
func (r *timeOffRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, unit, units_per_day, reason, status, approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM time_off_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off requests: %w", err)
	}
	defer rows.Close()

	return scanTimeOffRows(rows)
}

// ListApprovedInRange implements timeoff.Repository.
func (r *timeOffRepositoryImpl) ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, unit, units_per_day, reason, status, approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM time_off_requests
		WHERE user_id = $1 AND status = $2 AND first_date <= $3 AND last_date >= $4
		ORDER BY first_date
	`

	rows, err := q.Query(ctx, query, userID, timeoff.StatusApproved, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved time-off: %w", err)
	}
	defer rows.Close()

	return scanTimeOffRows(rows)
}

// UpdateStatus implements timeoff.Repository.
func (r *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, req timeoff.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_off_requests
		SET status = $1, approved_by = $2, approved_at = CASE WHEN $1 = 'approved' THEN NOW() ELSE approved_at END,
			rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, req.Status, req.ApprovedBy, req.RejectionReason, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update time-off status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeoff.ErrRequestNotFound
	}
	return nil
}

func scanTimeOffRow(row pgx.Row) (timeoff.Request, error) {
	var req timeoff.Request
	err := row.Scan(
		&req.ID, &req.UserID, &req.Unit, &req.UnitsPerDay, &req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func scanTimeOffRows(rows pgx.Rows) ([]timeoff.Request, error) {
	var requests []timeoff.Request
	for rows.Next() {
		req, err := scanTimeOffRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time-off request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
