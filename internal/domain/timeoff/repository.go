package timeoff

import (
	"context"
	"time"
)

// Repository defines data access for time-off requests.
type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// ListByUser retrieves a user's requests, newest first
	ListByUser(ctx context.Context, userID string) ([]Request, error)

	// ListApprovedInRange retrieves approved requests of one user whose
	// covered dates intersect [from, to]. Aggregation consumes this
	// pre-filtered view and never filters by status itself.
	ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]Request, error)

	// UpdateStatus transitions a request's status
	UpdateStatus(ctx context.Context, req Request) error
}

// Service defines the time-off request lifecycle.
type Service interface {
	Submit(ctx context.Context, req CreateRequest) (RequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, req RejectRequest) (RequestResponse, error)
	ListMy(ctx context.Context) ([]RequestResponse, error)
}
