package workhours

import (
	"context"
	"time"
)

// EntryRepository defines data access methods for working hours entries.
type EntryRepository interface {
	// Create creates a new entry
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id string) (Entry, error)

	// ListByUserAndDate retrieves all entries for one user on one calendar day.
	// Used by the merge-and-validate step before any write.
	ListByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Entry, error)

	// ListByUserAndRange retrieves entries for a user within [from, to] inclusive
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Entry, error)

	// Update updates an entry's start and end times and returns the row as
	// persisted, including the database-set updated_at
	Update(ctx context.Context, entry Entry) (Entry, error)

	// Delete removes an entry
	Delete(ctx context.Context, id string) error
}

// DefaultEntryRepository defines data access for personal default templates.
type DefaultEntryRepository interface {
	ListByUser(ctx context.Context, userID string) ([]DefaultEntry, error)

	// Replace swaps a user's whole template set atomically
	Replace(ctx context.Context, userID string, templates []DefaultEntry) ([]DefaultEntry, error)
}
