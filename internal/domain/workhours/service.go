package workhours

import (
	"context"
)

// Service defines business logic for working hours entries.
type Service interface {
	// CreateEntry validates and persists a new entry for the authenticated
	// user. The whole write aborts on a format, interval, or overlap error.
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// UpdateEntry changes an entry's times after re-validating against the
	// other entries of that day
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	// DeleteEntry removes an entry; only allowed inside the editable window
	DeleteEntry(ctx context.Context, id string) error

	// ListMyEntries retrieves the authenticated user's entries in a range
	ListMyEntries(ctx context.Context, filter ListEntriesFilter) ([]EntryResponse, error)

	// GetMyDefaults retrieves the user's personal default templates
	GetMyDefaults(ctx context.Context) ([]DefaultEntryResponse, error)

	// UpdateMyDefaults replaces the user's template set
	UpdateMyDefaults(ctx context.Context, req UpdateDefaultsRequest) ([]DefaultEntryResponse, error)

	// Prefill inserts template-based entries for a day or an ISO week,
	// skipping non-editable dates, time-off days, and public holidays
	Prefill(ctx context.Context, req PrefillRequest) ([]EntryResponse, error)
}
