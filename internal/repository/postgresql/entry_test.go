package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/workhours-backend-go/internal/domain/workhours"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
	"github.com/tracklight/workhours-backend-go/internal/pkg/timeutil"
)

var repoTestDB *database.DB

func repoTestInit(t *testing.T) *database.DB {
	t.Helper()
	if repoTestDB != nil {
		return repoTestDB
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Skipf("test database unreachable: %v", err)
	}
	repoTestDB = db
	return db
}

func truncateEntryTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	_, err := db.Exec(ctx, "TRUNCATE TABLE working_hours_entries CASCADE")
	require.NoError(t, err)
}

func TestEntryRepository_UpdateReturnsPersistedRow(t *testing.T) {
	db := repoTestInit(t)
	ctx := context.Background()
	truncateEntryTables(t, ctx, db)

	repo := NewEntryRepository(db)
	date, err := timeutil.ParseDate("2024-07-10")
	require.NoError(t, err)

	created, err := repo.Create(ctx, workhours.Entry{
		UserID:    "u1",
		Date:      date,
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	created.StartTime = "10:00"
	created.EndTime = "13:00"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "10:00", updated.StartTime)
	assert.Equal(t, "13:00", updated.EndTime)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// The returned row must match what a fresh read sees, updated_at included.
	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.StartTime, fetched.StartTime)
	assert.WithinDuration(t, updated.UpdatedAt, fetched.UpdatedAt, time.Microsecond)
}

func TestEntryRepository_UpdateMissingEntry(t *testing.T) {
	db := repoTestInit(t)
	ctx := context.Background()
	truncateEntryTables(t, ctx, db)

	repo := NewEntryRepository(db)
	date, err := timeutil.ParseDate("2024-07-10")
	require.NoError(t, err)

	_, err = repo.Update(ctx, workhours.Entry{
		ID:        uuid.New().String(),
		UserID:    "u1",
		Date:      date,
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, workhours.ErrEntryNotFound)
}
