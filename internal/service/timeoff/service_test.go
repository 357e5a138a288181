package timeoff

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
)

type fakeRequestRepo struct {
	requests map[string]timeoff.Request
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]timeoff.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req timeoff.Request) (timeoff.Request, error) {
	f.nextID++
	req.ID = "req-" + strconv.Itoa(f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (timeoff.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return timeoff.Request{}, timeoff.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) ListByUser(ctx context.Context, userID string) ([]timeoff.Request, error) {
	var out []timeoff.Request
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListApprovedInRange(ctx context.Context, userID string, from, to time.Time) ([]timeoff.Request, error) {
	var out []timeoff.Request
	for _, r := range f.requests {
		if r.UserID == userID && r.Status == timeoff.StatusApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, req timeoff.Request) error {
	if _, ok := f.requests[req.ID]; !ok {
		return timeoff.ErrRequestNotFound
	}
	f.requests[req.ID] = req
	return nil
}

func authedContext(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestSubmit_StartsWaitingApproval(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewTimeOffService(repo)
	ctx := authedContext(t, "u1", "employee")

	resp, err := svc.Submit(ctx, timeoff.CreateRequest{
		Unit:        string(timeoff.UnitDay),
		UnitsPerDay: map[string]float64{"2024-07-10": 0.5, "2024-07-11": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, string(timeoff.StatusWaitingApproval), resp.Status)
	assert.Equal(t, []string{"2024-07-10", "2024-07-11"}, resp.Dates)
}

func TestSubmit_RejectsInvalidUnit(t *testing.T) {
	svc := NewTimeOffService(newFakeRequestRepo())
	ctx := authedContext(t, "u1", "employee")

	_, err := svc.Submit(ctx, timeoff.CreateRequest{
		Unit:        "week",
		UnitsPerDay: map[string]float64{"2024-07-10": 1},
	})
	assert.Error(t, err)
}

func TestApprove_TransitionsAndRecordsApprover(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewTimeOffService(repo)

	submitted, err := svc.Submit(authedContext(t, "u1", "employee"), timeoff.CreateRequest{
		Unit:        string(timeoff.UnitHour),
		UnitsPerDay: map[string]float64{"2024-07-10": 4},
	})
	require.NoError(t, err)

	approved, err := svc.Approve(authedContext(t, "boss", "admin"), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timeoff.StatusApproved), approved.Status)

	stored := repo.requests[submitted.ID]
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, "boss", *stored.ApprovedBy)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewTimeOffService(repo)
	adminCtx := authedContext(t, "boss", "admin")

	submitted, err := svc.Submit(authedContext(t, "u1", "employee"), timeoff.CreateRequest{
		Unit:        string(timeoff.UnitDay),
		UnitsPerDay: map[string]float64{"2024-07-10": 1},
	})
	require.NoError(t, err)

	_, err = svc.Approve(adminCtx, submitted.ID)
	require.NoError(t, err)

	_, err = svc.Approve(adminCtx, submitted.ID)
	assert.ErrorIs(t, err, timeoff.ErrRequestAlreadyProcessed)

	_, err = svc.Reject(adminCtx, timeoff.RejectRequest{ID: submitted.ID, Reason: "late"})
	assert.ErrorIs(t, err, timeoff.ErrRequestAlreadyProcessed)
}

func TestReject_RequiresReason(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewTimeOffService(repo)
	adminCtx := authedContext(t, "boss", "admin")

	submitted, err := svc.Submit(authedContext(t, "u1", "employee"), timeoff.CreateRequest{
		Unit:        string(timeoff.UnitDay),
		UnitsPerDay: map[string]float64{"2024-07-10": 1},
	})
	require.NoError(t, err)

	_, err = svc.Reject(adminCtx, timeoff.RejectRequest{ID: submitted.ID})
	assert.Error(t, err)

	rejected, err := svc.Reject(adminCtx, timeoff.RejectRequest{ID: submitted.ID, Reason: "coverage gap"})
	require.NoError(t, err)
	assert.Equal(t, string(timeoff.StatusRejected), rejected.Status)

	stored := repo.requests[submitted.ID]
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "coverage gap", *stored.RejectionReason)
}

func TestListMy_OnlyOwnRequests(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewTimeOffService(repo)

	_, err := svc.Submit(authedContext(t, "u1", "employee"), timeoff.CreateRequest{
		Unit:        string(timeoff.UnitDay),
		UnitsPerDay: map[string]float64{"2024-07-10": 1},
	})
	require.NoError(t, err)
	_, err = svc.Submit(authedContext(t, "u2", "employee"), timeoff.CreateRequest{
		Unit:        string(timeoff.UnitDay),
		UnitsPerDay: map[string]float64{"2024-07-11": 1},
	})
	require.NoError(t, err)

	mine, err := svc.ListMy(authedContext(t, "u1", "employee"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)
}
