package timeoff

import (
	"context"
	"fmt"

	"github.com/tracklight/workhours-backend-go/internal/domain/timeoff"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
)

type timeOffServiceImpl struct {
	requestRepo timeoff.Repository
}

func NewTimeOffService(requestRepo timeoff.Repository) timeoff.Service {
	return &timeOffServiceImpl{requestRepo: requestRepo}
}

// Submit implements timeoff.Service.
func (s *timeOffServiceImpl) Submit(ctx context.Context, req timeoff.CreateRequest) (timeoff.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.RequestResponse{}, err
	}

	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return timeoff.RequestResponse{}, err
	}

	request := timeoff.Request{
		UserID:      userID,
		Unit:        timeoff.Unit(req.Unit),
		UnitsPerDay: req.UnitsPerDay,
		Reason:      req.Reason,
		Status:      timeoff.StatusWaitingApproval,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return timeoff.RequestResponse{}, fmt.Errorf("failed to create time-off request: %w", err)
	}
	return timeoff.NewRequestResponse(created), nil
}

// Approve implements timeoff.Service. Only approved requests participate in
// aggregation, so this transition is what makes a request count.
func (s *timeOffServiceImpl) Approve(ctx context.Context, id string) (timeoff.RequestResponse, error) {
	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return timeoff.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return timeoff.RequestResponse{}, err
	}
	if request.Status != timeoff.StatusWaitingApproval {
		return timeoff.RequestResponse{}, timeoff.ErrRequestAlreadyProcessed
	}

	request.Status = timeoff.StatusApproved
	request.ApprovedBy = &userID
	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return timeoff.RequestResponse{}, fmt.Errorf("failed to approve time-off request: %w", err)
	}
	return timeoff.NewRequestResponse(request), nil
}

// Reject implements timeoff.Service.
func (s *timeOffServiceImpl) Reject(ctx context.Context, req timeoff.RejectRequest) (timeoff.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return timeoff.RequestResponse{}, err
	}

	if _, _, err := jwt.IdentityFromContext(ctx); err != nil {
		return timeoff.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeoff.RequestResponse{}, err
	}
	if request.Status != timeoff.StatusWaitingApproval {
		return timeoff.RequestResponse{}, timeoff.ErrRequestAlreadyProcessed
	}

	request.Status = timeoff.StatusRejected
	request.RejectionReason = &req.Reason
	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return timeoff.RequestResponse{}, fmt.Errorf("failed to reject time-off request: %w", err)
	}
	return timeoff.NewRequestResponse(request), nil
}

// ListMy implements timeoff.Service.
func (s *timeOffServiceImpl) ListMy(ctx context.Context) ([]timeoff.RequestResponse, error) {
	userID, _, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time-off requests: %w", err)
	}

	responses := make([]timeoff.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, timeoff.NewRequestResponse(r))
	}
	return responses, nil
}
