package leave

import (
	"context"
	"time"

	"github.com/nexoptima/ems-backend-go/internal/domain/leave"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/pkg/dateutil"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
}

func NewLeaveService(db *database.DB, leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
	}
}

// Apply implements leave.LeaveService. Overlapping requests are allowed:
// there is deliberately no overlap check here.
func (s *LeaveServiceImpl) Apply(ctx context.Context, caller user.Caller, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	// Dates were validated by req.Validate
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		UserID:    caller.ID,
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: dateutil.InclusiveDays(startDate, endDate),
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, caller user.Caller) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRequestRepository.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	return leave.ToResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, caller user.Caller) ([]leave.LeaveResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	return leave.ToResponses(requests), nil
}

// SetStatus implements leave.LeaveService. An already-decided request can be
// re-decided; the later call overwrites the earlier decision.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, caller user.Caller, leaveID string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := user.Authorize(caller, user.RoleAdmin, user.RoleHR); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.LeaveRequestRepository.GetByID(ctx, leaveID); err != nil {
		return leave.LeaveResponse{}, err
	}

	status := leave.Status(req.Status)
	var rejectionReason *string
	if status == leave.StatusRejected {
		rejectionReason = req.RejectionReason
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, leaveID, status, caller.ID, time.Now().UTC(), rejectionReason)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}
