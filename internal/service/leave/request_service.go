package leave

import (
	"context"
	"fmt"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
)

type requestService struct {
	requestRepo    leave.RequestRepository
	balanceService leave.BalanceService
}

// NewRequestService creates the leave submission service.
func NewRequestService(requestRepo leave.RequestRepository, balanceService leave.BalanceService) leave.RequestService {
	return &requestService{
		requestRepo:    requestRepo,
		balanceService: balanceService,
	}
}

// Submit validates a candidate leave request against the employee's remaining
// balance and persists it with status PENDING.
//
// The balance check and the insert are not atomic: two concurrent submissions
// for the same employee and type can both validate against a stale balance and
// together overdraw it. Accepted behavior; see DESIGN.md.
func (s *requestService) Submit(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	leaveType, err := leave.ParseLeaveType(req.LeaveType)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	fromDate, toDate := req.Dates()
	requestedDays := leave.DaysInclusive(fromDate, toDate)

	balance, err := s.balanceService.BalanceFor(ctx, employeeID, leaveType, fromDate.Year())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if requestedDays > balance.Remaining {
		available := balance.Remaining
		if available < 0 {
			available = 0
		}
		return leave.LeaveRequest{}, &leave.InsufficientBalanceError{
			LeaveType: leaveType,
			Available: available,
			Requested: requestedDays,
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		FromDate:   fromDate,
		ToDate:     toDate,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// ListMine returns the employee's own requests, newest first.
func (s *requestService) ListMine(ctx context.Context, employeeID string, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	return s.requestRepo.ListByEmployee(ctx, employeeID, filter)
}
