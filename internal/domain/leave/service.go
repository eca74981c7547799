package leave

import (
	"context"
)

// BalanceService derives per-type leave balances for an employee and year.
type BalanceService interface {
	Balances(ctx context.Context, employeeID string, year int) ([]Balance, error)
	BalanceFor(ctx context.Context, employeeID string, leaveType LeaveType, year int) (Balance, error)
}

// RequestService validates and submits leave requests.
type RequestService interface {
	Submit(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequest, error)
	ListMine(ctx context.Context, employeeID string, filter ListFilter) ([]LeaveRequest, int64, error)
}
