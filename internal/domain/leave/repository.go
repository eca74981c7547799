package leave

import (
	"context"
)

// RequestRepository defines the leave request repository interface
type RequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployeeYear returns every request of the employee whose FromDate
	// falls in the given calendar year, regardless of status.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)

	// ListByEmployee returns the employee's requests ordered by creation time
	// descending, with the total count before pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]LeaveRequest, int64, error)

	// ListPendingByEmployee returns up to limit PENDING requests, newest first.
	ListPendingByEmployee(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error)
}
