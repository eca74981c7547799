package dashboard

import (
	"context"
)

// Service assembles the employee dashboard read model.
type Service interface {
	GetDashboard(ctx context.Context, employeeID string) (*DashboardResponse, error)
}
