package payroll

import (
	"context"
)

// Repository defines the payroll repository interface
type Repository interface {
	GetRecordByEmployeePeriod(ctx context.Context, employeeID, period string) (Record, error)
	GetKPIByEmployeePeriod(ctx context.Context, employeeID, period string) (KPIMetrics, error)
}
