package attendance

import (
	"context"
	"time"
)

// Repository defines the attendance repository interface
type Repository interface {
	// ListByEmployeeBetween returns the employee's records with
	// start <= date < end, ordered by date ascending.
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
}
