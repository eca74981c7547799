package performance

import (
	"context"
)

// Repository defines the performance review repository interface
type Repository interface {
	// GetActiveByEmployee returns the most recent DRAFT or SUBMITTED review.
	GetActiveByEmployee(ctx context.Context, employeeID string) (Review, error)
}
