package employee

import (
	"context"
)

// Repository defines the employee repository interface
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
