package employee

import (
	"time"
)

type Employee struct {
	ID         string
	FullName   string
	Department string
	BranchID   string
	ManagerID  *string
	HireDate   time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsActive reports whether the employee is still employed and not soft-deleted.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive && e.DeletedAt == nil
}
