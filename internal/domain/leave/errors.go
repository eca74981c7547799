package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
)

// InsufficientBalanceError carries the available and requested day counts so the
// caller can render a precise message. It matches ErrInsufficientBalance under
// errors.Is.
type InsufficientBalanceError struct {
	LeaveType LeaveType
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance. Available: %d days, Requested: %d days",
		e.LeaveType, e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
