package leave

import (
	"time"
)

// LeaveType enumerates the leave categories recognized by the portal.
type LeaveType string

const (
	TypeCasual       LeaveType = "CASUAL"
	TypeSick         LeaveType = "SICK"
	TypeEarned       LeaveType = "EARNED"
	TypeMaternity    LeaveType = "MATERNITY"
	TypePaternity    LeaveType = "PATERNITY"
	TypeCompensatory LeaveType = "COMPENSATORY"
)

// AllLeaveTypes returns the recognized leave types in a fixed order.
func AllLeaveTypes() []LeaveType {
	return []LeaveType{
		TypeCasual,
		TypeSick,
		TypeEarned,
		TypeMaternity,
		TypePaternity,
		TypeCompensatory,
	}
}

// ParseLeaveType validates a raw string against the recognized leave types.
func ParseLeaveType(s string) (LeaveType, error) {
	for _, t := range AllLeaveTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidLeaveType
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest entity. The date range [FromDate, ToDate] is inclusive of both
// endpoints. Requests are immutable once created; approval transitions happen
// through a separate workflow.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	FromDate time.Time
	ToDate   time.Time

	Reason string
	Status LeaveRequestStatus

	CreatedAt time.Time
}

// Days returns the request's inclusive day count.
func (r LeaveRequest) Days() int {
	return DaysInclusive(r.FromDate, r.ToDate)
}

// ConsumesBalance reports whether the request counts against the employee's
// balance. Rejected requests never consume.
func (r LeaveRequest) ConsumesBalance() bool {
	return r.Status == LeaveRequestStatusPending || r.Status == LeaveRequestStatusApproved
}

// DaysInclusive returns the whole-day count of [from, to] inclusive of both
// endpoints: a one-day range (from == to) yields 1. Time-of-day components are
// discarded before counting.
func DaysInclusive(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f)/(24*time.Hour)) + 1
}

// Balance is the derived per-type leave position for an employee and year.
// Remaining may be negative when the raw balance is already overdrawn; display
// clamping belongs to the response layer, not here.
type Balance struct {
	LeaveType LeaveType
	Allotted  int
	Consumed  int
	Remaining int
}

// EntitlementTable maps each leave type to its annual allotment in days.
// Entitlement policy is owned by configuration; this package only consumes it.
type EntitlementTable map[LeaveType]int

// Allotted looks up the annual allotment for a leave type.
func (t EntitlementTable) Allotted(lt LeaveType) (int, error) {
	allotted, ok := t[lt]
	if !ok {
		return 0, ErrInvalidLeaveType
	}
	return allotted, nil
}
