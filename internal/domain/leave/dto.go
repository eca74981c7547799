package leave

import (
	"time"

	"github.com/primatek-mfg/erp-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid date in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed date range. Validate must have passed.
func (r *CreateLeaveRequestRequest) Dates() (from, to time.Time) {
	from, _ = time.Parse("2006-01-02", r.FromDate)
	to, _ = time.Parse("2006-01-02", r.ToDate)
	return from, to
}

type LeaveRequestResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Days       int    `json:"days"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func ToLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  string(r.LeaveType),
		FromDate:   r.FromDate.Format("2006-01-02"),
		ToDate:     r.ToDate.Format("2006-01-02"),
		Days:       r.Days(),
		Reason:     r.Reason,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// BalanceResponse clamps a negative remaining balance to zero for display. The
// validator always compares against the raw Balance value, never this one.
type BalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Allotted  int    `json:"allotted"`
	Consumed  int    `json:"consumed"`
	Balance   int    `json:"balance"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	remaining := b.Remaining
	if remaining < 0 {
		remaining = 0
	}
	return BalanceResponse{
		LeaveType: string(b.LeaveType),
		Allotted:  b.Allotted,
		Consumed:  b.Consumed,
		Balance:   remaining,
	}
}

// ListFilter narrows a leave request listing.
type ListFilter struct {
	Status *LeaveRequestStatus
	Page   int
	Limit  int
}
