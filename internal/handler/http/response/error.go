package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The typed balance error carries the numbers the client needs to render
	// a useful message.
	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, balanceErr.Error(), map[string]string{
			"leave_type": string(balanceErr.LeaveType),
			"available":  strconv.Itoa(balanceErr.Available),
			"requested":  strconv.Itoa(balanceErr.Requested),
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Unknown leave type", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidSeverity):
		BadRequest(w, "Unknown severity", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
