package notification

import (
	"time"

	"github.com/primatek-mfg/erp-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	Title             string   `json:"title"`
	Message           string   `json:"message"`
	Severity          string   `json:"severity"`
	TargetEmployeeIDs []string `json:"target_employee_ids,omitempty"`
	TargetDepartments []string `json:"target_departments,omitempty"`
	TargetBranchIDs   []string `json:"target_branch_ids,omitempty"`
	ExpiresAt         *string  `json:"expires_at,omitempty"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if r.Severity != "" {
		valid := false
		for _, s := range AllSeverities() {
			if string(s) == r.Severity {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "severity",
				Message: "severity must be one of INFO, WARNING, SUCCESS, ERROR",
			})
		}
	}

	if r.ExpiresAt != nil {
		if _, ok := validator.IsValidDateTime(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type NotificationResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Severity  string     `json:"severity"`
	IsGlobal  bool       `json:"is_global"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Severity:  string(n.Severity),
		IsGlobal:  BuildAudience(n).IsGlobal(),
		ExpiresAt: n.ExpiresAt,
		CreatedAt: n.CreatedAt,
	}
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

type ReadReceiptResponse struct {
	NotificationID string    `json:"notification_id"`
	ReadAt         time.Time `json:"read_at"`
}
