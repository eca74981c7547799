package notification

import (
	"time"
)

// Severity represents the display severity of a notification
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeveritySuccess Severity = "SUCCESS"
	SeverityError   Severity = "ERROR"
)

// AllSeverities returns all recognized severities
func AllSeverities() []Severity {
	return []Severity{SeverityInfo, SeverityWarning, SeveritySuccess, SeverityError}
}

// Notification represents a broadcast or targeted announcement. The visible
// set is computed at read time from the target sets; it is never materialized
// per employee.
type Notification struct {
	ID       string
	Title    string
	Message  string
	Severity Severity

	// Target sets. All three empty means the notification is global.
	TargetEmployeeIDs []string
	TargetDepartments []string
	TargetBranchIDs   []string

	ExpiresAt *time.Time
	CreatedBy string
	CreatedAt time.Time
}

// Expired reports whether the notification has an expiry at or before now.
func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}

// VisibleTo applies the full visibility predicate: expiry is a hard filter
// checked before any targeting. This predicate backs both the paginated
// listing and the total count, so the two can never diverge.
func (n Notification) VisibleTo(r Recipient, now time.Time) bool {
	if n.Expired(now) {
		return false
	}
	return BuildAudience(n).Includes(r)
}

// ReadReceipt records that an employee has read a notification. At most one
// exists per (employee, notification) pair.
type ReadReceipt struct {
	EmployeeID     string
	NotificationID string
	ReadAt         time.Time
}
