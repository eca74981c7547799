package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrReadReceiptNotFound  = errors.New("read receipt not found")
	ErrInvalidSeverity      = errors.New("invalid notification severity")
)
