package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)

	// ListAll returns every notification ordered by creation time descending.
	// Audience filtering happens at read time in the service; pagination is
	// applied only after filtering, never here.
	ListAll(ctx context.Context) ([]Notification, error)
}

// ReadReceiptRepository defines the read receipt repository interface
type ReadReceiptRepository interface {
	Get(ctx context.Context, employeeID, notificationID string) (ReadReceipt, error)

	// Create inserts the receipt if the pair is new and returns the stored row
	// either way, so concurrent callers converge on one ReadAt.
	Create(ctx context.Context, receipt ReadReceipt) (ReadReceipt, error)
}

// Service defines the notification service interface
type Service interface {
	Create(ctx context.Context, createdBy string, req CreateNotificationRequest) (*Notification, error)
	List(ctx context.Context, employeeID string, page, limit int) (*NotificationListResponse, error)
	MarkAsRead(ctx context.Context, employeeID, notificationID string) (ReadReceipt, error)
}
