package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
)

type readReceiptRepositoryImpl struct {
	db *database.DB
}

func NewReadReceiptRepository(db *database.DB) notification.ReadReceiptRepository {
	return &readReceiptRepositoryImpl{db: db}
}

func (r *readReceiptRepositoryImpl) Get(ctx context.Context, employeeID, notificationID string) (notification.ReadReceipt, error) {
	query := `
		SELECT employee_id, notification_id, read_at
		FROM notification_reads
		WHERE employee_id = $1 AND notification_id = $2
	`

	var receipt notification.ReadReceipt
	err := r.db.QueryRow(ctx, query, employeeID, notificationID).Scan(
		&receipt.EmployeeID,
		&receipt.NotificationID,
		&receipt.ReadAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.ReadReceipt{}, notification.ErrReadReceiptNotFound
		}
		return notification.ReadReceipt{}, err
	}

	return receipt, nil
}

// Create implements notification.ReadReceiptRepository. The primary key on
// (employee_id, notification_id) plus ON CONFLICT DO NOTHING makes concurrent
// first reads converge: the insert that loses the race is a no-op and the
// stored row is read back, so every caller sees the same read_at.
func (r *readReceiptRepositoryImpl) Create(ctx context.Context, receipt notification.ReadReceipt) (notification.ReadReceipt, error) {
	query := `
		INSERT INTO notification_reads (employee_id, notification_id, read_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, notification_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, receipt.EmployeeID, receipt.NotificationID, receipt.ReadAt)
	if err != nil {
		return notification.ReadReceipt{}, err
	}

	return r.Get(ctx, receipt.EmployeeID, receipt.NotificationID)
}
