package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

// Target sets are stored as text[] columns. pgx maps them to []string
// directly, so empty targeting round-trips as empty arrays.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (
			id, title, message, severity,
			target_employee_ids, target_departments, target_branch_ids,
			expires_at, created_by, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10
		)
	`

	_, err := r.db.Exec(ctx, query,
		n.ID, n.Title, n.Message, n.Severity,
		n.TargetEmployeeIDs, n.TargetDepartments, n.TargetBranchIDs,
		n.ExpiresAt, n.CreatedBy, n.CreatedAt,
	)
	return err
}

func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	query := `
		SELECT id, title, message, severity,
			   target_employee_ids, target_departments, target_branch_ids,
			   expires_at, created_by, created_at
		FROM notifications
		WHERE id = $1
	`

	var n notification.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.Title,
		&n.Message,
		&n.Severity,
		&n.TargetEmployeeIDs,
		&n.TargetDepartments,
		&n.TargetBranchIDs,
		&n.ExpiresAt,
		&n.CreatedBy,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *notificationRepositoryImpl) ListAll(ctx context.Context) ([]notification.Notification, error) {
	query := `
		SELECT id, title, message, severity,
			   target_employee_ids, target_departments, target_branch_ids,
			   expires_at, created_by, created_at
		FROM notifications
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Message,
			&n.Severity,
			&n.TargetEmployeeIDs,
			&n.TargetDepartments,
			&n.TargetBranchIDs,
			&n.ExpiresAt,
			&n.CreatedBy,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
