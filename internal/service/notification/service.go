package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/validator"
)

type service struct {
	repo         notification.Repository
	readRepo     notification.ReadReceiptRepository
	employeeRepo employee.Repository
	now          func() time.Time
}

// NewNotificationService creates the notification service. The visible set is
// recomputed from all stored notifications on every call; nothing is cached or
// materialized per employee.
func NewNotificationService(
	repo notification.Repository,
	readRepo notification.ReadReceiptRepository,
	employeeRepo employee.Repository,
) notification.Service {
	return &service{
		repo:         repo,
		readRepo:     readRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Create stores a new notification authored by HR/Admin.
func (s *service) Create(ctx context.Context, createdBy string, req notification.CreateNotificationRequest) (*notification.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	severity := notification.SeverityInfo
	if req.Severity != "" {
		severity = notification.Severity(req.Severity)
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		// Validate already checked the format.
		t, _ := validator.IsValidDateTime(*req.ExpiresAt)
		expiresAt = &t
	}

	n := &notification.Notification{
		ID:                uuid.New().String(),
		Title:             req.Title,
		Message:           req.Message,
		Severity:          severity,
		TargetEmployeeIDs: req.TargetEmployeeIDs,
		TargetDepartments: req.TargetDepartments,
		TargetBranchIDs:   req.TargetBranchIDs,
		ExpiresAt:         expiresAt,
		CreatedBy:         createdBy,
		CreatedAt:         s.now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// List returns the employee's visible notifications, newest first. The
// visibility predicate drives both the page slice and the total count, so
// pagination metadata always matches the full filtered set.
func (s *service) List(ctx context.Context, employeeID string, page, limit int) (*notification.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	visible, err := s.visibleTo(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	total := len(visible)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	responses := make([]notification.NotificationResponse, 0, end-start)
	for _, n := range visible[start:end] {
		responses = append(responses, notification.ToNotificationResponse(n))
	}

	return &notification.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		Limit:         limit,
	}, nil
}

// visibleTo filters all stored notifications down to the employee's visible
// set, preserving the repository's newest-first order.
func (s *service) visibleTo(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	recipient := notification.Recipient{
		EmployeeID: emp.ID,
		Department: emp.Department,
		BranchID:   emp.BranchID,
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	now := s.now()
	visible := make([]notification.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(recipient, now) {
			visible = append(visible, n)
		}
	}

	return visible, nil
}

// MarkAsRead idempotently records that the employee has read the notification.
// A second call for the same pair returns the original receipt unchanged.
func (s *service) MarkAsRead(ctx context.Context, employeeID, notificationID string) (notification.ReadReceipt, error) {
	if _, err := s.repo.GetByID(ctx, notificationID); err != nil {
		return notification.ReadReceipt{}, err
	}

	existing, err := s.readRepo.Get(ctx, employeeID, notificationID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, notification.ErrReadReceiptNotFound) {
		return notification.ReadReceipt{}, fmt.Errorf("failed to get read receipt: %w", err)
	}

	receipt := notification.ReadReceipt{
		EmployeeID:     employeeID,
		NotificationID: notificationID,
		ReadAt:         s.now(),
	}

	created, err := s.readRepo.Create(ctx, receipt)
	if err != nil {
		return notification.ReadReceipt{}, fmt.Errorf("failed to create read receipt: %w", err)
	}

	return created, nil
}
