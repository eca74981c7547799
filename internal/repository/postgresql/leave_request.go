package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			from_date, to_date, reason, status,
			created_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			NOW()
		) RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType,
		request.FromDate, request.ToDate, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, leave_type, from_date, to_date, reason, status, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr leave.LeaveRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.FromDate,
		&lr.ToDate,
		&lr.Reason,
		&lr.Status,
		&lr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// ListByEmployeeYear implements leave.RequestRepository. The year bucket is
// decided by from_date alone so a request spanning New Year counts once.
func (r *leaveRequestRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, leave_type, from_date, to_date, reason, status, created_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM from_date) = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	query := `
		SELECT id, employee_id, leave_type, from_date, to_date, reason, status, created_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	offset := (filter.Page - 1) * filter.Limit

	rows, err := r.db.Query(ctx, query, employeeID, status, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests, err := scanLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	// Get total count
	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE employee_id = $1
		  AND ($2::text IS NULL OR status = $2)
	`
	var total int64
	err = r.db.QueryRow(ctx, countQuery, employeeID, status).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) ListPendingByEmployee(ctx context.Context, employeeID string, limit int) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, leave_type, from_date, to_date, reason, status, created_at
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, employeeID, leave.LeaveRequestStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID,
			&lr.EmployeeID,
			&lr.LeaveType,
			&lr.FromDate,
			&lr.ToDate,
			&lr.Reason,
			&lr.Status,
			&lr.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
