package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/payroll"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepositoryImpl{db: db}
}

func (r *payrollRepositoryImpl) GetRecordByEmployeePeriod(ctx context.Context, employeeID, period string) (payroll.Record, error) {
	query := `
		SELECT id, employee_id, period, basic_salary, allowances, deductions, net_pay, created_at
		FROM payroll_records
		WHERE employee_id = $1 AND period = $2
	`

	var rec payroll.Record
	err := r.db.QueryRow(ctx, query, employeeID, period).Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Period,
		&rec.BasicSalary,
		&rec.Allowances,
		&rec.Deductions,
		&rec.NetPay,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollNotFound
		}
		return payroll.Record{}, err
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) GetKPIByEmployeePeriod(ctx context.Context, employeeID, period string) (payroll.KPIMetrics, error) {
	query := `
		SELECT id, employee_id, period, productivity_score, quality_score, attendance_score, created_at
		FROM kpi_metrics
		WHERE employee_id = $1 AND period = $2
	`

	var kpi payroll.KPIMetrics
	err := r.db.QueryRow(ctx, query, employeeID, period).Scan(
		&kpi.ID,
		&kpi.EmployeeID,
		&kpi.Period,
		&kpi.ProductivityScore,
		&kpi.QualityScore,
		&kpi.AttendanceScore,
		&kpi.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.KPIMetrics{}, payroll.ErrKPINotFound
		}
		return payroll.KPIMetrics{}, err
	}

	return kpi, nil
}
