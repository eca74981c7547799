package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/attendance"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/dashboard"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/payroll"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/performance"
	"golang.org/x/sync/errgroup"
)

const (
	pendingLeaveLimit  = 5
	notificationsLimit = 5
)

type service struct {
	employeeRepo        employee.Repository
	attendanceRepo      attendance.Repository
	leaveRequestRepo    leave.RequestRepository
	payrollRepo         payroll.Repository
	performanceRepo     performance.Repository
	balanceService      leave.BalanceService
	notificationService notification.Service
	now                 func() time.Time
}

// NewDashboardService creates the employee dashboard aggregator.
func NewDashboardService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	leaveRequestRepo leave.RequestRepository,
	payrollRepo payroll.Repository,
	performanceRepo performance.Repository,
	balanceService leave.BalanceService,
	notificationService notification.Service,
) dashboard.Service {
	return &service{
		employeeRepo:        employeeRepo,
		attendanceRepo:      attendanceRepo,
		leaveRequestRepo:    leaveRequestRepo,
		payrollRepo:         payrollRepo,
		performanceRepo:     performanceRepo,
		balanceService:      balanceService,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// GetDashboard assembles the combined read model for one employee. The
// sub-reads are independent and run concurrently; composition waits for all of
// them and fails as a whole if any sub-read fails. Absent payroll, KPI, or
// review rows are not failures.
func (s *service) GetDashboard(ctx context.Context, employeeID string) (*dashboard.DashboardResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	now := s.now()
	year := now.Year()
	period := payroll.PeriodKey(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var (
		attendanceSummary dashboard.AttendanceSummaryResponse
		pendingLeave      []leave.LeaveRequestResponse
		leaveBalances     []leave.BalanceResponse
		payrollSnapshot   *dashboard.PayrollSnapshotResponse
		kpiSnapshot       *dashboard.KPISnapshotResponse
		activeReview      *dashboard.ReviewSnapshotResponse
		notifications     []notification.NotificationResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance summary for the current month
	g.Go(func() error {
		records, err := s.attendanceRepo.ListByEmployeeBetween(gCtx, employeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		summary := attendance.Summarize(records)
		attendanceSummary = dashboard.AttendanceSummaryResponse{
			Month:         period,
			TotalDays:     summary.TotalDays,
			PresentDays:   summary.PresentDays,
			WorkedHours:   summary.WorkedHours,
			OvertimeHours: summary.OvertimeHours,
		}
		return nil
	})

	// 2. Most recent pending leave requests
	g.Go(func() error {
		requests, err := s.leaveRequestRepo.ListPendingByEmployee(gCtx, employeeID, pendingLeaveLimit)
		if err != nil {
			return fmt.Errorf("failed to load pending leave: %w", err)
		}
		pendingLeave = make([]leave.LeaveRequestResponse, 0, len(requests))
		for _, r := range requests {
			pendingLeave = append(pendingLeave, leave.ToLeaveRequestResponse(r))
		}
		return nil
	})

	// 3. Current year leave balances
	g.Go(func() error {
		balances, err := s.balanceService.Balances(gCtx, employeeID, year)
		if err != nil {
			return err
		}
		leaveBalances = make([]leave.BalanceResponse, 0, len(balances))
		for _, b := range balances {
			leaveBalances = append(leaveBalances, leave.ToBalanceResponse(b))
		}
		return nil
	})

	// 4. Current period payroll snapshot, if finalized
	g.Go(func() error {
		record, err := s.payrollRepo.GetRecordByEmployeePeriod(gCtx, employeeID, period)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load payroll record: %w", err)
		}
		payrollSnapshot = &dashboard.PayrollSnapshotResponse{
			Period:      record.Period,
			BasicSalary: record.BasicSalary,
			Allowances:  record.Allowances,
			Deductions:  record.Deductions,
			NetPay:      record.NetPay,
		}
		return nil
	})

	// 5. Current period KPI metrics, if recorded
	g.Go(func() error {
		kpi, err := s.payrollRepo.GetKPIByEmployeePeriod(gCtx, employeeID, period)
		if err != nil {
			if errors.Is(err, payroll.ErrKPINotFound) {
				return nil
			}
			return fmt.Errorf("failed to load kpi metrics: %w", err)
		}
		kpiSnapshot = &dashboard.KPISnapshotResponse{
			Period:            kpi.Period,
			ProductivityScore: kpi.ProductivityScore,
			QualityScore:      kpi.QualityScore,
			AttendanceScore:   kpi.AttendanceScore,
		}
		return nil
	})

	// 6. Active performance review, if any
	g.Go(func() error {
		review, err := s.performanceRepo.GetActiveByEmployee(gCtx, employeeID)
		if err != nil {
			if errors.Is(err, performance.ErrReviewNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load performance review: %w", err)
		}
		activeReview = &dashboard.ReviewSnapshotResponse{
			ID:            review.ID,
			PeriodYear:    review.PeriodYear,
			Status:        string(review.Status),
			OverallRating: review.OverallRating,
		}
		return nil
	})

	// 7. Most recent visible notifications, same contract as the listing
	g.Go(func() error {
		list, err := s.notificationService.List(gCtx, employeeID, 1, notificationsLimit)
		if err != nil {
			return err
		}
		notifications = list.Notifications
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Attendance:    attendanceSummary,
		PendingLeave:  pendingLeave,
		LeaveBalances: leaveBalances,
		Payroll:       payrollSnapshot,
		KPI:           kpiSnapshot,
		ActiveReview:  activeReview,
		Notifications: notifications,
	}, nil
}
