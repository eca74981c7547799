package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/attendance"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/payroll"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/performance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (f *fakeAttendanceRepo) ListByEmployeeBetween(_ context.Context, _ string, _, _ time.Time) ([]attendance.Record, error) {
	return f.records, f.err
}

type fakeRequestRepo struct {
	pending []leave.LeaveRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeRequestRepo) ListByEmployeeYear(_ context.Context, _ string, _ int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) ListByEmployee(_ context.Context, _ string, _ leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) ListPendingByEmployee(_ context.Context, _ string, limit int) ([]leave.LeaveRequest, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

type fakePayrollRepo struct {
	record    *payroll.Record
	kpi       *payroll.KPIMetrics
	recordErr error
}

func (f *fakePayrollRepo) GetRecordByEmployeePeriod(_ context.Context, _, _ string) (payroll.Record, error) {
	if f.recordErr != nil {
		return payroll.Record{}, f.recordErr
	}
	if f.record == nil {
		return payroll.Record{}, payroll.ErrPayrollNotFound
	}
	return *f.record, nil
}

func (f *fakePayrollRepo) GetKPIByEmployeePeriod(_ context.Context, _, _ string) (payroll.KPIMetrics, error) {
	if f.kpi == nil {
		return payroll.KPIMetrics{}, payroll.ErrKPINotFound
	}
	return *f.kpi, nil
}

type fakePerformanceRepo struct {
	review *performance.Review
}

func (f *fakePerformanceRepo) GetActiveByEmployee(_ context.Context, _ string) (performance.Review, error) {
	if f.review == nil {
		return performance.Review{}, performance.ErrReviewNotFound
	}
	return *f.review, nil
}

type fakeBalanceService struct {
	balances []leave.Balance
}

func (f *fakeBalanceService) Balances(_ context.Context, _ string, _ int) ([]leave.Balance, error) {
	return f.balances, nil
}

func (f *fakeBalanceService) BalanceFor(_ context.Context, _ string, lt leave.LeaveType, _ int) (leave.Balance, error) {
	return leave.Balance{LeaveType: lt}, nil
}

type fakeNotificationService struct {
	list *notification.NotificationListResponse
}

func (f *fakeNotificationService) Create(_ context.Context, _ string, _ notification.CreateNotificationRequest) (*notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationService) List(_ context.Context, _ string, _, _ int) (*notification.NotificationListResponse, error) {
	return f.list, nil
}

func (f *fakeNotificationService) MarkAsRead(_ context.Context, _, _ string) (notification.ReadReceipt, error) {
	return notification.ReadReceipt{}, nil
}

type fixture struct {
	employeeRepo    *fakeEmployeeRepo
	attendanceRepo  *fakeAttendanceRepo
	requestRepo     *fakeRequestRepo
	payrollRepo     *fakePayrollRepo
	performanceRepo *fakePerformanceRepo
}

func newFixture() (*service, *fixture) {
	f := &fixture{
		employeeRepo: &fakeEmployeeRepo{
			employees: map[string]employee.Employee{
				"emp-1": {ID: "emp-1", Department: "ASSEMBLY", BranchID: "branch-1", Status: employee.StatusActive},
			},
		},
		attendanceRepo:  &fakeAttendanceRepo{},
		requestRepo:     &fakeRequestRepo{},
		payrollRepo:     &fakePayrollRepo{},
		performanceRepo: &fakePerformanceRepo{},
	}
	balanceSvc := &fakeBalanceService{
		balances: []leave.Balance{{LeaveType: leave.TypeCasual, Allotted: 12, Consumed: 2, Remaining: 10}},
	}
	notificationSvc := &fakeNotificationService{
		list: &notification.NotificationListResponse{
			Notifications: []notification.NotificationResponse{{ID: "n-1"}},
			Total:         1,
			Page:          1,
			Limit:         5,
		},
	}
	svc := &service{
		employeeRepo:        f.employeeRepo,
		attendanceRepo:      f.attendanceRepo,
		leaveRequestRepo:    f.requestRepo,
		payrollRepo:         f.payrollRepo,
		performanceRepo:     f.performanceRepo,
		balanceService:      balanceSvc,
		notificationService: notificationSvc,
		now:                 func() time.Time { return fixedNow },
	}
	return svc, f
}

func TestGetDashboardUnknownEmployee(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.GetDashboard(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetDashboardAbsentSectionsAreNil(t *testing.T) {
	svc, _ := newFixture()

	result, err := svc.GetDashboard(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Nil(t, result.Payroll)
	assert.Nil(t, result.KPI)
	assert.Nil(t, result.ActiveReview)
	assert.Equal(t, "2024-06", result.Attendance.Month)
	assert.Zero(t, result.Attendance.TotalDays)
	require.Len(t, result.LeaveBalances, 1)
	assert.Equal(t, 10, result.LeaveBalances[0].Balance)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "n-1", result.Notifications[0].ID)
}

func TestGetDashboardAllSectionsPresent(t *testing.T) {
	svc, f := newFixture()

	f.attendanceRepo.records = []attendance.Record{
		{Date: fixedNow, Present: true, WorkedHours: 8, OvertimeHours: 1.5},
		{Date: fixedNow.AddDate(0, 0, 1), Present: true, WorkedHours: 8},
		{Date: fixedNow.AddDate(0, 0, 2), Present: false},
	}
	f.requestRepo.pending = []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "emp-1", LeaveType: leave.TypeCasual, FromDate: fixedNow, ToDate: fixedNow, Status: leave.LeaveRequestStatusPending},
	}
	f.payrollRepo.record = &payroll.Record{
		Period:      "2024-06",
		BasicSalary: decimal.NewFromInt(5000),
		NetPay:      decimal.NewFromInt(4600),
	}
	f.payrollRepo.kpi = &payroll.KPIMetrics{Period: "2024-06", ProductivityScore: 87.5}
	rating := 4.2
	f.performanceRepo.review = &performance.Review{
		ID: "rev-1", PeriodYear: 2024, Status: performance.ReviewStatusSubmitted, OverallRating: &rating,
	}

	result, err := svc.GetDashboard(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attendance.TotalDays)
	assert.Equal(t, 2, result.Attendance.PresentDays)
	assert.InDelta(t, 16.0, result.Attendance.WorkedHours, 0.001)
	assert.InDelta(t, 1.5, result.Attendance.OvertimeHours, 0.001)

	require.Len(t, result.PendingLeave, 1)
	assert.Equal(t, "lr-1", result.PendingLeave[0].ID)

	require.NotNil(t, result.Payroll)
	assert.Equal(t, "2024-06", result.Payroll.Period)
	assert.True(t, result.Payroll.NetPay.Equal(decimal.NewFromInt(4600)))

	require.NotNil(t, result.KPI)
	assert.InDelta(t, 87.5, result.KPI.ProductivityScore, 0.001)

	require.NotNil(t, result.ActiveReview)
	assert.Equal(t, "SUBMITTED", result.ActiveReview.Status)
	require.NotNil(t, result.ActiveReview.OverallRating)
	assert.InDelta(t, 4.2, *result.ActiveReview.OverallRating, 0.001)
}

func TestGetDashboardFailsWhenAnySubReadFails(t *testing.T) {
	svc, f := newFixture()
	f.payrollRepo.recordErr = errors.New("connection reset")

	_, err := svc.GetDashboard(context.Background(), "emp-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payroll")
}
