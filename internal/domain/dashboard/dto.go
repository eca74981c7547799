package dashboard

import (
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/notification"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the combined read model for the employee dashboard.
type DashboardResponse struct {
	Attendance    AttendanceSummaryResponse           `json:"attendance"`
	PendingLeave  []leave.LeaveRequestResponse        `json:"pending_leave"`
	LeaveBalances []leave.BalanceResponse             `json:"leave_balances"`
	Payroll       *PayrollSnapshotResponse            `json:"payroll,omitempty"`
	KPI           *KPISnapshotResponse                `json:"kpi,omitempty"`
	ActiveReview  *ReviewSnapshotResponse             `json:"active_review,omitempty"`
	Notifications []notification.NotificationResponse `json:"notifications"`
}

// AttendanceSummaryResponse summarizes the current calendar month.
type AttendanceSummaryResponse struct {
	Month         string  `json:"month"` // YYYY-MM
	TotalDays     int     `json:"total_days"`
	PresentDays   int     `json:"present_days"`
	WorkedHours   float64 `json:"worked_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type PayrollSnapshotResponse struct {
	Period      string          `json:"period"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"net_pay"`
}

type KPISnapshotResponse struct {
	Period            string  `json:"period"`
	ProductivityScore float64 `json:"productivity_score"`
	QualityScore      float64 `json:"quality_score"`
	AttendanceScore   float64 `json:"attendance_score"`
}

type ReviewSnapshotResponse struct {
	ID            string   `json:"id"`
	PeriodYear    int      `json:"period_year"`
	Status        string   `json:"status"`
	OverallRating *float64 `json:"overall_rating,omitempty"`
}
