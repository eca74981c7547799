package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a finalized payroll snapshot for one employee and period.
type Record struct {
	ID          string
	EmployeeID  string
	Period      string // YYYY-MM
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	CreatedAt   time.Time
}

// KPIMetrics is the per-period KPI snapshot shown on the employee dashboard.
type KPIMetrics struct {
	ID                string
	EmployeeID        string
	Period            string // YYYY-MM
	ProductivityScore float64
	QualityScore      float64
	AttendanceScore   float64
	CreatedAt         time.Time
}

// PeriodKey formats a point in time as the period key used by payroll and KPI
// records.
func PeriodKey(t time.Time) string {
	return t.Format("2006-01")
}
