package attendance

import (
	"time"
)

// Record is one employee-day of captured attendance. Records are append-only
// and written by the attendance-capture collaborator; this core only reads them.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Present       bool
	WorkedHours   float64
	OvertimeHours float64
	CreatedAt     time.Time
}

// MonthSummary is the folded attendance position for one calendar month.
type MonthSummary struct {
	TotalDays     int
	PresentDays   int
	WorkedHours   float64
	OvertimeHours float64
}

// Summarize folds a set of records into a month summary. Every record counts
// toward TotalDays; only present ones count toward PresentDays.
func Summarize(records []Record) MonthSummary {
	var s MonthSummary
	for _, r := range records {
		s.TotalDays++
		if r.Present {
			s.PresentDays++
		}
		s.WorkedHours += r.WorkedHours
		s.OvertimeHours += r.OvertimeHours
	}
	return s
}
