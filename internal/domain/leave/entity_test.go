package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"single day", date(2024, 3, 10), date(2024, 3, 10), 1},
		{"two days", date(2024, 3, 10), date(2024, 3, 11), 2},
		{"week", date(2024, 3, 4), date(2024, 3, 10), 7},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"leap february", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"across year boundary", date(2024, 12, 30), date(2025, 1, 2), 4},
	}
	for _, c := range cases {
		got := DaysInclusive(c.from, c.to)
		if got != c.want {
			t.Errorf("%s: DaysInclusive() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)
	if got := DaysInclusive(from, to); got != 2 {
		t.Errorf("DaysInclusive() = %d, want 2", got)
	}
}

func TestDaysInclusiveAdditive(t *testing.T) {
	// [a, b] plus [b+1, c] must equal [a, c].
	a := date(2024, 5, 1)
	b := date(2024, 5, 10)
	c := date(2024, 5, 20)
	left := DaysInclusive(a, b)
	right := DaysInclusive(b.AddDate(0, 0, 1), c)
	whole := DaysInclusive(a, c)
	if left+right != whole {
		t.Errorf("split ranges sum to %d, whole range is %d", left+right, whole)
	}
}

func TestParseLeaveType(t *testing.T) {
	for _, lt := range AllLeaveTypes() {
		parsed, err := ParseLeaveType(string(lt))
		if err != nil || parsed != lt {
			t.Errorf("ParseLeaveType(%q) = %v, %v", lt, parsed, err)
		}
	}
	for _, raw := range []string{"casual", "VACATION", ""} {
		if _, err := ParseLeaveType(raw); err != ErrInvalidLeaveType {
			t.Errorf("ParseLeaveType(%q) err = %v, want ErrInvalidLeaveType", raw, err)
		}
	}
}

func TestConsumesBalance(t *testing.T) {
	cases := []struct {
		status LeaveRequestStatus
		want   bool
	}{
		{LeaveRequestStatusPending, true},
		{LeaveRequestStatusApproved, true},
		{LeaveRequestStatusRejected, false},
	}
	for _, c := range cases {
		r := LeaveRequest{Status: c.status}
		if got := r.ConsumesBalance(); got != c.want {
			t.Errorf("ConsumesBalance() with %s = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestEntitlementTableAllotted(t *testing.T) {
	table := EntitlementTable{TypeCasual: 12}
	if got, err := table.Allotted(TypeCasual); err != nil || got != 12 {
		t.Errorf("Allotted(CASUAL) = %d, %v", got, err)
	}
	if _, err := table.Allotted(TypeSick); err != ErrInvalidLeaveType {
		t.Errorf("Allotted(SICK) on a table without SICK err = %v, want ErrInvalidLeaveType", err)
	}
}
