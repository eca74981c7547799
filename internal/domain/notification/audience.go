package notification

// Recipient is the employee-side view the audience check needs.
type Recipient struct {
	EmployeeID string
	Department string
	BranchID   string
}

// Audience is the targeting of a notification, decided once at read time.
// An audience with no members in any set is global.
type Audience struct {
	Employees   map[string]struct{}
	Departments map[string]struct{}
	Branches    map[string]struct{}
}

// BuildAudience parses the notification's target sets into an Audience.
func BuildAudience(n Notification) Audience {
	return Audience{
		Employees:   toSet(n.TargetEmployeeIDs),
		Departments: toSet(n.TargetDepartments),
		Branches:    toSet(n.TargetBranchIDs),
	}
}

// IsGlobal reports whether the notification targets everyone.
func (a Audience) IsGlobal() bool {
	return len(a.Employees) == 0 && len(a.Departments) == 0 && len(a.Branches) == 0
}

// Includes reports whether the recipient is in the audience. A targeted
// audience matches on any single criterion: employee id, department, or branch.
func (a Audience) Includes(r Recipient) bool {
	if a.IsGlobal() {
		return true
	}
	if _, ok := a.Employees[r.EmployeeID]; ok {
		return true
	}
	if _, ok := a.Departments[r.Department]; ok {
		return true
	}
	if _, ok := a.Branches[r.BranchID]; ok {
		return true
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}
