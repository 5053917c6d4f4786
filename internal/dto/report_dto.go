package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DepartmentHeadcount struct {
	DepartmentID uint   `json:"department_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Employees    int64  `json:"employees"`
}

// HeadcountReport backs the CLI report screen and the report endpoints.
// Inactive counts everyone who is not active (inactive, terminated, on leave).
type HeadcountReport struct {
	TotalEmployees    int64                 `json:"total_employees"`
	ActiveEmployees   int64                 `json:"active_employees"`
	InactiveEmployees int64                 `json:"inactive_employees"`
	TotalDepartments  int64                 `json:"total_departments"`
	ByStatus          map[string]int64      `json:"by_status"`
	ByDepartment      []DepartmentHeadcount `json:"by_department"`
	Unassigned        int64                 `json:"unassigned"`
}

// RosterRow is one line of the employee roster export, with department and
// position resolved to display names.
type RosterRow struct {
	EmployeeNumber   string
	FullName         string
	Email            string
	Department       string
	Position         string
	EmploymentStatus string
	EmploymentType   string
	HireDate         Date
}
