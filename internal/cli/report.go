package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a App) report(ctx context.Context) error {
	r, err := a.Reports.Headcount(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, "--- HR Reports ---")
	fmt.Fprintf(a.Out, "\nTotal Employees: %d\n", r.TotalEmployees)
	fmt.Fprintf(a.Out, "Active Employees: %d\n", r.ActiveEmployees)
	fmt.Fprintf(a.Out, "Inactive Employees: %d\n", r.InactiveEmployees)
	fmt.Fprintf(a.Out, "Total Departments: %d\n", r.TotalDepartments)

	if len(r.ByDepartment) == 0 {
		return nil
	}
	fmt.Fprintln(a.Out, "\n--- Employees by Department ---")
	rows := make([][]string, 0, len(r.ByDepartment)+1)
	for _, d := range r.ByDepartment {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(d.DepartmentID), 10),
			d.Name,
			strconv.FormatInt(d.Employees, 10),
		})
	}
	if r.Unassigned > 0 {
		rows = append(rows, []string{"-", "(none)", strconv.FormatInt(r.Unassigned, 10)})
	}
	return writeTable(a.Out, []string{"Dept ID", "Department Name", "Employee Count"}, rows)
}
