package cli

import (
	"context"
	"fmt"
	"strconv"

	"jhris/internal/dto"
	"jhris/internal/model"
)

var employeeHeaders = []string{"ID", "Number", "First Name", "Last Name", "Email", "Phone", "Department", "Position", "Hire Date", "Status"}

func (a App) employee(ctx context.Context, args []string) error {
	action := ""
	if len(args) > 0 {
		action, args = args[0], args[1:]
	}
	switch action {
	case "list":
		return a.employeeList(ctx, args)
	case "add":
		return a.employeeAdd(ctx, args)
	case "search":
		return a.employeeSearch(ctx, args)
	case "update":
		return a.employeeUpdate(ctx, args)
	case "remove":
		return a.employeeRemove(ctx, args)
	default:
		return a.unknownAction("employee", action, "list, add, search, update, remove")
	}
}

func (a App) employeeList(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employee list")
	filter := dto.EmployeeFilter{ListParams: dto.DefaultListParams()}
	var department uint
	fs.IntVar(&filter.Skip, "skip", 0, "rows to skip")
	fs.IntVar(&filter.Limit, "limit", 100, "maximum rows (1-100)")
	fs.UintVar(&department, "department", 0, "only this department id")
	fs.StringVar(&filter.EmploymentStatus, "status", "", "only this employment status")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if filter.Limit < 1 || filter.Limit > 100 || filter.Skip < 0 {
		fmt.Fprintln(a.ErrOut, "employee list: -limit must be 1-100 and -skip non-negative")
		return ErrUsage
	}
	if err := checkEnums(a, filter.EmploymentStatus, ""); err != nil {
		return err
	}
	filter.DepartmentID = optionalID(department)

	employees, err := a.Employees.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(a.Out, "No employees found.")
		return nil
	}
	return a.printEmployees(ctx, employees)
}

func (a App) employeeSearch(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employee search")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.ErrOut, "usage: jhris employee search <keyword>")
		return ErrUsage
	}

	filter := dto.EmployeeFilter{ListParams: dto.DefaultListParams(), Query: fs.Arg(0)}
	employees, err := a.Employees.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(a.Out, "No employees found matching the search criteria.")
		return nil
	}
	return a.printEmployees(ctx, employees)
}

func (a App) employeeAdd(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employee add")
	var (
		req                                dto.CreateEmployeeRequest
		phone, hireDate, status, kind      string
		department, position, manager, uid uint
	)
	fs.StringVar(&req.EmployeeNumber, "number", "", "employee number (required, unique)")
	fs.StringVar(&req.FirstName, "first", "", "first name (required)")
	fs.StringVar(&req.LastName, "last", "", "last name (required)")
	fs.StringVar(&req.Email, "email", "", "work email (required)")
	fs.StringVar(&phone, "phone", "", "phone number")
	fs.UintVar(&department, "department", 0, "department id")
	fs.UintVar(&position, "position", 0, "position id")
	fs.UintVar(&manager, "manager", 0, "manager employee id")
	fs.UintVar(&uid, "user", 0, "linked user account id")
	fs.StringVar(&hireDate, "hire-date", "", "hire date YYYY-MM-DD (required)")
	fs.StringVar(&status, "status", "", "employment status (default active)")
	fs.StringVar(&kind, "type", "", "employment type (default full_time)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if req.EmployeeNumber == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" || hireDate == "" {
		fmt.Fprintln(a.ErrOut, "Error: number, first name, last name, email, and hire date are required.")
		return ErrUsage
	}

	hired, err := dto.ParseDate(hireDate)
	if err != nil {
		fmt.Fprintf(a.ErrOut, "Error: invalid hire date %q, expected YYYY-MM-DD\n", hireDate)
		return ErrUsage
	}
	if err := checkEnums(a, status, kind); err != nil {
		return err
	}
	req.HireDate = &hired
	req.Phone = optionalString(phone)
	req.DepartmentID = optionalID(department)
	req.PositionID = optionalID(position)
	req.ManagerID = optionalID(manager)
	req.UserID = optionalID(uid)
	req.EmploymentStatus = model.EmploymentStatus(status)
	req.EmploymentType = model.EmploymentType(kind)

	e, err := a.Employees.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Employee %s %s added successfully with ID: %d\n", e.FirstName, e.LastName, e.ID)
	return nil
}

func (a App) employeeUpdate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employee update")
	var (
		id                                uint
		number, first, last, email, phone string
		hireDate, status, kind            string
		department, position, manager     uint
	)
	fs.UintVar(&id, "id", 0, "employee id (required)")
	fs.StringVar(&number, "number", "", "employee number")
	fs.StringVar(&first, "first", "", "first name")
	fs.StringVar(&last, "last", "", "last name")
	fs.StringVar(&email, "email", "", "work email")
	fs.StringVar(&phone, "phone", "", "phone number (empty clears)")
	fs.UintVar(&department, "department", 0, "department id (0 clears)")
	fs.UintVar(&position, "position", 0, "position id (0 clears)")
	fs.UintVar(&manager, "manager", 0, "manager employee id (0 clears)")
	fs.StringVar(&hireDate, "hire-date", "", "hire date YYYY-MM-DD")
	fs.StringVar(&status, "status", "", "employment status")
	fs.StringVar(&kind, "type", "", "employment type")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireID(fs, id); err != nil {
		return err
	}
	if err := checkEnums(a, status, kind); err != nil {
		return err
	}

	set := visited(fs)
	var req dto.UpdateEmployeeRequest
	if set["number"] {
		req.EmployeeNumber = &number
	}
	if set["first"] {
		req.FirstName = &first
	}
	if set["last"] {
		req.LastName = &last
	}
	if set["email"] {
		req.Email = &email
	}
	if set["phone"] {
		req.Phone = dto.Optional[string]{Set: true, Value: optionalString(phone)}
	}
	if set["department"] {
		req.DepartmentID = dto.Optional[uint]{Set: true, Value: optionalID(department)}
	}
	if set["position"] {
		req.PositionID = dto.Optional[uint]{Set: true, Value: optionalID(position)}
	}
	if set["manager"] {
		req.ManagerID = dto.Optional[uint]{Set: true, Value: optionalID(manager)}
	}
	if set["hire-date"] {
		hired, err := dto.ParseDate(hireDate)
		if err != nil {
			fmt.Fprintf(a.ErrOut, "Error: invalid hire date %q, expected YYYY-MM-DD\n", hireDate)
			return ErrUsage
		}
		req.HireDate = &hired
	}
	if status != "" {
		s := model.EmploymentStatus(status)
		req.EmploymentStatus = &s
	}
	if kind != "" {
		k := model.EmploymentType(kind)
		req.EmploymentType = &k
	}
	if len(set) == 1 {
		fmt.Fprintln(a.Out, "No changes made.")
		return nil
	}

	if _, err := a.Employees.Update(ctx, id, req); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Employee ID %d updated successfully.\n", id)
	return nil
}

// employeeRemove keeps the row and marks the employee inactive.
func (a App) employeeRemove(ctx context.Context, args []string) error {
	fs := a.newFlagSet("employee remove")
	var id uint
	fs.UintVar(&id, "id", 0, "employee id (required)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireID(fs, id); err != nil {
		return err
	}

	inactive := model.StatusInactive
	if _, err := a.Employees.Update(ctx, id, dto.UpdateEmployeeRequest{EmploymentStatus: &inactive}); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Employee ID %d removed successfully.\n", id)
	return nil
}

func checkEnums(a App, status, kind string) error {
	if status != "" && !model.EmploymentStatus(status).Valid() {
		fmt.Fprintf(a.ErrOut, "Error: unknown status %q (active, inactive, terminated, on_leave)\n", status)
		return ErrUsage
	}
	if kind != "" && !model.EmploymentType(kind).Valid() {
		fmt.Fprintf(a.ErrOut, "Error: unknown type %q (full_time, part_time, contract, intern)\n", kind)
		return ErrUsage
	}
	return nil
}

func (a App) printEmployees(ctx context.Context, employees []dto.EmployeeResponse) error {
	names, err := a.departmentNames(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		department := "-"
		if e.DepartmentID != nil {
			department = names[*e.DepartmentID]
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.EmployeeNumber,
			e.FirstName,
			e.LastName,
			e.Email,
			deref(e.Phone),
			department,
			formatID(e.PositionID),
			e.HireDate.String(),
			string(e.EmploymentStatus),
		})
	}
	return writeTable(a.Out, employeeHeaders, rows)
}
