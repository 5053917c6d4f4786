package cli

import (
	"context"
	"fmt"
	"strconv"

	"jhris/internal/dto"
	"jhris/internal/service"
)

func (a App) department(ctx context.Context, args []string) error {
	action := ""
	if len(args) > 0 {
		action, args = args[0], args[1:]
	}
	switch action {
	case "list":
		return a.departmentList(ctx, args)
	case "add":
		return a.departmentAdd(ctx, args)
	case "employees":
		return a.departmentEmployees(ctx, args)
	case "update":
		return a.departmentUpdate(ctx, args)
	case "delete":
		return a.departmentDelete(ctx, args)
	default:
		return a.unknownAction("department", action, "list, add, employees, update, delete")
	}
}

func (a App) departmentList(ctx context.Context, args []string) error {
	fs := a.newFlagSet("department list")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	rows := [][]string{}
	params := dto.DefaultListParams()
	for {
		page, err := a.Departments.List(ctx, params)
		if err != nil {
			return err
		}
		for _, d := range page {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(d.ID), 10),
				d.Code,
				d.Name,
				deref(d.Description),
				formatID(d.ParentDepartmentID),
				d.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		if len(page) < params.Limit {
			break
		}
		params.Skip += params.Limit
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.Out, "No departments found.")
		return nil
	}
	return writeTable(a.Out, []string{"ID", "Code", "Name", "Description", "Parent", "Created At"}, rows)
}

func (a App) departmentAdd(ctx context.Context, args []string) error {
	fs := a.newFlagSet("department add")
	var (
		req               dto.CreateDepartmentRequest
		description       string
		parent, managerID uint
	)
	fs.StringVar(&req.Name, "name", "", "department name (required)")
	fs.StringVar(&req.Code, "code", "", "department code (required, unique)")
	fs.StringVar(&description, "description", "", "description")
	fs.UintVar(&parent, "parent", 0, "parent department id")
	fs.UintVar(&managerID, "manager", 0, "managing employee id")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if req.Name == "" || req.Code == "" {
		fmt.Fprintln(a.ErrOut, "Error: department name and code are required.")
		return ErrUsage
	}
	req.Description = optionalString(description)
	req.ParentDepartmentID = optionalID(parent)
	req.ManagerID = optionalID(managerID)

	d, err := a.Departments.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Department '%s' added successfully with ID: %d\n", d.Name, d.ID)
	return nil
}

func (a App) departmentEmployees(ctx context.Context, args []string) error {
	fs := a.newFlagSet("department employees")
	var id uint
	fs.UintVar(&id, "id", 0, "department id (required)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireID(fs, id); err != nil {
		return err
	}

	var rows [][]string
	params := dto.DefaultListParams()
	for {
		page, err := a.Departments.Employees(ctx, id, params)
		if err != nil {
			return err
		}
		for _, e := range page {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(e.ID), 10),
				e.FirstName,
				e.LastName,
				e.Email,
				formatID(e.PositionID),
				string(e.EmploymentStatus),
			})
		}
		if len(page) < params.Limit {
			break
		}
		params.Skip += params.Limit
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.Out, "No employees found in this department.")
		return nil
	}
	return writeTable(a.Out, []string{"ID", "First Name", "Last Name", "Email", "Position", "Status"}, rows)
}

func (a App) departmentUpdate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("department update")
	var (
		id                      uint
		name, code, description string
		parent                  uint
	)
	fs.UintVar(&id, "id", 0, "department id (required)")
	fs.StringVar(&name, "name", "", "department name")
	fs.StringVar(&code, "code", "", "department code")
	fs.StringVar(&description, "description", "", "description (empty clears)")
	fs.UintVar(&parent, "parent", 0, "parent department id (0 clears)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireID(fs, id); err != nil {
		return err
	}

	set := visited(fs)
	var req dto.UpdateDepartmentRequest
	if set["name"] {
		req.Name = &name
	}
	if set["code"] {
		req.Code = &code
	}
	if set["description"] {
		req.Description = dto.Optional[string]{Set: true, Value: optionalString(description)}
	}
	if set["parent"] {
		req.ParentDepartmentID = dto.Optional[uint]{Set: true, Value: optionalID(parent)}
	}
	if len(set) == 1 {
		fmt.Fprintln(a.Out, "No changes made.")
		return nil
	}

	if _, err := a.Departments.Update(ctx, id, req); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Department ID %d updated successfully.\n", id)
	return nil
}

func (a App) departmentDelete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("department delete")
	var id uint
	fs.UintVar(&id, "id", 0, "department id (required)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if err := a.requireID(fs, id); err != nil {
		return err
	}

	deleted, err := a.Departments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return service.ErrDepartmentNotFound
	}
	fmt.Fprintf(a.Out, "Department ID %d deleted successfully.\n", id)
	return nil
}
