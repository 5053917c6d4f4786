package cli_test

import (
	"bytes"
	"context"
	"testing"

	"jhris/internal/cli"
	"jhris/internal/model"
	"jhris/internal/service"
	"jhris/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	store    *testutil.Store
	app      cli.App
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	migrated bool
}

func newHarness() *harness {
	store := testutil.NewStore()
	h := &harness{store: store, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	h.app = cli.App{
		Employees: service.NewEmployeeService(service.EmployeeRepos{
			Employees:   store.Employees,
			Departments: store.Departments,
			Positions:   store.Positions,
			Users:       store.Users,
		}),
		Departments: service.NewDepartmentService(store.Departments, store.Employees, service.DepartmentOptions{DeleteGuard: true}),
		Reports:     service.NewReportService(store.Employees, store.Departments, store.Positions),
		Migrate:     func() error { h.migrated = true; return nil },
		Out:         h.out,
		ErrOut:      h.errOut,
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()
	return cli.Run(context.Background(), h.app, args)
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	require.NoError(t, h.run(t, args...), h.errOut.String())
	return h.out.String()
}

func TestUsage(t *testing.T) {
	h := newHarness()

	assert.ErrorIs(t, h.run(t), cli.ErrUsage)
	assert.Contains(t, h.errOut.String(), "Usage: jhris")

	assert.ErrorIs(t, h.run(t, "payroll"), cli.ErrUsage)
	assert.Contains(t, h.errOut.String(), `unknown command "payroll"`)

	assert.ErrorIs(t, h.run(t, "employee"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "department", "rename"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "employee", "list", "-bogus"), cli.ErrUsage)
}

func TestInit(t *testing.T) {
	h := newHarness()
	out := h.mustRun(t, "init")
	assert.True(t, h.migrated)
	assert.Contains(t, out, "Database initialized successfully!")
}

func TestDepartmentCommands(t *testing.T) {
	h := newHarness()

	out := h.mustRun(t, "department", "list")
	assert.Contains(t, out, "No departments found.")

	out = h.mustRun(t, "department", "add", "-name", "Engineering", "-code", "ENG", "-description", "Builds things")
	assert.Contains(t, out, "Department 'Engineering' added successfully with ID: 1")

	err := h.run(t, "department", "add", "-name", "Other", "-code", "ENG")
	assert.ErrorIs(t, err, service.ErrDuplicateKey)

	assert.ErrorIs(t, h.run(t, "department", "add", "-name", "NoCode"), cli.ErrUsage)

	out = h.mustRun(t, "department", "list")
	assert.Contains(t, out, "ENG")
	assert.Contains(t, out, "Builds things")

	out = h.mustRun(t, "department", "update", "-id", "1")
	assert.Contains(t, out, "No changes made.")

	h.mustRun(t, "department", "update", "-id", "1", "-description", "")
	d, err := h.store.Departments.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, d.Description)
	assert.Equal(t, "Engineering", d.Name)

	out = h.mustRun(t, "department", "employees", "-id", "1")
	assert.Contains(t, out, "No employees found in this department.")

	assert.ErrorIs(t, h.run(t, "department", "delete"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "department", "delete", "-id", "7"), service.ErrNotFound)
}

func TestEmployeeCommands(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "department", "add", "-name", "Engineering", "-code", "ENG")

	out := h.mustRun(t, "employee", "add",
		"-number", "E1", "-first", "Ada", "-last", "Lovelace", "-email", "ada@x.com",
		"-department", "1", "-hire-date", "2024-03-01")
	assert.Contains(t, out, "Employee Ada Lovelace added successfully with ID: 1")

	h.mustRun(t, "employee", "add",
		"-number", "E2", "-first", "Alan", "-last", "Turing", "-email", "alan@x.com",
		"-hire-date", "2024-04-01", "-type", "contract")

	assert.ErrorIs(t, h.run(t, "employee", "add", "-number", "E3", "-first", "X"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "employee", "add",
		"-number", "E3", "-first", "X", "-last", "Y", "-email", "x@y.com", "-hire-date", "01/02/2024"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "employee", "add",
		"-number", "E3", "-first", "X", "-last", "Y", "-email", "x@y.com", "-hire-date", "2024-01-02", "-status", "retired"), cli.ErrUsage)
	assert.ErrorIs(t, h.run(t, "employee", "add",
		"-number", "E1", "-first", "X", "-last", "Y", "-email", "x@y.com", "-hire-date", "2024-01-02"), service.ErrDuplicateKey)

	out = h.mustRun(t, "employee", "list")
	assert.Contains(t, out, "Lovelace")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "Turing")

	assert.ErrorIs(t, h.run(t, "employee", "list", "-status", "retird"), cli.ErrUsage)
	assert.Contains(t, h.errOut.String(), `unknown status "retird"`)
	out = h.mustRun(t, "employee", "list", "-status", "active")
	assert.Contains(t, out, "Lovelace")

	out = h.mustRun(t, "employee", "list", "-department", "1")
	assert.Contains(t, out, "Lovelace")
	assert.NotContains(t, out, "Turing")

	out = h.mustRun(t, "employee", "search", "TURING")
	assert.Contains(t, out, "Turing")
	assert.NotContains(t, out, "Lovelace")

	out = h.mustRun(t, "employee", "search", "nobody")
	assert.Contains(t, out, "No employees found matching the search criteria.")

	h.mustRun(t, "employee", "update", "-id", "2", "-phone", "555-0100", "-manager", "1")
	e, err := h.store.Employees.FindByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, e.Phone)
	assert.Equal(t, "555-0100", *e.Phone)
	require.NotNil(t, e.ManagerID)
	assert.Equal(t, uint(1), *e.ManagerID)
	assert.Equal(t, "Alan", e.FirstName)

	assert.ErrorIs(t, h.run(t, "employee", "update", "-id", "1", "-manager", "2"), service.ErrHierarchyCycle)

	out = h.mustRun(t, "department", "employees", "-id", "1")
	assert.Contains(t, out, "Lovelace")

	out = h.mustRun(t, "employee", "remove", "-id", "1")
	assert.Contains(t, out, "Employee ID 1 removed successfully.")
	e, err = h.store.Employees.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, e.EmploymentStatus)

	assert.ErrorIs(t, h.run(t, "employee", "remove", "-id", "99"), service.ErrNotFound)
}

func TestDepartmentDeleteIsGuarded(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "department", "add", "-name", "Ops", "-code", "OPS")
	h.mustRun(t, "employee", "add",
		"-number", "E1", "-first", "Grace", "-last", "Hopper", "-email", "grace@x.com",
		"-department", "1", "-hire-date", "2024-03-01")

	assert.ErrorIs(t, h.run(t, "department", "delete", "-id", "1"), service.ErrDepartmentInUse)

	h.mustRun(t, "employee", "remove", "-id", "1")
	out := h.mustRun(t, "department", "delete", "-id", "1")
	assert.Contains(t, out, "Department ID 1 deleted successfully.")
	e, err := h.store.Employees.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, e.DepartmentID)
}

func TestReport(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "department", "add", "-name", "Ops", "-code", "OPS")
	h.mustRun(t, "employee", "add",
		"-number", "E1", "-first", "Grace", "-last", "Hopper", "-email", "grace@x.com",
		"-department", "1", "-hire-date", "2024-03-01")
	h.mustRun(t, "employee", "add",
		"-number", "E2", "-first", "Linus", "-last", "T", "-email", "linus@x.com",
		"-hire-date", "2024-03-01", "-status", "on_leave")

	out := h.mustRun(t, "report")
	assert.Contains(t, out, "Total Employees: 2")
	assert.Contains(t, out, "Active Employees: 1")
	assert.Contains(t, out, "Inactive Employees: 1")
	assert.Contains(t, out, "Total Departments: 1")
	assert.Contains(t, out, "Ops")
	assert.Contains(t, out, "(none)")
}
