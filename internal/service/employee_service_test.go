package service

import (
	"context"
	"testing"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
	"jhris/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_CreateDefaults(t *testing.T) {
	s := newServices(DepartmentOptions{})

	e := s.mustEmployee(t, "E1", nil)
	assert.Equal(t, model.StatusActive, e.EmploymentStatus)
	assert.Equal(t, model.TypeFullTime, e.EmploymentType)
	assert.Equal(t, "2023-01-15", e.HireDate.String())
}

func TestEmployee_DuplicateNumber(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	s.mustEmployee(t, "E1", nil)

	_, err := s.employees.Create(ctx, dto.CreateEmployeeRequest{
		EmployeeNumber: "E1", FirstName: "Other", LastName: "Person",
		Email: "other@example.com", HireDate: mustDate(t, "2024-01-01"),
	})
	assert.ErrorIs(t, err, ErrDuplicateEmployeeNumber)
}

func TestEmployee_EmailNotUnique(t *testing.T) {
	s := newServices(DepartmentOptions{})
	s.mustEmployee(t, "E1", func(r *dto.CreateEmployeeRequest) { r.Email = "shared@example.com" })
	s.mustEmployee(t, "E2", func(r *dto.CreateEmployeeRequest) { r.Email = "shared@example.com" })
}

func TestEmployee_UpdateSparse(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	e := s.mustEmployee(t, "E1", func(r *dto.CreateEmployeeRequest) {
		r.Phone = ptr("555-0100")
		r.City = ptr("Manila")
	})

	got, err := s.employees.Update(ctx, e.ID, dto.UpdateEmployeeRequest{
		LastName: ptr("Renamed"),
		Phone:    dto.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.LastName)
	assert.Equal(t, e.FirstName, got.FirstName)
	assert.Equal(t, e.Email, got.Email)
	assert.Equal(t, e.EmployeeNumber, got.EmployeeNumber)
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.City)
	assert.Equal(t, "Manila", *got.City)

	status := model.StatusOnLeave
	got, err = s.employees.Update(ctx, e.ID, dto.UpdateEmployeeRequest{
		EmploymentStatus: &status,
		DateOfBirth:      dto.Some(*mustDate(t, "1990-06-01")),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOnLeave, got.EmploymentStatus)
	require.NotNil(t, got.DateOfBirth)
	assert.Equal(t, "1990-06-01", got.DateOfBirth.String())
	assert.Equal(t, "Renamed", got.LastName)
}

func TestEmployee_UpdateNumberToTaken(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	s.mustEmployee(t, "E1", nil)
	e2 := s.mustEmployee(t, "E2", nil)

	_, err := s.employees.Update(ctx, e2.ID, dto.UpdateEmployeeRequest{EmployeeNumber: ptr("E1")})
	assert.ErrorIs(t, err, ErrDuplicateEmployeeNumber)
}

func TestEmployee_NotFound(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()

	_, err := s.employees.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	_, err = s.employees.Update(ctx, 1, dto.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
	ok, err := s.employees.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmployee_Subordinates(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	boss := s.mustEmployee(t, "B1", nil)

	got, err := s.employees.Subordinates(ctx, boss.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	lead := s.mustEmployee(t, "L1", func(r *dto.CreateEmployeeRequest) { r.ManagerID = &boss.ID })
	s.mustEmployee(t, "D1", func(r *dto.CreateEmployeeRequest) { r.ManagerID = &lead.ID })

	got, err = s.employees.Subordinates(ctx, boss.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "L1", got[0].EmployeeNumber)

	_, err = s.employees.Subordinates(ctx, 999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployee_ManagerCycle(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	boss := s.mustEmployee(t, "B1", nil)
	lead := s.mustEmployee(t, "L1", func(r *dto.CreateEmployeeRequest) { r.ManagerID = &boss.ID })

	_, err := s.employees.Update(ctx, boss.ID, dto.UpdateEmployeeRequest{ManagerID: dto.Some(lead.ID)})
	assert.ErrorIs(t, err, ErrHierarchyCycle)

	_, err = s.employees.Update(ctx, boss.ID, dto.UpdateEmployeeRequest{ManagerID: dto.Some(boss.ID)})
	assert.ErrorIs(t, err, ErrHierarchyCycle)
}

func TestEmployee_InvalidReferences(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()

	for name, mutate := range map[string]func(*dto.CreateEmployeeRequest){
		"department": func(r *dto.CreateEmployeeRequest) { r.DepartmentID = ptr(uint(9)) },
		"position":   func(r *dto.CreateEmployeeRequest) { r.PositionID = ptr(uint(9)) },
		"manager":    func(r *dto.CreateEmployeeRequest) { r.ManagerID = ptr(uint(9)) },
		"user":       func(r *dto.CreateEmployeeRequest) { r.UserID = ptr(uint(9)) },
	} {
		req := dto.CreateEmployeeRequest{
			EmployeeNumber: "X-" + name, FirstName: "A", LastName: "B",
			Email: "a@b.com", HireDate: mustDate(t, "2024-01-01"),
		}
		mutate(&req)
		_, err := s.employees.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidReference, name)
	}
}

func TestEmployee_ListFilters(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	it := s.mustDepartment(t, "IT", "IT")
	s.mustEmployee(t, "E1", func(r *dto.CreateEmployeeRequest) {
		r.DepartmentID = &it.ID
		r.FirstName = "Grace"
	})
	s.mustEmployee(t, "E2", func(r *dto.CreateEmployeeRequest) {
		r.DepartmentID = &it.ID
		r.EmploymentStatus = model.StatusTerminated
	})
	s.mustEmployee(t, "E3", func(r *dto.CreateEmployeeRequest) { r.FirstName = "Gracie" })

	got, err := s.employees.List(ctx, dto.EmployeeFilter{ListParams: dto.DefaultListParams(), DepartmentID: &it.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.employees.List(ctx, dto.EmployeeFilter{ListParams: dto.DefaultListParams(), DepartmentID: &it.ID, EmploymentStatus: "active"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "E1", got[0].EmployeeNumber)

	got, err = s.employees.List(ctx, dto.EmployeeFilter{ListParams: dto.DefaultListParams(), Query: "grac"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// vanishingEmployees loses a row right after it is read, as a concurrent
// delete would.
type vanishingEmployees struct{ *testutil.MemoryEmployees }

func (r vanishingEmployees) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	e, err := r.MemoryEmployees.FindByID(ctx, id)
	if err == nil {
		_, err = r.MemoryEmployees.Delete(ctx, id)
	}
	return e, err
}

func TestEmployee_UpdateAfterConcurrentDelete(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	e := s.mustEmployee(t, "E1", nil)

	svc := NewEmployeeService(EmployeeRepos{
		Employees:   vanishingEmployees{s.store.Employees},
		Departments: s.store.Departments,
		Positions:   s.store.Positions,
		Users:       s.store.Users,
	})
	_, err := svc.Update(ctx, e.ID, dto.UpdateEmployeeRequest{Phone: dto.Some("555-0100")})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = s.store.Employees.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployee_DeleteDetachesReports(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	boss := s.mustEmployee(t, "B1", nil)
	dept := s.mustDepartment(t, "IT", "IT")
	_, err := s.departments.Update(ctx, dept.ID, dto.UpdateDepartmentRequest{ManagerID: dto.Some(boss.ID)})
	require.NoError(t, err)
	report := s.mustEmployee(t, "R1", func(r *dto.CreateEmployeeRequest) { r.ManagerID = &boss.ID })

	ok, err := s.employees.Delete(ctx, boss.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.employees.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ManagerID)
	d, err := s.departments.Get(ctx, dept.ID)
	require.NoError(t, err)
	assert.Nil(t, d.ManagerID)
}
