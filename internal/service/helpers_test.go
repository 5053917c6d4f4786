package service

import (
	"context"
	"testing"
	"time"

	"jhris/internal/dto"
	"jhris/internal/security"
	"jhris/internal/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type services struct {
	store       *testutil.Store
	auth        AuthService
	users       UserService
	departments DepartmentService
	positions   PositionService
	employees   EmployeeService
	reports     ReportService
	tokens      *security.TokenIssuer
}

func newServices(opts DepartmentOptions) *services {
	store := testutil.NewStore()
	creds := security.NewCredentialStore(bcrypt.MinCost)
	tokens := security.NewTokenIssuer("test-secret", 30*time.Minute, 7*24*time.Hour)
	return &services{
		store:       store,
		auth:        NewAuthService(store.Users, creds, tokens),
		users:       NewUserService(store.Users, creds),
		departments: NewDepartmentService(store.Departments, store.Employees, opts),
		positions:   NewPositionService(store.Positions, store.Departments),
		employees: NewEmployeeService(EmployeeRepos{
			Employees:   store.Employees,
			Departments: store.Departments,
			Positions:   store.Positions,
			Users:       store.Users,
		}),
		reports: NewReportService(store.Employees, store.Departments, store.Positions),
		tokens:  tokens,
	}
}

func mustDate(t *testing.T, s string) *dto.Date {
	t.Helper()
	d, err := dto.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func (s *services) mustDepartment(t *testing.T, name, code string) dto.DepartmentResponse {
	t.Helper()
	d, err := s.departments.Create(context.Background(), dto.CreateDepartmentRequest{Name: name, Code: code})
	require.NoError(t, err)
	return d
}

func (s *services) mustEmployee(t *testing.T, number string, mutate func(*dto.CreateEmployeeRequest)) dto.EmployeeResponse {
	t.Helper()
	req := dto.CreateEmployeeRequest{
		EmployeeNumber: number,
		FirstName:      "First" + number,
		LastName:       "Last" + number,
		Email:          number + "@example.com",
		HireDate:       mustDate(t, "2023-01-15"),
	}
	if mutate != nil {
		mutate(&req)
	}
	e, err := s.employees.Create(context.Background(), req)
	require.NoError(t, err)
	return e
}

func ptr[T any](v T) *T { return &v }
