package service

import (
	"context"
	"testing"

	"jhris/internal/dto"
	"jhris/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Headcount(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	it := s.mustDepartment(t, "IT", "IT")
	s.mustDepartment(t, "HR", "HR")
	s.mustEmployee(t, "E1", func(r *dto.CreateEmployeeRequest) { r.DepartmentID = &it.ID })
	s.mustEmployee(t, "E2", func(r *dto.CreateEmployeeRequest) {
		r.DepartmentID = &it.ID
		r.EmploymentStatus = model.StatusOnLeave
	})
	s.mustEmployee(t, "E3", nil)

	report, err := s.reports.Headcount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.TotalEmployees)
	assert.Equal(t, int64(2), report.ActiveEmployees)
	assert.Equal(t, int64(1), report.InactiveEmployees)
	assert.Equal(t, int64(2), report.TotalDepartments)
	assert.Equal(t, int64(1), report.Unassigned)
	assert.Equal(t, map[string]int64{"active": 2, "on_leave": 1}, report.ByStatus)
	require.Len(t, report.ByDepartment, 2)
	assert.Equal(t, dto.DepartmentHeadcount{DepartmentID: it.ID, Code: "IT", Name: "IT", Employees: 2}, report.ByDepartment[0])
	assert.Equal(t, int64(0), report.ByDepartment[1].Employees)
}

func TestReport_Roster(t *testing.T) {
	s := newServices(DepartmentOptions{})
	ctx := context.Background()
	it := s.mustDepartment(t, "Information Technology", "IT")
	pos, err := s.positions.Create(ctx, dto.CreatePositionRequest{Title: "Engineer", Code: "ENG"})
	require.NoError(t, err)
	s.mustEmployee(t, "E1", func(r *dto.CreateEmployeeRequest) {
		r.DepartmentID = &it.ID
		r.PositionID = &pos.ID
		r.FirstName = "Ada"
		r.LastName = "Lovelace"
	})
	s.mustEmployee(t, "E2", nil)

	rows, err := s.reports.Roster(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada Lovelace", rows[0].FullName)
	assert.Equal(t, "Information Technology", rows[0].Department)
	assert.Equal(t, "Engineer", rows[0].Position)
	assert.Equal(t, "", rows[1].Department)
}

func TestAllPages(t *testing.T) {
	data := make([]int, 250)
	for i := range data {
		data[i] = i
	}
	calls := 0
	got, err := allPages(func(skip, limit int) ([]int, error) {
		calls++
		end := skip + limit
		if end > len(data) {
			end = len(data)
		}
		return data[skip:end], nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 250)
	assert.Equal(t, 3, calls)
}
