package repository_test

import (
	"context"
	"testing"
	"time"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
	"jhris/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hired() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }

func newEmployee(number, first, last, email string) *model.Employee {
	return &model.Employee{
		EmployeeNumber:   number,
		FirstName:        first,
		LastName:         last,
		Email:            email,
		HireDate:         hired(),
		EmploymentStatus: model.StatusActive,
		EmploymentType:   model.TypeFullTime,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(testutil.NewSQLiteDB(t))

	u := &model.User{Email: "alice@x.com", HashedPassword: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	err := repo.Create(ctx, &model.User{Email: "alice@x.com", HashedPassword: "other"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	found, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "ALICE@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	found.IsSuperuser = true
	require.NoError(t, repo.Update(ctx, found))
	again, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, again.IsSuperuser)
	assert.True(t, again.IsActive)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDepartmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDepartmentRepository(testutil.NewSQLiteDB(t))

	for _, code := range []string{"IT", "HR", "OPS"} {
		require.NoError(t, repo.Create(ctx, &model.Department{Name: code + " dept", Code: code}))
	}
	err := repo.Create(ctx, &model.Department{Name: "Info Tech", Code: "IT"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "HR", page[0].Code)

	byCode, err := repo.FindByCode(ctx, "OPS")
	require.NoError(t, err)

	desc := "operations"
	byCode.Description = &desc
	require.NoError(t, repo.Update(ctx, byCode))
	reloaded, err := repo.FindByID(ctx, byCode.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Description)
	assert.Equal(t, "operations", *reloaded.Description)

	hr, err := repo.FindByCode(ctx, "HR")
	require.NoError(t, err)
	hr.Code = "IT"
	assert.ErrorIs(t, repo.Update(ctx, hr), repository.ErrDuplicateKey)

	deleted, err := repo.Delete(ctx, byCode.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, byCode.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPositionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPositionRepository(testutil.NewSQLiteDB(t))

	p := &model.Position{Title: "Engineer", Code: "ENG"}
	require.NoError(t, repo.Create(ctx, p))
	assert.ErrorIs(t, repo.Create(ctx, &model.Position{Title: "Other", Code: "ENG"}), repository.ErrDuplicateKey)

	found, err := repo.FindByCode(ctx, "ENG")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = repo.FindByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeeRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	departments := repository.NewDepartmentRepository(db)
	repo := repository.NewEmployeeRepository(db)

	it := &model.Department{Name: "IT", Code: "IT"}
	require.NoError(t, departments.Create(ctx, it))

	ann := newEmployee("E1", "Ann", "Lee", "ann@x.com")
	ann.DepartmentID = &it.ID
	bob := newEmployee("E2", "Bob", "Stone", "bob_s@x.com")
	bob.DepartmentID = &it.ID
	bob.EmploymentStatus = model.StatusOnLeave
	cy := newEmployee("E3", "Cy", "Annable", "cy@x.com")
	for _, e := range []*model.Employee{ann, bob, cy} {
		require.NoError(t, repo.Create(ctx, e))
	}
	assert.ErrorIs(t, repo.Create(ctx, newEmployee("E1", "Dup", "Dup", "d@x.com")), repository.ErrDuplicateKey)

	list := func(f dto.EmployeeFilter) []string {
		t.Helper()
		if f.Limit == 0 {
			f.Limit = 100
		}
		rows, err := repo.List(ctx, f)
		require.NoError(t, err)
		numbers := make([]string, 0, len(rows))
		for _, r := range rows {
			numbers = append(numbers, r.EmployeeNumber)
		}
		return numbers
	}

	assert.Equal(t, []string{"E1", "E2", "E3"}, list(dto.EmployeeFilter{}))
	assert.Equal(t, []string{"E1", "E2"}, list(dto.EmployeeFilter{DepartmentID: &it.ID}))
	assert.Equal(t, []string{"E2"}, list(dto.EmployeeFilter{EmploymentStatus: "on_leave"}))
	assert.Equal(t, []string{"E1", "E3"}, list(dto.EmployeeFilter{Query: "ANN"}))
	assert.Equal(t, []string{"E2"}, list(dto.EmployeeFilter{Query: "b_s"}))
	assert.Empty(t, list(dto.EmployeeFilter{Query: "%"}))
	assert.Equal(t, []string{"E1"}, list(dto.EmployeeFilter{DepartmentID: &it.ID, Query: "ann"}))
	assert.Equal(t, []string{"E2"}, list(dto.EmployeeFilter{ListParams: dto.ListParams{Skip: 1, Limit: 1}}))

	found, err := repo.FindByNumber(ctx, "E3")
	require.NoError(t, err)
	assert.Equal(t, hired(), found.HireDate.UTC())
}

func TestEmployeeRepositoryCounts(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	departments := repository.NewDepartmentRepository(db)
	repo := repository.NewEmployeeRepository(db)

	ops := &model.Department{Name: "Ops", Code: "OPS"}
	require.NoError(t, departments.Create(ctx, ops))

	boss := newEmployee("E1", "Grace", "Hopper", "grace@x.com")
	boss.DepartmentID = &ops.ID
	require.NoError(t, repo.Create(ctx, boss))

	report := newEmployee("E2", "Linus", "T", "linus@x.com")
	report.DepartmentID = &ops.ID
	report.ManagerID = &boss.ID
	report.EmploymentStatus = model.StatusTerminated
	require.NoError(t, repo.Create(ctx, report))

	loner := newEmployee("E3", "Ken", "T", "ken@x.com")
	require.NoError(t, repo.Create(ctx, loner))

	active, err := repo.CountActiveInDepartment(ctx, ops.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []repository.StatusCount{
		{Status: model.StatusActive, Count: 2},
		{Status: model.StatusTerminated, Count: 1},
	}, byStatus)

	byDept, err := repo.CountByDepartment(ctx)
	require.NoError(t, err)
	counts := map[uint]int64{}
	var unassigned int64
	for _, row := range byDept {
		if row.DepartmentID == nil {
			unassigned = row.Count
			continue
		}
		counts[*row.DepartmentID] = row.Count
	}
	assert.Equal(t, int64(2), counts[ops.ID])
	assert.Equal(t, int64(1), unassigned)

	subs, err := repo.ListByManager(ctx, boss.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "E2", subs[0].EmployeeNumber)

	deleted, err := repo.Delete(ctx, loner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = repo.FindByID(ctx, loner.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateDeletedRowIsNotFound(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	departments := repository.NewDepartmentRepository(db)
	employees := repository.NewEmployeeRepository(db)

	d := &model.Department{Name: "IT", Code: "IT"}
	require.NoError(t, departments.Create(ctx, d))
	deleted, err := departments.Delete(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	d.Name = "Info Tech"
	assert.ErrorIs(t, departments.Update(ctx, d), repository.ErrNotFound)
	_, err = departments.FindByID(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	e := newEmployee("E1", "Ann", "Lee", "ann@x.com")
	require.NoError(t, employees.Create(ctx, e))
	_, err = employees.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, employees.Update(ctx, e), repository.ErrNotFound)
	_, err = employees.FindByNumber(ctx, "E1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteNullsReferences(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	departments := repository.NewDepartmentRepository(db)
	positions := repository.NewPositionRepository(db)
	employees := repository.NewEmployeeRepository(db)

	parent := &model.Department{Name: "IT", Code: "IT"}
	require.NoError(t, departments.Create(ctx, parent))
	child := &model.Department{Name: "Apps", Code: "APP", ParentDepartmentID: &parent.ID}
	require.NoError(t, departments.Create(ctx, child))
	pos := &model.Position{Title: "Engineer", Code: "ENG", DepartmentID: &parent.ID}
	require.NoError(t, positions.Create(ctx, pos))

	boss := newEmployee("B1", "Ann", "Lee", "ann@x.com")
	require.NoError(t, employees.Create(ctx, boss))
	child.ManagerID = &boss.ID
	require.NoError(t, departments.Update(ctx, child))
	report := newEmployee("R1", "Bob", "Ray", "bob@x.com")
	report.ManagerID = &boss.ID
	report.DepartmentID = &parent.ID
	report.PositionID = &pos.ID
	require.NoError(t, employees.Create(ctx, report))

	_, err := employees.Delete(ctx, boss.ID)
	require.NoError(t, err)
	got, err := employees.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ManagerID)
	gotChild, err := departments.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, gotChild.ManagerID)

	_, err = positions.Delete(ctx, pos.ID)
	require.NoError(t, err)
	_, err = departments.Delete(ctx, parent.ID)
	require.NoError(t, err)

	got, err = employees.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PositionID)
	assert.Nil(t, got.DepartmentID)
	gotChild, err = departments.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, gotChild.ParentDepartmentID)

	counts, err := employees.CountByDepartment(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Nil(t, counts[0].DepartmentID)
	assert.Equal(t, int64(1), counts[0].Count)
}
