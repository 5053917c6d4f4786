package infra

import (
	"bytes"
	"testing"
	"time"

	"jhris/internal/config"
	"jhris/internal/dto"
	"jhris/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLiteMigrates(t *testing.T) {
	db, err := NewDatabase(&config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:", DBAutoMigrate: true})
	require.NoError(t, err)

	for _, m := range []interface{}{&model.User{}, &model.Department{}, &model.Position{}, &model.Employee{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	// Re-running is a no-op.
	require.NoError(t, RunMigrations(db))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.Error(t, err)
}

func TestNewRedis_EmptyURLDisabled(t *testing.T) {
	rdb, err := NewRedis("")
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis("not-a-url")
	assert.Error(t, err)
}

func TestWriteHeadcountPDF(t *testing.T) {
	report := &dto.HeadcountReport{
		TotalEmployees:    3,
		ActiveEmployees:   2,
		InactiveEmployees: 1,
		TotalDepartments:  1,
		ByStatus:          map[string]int64{"active": 2, "on_leave": 1},
		ByDepartment:      []dto.DepartmentHeadcount{{DepartmentID: 1, Code: "IT", Name: "Information Technology", Employees: 2}},
		Unassigned:        1,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeadcountPDF(&buf, "JHRIS", report, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestStatusOrder(t *testing.T) {
	got := statusOrder(map[string]int64{"on_leave": 1, "active": 2})
	assert.Equal(t, []string{"active", "on_leave"}, got)
}

func TestNewRosterWorkbook(t *testing.T) {
	rows := []dto.RosterRow{
		{EmployeeNumber: "E1", FullName: "Ada Lovelace", Email: "ada@x.com", Department: "IT", Position: "Engineer",
			EmploymentStatus: "active", EmploymentType: "full_time", HireDate: dto.NewDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))},
	}

	f, err := NewRosterWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(RosterSheet)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rosterHeaders, got[0])
	assert.Equal(t, []string{"E1", "Ada Lovelace", "ada@x.com", "IT", "Engineer", "active", "full_time", "2020-01-02"}, got[1])
}
