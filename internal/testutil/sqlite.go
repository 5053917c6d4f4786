package testutil

import (
	"testing"

	"jhris/internal/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB returns a migrated in-memory sqlite database that lives for
// the duration of the test.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
