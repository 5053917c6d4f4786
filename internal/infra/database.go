package infra

import (
	"fmt"

	"jhris/internal/config"
	"jhris/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured database (postgres or sqlite) and, when
// DB_AUTO_MIGRATE is on, creates or updates every table before returning.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate {
		if err := RunMigrations(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Open connects without migrating. TranslateError lets the repository layer
// see gorm.ErrDuplicatedKey / ErrForeignKeyViolated instead of raw driver errors.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// sqlite allows a single writer; ":memory:" databases are also per connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}
	return db, nil
}

// RunMigrations creates or updates all tables, then applies the idempotent
// SQL patches GORM cannot express on its own.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Position{},
		&model.Employee{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// foreignKeys are added by applySchemaPatches. Models carry no GORM
// associations, so AutoMigrate never creates these constraints itself.
// The repositories null references before deleting, so these only back up
// the same rule.
var foreignKeys = []struct{ name, table, column, refTable string }{
	{"fk_departments_parent", "departments", "parent_department_id", "departments"},
	{"fk_departments_manager", "departments", "manager_id", "employees"},
	{"fk_positions_department", "positions", "department_id", "departments"},
	{"fk_employees_user", "employees", "user_id", "users"},
	{"fk_employees_department", "employees", "department_id", "departments"},
	{"fk_employees_position", "employees", "position_id", "positions"},
	{"fk_employees_manager", "employees", "manager_id", "employees"},
}

// applySchemaPatches runs idempotent DDL statements. Each one is guarded by an
// existence check so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		sql := fmt.Sprintf(`DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
    ALTER TABLE %[2]s
      ADD CONSTRAINT %[1]s FOREIGN KEY (%[3]s) REFERENCES %[4]s(id) ON DELETE SET NULL;
  END IF;
END $$`, fk.name, fk.table, fk.column, fk.refTable)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", fk.name, err)
		}
	}
	return nil
}
