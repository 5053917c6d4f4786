package repository

import (
	"jhris/internal/model"

	"gorm.io/gorm"
)

// reference is a nullable column pointing at another row.
type reference struct {
	table  any
	column string
}

// Columns nulled before the referenced row is deleted, so surviving rows
// never point at a missing record regardless of the driver's FK support.
var (
	departmentReferences = []reference{
		{&model.Department{}, "parent_department_id"},
		{&model.Position{}, "department_id"},
		{&model.Employee{}, "department_id"},
	}
	positionReferences = []reference{
		{&model.Employee{}, "position_id"},
	}
	employeeReferences = []reference{
		{&model.Department{}, "manager_id"},
		{&model.Employee{}, "manager_id"},
	}
)

// deleteDetached nulls every reference to id and deletes the row in one
// transaction. It reports false when no row had the given id.
func deleteDetached(tx *gorm.DB, row any, id uint, refs []reference) (bool, error) {
	var deleted bool
	err := tx.Transaction(func(tx *gorm.DB) error {
		for _, ref := range refs {
			if err := tx.Model(ref.table).
				Where(ref.column+" = ?", id).
				UpdateColumn(ref.column, gorm.Expr("NULL")).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(row, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translate(err)
	}
	return deleted, nil
}

// updateRow writes every column of row. An UPDATE that matches nothing means
// the row was deleted after it was read, so it is never re-inserted.
func updateRow(tx *gorm.DB, row any) error {
	res := tx.Model(row).Select("*").Updates(row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
