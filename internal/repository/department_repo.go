package repository

import (
	"context"

	"jhris/internal/model"

	"gorm.io/gorm"
)

// DepartmentRepository defines CRUD operations for Department.
type DepartmentRepository interface {
	Create(ctx context.Context, d *model.Department) error
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	FindByCode(ctx context.Context, code string) (*model.Department, error)
	List(ctx context.Context, skip, limit int) ([]model.Department, error)
	Update(ctx context.Context, d *model.Department) error
	// Delete nulls every reference to the department, then removes it.
	// It reports false when no row had the given id.
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type departmentRepo struct{ db *gorm.DB }

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository { return &departmentRepo{db: db} }

func (r *departmentRepo) Create(ctx context.Context, d *model.Department) error {
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *departmentRepo) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var d model.Department
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *departmentRepo) FindByCode(ctx context.Context, code string) (*model.Department, error) {
	var d model.Department
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *departmentRepo) List(ctx context.Context, skip, limit int) ([]model.Department, error) {
	var list []model.Department
	err := r.db.WithContext(ctx).Order("id asc").Offset(skip).Limit(limit).Find(&list).Error
	return list, translate(err)
}

func (r *departmentRepo) Update(ctx context.Context, d *model.Department) error {
	return updateRow(r.db.WithContext(ctx), d)
}

func (r *departmentRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteDetached(r.db.WithContext(ctx), &model.Department{}, id, departmentReferences)
}

func (r *departmentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Department{}).Count(&n).Error
	return n, translate(err)
}
