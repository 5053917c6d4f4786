package repository

import (
	"context"
	"strings"

	"jhris/internal/dto"
	"jhris/internal/model"

	"gorm.io/gorm"
)

// StatusCount and DepartmentCount are aggregation rows for reports.
type StatusCount struct {
	Status model.EmploymentStatus
	Count  int64
}

type DepartmentCount struct {
	DepartmentID *uint
	Count        int64
}

// EmployeeRepository defines the data access contract for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByNumber(ctx context.Context, number string) (*model.Employee, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error)
	ListByManager(ctx context.Context, managerID uint) ([]model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id uint) (bool, error)

	CountActiveInDepartment(ctx context.Context, departmentID uint) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByDepartment(ctx context.Context) ([]DepartmentCount, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *employeeRepo) FindByNumber(ctx context.Context, number string) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.WithContext(ctx).Where("employee_number = ?", number).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})

	if filter.DepartmentID != nil {
		q = q.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.EmploymentStatus != "" {
		q = q.Where("employment_status = ?", filter.EmploymentStatus)
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + escapeLike(strings.ToLower(term)) + "%"
		q = q.Where(
			"(LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\')",
			like, like, like,
		)
	}

	var list []model.Employee
	err := q.Order("id asc").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, translate(err)
}

func (r *employeeRepo) ListByManager(ctx context.Context, managerID uint) ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Order("id asc").Find(&list).Error
	return list, translate(err)
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return updateRow(r.db.WithContext(ctx), e)
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteDetached(r.db.WithContext(ctx), &model.Employee{}, id, employeeReferences)
}

func (r *employeeRepo) CountActiveInDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("department_id = ? AND employment_status = ?", departmentID, model.StatusActive).
		Count(&n).Error
	return n, translate(err)
}

func (r *employeeRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Select("employment_status AS status, COUNT(*) AS count").
		Group("employment_status").
		Order("employment_status").
		Scan(&rows).Error
	return rows, translate(err)
}

func (r *employeeRepo) CountByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Select("department_id, COUNT(*) AS count").
		Group("department_id").
		Scan(&rows).Error
	return rows, translate(err)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
