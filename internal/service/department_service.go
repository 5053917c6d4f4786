package service

import (
	"context"
	"errors"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
)

// DepartmentService defines business operations for departments.
type DepartmentService interface {
	List(ctx context.Context, params dto.ListParams) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id uint) (dto.DepartmentResponse, error)
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (dto.DepartmentResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) (dto.DepartmentResponse, error)
	// Delete reports false when the department does not exist.
	Delete(ctx context.Context, id uint) (bool, error)
	Employees(ctx context.Context, id uint, params dto.ListParams) ([]dto.EmployeeResponse, error)
}

// DepartmentOptions tunes policy that differs between the API and the CLI.
type DepartmentOptions struct {
	// DeleteGuard rejects deleting a department that still has active employees.
	DeleteGuard bool
}

type departmentService struct {
	repo      repository.DepartmentRepository
	employees repository.EmployeeRepository
	opts      DepartmentOptions
}

func NewDepartmentService(repo repository.DepartmentRepository, employees repository.EmployeeRepository, opts DepartmentOptions) DepartmentService {
	return &departmentService{repo: repo, employees: employees, opts: opts}
}

func mapDepartment(d model.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:                 d.ID,
		Name:               d.Name,
		Code:               d.Code,
		Description:        d.Description,
		ParentDepartmentID: d.ParentDepartmentID,
		ManagerID:          d.ManagerID,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (s *departmentService) List(ctx context.Context, params dto.ListParams) ([]dto.DepartmentResponse, error) {
	list, err := s.repo.List(ctx, params.Skip, params.Limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		result = append(result, mapDepartment(d))
	}
	return result, nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (dto.DepartmentResponse, error) {
	d, err := s.find(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}
	return mapDepartment(*d), nil
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (dto.DepartmentResponse, error) {
	if err := s.checkCodeFree(ctx, req.Code, 0); err != nil {
		return dto.DepartmentResponse{}, err
	}
	if err := s.checkReferences(ctx, req.ParentDepartmentID, req.ManagerID); err != nil {
		return dto.DepartmentResponse{}, err
	}

	d := &model.Department{
		Name:               req.Name,
		Code:               req.Code,
		Description:        req.Description,
		ParentDepartmentID: req.ParentDepartmentID,
		ManagerID:          req.ManagerID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return dto.DepartmentResponse{}, storeError(err, ErrDuplicateDepartmentCode)
	}
	return mapDepartment(*d), nil
}

func (s *departmentService) Update(ctx context.Context, id uint, req dto.UpdateDepartmentRequest) (dto.DepartmentResponse, error) {
	d, err := s.find(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, err
	}

	if req.Code != nil && *req.Code != d.Code {
		if err := s.checkCodeFree(ctx, *req.Code, id); err != nil {
			return dto.DepartmentResponse{}, err
		}
	}
	var parentID, managerID *uint
	if req.ParentDepartmentID.Set {
		parentID = req.ParentDepartmentID.Value
	}
	if req.ManagerID.Set {
		managerID = req.ManagerID.Value
	}
	if err := s.checkReferences(ctx, parentID, managerID); err != nil {
		return dto.DepartmentResponse{}, err
	}
	if parentID != nil {
		cycle, err := wouldCreateCycle(ctx, id, *parentID, s.parentOf)
		if err != nil {
			return dto.DepartmentResponse{}, err
		}
		if cycle {
			return dto.DepartmentResponse{}, &HierarchyCycleError{Field: "parent_department_id"}
		}
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Code != nil {
		d.Code = *req.Code
	}
	req.Description.Apply(&d.Description)
	req.ParentDepartmentID.Apply(&d.ParentDepartmentID)
	req.ManagerID.Apply(&d.ManagerID)

	if err := s.repo.Update(ctx, d); err != nil {
		return dto.DepartmentResponse{}, updateError(err, ErrDuplicateDepartmentCode, ErrDepartmentNotFound)
	}
	return mapDepartment(*d), nil
}

func (s *departmentService) Delete(ctx context.Context, id uint) (bool, error) {
	if s.opts.DeleteGuard {
		active, err := s.employees.CountActiveInDepartment(ctx, id)
		if err != nil {
			return false, err
		}
		if active > 0 {
			return false, &DepartmentInUseError{ActiveEmployees: active}
		}
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeError(err, nil)
	}
	return deleted, nil
}

func (s *departmentService) Employees(ctx context.Context, id uint, params dto.ListParams) ([]dto.EmployeeResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	list, err := s.employees.List(ctx, dto.EmployeeFilter{ListParams: params, DepartmentID: &id})
	if err != nil {
		return nil, err
	}
	return mapEmployees(list), nil
}

func (s *departmentService) find(ctx context.Context, id uint) (*model.Department, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *departmentService) parentOf(ctx context.Context, id uint) (*uint, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.ParentDepartmentID, nil
}

// checkCodeFree fails when code belongs to a department other than selfID.
func (s *departmentService) checkCodeFree(ctx context.Context, code string, selfID uint) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrDuplicateDepartmentCode
	}
	return nil
}

func (s *departmentService) checkReferences(ctx context.Context, parentID, managerID *uint) error {
	if parentID != nil {
		if err := exists(ctx, "parent_department_id", *parentID, func(ctx context.Context, id uint) error {
			_, err := s.repo.FindByID(ctx, id)
			return err
		}); err != nil {
			return err
		}
	}
	if managerID != nil {
		if err := exists(ctx, "manager_id", *managerID, func(ctx context.Context, id uint) error {
			_, err := s.employees.FindByID(ctx, id)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}
