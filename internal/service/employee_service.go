package service

import (
	"context"
	"errors"
	"time"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
)

// EmployeeService defines business operations for employees.
type EmployeeService interface {
	List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (dto.EmployeeResponse, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// Subordinates lists direct reports only, not the transitive closure.
	Subordinates(ctx context.Context, managerID uint) ([]dto.EmployeeResponse, error)
}

// EmployeeRepos groups the repositories used for reference checks.
type EmployeeRepos struct {
	Employees   repository.EmployeeRepository
	Departments repository.DepartmentRepository
	Positions   repository.PositionRepository
	Users       repository.UserRepository
}

type employeeService struct {
	repo repository.EmployeeRepository
	refs EmployeeRepos
}

func NewEmployeeService(repos EmployeeRepos) EmployeeService {
	return &employeeService{repo: repos.Employees, refs: repos}
}

func mapEmployee(e model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               e.ID,
		EmployeeNumber:   e.EmployeeNumber,
		UserID:           e.UserID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		MiddleName:       e.MiddleName,
		DateOfBirth:      dto.DatePtr(e.DateOfBirth),
		Gender:           e.Gender,
		MaritalStatus:    e.MaritalStatus,
		Nationality:      e.Nationality,
		Email:            e.Email,
		PersonalEmail:    e.PersonalEmail,
		Phone:            e.Phone,
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		PostalCode:       e.PostalCode,
		Country:          e.Country,
		DepartmentID:     e.DepartmentID,
		PositionID:       e.PositionID,
		ManagerID:        e.ManagerID,
		HireDate:         dto.NewDate(e.HireDate),
		EmploymentStatus: e.EmploymentStatus,
		EmploymentType:   e.EmploymentType,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func mapEmployees(list []model.Employee) []dto.EmployeeResponse {
	result := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		result = append(result, mapEmployee(e))
	}
	return result
}

func (s *employeeService) List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapEmployees(list), nil
}

func (s *employeeService) Get(ctx context.Context, id uint) (dto.EmployeeResponse, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}
	return mapEmployee(*e), nil
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	if err := s.checkNumberFree(ctx, req.EmployeeNumber, 0); err != nil {
		return dto.EmployeeResponse{}, err
	}
	if err := s.checkReferences(ctx, references{
		user: req.UserID, department: req.DepartmentID, position: req.PositionID, manager: req.ManagerID,
	}); err != nil {
		return dto.EmployeeResponse{}, err
	}

	status := req.EmploymentStatus
	if status == "" {
		status = model.StatusActive
	}
	kind := req.EmploymentType
	if kind == "" {
		kind = model.TypeFullTime
	}
	var hireDate time.Time
	if req.HireDate != nil {
		hireDate = req.HireDate.Time
	}

	e := &model.Employee{
		EmployeeNumber:   req.EmployeeNumber,
		UserID:           req.UserID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MiddleName:       req.MiddleName,
		DateOfBirth:      dateValue(req.DateOfBirth),
		Gender:           req.Gender,
		MaritalStatus:    req.MaritalStatus,
		Nationality:      req.Nationality,
		Email:            req.Email,
		PersonalEmail:    req.PersonalEmail,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		DepartmentID:     req.DepartmentID,
		PositionID:       req.PositionID,
		ManagerID:        req.ManagerID,
		HireDate:         hireDate,
		EmploymentStatus: status,
		EmploymentType:   kind,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return dto.EmployeeResponse{}, storeError(err, ErrDuplicateEmployeeNumber)
	}
	return mapEmployee(*e), nil
}

func (s *employeeService) Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}

	if req.EmployeeNumber != nil && *req.EmployeeNumber != e.EmployeeNumber {
		if err := s.checkNumberFree(ctx, *req.EmployeeNumber, id); err != nil {
			return dto.EmployeeResponse{}, err
		}
	}
	var refs references
	if req.UserID.Set {
		refs.user = req.UserID.Value
	}
	if req.DepartmentID.Set {
		refs.department = req.DepartmentID.Value
	}
	if req.PositionID.Set {
		refs.position = req.PositionID.Value
	}
	if req.ManagerID.Set {
		refs.manager = req.ManagerID.Value
	}
	if err := s.checkReferences(ctx, refs); err != nil {
		return dto.EmployeeResponse{}, err
	}
	if refs.manager != nil {
		cycle, err := wouldCreateCycle(ctx, id, *refs.manager, s.managerOf)
		if err != nil {
			return dto.EmployeeResponse{}, err
		}
		if cycle {
			return dto.EmployeeResponse{}, &HierarchyCycleError{Field: "manager_id"}
		}
	}

	applyEmployeePatch(e, req)

	if err := s.repo.Update(ctx, e); err != nil {
		return dto.EmployeeResponse{}, updateError(err, ErrDuplicateEmployeeNumber, ErrEmployeeNotFound)
	}
	return mapEmployee(*e), nil
}

// applyEmployeePatch copies every field present in req onto e.
func applyEmployeePatch(e *model.Employee, req dto.UpdateEmployeeRequest) {
	if req.EmployeeNumber != nil {
		e.EmployeeNumber = *req.EmployeeNumber
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.HireDate != nil {
		e.HireDate = req.HireDate.Time
	}
	if req.EmploymentStatus != nil {
		e.EmploymentStatus = *req.EmploymentStatus
	}
	if req.EmploymentType != nil {
		e.EmploymentType = *req.EmploymentType
	}
	if req.DateOfBirth.Set {
		e.DateOfBirth = dateValue(req.DateOfBirth.Value)
	}

	req.UserID.Apply(&e.UserID)
	req.MiddleName.Apply(&e.MiddleName)
	req.Gender.Apply(&e.Gender)
	req.MaritalStatus.Apply(&e.MaritalStatus)
	req.Nationality.Apply(&e.Nationality)
	req.PersonalEmail.Apply(&e.PersonalEmail)
	req.Phone.Apply(&e.Phone)
	req.Address.Apply(&e.Address)
	req.City.Apply(&e.City)
	req.State.Apply(&e.State)
	req.PostalCode.Apply(&e.PostalCode)
	req.Country.Apply(&e.Country)
	req.DepartmentID.Apply(&e.DepartmentID)
	req.PositionID.Apply(&e.PositionID)
	req.ManagerID.Apply(&e.ManagerID)
}

func (s *employeeService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeError(err, nil)
	}
	return deleted, nil
}

func (s *employeeService) Subordinates(ctx context.Context, managerID uint) ([]dto.EmployeeResponse, error) {
	if _, err := s.find(ctx, managerID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapEmployees(list), nil
}

func (s *employeeService) find(ctx context.Context, id uint) (*model.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *employeeService) managerOf(ctx context.Context, id uint) (*uint, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.ManagerID, nil
}

func (s *employeeService) checkNumberFree(ctx context.Context, number string, selfID uint) error {
	existing, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrDuplicateEmployeeNumber
	}
	return nil
}

// references holds the foreign ids of an employee write; nil means unchecked.
type references struct {
	user, department, position, manager *uint
}

func (s *employeeService) checkReferences(ctx context.Context, refs references) error {
	checks := []struct {
		field string
		id    *uint
		find  func(context.Context, uint) error
	}{
		{"user_id", refs.user, func(ctx context.Context, id uint) error { _, err := s.refs.Users.FindByID(ctx, id); return err }},
		{"department_id", refs.department, func(ctx context.Context, id uint) error { _, err := s.refs.Departments.FindByID(ctx, id); return err }},
		{"position_id", refs.position, func(ctx context.Context, id uint) error { _, err := s.refs.Positions.FindByID(ctx, id); return err }},
		{"manager_id", refs.manager, func(ctx context.Context, id uint) error { _, err := s.repo.FindByID(ctx, id); return err }},
	}
	for _, c := range checks {
		if c.id == nil {
			continue
		}
		if err := exists(ctx, c.field, *c.id, c.find); err != nil {
			return err
		}
	}
	return nil
}

func dateValue(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
