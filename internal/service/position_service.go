package service

import (
	"context"
	"errors"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
)

type PositionService interface {
	List(ctx context.Context, params dto.ListParams) ([]dto.PositionResponse, error)
	Get(ctx context.Context, id uint) (dto.PositionResponse, error)
	Create(ctx context.Context, req dto.CreatePositionRequest) (dto.PositionResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdatePositionRequest) (dto.PositionResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type positionService struct {
	repo        repository.PositionRepository
	departments repository.DepartmentRepository
}

func NewPositionService(repo repository.PositionRepository, departments repository.DepartmentRepository) PositionService {
	return &positionService{repo: repo, departments: departments}
}

func mapPosition(p model.Position) dto.PositionResponse {
	return dto.PositionResponse{
		ID:           p.ID,
		Title:        p.Title,
		Code:         p.Code,
		Description:  p.Description,
		DepartmentID: p.DepartmentID,
		MinSalary:    p.MinSalary,
		MaxSalary:    p.MaxSalary,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (s *positionService) List(ctx context.Context, params dto.ListParams) ([]dto.PositionResponse, error) {
	list, err := s.repo.List(ctx, params.Skip, params.Limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PositionResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPosition(p))
	}
	return result, nil
}

func (s *positionService) Get(ctx context.Context, id uint) (dto.PositionResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.PositionResponse{}, err
	}
	return mapPosition(*p), nil
}

func (s *positionService) Create(ctx context.Context, req dto.CreatePositionRequest) (dto.PositionResponse, error) {
	if err := s.checkCodeFree(ctx, req.Code, 0); err != nil {
		return dto.PositionResponse{}, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return dto.PositionResponse{}, err
	}

	// Salary bounds are stored as given; min <= max is not enforced.
	p := &model.Position{
		Title:        req.Title,
		Code:         req.Code,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.PositionResponse{}, storeError(err, ErrDuplicatePositionCode)
	}
	return mapPosition(*p), nil
}

func (s *positionService) Update(ctx context.Context, id uint, req dto.UpdatePositionRequest) (dto.PositionResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.PositionResponse{}, err
	}

	if req.Code != nil && *req.Code != p.Code {
		if err := s.checkCodeFree(ctx, *req.Code, id); err != nil {
			return dto.PositionResponse{}, err
		}
	}
	if req.DepartmentID.Set {
		if err := s.checkDepartment(ctx, req.DepartmentID.Value); err != nil {
			return dto.PositionResponse{}, err
		}
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	req.Description.Apply(&p.Description)
	req.DepartmentID.Apply(&p.DepartmentID)
	req.MinSalary.Apply(&p.MinSalary)
	req.MaxSalary.Apply(&p.MaxSalary)

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.PositionResponse{}, updateError(err, ErrDuplicatePositionCode, ErrPositionNotFound)
	}
	return mapPosition(*p), nil
}

func (s *positionService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, storeError(err, nil)
	}
	return deleted, nil
}

func (s *positionService) find(ctx context.Context, id uint) (*model.Position, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *positionService) checkCodeFree(ctx context.Context, code string, selfID uint) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrDuplicatePositionCode
	}
	return nil
}

func (s *positionService) checkDepartment(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	return exists(ctx, "department_id", *departmentID, func(ctx context.Context, id uint) error {
		_, err := s.departments.FindByID(ctx, id)
		return err
	})
}
