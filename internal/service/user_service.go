package service

import (
	"context"
	"errors"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
	"jhris/internal/security"
)

// UserService is the user directory: account lookup and administration.
type UserService interface {
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	List(ctx context.Context, params dto.ListParams) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (dto.UserResponse, error)
	// EnsureSuperuser creates the account or resets its password and flags.
	// created reports whether a new row was inserted.
	EnsureSuperuser(ctx context.Context, email, password string) (user dto.UserResponse, created bool, err error)
}

type userService struct {
	repo        repository.UserRepository
	credentials *security.CredentialStore
}

func NewUserService(repo repository.UserRepository, credentials *security.CredentialStore) UserService {
	return &userService{repo: repo, credentials: credentials}
}

func mapUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (s *userService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return mapUser(*u), nil
}

func (s *userService) List(ctx context.Context, params dto.ListParams) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx, params.Skip, params.Limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapUser(u)
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != u.Email {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return dto.UserResponse{}, err
		}
		if existing != nil {
			return dto.UserResponse{}, ErrDuplicateEmail
		}
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := s.credentials.Hash(*req.Password)
		if err != nil {
			return dto.UserResponse{}, err
		}
		u.HashedPassword = hash
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		u.IsSuperuser = *req.IsSuperuser
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return dto.UserResponse{}, updateError(err, ErrDuplicateEmail, ErrUserNotFound)
	}
	return mapUser(*u), nil
}

func (s *userService) EnsureSuperuser(ctx context.Context, email, password string) (dto.UserResponse, bool, error) {
	hash, err := s.credentials.Hash(password)
	if err != nil {
		return dto.UserResponse{}, false, err
	}

	u, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &model.User{Email: email, HashedPassword: hash, IsActive: true, IsSuperuser: true}
		if err := s.repo.Create(ctx, u); err != nil {
			return dto.UserResponse{}, false, storeError(err, ErrDuplicateEmail)
		}
		return mapUser(*u), true, nil
	case err != nil:
		return dto.UserResponse{}, false, err
	}

	u.HashedPassword = hash
	u.IsActive = true
	u.IsSuperuser = true
	if err := s.repo.Update(ctx, u); err != nil {
		return dto.UserResponse{}, false, err
	}
	return mapUser(*u), false, nil
}

func (s *userService) find(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
