package service

import (
	"context"
	"errors"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
	"jhris/internal/security"

	"github.com/rs/zerolog/log"
)

// AuthService orchestrates registration, login, token refresh and bearer
// authentication. Sessions are the tokens themselves; nothing is stored.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error)
	Login(ctx context.Context, email, password string) (dto.TokenResponse, error)
	// Refresh exchanges a refresh token for a new pair. Access tokens are
	// rejected, and earlier tokens stay valid until they expire.
	Refresh(ctx context.Context, refreshToken string) (dto.TokenResponse, error)
	// Authenticate resolves an access token to an active user.
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	users       repository.UserRepository
	credentials *security.CredentialStore
	tokens      *security.TokenIssuer
}

func NewAuthService(users repository.UserRepository, credentials *security.CredentialStore, tokens *security.TokenIssuer) AuthService {
	return &authService{users: users, credentials: credentials, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.UserResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dto.UserResponse{}, err
	}
	if existing != nil {
		return dto.UserResponse{}, ErrDuplicateEmail
	}

	hash, err := s.credentials.Hash(req.Password)
	if err != nil {
		return dto.UserResponse{}, err
	}
	u := &model.User{
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
		IsSuperuser:    false,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return dto.UserResponse{}, storeError(err, ErrDuplicateEmail)
	}

	log.Info().Uint("user_id", u.ID).Msg("user registered")
	return mapUser(*u), nil
}

// Login checks credentials before the active flag, so only callers holding
// the correct password learn that an account is inactive.
func (s *authService) Login(ctx context.Context, email, password string) (dto.TokenResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Msg("login failed: unknown email")
			return dto.TokenResponse{}, ErrInvalidCredentials
		}
		return dto.TokenResponse{}, err
	}
	if !s.credentials.Verify(password, u.HashedPassword) {
		log.Warn().Uint("user_id", u.ID).Msg("login failed: wrong password")
		return dto.TokenResponse{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return dto.TokenResponse{}, ErrInactiveAccount
	}
	return s.issue(u.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (dto.TokenResponse, error) {
	sub, err := s.tokens.Validate(refreshToken, security.RefreshToken)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	u, err := s.load(ctx, sub)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return s.issue(u.ID)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	sub, err := s.tokens.Validate(accessToken, security.AccessToken)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, sub)
}

// load returns the active user behind a token subject. A subject whose row
// is gone is treated as an invalid token.
func (s *authService) load(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, security.ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}
	return u, nil
}

func (s *authService) issue(userID uint) (dto.TokenResponse, error) {
	pair, err := s.tokens.IssuePair(userID)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
