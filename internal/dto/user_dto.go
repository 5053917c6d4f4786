package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type UpdateUserRequest struct {
	Email       *string `json:"email"        validate:"omitempty,email,max=255"`
	Password    *string `json:"password"     validate:"omitempty,min=8,max=72"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse is the public projection of a user; the password hash is
// never part of it.
type UserResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
