package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePositionRequest struct {
	Title        string           `json:"title"         validate:"required,max=255"`
	Code         string           `json:"code"          validate:"required,max=50"`
	Description  *string          `json:"description"`
	DepartmentID *uint            `json:"department_id" validate:"omitempty,min=1"`
	MinSalary    *decimal.Decimal `json:"min_salary"    validate:"omitempty,gte=0"`
	MaxSalary    *decimal.Decimal `json:"max_salary"    validate:"omitempty,gte=0"`
}

type UpdatePositionRequest struct {
	Title        *string                   `json:"title"      validate:"omitempty,min=1,max=255"`
	Code         *string                   `json:"code"       validate:"omitempty,min=1,max=50"`
	Description  Optional[string]          `json:"description"`
	DepartmentID Optional[uint]            `json:"department_id"`
	MinSalary    Optional[decimal.Decimal] `json:"min_salary" validate:"omitempty,gte=0"`
	MaxSalary    Optional[decimal.Decimal] `json:"max_salary" validate:"omitempty,gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PositionResponse struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Code         string           `json:"code"`
	Description  *string          `json:"description"`
	DepartmentID *uint            `json:"department_id"`
	MinSalary    *decimal.Decimal `json:"min_salary"`
	MaxSalary    *decimal.Decimal `json:"max_salary"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
