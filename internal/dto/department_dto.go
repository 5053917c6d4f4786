package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateDepartmentRequest struct {
	Name               string  `json:"name"                 validate:"required,max=255"`
	Code               string  `json:"code"                 validate:"required,max=50"`
	Description        *string `json:"description"`
	ParentDepartmentID *uint   `json:"parent_department_id" validate:"omitempty,min=1"`
	ManagerID          *uint   `json:"manager_id"           validate:"omitempty,min=1"`
}

// UpdateDepartmentRequest is a sparse patch: absent keys are left untouched,
// explicit nulls clear nullable columns.
type UpdateDepartmentRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Code               *string          `json:"code" validate:"omitempty,min=1,max=50"`
	Description        Optional[string] `json:"description"`
	ParentDepartmentID Optional[uint]   `json:"parent_department_id"`
	ManagerID          Optional[uint]   `json:"manager_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DepartmentResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Code               string    `json:"code"`
	Description        *string   `json:"description"`
	ParentDepartmentID *uint     `json:"parent_department_id"`
	ManagerID          *uint     `json:"manager_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
