package dto

import (
	"time"

	"jhris/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required,max=50"`
	UserID         *uint  `json:"user_id"         validate:"omitempty,min=1"`

	FirstName     string               `json:"first_name"     validate:"required,max=100"`
	LastName      string               `json:"last_name"      validate:"required,max=100"`
	MiddleName    *string              `json:"middle_name"    validate:"omitempty,max=100"`
	DateOfBirth   *Date                `json:"date_of_birth"`
	Gender        *model.Gender        `json:"gender"         validate:"omitempty,oneof=male female other prefer_not_to_say"`
	MaritalStatus *model.MaritalStatus `json:"marital_status" validate:"omitempty,oneof=single married divorced widowed"`
	Nationality   *string              `json:"nationality"    validate:"omitempty,max=100"`

	Email         string  `json:"email"          validate:"required,email,max=255"`
	PersonalEmail *string `json:"personal_email" validate:"omitempty,email,max=255"`
	Phone         *string `json:"phone"          validate:"omitempty,max=20"`

	Address    *string `json:"address"     validate:"omitempty,max=255"`
	City       *string `json:"city"        validate:"omitempty,max=100"`
	State      *string `json:"state"       validate:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=20"`
	Country    *string `json:"country"     validate:"omitempty,max=100"`

	DepartmentID     *uint                  `json:"department_id"     validate:"omitempty,min=1"`
	PositionID       *uint                  `json:"position_id"       validate:"omitempty,min=1"`
	ManagerID        *uint                  `json:"manager_id"        validate:"omitempty,min=1"`
	HireDate         *Date                  `json:"hire_date"         validate:"required"`
	EmploymentStatus model.EmploymentStatus `json:"employment_status" validate:"omitempty,oneof=active inactive terminated on_leave"`
	EmploymentType   model.EmploymentType   `json:"employment_type"   validate:"omitempty,oneof=full_time part_time contract intern"`
}

// UpdateEmployeeRequest is a sparse patch. Pointer fields map to required
// columns (null is ignored); Optional fields map to nullable columns.
type UpdateEmployeeRequest struct {
	EmployeeNumber *string        `json:"employee_number" validate:"omitempty,min=1,max=50"`
	UserID         Optional[uint] `json:"user_id"`

	FirstName     *string                       `json:"first_name"     validate:"omitempty,min=1,max=100"`
	LastName      *string                       `json:"last_name"      validate:"omitempty,min=1,max=100"`
	MiddleName    Optional[string]              `json:"middle_name"    validate:"omitempty,max=100"`
	DateOfBirth   Optional[Date]                `json:"date_of_birth"`
	Gender        Optional[model.Gender]        `json:"gender"         validate:"omitempty,oneof=male female other prefer_not_to_say"`
	MaritalStatus Optional[model.MaritalStatus] `json:"marital_status" validate:"omitempty,oneof=single married divorced widowed"`
	Nationality   Optional[string]              `json:"nationality"    validate:"omitempty,max=100"`

	Email         *string          `json:"email"          validate:"omitempty,email,max=255"`
	PersonalEmail Optional[string] `json:"personal_email" validate:"omitempty,email,max=255"`
	Phone         Optional[string] `json:"phone"          validate:"omitempty,max=20"`

	Address    Optional[string] `json:"address"     validate:"omitempty,max=255"`
	City       Optional[string] `json:"city"        validate:"omitempty,max=100"`
	State      Optional[string] `json:"state"       validate:"omitempty,max=100"`
	PostalCode Optional[string] `json:"postal_code" validate:"omitempty,max=20"`
	Country    Optional[string] `json:"country"     validate:"omitempty,max=100"`

	DepartmentID     Optional[uint]          `json:"department_id"`
	PositionID       Optional[uint]          `json:"position_id"`
	ManagerID        Optional[uint]          `json:"manager_id"`
	HireDate         *Date                   `json:"hire_date"`
	EmploymentStatus *model.EmploymentStatus `json:"employment_status" validate:"omitempty,oneof=active inactive terminated on_leave"`
	EmploymentType   *model.EmploymentType   `json:"employment_type"   validate:"omitempty,oneof=full_time part_time contract intern"`
}

type EmployeeFilter struct {
	ListParams
	DepartmentID     *uint  `form:"department_id"     validate:"omitempty,min=1"`
	EmploymentStatus string `form:"employment_status" validate:"omitempty,oneof=active inactive terminated on_leave"`
	Query            string `form:"q"                 validate:"max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmployeeResponse struct {
	ID             uint   `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	UserID         *uint  `json:"user_id"`

	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	MiddleName    *string              `json:"middle_name"`
	DateOfBirth   *Date                `json:"date_of_birth"`
	Gender        *model.Gender        `json:"gender"`
	MaritalStatus *model.MaritalStatus `json:"marital_status"`
	Nationality   *string              `json:"nationality"`

	Email         string  `json:"email"`
	PersonalEmail *string `json:"personal_email"`
	Phone         *string `json:"phone"`

	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`

	DepartmentID     *uint                  `json:"department_id"`
	PositionID       *uint                  `json:"position_id"`
	ManagerID        *uint                  `json:"manager_id"`
	HireDate         Date                   `json:"hire_date"`
	EmploymentStatus model.EmploymentStatus `json:"employment_status"`
	EmploymentType   model.EmploymentType   `json:"employment_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
