package service

import (
	"errors"
	"fmt"
)

// Error categories. Handlers map them to status codes with errors.Is; the
// concrete values below carry the human readable detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrInactiveAccount    = errors.New("Inactive user")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrHierarchyCycle     = errors.New("hierarchy cycle")
	ErrDepartmentInUse    = errors.New("department in use")
)

// NotFoundError names the missing entity.
type NotFoundError struct{ Entity string }

func (e *NotFoundError) Error() string        { return e.Entity + " not found" }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

var (
	ErrUserNotFound       = &NotFoundError{Entity: "User"}
	ErrDepartmentNotFound = &NotFoundError{Entity: "Department"}
	ErrPositionNotFound   = &NotFoundError{Entity: "Position"}
	ErrEmployeeNotFound   = &NotFoundError{Entity: "Employee"}
)

// DuplicateKeyError reports a business unique key that is already taken.
type DuplicateKeyError struct {
	Field   string
	Message string
}

func (e *DuplicateKeyError) Error() string        { return e.Message }
func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

var (
	ErrDuplicateEmail          = &DuplicateKeyError{Field: "email", Message: "Email already registered"}
	ErrDuplicateDepartmentCode = &DuplicateKeyError{Field: "code", Message: "Department code already exists"}
	ErrDuplicatePositionCode   = &DuplicateKeyError{Field: "code", Message: "Position code already exists"}
	ErrDuplicateEmployeeNumber = &DuplicateKeyError{Field: "employee_number", Message: "Employee number already exists"}
)

// InvalidReferenceError is returned when a foreign id points nowhere.
// Field is empty when the store rejected the write without naming a column.
type InvalidReferenceError struct {
	Field string
	ID    uint
}

func (e *InvalidReferenceError) Error() string {
	if e.Field == "" {
		return "Referenced record does not exist"
	}
	return fmt.Sprintf("Invalid %s: %d does not exist", e.Field, e.ID)
}

func (e *InvalidReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// HierarchyCycleError is returned when a parent or manager assignment would
// make a record its own ancestor.
type HierarchyCycleError struct{ Field string }

func (e *HierarchyCycleError) Error() string {
	return fmt.Sprintf("Invalid %s: a record cannot be its own ancestor", e.Field)
}

func (e *HierarchyCycleError) Is(target error) bool { return target == ErrHierarchyCycle }

// DepartmentInUseError blocks deleting a department that still has active staff.
type DepartmentInUseError struct{ ActiveEmployees int64 }

func (e *DepartmentInUseError) Error() string {
	return fmt.Sprintf("Cannot delete department with %d active employee(s)", e.ActiveEmployees)
}

func (e *DepartmentInUseError) Is(target error) bool { return target == ErrDepartmentInUse }
