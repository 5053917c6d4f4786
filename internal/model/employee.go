package model

import "time"

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusInactive   EmploymentStatus = "inactive"
	StatusTerminated EmploymentStatus = "terminated"
	StatusOnLeave    EmploymentStatus = "on_leave"
)

// EmploymentStatuses lists every status in display order.
var EmploymentStatuses = []EmploymentStatus{StatusActive, StatusInactive, StatusTerminated, StatusOnLeave}

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated, StatusOnLeave:
		return true
	}
	return false
}

type EmploymentType string

const (
	TypeFullTime EmploymentType = "full_time"
	TypePartTime EmploymentType = "part_time"
	TypeContract EmploymentType = "contract"
	TypeIntern   EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeIntern:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Employee is a person employed by the organisation. EmployeeNumber is the
// business key; Email is intentionally not unique.
type Employee struct {
	ID             uint   `gorm:"primaryKey"`
	EmployeeNumber string `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID         *uint  `gorm:"index"`

	FirstName     string         `gorm:"type:varchar(100);not null"`
	LastName      string         `gorm:"type:varchar(100);not null"`
	MiddleName    *string        `gorm:"type:varchar(100)"`
	DateOfBirth   *time.Time     `gorm:"type:date"`
	Gender        *Gender        `gorm:"type:varchar(20)"`
	MaritalStatus *MaritalStatus `gorm:"type:varchar(20)"`
	Nationality   *string        `gorm:"type:varchar(100)"`

	Email         string  `gorm:"type:varchar(255);not null;index"`
	PersonalEmail *string `gorm:"type:varchar(255)"`
	Phone         *string `gorm:"type:varchar(20)"`

	Address    *string `gorm:"type:varchar(255)"`
	City       *string `gorm:"type:varchar(100)"`
	State      *string `gorm:"type:varchar(100)"`
	PostalCode *string `gorm:"type:varchar(20)"`
	Country    *string `gorm:"type:varchar(100)"`

	DepartmentID     *uint            `gorm:"index"`
	PositionID       *uint            `gorm:"index"`
	ManagerID        *uint            `gorm:"index"`
	HireDate         time.Time        `gorm:"type:date;not null"`
	EmploymentStatus EmploymentStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	EmploymentType   EmploymentType   `gorm:"type:varchar(20);not null;default:'full_time'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string { return "employees" }

// FullName joins first and last name.
func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }
