package model

import "time"

// Department is a node of the organisation tree. ParentDepartmentID points to
// another department; ManagerID points to an employee.
type Department struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"type:varchar(255);not null"`
	Code               string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description        *string `gorm:"type:text"`
	ParentDepartmentID *uint   `gorm:"index"`
	ManagerID          *uint   `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Department) TableName() string { return "departments" }
