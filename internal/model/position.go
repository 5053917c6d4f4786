package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is a job title, optionally scoped to a department.
// No ordering is enforced between MinSalary and MaxSalary.
type Position struct {
	ID           uint             `gorm:"primaryKey"`
	Title        string           `gorm:"type:varchar(255);not null"`
	Code         string           `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description  *string          `gorm:"type:text"`
	DepartmentID *uint            `gorm:"index"`
	MinSalary    *decimal.Decimal `gorm:"type:numeric(10,2)"`
	MaxSalary    *decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Position) TableName() string { return "positions" }
