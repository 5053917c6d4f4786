package model

import "time"

// User is an account that can authenticate against the API.
// Email is matched case-sensitively, exactly as stored.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	IsActive       bool   `gorm:"not null"`
	IsSuperuser    bool   `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string { return "users" }
