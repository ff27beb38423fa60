package models

import (
	"time"
)

// Admin is the single privileged actor type. Passwords are stored as
// bcrypt hashes and never serialized.
type Admin struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Username       string  `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Email          string  `json:"email" gorm:"uniqueIndex;not null;size:120" validate:"required,email"`
	HashedPassword string  `json:"-" gorm:"not null;size:255"`
	IsActive       bool    `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Admin) TableName() string {
	return "admins"
}
