package models

import (
	"time"
)

type Course struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"uniqueIndex;not null;size:150" validate:"required,min=1,max=150"`
	Code        string  `json:"code" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Description *string `json:"description" gorm:"type:text"`
	Credits     int     `json:"credits" gorm:"not null;default:3" validate:"min=1,max=10"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relations
	Students    []Student    `json:"students,omitempty" gorm:"many2many:student_courses"`
	Attendances []Attendance `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string {
	return "courses"
}
