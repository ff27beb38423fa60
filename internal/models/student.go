package models

import (
	"time"
)

type Student struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LastName       string    `json:"last_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:120" validate:"required,email"`
	Phone          *string   `json:"phone" gorm:"size:15" validate:"omitempty,max=15"`
	Address        *string   `json:"address" gorm:"type:text"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"autoCreateTime"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relations
	Courses     []Course     `json:"courses,omitempty" gorm:"many2many:student_courses"`
	Attendances []Attendance `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

func (Student) TableName() string {
	return "students"
}

// FullName is used in attendance reports and page rendering.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
