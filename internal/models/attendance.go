package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance records presence or absence of a student in a course on a
// calendar day. AttendanceDate keeps the full timestamp of the mark;
// AttendanceDay carries the date component only and backs the composite
// unique index that makes one-mark-per-day authoritative at the storage
// layer. The service duplicate check stays as the friendlier error path.
type Attendance struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	StudentID      uint           `json:"student_id" gorm:"not null;index;uniqueIndex:idx_attendance_student_course_day" validate:"required"`
	CourseID       uint           `json:"course_id" gorm:"not null;index;uniqueIndex:idx_attendance_student_course_day" validate:"required"`
	AttendanceDate time.Time      `json:"attendance_date" gorm:"not null;index" validate:"required"`
	AttendanceDay  datatypes.Date `json:"-" gorm:"not null;uniqueIndex:idx_attendance_student_course_day"`
	IsPresent      bool           `json:"is_present" gorm:"not null;default:true"`
	Remarks        *string        `json:"remarks" gorm:"size:255" validate:"omitempty,max=255"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relations
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// DayOf truncates a timestamp to its calendar date in UTC.
func DayOf(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
