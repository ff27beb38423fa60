package services

import "errors"

// Sentinel errors raised by the domain services. Handlers translate
// them to HTTP statuses with errors.Is.
var (
	// Not-found family
	ErrAdminNotFound      = errors.New("admin not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// Unique-constraint family, named per field
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateCourseName = errors.New("course name already exists")
	ErrDuplicateCourseCode = errors.New("course code already exists")

	// One attendance mark per student per course per calendar day
	ErrDuplicateAttendance = errors.New("attendance already marked for this student on this date")

	ErrValidationFailed = errors.New("validation failed")
)
