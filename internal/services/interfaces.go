package services

import (
	"context"
	"time"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
)

// ===== PAGINATION =====

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ClampLimit applies the default and maximum page sizes.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ===== ADMIN DTOs =====

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminUpdateRequest carries optional fields: nil means "leave
// untouched", a non-nil pointer overwrites the stored value.
type AdminUpdateRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// ===== STUDENT DTOs =====

type StudentCreateRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=15"`
	Address   *string `json:"address"`
}

type StudentUpdateRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=15"`
	Address   *string `json:"address"`
}

type StudentListResponse struct {
	Students []models.Student `json:"students"`
	Total    int64            `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// ===== COURSE DTOs =====

type CourseCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Code        string  `json:"code" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	Credits     int     `json:"credits" validate:"omitempty,min=1,max=10"`
}

type CourseUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits" validate:"omitempty,min=1,max=10"`
}

type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Total   int64           `json:"total"`
	Skip    int             `json:"skip"`
	Limit   int             `json:"limit"`
}

// ===== ATTENDANCE DTOs =====

type AttendanceCreateRequest struct {
	StudentID      uint      `json:"student_id" validate:"required"`
	CourseID       uint      `json:"course_id" validate:"required"`
	AttendanceDate time.Time `json:"attendance_date" validate:"required"`
	IsPresent      *bool     `json:"is_present"`
	Remarks        *string   `json:"remarks" validate:"omitempty,max=255"`
}

type AttendanceUpdateRequest struct {
	IsPresent *bool   `json:"is_present"`
	Remarks   *string `json:"remarks" validate:"omitempty,max=255"`
}

type AttendanceReport struct {
	StudentID            uint    `json:"student_id"`
	StudentName          string  `json:"student_name"`
	CourseID             uint    `json:"course_id"`
	CourseName           string  `json:"course_name"`
	TotalClasses         int     `json:"total_classes"`
	AttendedClasses      int     `json:"attended_classes"`
	AbsentClasses        int     `json:"absent_classes"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// ===== SERVICE INTERFACES =====

type AdminService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Admin, error)
	// Authenticate returns (nil, nil) for unknown usernames and wrong
	// passwords alike; callers translate nil into a credential failure.
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
	Update(ctx context.Context, id uint, req AdminUpdateRequest) (*models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
}

type StudentService interface {
	Create(ctx context.Context, req StudentCreateRequest) (*models.Student, error)
	Get(ctx context.Context, id uint) (*models.Student, error)
	List(ctx context.Context, skip, limit int, search string) (*StudentListResponse, error)
	Update(ctx context.Context, id uint, req StudentUpdateRequest) (*models.Student, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// Enroll and Unenroll return false, not an error, when the pairing
	// already exists / does not exist.
	Enroll(ctx context.Context, studentID, courseID uint) (bool, error)
	Unenroll(ctx context.Context, studentID, courseID uint) (bool, error)
}

type CourseService interface {
	Create(ctx context.Context, req CourseCreateRequest) (*models.Course, error)
	Get(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context, skip, limit int) (*CourseListResponse, error)
	Update(ctx context.Context, id uint, req CourseUpdateRequest) (*models.Course, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type AttendanceService interface {
	Mark(ctx context.Context, req AttendanceCreateRequest) (*models.Attendance, error)
	Get(ctx context.Context, id uint) (*models.Attendance, error)
	ByStudent(ctx context.Context, studentID uint, courseID *uint) ([]models.Attendance, error)
	ByDate(ctx context.Context, day time.Time, courseID *uint) ([]models.Attendance, error)
	Report(ctx context.Context, studentID, courseID uint) (*AttendanceReport, error)
	Update(ctx context.Context, id uint, req AttendanceUpdateRequest) (*models.Attendance, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type ExportService interface {
	// AttendanceReportXLSX renders the pair report plus its underlying
	// records as a spreadsheet and returns the file contents.
	AttendanceReportXLSX(ctx context.Context, studentID, courseID uint) ([]byte, error)
}

// ServiceManager aggregates all domain services.
type ServiceManager interface {
	Admin() AdminService
	Student() StudentService
	Course() CourseService
	Attendance() AttendanceService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
