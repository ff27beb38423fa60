package repositories

import (
	"context"
	"time"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// PageFilters is offset pagination into the stable primary-key ordering.
type PageFilters struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type StudentFilters struct {
	// Search is a case-insensitive substring matched against first
	// name, last name and email (logical OR). Empty means no filter.
	Search string `json:"search"`
	PageFilters
}

// ===== REPOSITORY INTERFACES =====

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
}

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByIDWithCourses(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context, filters StudentFilters) ([]models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	// Delete removes the student, its enrollments and its attendance
	// records in one transaction. Returns false when the id is unknown.
	Delete(ctx context.Context, id uint) (bool, error)

	// Enrollment join-table operations. Membership is answered with an
	// existence query, never by loading the whole collection.
	IsEnrolled(ctx context.Context, studentID, courseID uint) (bool, error)
	Enroll(ctx context.Context, studentID, courseID uint) error
	Unenroll(ctx context.Context, studentID, courseID uint) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetByIDWithStudents(ctx context.Context, id uint) (*models.Course, error)
	GetByName(ctx context.Context, name string) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, filters PageFilters) ([]models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByID(ctx context.Context, id uint) (*models.Attendance, error)
	// ExistsForDay reports whether a mark already exists for the
	// (student, course, calendar day) triple.
	ExistsForDay(ctx context.Context, studentID, courseID uint, day time.Time) (bool, error)
	ListByStudent(ctx context.Context, studentID uint, courseID *uint) ([]models.Attendance, error)
	ListByDay(ctx context.Context, day time.Time, courseID *uint) ([]models.Attendance, error)
	ListForPair(ctx context.Context, studentID, courseID uint) ([]models.Attendance, error)
	Update(ctx context.Context, attendance *models.Attendance) error
	Delete(ctx context.Context, id uint) (bool, error)
}
