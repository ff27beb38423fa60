package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	admin      repositories.AdminRepository
	student    repositories.StudentRepository
	course     repositories.CourseRepository
	attendance repositories.AttendanceRepository

	initialized bool
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewRepositoryManager creates the repository manager with all
// sub-repositories backed by the given gorm connection.
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &PostgreSQLRepository{db: config.DB}
}

func (r *PostgreSQLRepository) Initialize() error {
	if r.db == nil {
		return fmt.Errorf("repository manager requires a database connection")
	}

	r.admin = NewAdminPostgreSQL(r.db)
	r.student = NewStudentPostgreSQL(r.db)
	r.course = NewCoursePostgreSQL(r.db)
	r.attendance = NewAttendancePostgreSQL(r.db)

	r.initialized = true
	return nil
}

func (r *PostgreSQLRepository) Admin() repositories.AdminRepository {
	return r.admin
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository {
	return r.student
}

func (r *PostgreSQLRepository) Course() repositories.CourseRepository {
	return r.course
}

func (r *PostgreSQLRepository) Attendance() repositories.AttendanceRepository {
	return r.attendance
}

func (r *PostgreSQLRepository) HealthCheck(ctx context.Context) error {
	if !r.initialized {
		return fmt.Errorf("repository manager not initialized")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Shutdown(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.Close()
}
