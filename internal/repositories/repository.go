package repositories

import "context"

// Repository aggregates access to all entity repositories.
type Repository interface {
	Admin() AdminRepository
	Student() StudentRepository
	Course() CourseRepository
	Attendance() AttendanceRepository
}

// RepositoryManager adds lifecycle management on top of Repository.
type RepositoryManager interface {
	Repository

	Initialize() error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
