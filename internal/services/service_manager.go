package services

import (
	"context"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
	"github.com/sumanth-0707/Student-Management-System/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	db        *gorm.DB
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator

	adminService      AdminService
	studentService    StudentService
	courseService     CourseService
	attendanceService AttendanceService
	exportService     ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return &serviceManager{
		db:        db,
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// Initialize sets up all services.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.adminService = NewAdminService(sm.repo, sm.db, sm.logger, sm.validator)
	sm.studentService = NewStudentService(sm.repo, sm.db, sm.logger, sm.validator)
	sm.courseService = NewCourseService(sm.repo, sm.db, sm.logger, sm.validator)
	sm.attendanceService = NewAttendanceService(sm.repo, sm.db, sm.logger, sm.validator)
	sm.exportService = NewExportService(sm.repo, sm.attendanceService, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.adminService
}

func (sm *serviceManager) Student() StudentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.studentService
}

func (sm *serviceManager) Course() CourseService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.courseService
}

func (sm *serviceManager) Attendance() AttendanceService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.attendanceService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if repoManager, ok := sm.repo.(repositories.RepositoryManager); ok {
		if err := repoManager.Shutdown(ctx); err != nil {
			sm.logger.Error("Failed to shutdown repository manager", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")
	return nil
}
