package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sumanth-0707/Student-Management-System/internal/repositories/postgres"
	"github.com/sumanth-0707/Student-Management-System/internal/services"
	"github.com/sumanth-0707/Student-Management-System/internal/validator"
	"github.com/sumanth-0707/Student-Management-System/pkg"
)

// newTestServices spins up an in-memory database with the full schema
// and a fully initialized service manager.
func newTestServices(t *testing.T) services.ServiceManager {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, pkg.Migrate(db))

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{DB: db})
	require.NoError(t, repoManager.Initialize())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sm := services.NewServiceManager(db, repoManager, logger, validator.New())
	require.NoError(t, sm.Initialize(context.Background()))
	return sm
}

func createStudent(t *testing.T, sm services.ServiceManager, email string) uint {
	t.Helper()
	student, err := sm.Student().Create(context.Background(), services.StudentCreateRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
	})
	require.NoError(t, err)
	return student.ID
}

func createCourse(t *testing.T, sm services.ServiceManager, name, code string) uint {
	t.Helper()
	course, err := sm.Course().Create(context.Background(), services.CourseCreateRequest{
		Name: name,
		Code: code,
	})
	require.NoError(t, err)
	return course.ID
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func markAttendance(t *testing.T, sm services.ServiceManager, studentID, courseID uint, day time.Time, present bool) {
	t.Helper()
	_, err := sm.Attendance().Mark(context.Background(), services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day,
		IsPresent:      &present,
	})
	require.NoError(t, err)
}
