package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

type AttendancePostgreSQL struct {
	db *gorm.DB
}

func NewAttendancePostgreSQL(db *gorm.DB) repositories.AttendanceRepository {
	return &AttendancePostgreSQL{db: db}
}

func (a *AttendancePostgreSQL) Create(ctx context.Context, attendance *models.Attendance) error {
	attendance.AttendanceDay = models.DayOf(attendance.AttendanceDate)
	if err := a.db.WithContext(ctx).Create(attendance).Error; err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func (a *AttendancePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := a.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		First(&attendance, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &attendance, nil
}

func (a *AttendancePostgreSQL) ExistsForDay(ctx context.Context, studentID, courseID uint, day time.Time) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("student_id = ? AND course_id = ? AND attendance_day = ?",
			studentID, courseID, models.DayOf(day)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check attendance for day: %w", err)
	}
	return count > 0, nil
}

func (a *AttendancePostgreSQL) ListByStudent(ctx context.Context, studentID uint, courseID *uint) ([]models.Attendance, error) {
	query := a.db.WithContext(ctx).Where("student_id = ?", studentID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}

	var records []models.Attendance
	if err := query.Order("attendance_date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendance by student: %w", err)
	}
	return records, nil
}

func (a *AttendancePostgreSQL) ListByDay(ctx context.Context, day time.Time, courseID *uint) ([]models.Attendance, error) {
	query := a.db.WithContext(ctx).Where("attendance_day = ?", models.DayOf(day))
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendance by day: %w", err)
	}
	return records, nil
}

func (a *AttendancePostgreSQL) ListForPair(ctx context.Context, studentID, courseID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	err := a.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for pair: %w", err)
	}
	return records, nil
}

func (a *AttendancePostgreSQL) Update(ctx context.Context, attendance *models.Attendance) error {
	if err := a.db.WithContext(ctx).Save(attendance).Error; err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

func (a *AttendancePostgreSQL) Delete(ctx context.Context, id uint) (bool, error) {
	result := a.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
