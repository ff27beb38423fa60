package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

func (s *StudentPostgreSQL) Create(ctx context.Context, student *models.Student) error {
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *StudentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetByIDWithCourses(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Preload("Courses").First(&student, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get student with courses: %w", err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) List(ctx context.Context, filters repositories.StudentFilters) ([]models.Student, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Student{})

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	var students []models.Student
	err := query.Order("id ASC").Offset(filters.Skip).Limit(filters.Limit).Find(&students).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	return students, total, nil
}

func (s *StudentPostgreSQL) Update(ctx context.Context, student *models.Student) error {
	if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// Delete removes the student together with its enrollments and
// attendance records. The cascade runs in one transaction so a partial
// failure cannot leave orphaned rows.
func (s *StudentPostgreSQL) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		found = true

		if err := tx.Where("student_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM student_courses WHERE student_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete student: %w", err)
	}
	return found, nil
}

func (s *StudentPostgreSQL) IsEnrolled(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("student_courses").
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return count > 0, nil
}

func (s *StudentPostgreSQL) Enroll(ctx context.Context, studentID, courseID uint) error {
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO student_courses (student_id, course_id) VALUES (?, ?)", studentID, courseID).Error
	if err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

func (s *StudentPostgreSQL) Unenroll(ctx context.Context, studentID, courseID uint) error {
	err := s.db.WithContext(ctx).
		Exec("DELETE FROM student_courses WHERE student_id = ? AND course_id = ?", studentID, courseID).Error
	if err != nil {
		return fmt.Errorf("failed to unenroll student: %w", err)
	}
	return nil
}
