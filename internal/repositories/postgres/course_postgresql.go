package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

type CoursePostgreSQL struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{db: db}
}

func (c *CoursePostgreSQL) Create(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (c *CoursePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) GetByIDWithStudents(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).Preload("Students").First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get course with students: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) GetByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).Where("name = ?", name).First(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to get course by name: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	if err := c.db.WithContext(ctx).Where("code = ?", code).First(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to get course by code: %w", err)
	}
	return &course, nil
}

func (c *CoursePostgreSQL) List(ctx context.Context, filters repositories.PageFilters) ([]models.Course, int64, error) {
	query := c.db.WithContext(ctx).Model(&models.Course{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	var courses []models.Course
	err := query.Order("id ASC").Offset(filters.Skip).Limit(filters.Limit).Find(&courses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, total, nil
}

func (c *CoursePostgreSQL) Update(ctx context.Context, course *models.Course) error {
	if err := c.db.WithContext(ctx).Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// Delete removes the course, its enrollments and its attendance records
// in one transaction.
func (c *CoursePostgreSQL) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		found = true

		if err := tx.Where("course_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM student_courses WHERE course_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}
	return found, nil
}
