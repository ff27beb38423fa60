package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
	"github.com/sumanth-0707/Student-Management-System/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) StudentService {
	return &studentService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *studentService) Create(ctx context.Context, req StudentCreateRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.Student().GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("created new student", "student_id", student.ID, "email", student.Email)
	return student, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByIDWithCourses(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context, skip, limit int, search string) (*StudentListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	limit = ClampLimit(limit)

	students, total, err := s.repo.Student().List(ctx, repositories.StudentFilters{
		Search:      search,
		PageFilters: repositories.PageFilters{Skip: skip, Limit: limit},
	})
	if err != nil {
		return nil, err
	}

	return &StudentListResponse{
		Students: students,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	}, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req StudentUpdateRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Address != nil {
		student.Address = req.Address
	}

	now := time.Now()
	student.UpdatedAt = &now

	if err := s.repo.Student().Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("updated student", "student_id", student.ID)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Student().Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		s.logger.Info("deleted student", "student_id", id)
	}
	return found, nil
}

func (s *studentService) Enroll(ctx context.Context, studentID, courseID uint) (bool, error) {
	if err := s.checkPairExists(ctx, studentID, courseID); err != nil {
		return false, err
	}

	enrolled, err := s.repo.Student().IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return false, err
	}
	if enrolled {
		// Re-enrolling is a no-op, not an error.
		return false, nil
	}

	if err := s.repo.Student().Enroll(ctx, studentID, courseID); err != nil {
		return false, err
	}

	s.logger.Info("enrolled student in course", "student_id", studentID, "course_id", courseID)
	return true, nil
}

func (s *studentService) Unenroll(ctx context.Context, studentID, courseID uint) (bool, error) {
	if err := s.checkPairExists(ctx, studentID, courseID); err != nil {
		return false, err
	}

	enrolled, err := s.repo.Student().IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return false, err
	}
	if !enrolled {
		return false, nil
	}

	if err := s.repo.Student().Unenroll(ctx, studentID, courseID); err != nil {
		return false, err
	}

	s.logger.Info("unenrolled student from course", "student_id", studentID, "course_id", courseID)
	return true, nil
}

// checkPairExists resolves both entities before any enrollment change.
func (s *studentService) checkPairExists(ctx context.Context, studentID, courseID uint) error {
	if _, err := s.repo.Student().GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	if _, err := s.repo.Course().GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}
