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

type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCourseService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *courseService) Create(ctx context.Context, req CourseCreateRequest) (*models.Course, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	// Name collision is checked before code.
	if _, err := s.repo.Course().GetByName(ctx, req.Name); err == nil {
		return nil, ErrDuplicateCourseName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.Course().GetByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCourseCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	credits := req.Credits
	if credits == 0 {
		credits = 3
	}

	course := &models.Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Credits:     credits,
	}
	if err := s.repo.Course().Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("created new course", "course_id", course.ID, "name", course.Name, "code", course.Code)
	return course, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Course().GetByIDWithStudents(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context, skip, limit int) (*CourseListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	limit = ClampLimit(limit)

	courses, total, err := s.repo.Course().List(ctx, repositories.PageFilters{Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}

	return &CourseListResponse{
		Courses: courses,
		Total:   total,
		Skip:    skip,
		Limit:   limit,
	}, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req CourseUpdateRequest) (*models.Course, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	course, err := s.repo.Course().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	now := time.Now()
	course.UpdatedAt = &now

	if err := s.repo.Course().Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("updated course", "course_id", course.ID)
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Course().Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		s.logger.Info("deleted course", "course_id", id)
	}
	return found, nil
}
