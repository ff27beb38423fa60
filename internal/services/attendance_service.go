package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
	"github.com/sumanth-0707/Student-Management-System/internal/validator"
)

type attendanceService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAttendanceService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) AttendanceService {
	return &attendanceService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

// Mark records one attendance mark. At most one mark may exist per
// (student, course, calendar day) regardless of the time-of-day carried
// by the timestamp; the stored record keeps the full timestamp.
func (s *attendanceService) Mark(ctx context.Context, req AttendanceCreateRequest) (*models.Attendance, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.Student().GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course().GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Attendance().ExistsForDay(ctx, req.StudentID, req.CourseID, req.AttendanceDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAttendance
	}

	isPresent := true
	if req.IsPresent != nil {
		isPresent = *req.IsPresent
	}

	attendance := &models.Attendance{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		AttendanceDate: req.AttendanceDate,
		IsPresent:      isPresent,
		Remarks:        req.Remarks,
	}
	if err := s.repo.Attendance().Create(ctx, attendance); err != nil {
		return nil, err
	}

	s.logger.Info("marked attendance",
		"student_id", req.StudentID,
		"course_id", req.CourseID,
		"is_present", isPresent,
	)
	return attendance, nil
}

func (s *attendanceService) Get(ctx context.Context, id uint) (*models.Attendance, error) {
	attendance, err := s.repo.Attendance().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) ByStudent(ctx context.Context, studentID uint, courseID *uint) ([]models.Attendance, error) {
	if _, err := s.repo.Student().GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.repo.Attendance().ListByStudent(ctx, studentID, courseID)
}

func (s *attendanceService) ByDate(ctx context.Context, day time.Time, courseID *uint) ([]models.Attendance, error) {
	return s.repo.Attendance().ListByDay(ctx, day, courseID)
}

// Report aggregates all marks for a (student, course) pair. A pair with
// no records reports zero percent rather than failing.
func (s *attendanceService) Report(ctx context.Context, studentID, courseID uint) (*AttendanceReport, error) {
	student, err := s.repo.Student().GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	course, err := s.repo.Course().GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	records, err := s.repo.Attendance().ListForPair(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	total := len(records)
	attended := 0
	for _, record := range records {
		if record.IsPresent {
			attended++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(attended)/float64(total)*100*100) / 100
	}

	return &AttendanceReport{
		StudentID:            studentID,
		StudentName:          student.FullName(),
		CourseID:             courseID,
		CourseName:           course.Name,
		TotalClasses:         total,
		AttendedClasses:      attended,
		AbsentClasses:        total - attended,
		AttendancePercentage: percentage,
	}, nil
}

// Update changes presence and remarks only; the identity fields of a
// mark are immutable after creation.
func (s *attendanceService) Update(ctx context.Context, id uint, req AttendanceUpdateRequest) (*models.Attendance, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	attendance, err := s.repo.Attendance().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	if req.IsPresent != nil {
		attendance.IsPresent = *req.IsPresent
	}
	if req.Remarks != nil {
		attendance.Remarks = req.Remarks
	}

	now := time.Now()
	attendance.UpdatedAt = &now

	if err := s.repo.Attendance().Update(ctx, attendance); err != nil {
		return nil, err
	}

	s.logger.Info("updated attendance record", "attendance_id", id)
	return attendance, nil
}

func (s *attendanceService) Delete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.Attendance().Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		s.logger.Info("deleted attendance record", "attendance_id", id)
	}
	return found, nil
}
