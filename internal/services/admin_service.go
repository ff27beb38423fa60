package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
	"github.com/sumanth-0707/Student-Management-System/internal/validator"
)

type adminService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAdminService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) AdminService {
	return &adminService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *adminService) Register(ctx context.Context, req RegisterRequest) (*models.Admin, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	// Username collision is checked before email, so the error names
	// the first conflicting field.
	if _, err := s.repo.Admin().GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.Admin().GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := s.repo.Admin().Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("created new admin", "username", admin.Username)
	return admin, nil
}

func (s *adminService) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.repo.Admin().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)) != nil {
		return nil, nil
	}
	return admin, nil
}

func (s *adminService) Update(ctx context.Context, id uint, req AdminUpdateRequest) (*models.Admin, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	admin, err := s.repo.Admin().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		admin.Username = *req.Username
	}
	if req.Email != nil {
		admin.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.HashedPassword = string(hashed)
	}

	now := time.Now()
	admin.UpdatedAt = &now

	if err := s.repo.Admin().Update(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("updated admin", "username", admin.Username)
	return admin, nil
}

func (s *adminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.repo.Admin().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
