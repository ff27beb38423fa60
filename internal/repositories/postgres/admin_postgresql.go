package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sumanth-0707/Student-Management-System/internal/models"
	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

type AdminPostgreSQL struct {
	db *gorm.DB
}

func NewAdminPostgreSQL(db *gorm.DB) repositories.AdminRepository {
	return &AdminPostgreSQL{db: db}
}

func (a *AdminPostgreSQL) Create(ctx context.Context, admin *models.Admin) error {
	if err := a.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (a *AdminPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := a.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (a *AdminPostgreSQL) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := a.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}
	return &admin, nil
}

func (a *AdminPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := a.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return &admin, nil
}

func (a *AdminPostgreSQL) Update(ctx context.Context, admin *models.Admin) error {
	if err := a.db.WithContext(ctx).Save(admin).Error; err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}
