package pkg

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sumanth-0707/Student-Management-System/internal/config"
	"github.com/sumanth-0707/Student-Management-System/internal/models"
)

// InitDatabase opens the PostgreSQL connection and migrates the schema.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.Environment == "production" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema for all domain models, including the
// composite unique index that enforces one attendance record per
// student, course and calendar day.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Course{},
		&models.Attendance{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
