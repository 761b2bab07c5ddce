package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/alma-scheduler/internal/config"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

func NewDB(cfg *config.Config, logger *zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Bib{},
		&models.Item{},
		&models.Reservation{},
		&models.Request{},
		&models.Loan{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate")
	}

	// at most one open loan per item
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_open_item
        ON loans (item_id)
        WHERE returned_on IS NULL
    `).Error; err != nil {
		logger.Fatal().Err(err).Msg("failed to create open loan index")
	}

	return db
}
