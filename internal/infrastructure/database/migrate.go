package database

import (
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations. The users, courts and bookings tables
// belong to the booking service; migrating them here only adds missing
// columns this service reads or writes.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Court{},
		&model.Booking{},
		&model.Payment{},
		&model.PaymentNotification{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}
	logger.Info("GORM auto-migrations completed successfully")

	logger.Info("Creating custom indexes...")
	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates custom indexes that GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// Replay scans failed notifications by due time
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_payment_notifications_retry ON payment_notifications (status, next_retry_at)`).Error; err != nil {
		return err
	}

	return nil
}
