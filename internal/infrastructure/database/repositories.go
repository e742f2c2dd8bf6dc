package database

import (
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/adapter/repository"
	domainRepo "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Booking      domainRepo.BookingRepository
	Payment      domainRepo.PaymentRepository
	Notification domainRepo.NotificationLogRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Booking:      repository.NewBookingRepository(db, logger),
		Payment:      repository.NewPaymentRepository(db, logger),
		Notification: repository.NewNotificationRepository(db, logger),
	}
}
