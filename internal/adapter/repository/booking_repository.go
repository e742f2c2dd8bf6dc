package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB, logger *zap.Logger) repository.BookingRepository {
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// GetWithCourtAndUser retrieves a booking with its court and owner
func (r *bookingRepository) GetWithCourtAndUser(ctx context.Context, id int64) (*model.Booking, error) {
	var booking model.Booking

	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("User").
		Where("id = ?", id).
		First(&booking).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get booking",
			zap.Int64("booking_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// UpdateTotalPrice stores the computed total price of a booking
func (r *bookingRepository) UpdateTotalPrice(ctx context.Context, id int64, totalPrice int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Update("total_price", totalPrice)

	if result.Error != nil {
		r.logger.Error("Failed to update booking total price",
			zap.Int64("booking_id", id),
			zap.Int64("total_price", totalPrice),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update booking total price: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("booking not found: %d", id)
	}

	return nil
}

// UpdateStatusIfCurrent moves the booking only while it is still in the
// expected status.
func (r *bookingRepository) UpdateStatusIfCurrent(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		r.logger.Error("Failed to update booking status",
			zap.Int64("booking_id", id),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to update booking status: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}
