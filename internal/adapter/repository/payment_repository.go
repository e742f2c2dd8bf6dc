package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) repository.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertAttempt writes the charge attempt onto the booking's single payment
// row. Gateway fields from an earlier attempt are kept until a notification
// replaces them.
func (r *paymentRepository) UpsertAttempt(ctx context.Context, attempt repository.PaymentAttempt) (*model.Payment, error) {
	var stored model.Payment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment := &model.Payment{
			BookingID:         attempt.BookingID,
			MidtransOrderID:   attempt.OrderID,
			GrossAmount:       attempt.GrossAmount,
			TransactionStatus: model.TransactionStatusPending,
		}

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"midtrans_order_id",
				"gross_amount",
				"transaction_status",
				"updated_at",
			}),
		}).Create(payment).Error
		if err != nil {
			return err
		}

		// the returned id is not reliable across drivers on the update path
		return tx.Where("booking_id = ?", attempt.BookingID).First(&stored).Error
	})

	if err != nil {
		r.logger.Error("Failed to upsert payment",
			zap.Int64("booking_id", attempt.BookingID),
			zap.String("order_id", attempt.OrderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to upsert payment: %w", err)
	}

	return &stored, nil
}

// GetByOrderIDWithBooking retrieves a payment and its booking by gateway order id
func (r *paymentRepository) GetByOrderIDWithBooking(ctx context.Context, orderID string) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).
		Preload("Booking").
		Where("midtrans_order_id = ?", orderID).
		First(&payment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment by order id",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// ApplyNotification stores the non-nil notification fields
func (r *paymentRepository) ApplyNotification(ctx context.Context, id int64, update repository.NotificationUpdate) error {
	updates := make(map[string]interface{})
	if update.TransactionStatus != nil {
		updates["transaction_status"] = *update.TransactionStatus
	}
	if update.PaymentType != nil {
		updates["payment_type"] = *update.PaymentType
	}
	if update.FraudStatus != nil {
		updates["fraud_status"] = *update.FraudStatus
	}
	if update.TransactionTime != nil {
		updates["transaction_time"] = *update.TransactionTime
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		r.logger.Error("Failed to apply notification to payment",
			zap.Int64("payment_id", id),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("payment not found: %d", id)
	}

	return nil
}
