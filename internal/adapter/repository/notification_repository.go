package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	retryBaseMinutes = 5
	retryMaxMinutes  = 1440
)

type notificationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewNotificationRepository creates a new payment notification log repository
func NewNotificationRepository(db *gorm.DB, logger *zap.Logger) repository.NotificationLogRepository {
	return &notificationRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Save stores a received notification
func (r *notificationRepository) Save(ctx context.Context, notification *model.PaymentNotification) error {
	if notification.Status == "" {
		notification.Status = model.NotificationStatusReceived
	}

	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		r.logger.Error("Failed to save payment notification",
			zap.String("notification_id", notification.ID),
			zap.String("order_id", notification.OrderID),
			zap.Error(err))
		return fmt.Errorf("failed to save payment notification: %w", err)
	}

	return nil
}

// MarkHandled marks a notification as applied. Older failed notifications
// for the same order are marked ignored so a later replay cannot roll the
// payment back to their state.
func (r *notificationRepository) MarkHandled(ctx context.Context, id string) error {
	now := r.now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var notification model.PaymentNotification
		if err := tx.Where("id = ?", id).First(&notification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("payment notification not found: %s", id)
			}
			return fmt.Errorf("failed to get payment notification: %w", err)
		}

		if err := r.finish(tx, id, map[string]interface{}{
			"status":        model.NotificationStatusHandled,
			"handled_at":    &now,
			"last_error":    nil,
			"next_retry_at": nil,
		}); err != nil {
			return err
		}

		reason := fmt.Sprintf("superseded by notification %s", id)
		result := tx.Model(&model.PaymentNotification{}).
			Where("order_id = ? AND status = ? AND created_at < ? AND id <> ?",
				notification.OrderID,
				model.NotificationStatusFailed,
				notification.CreatedAt,
				id).
			Updates(map[string]interface{}{
				"status":        model.NotificationStatusIgnored,
				"handled_at":    &now,
				"last_error":    &reason,
				"next_retry_at": nil,
			})
		if result.Error != nil {
			r.logger.Error("Failed to supersede stale payment notifications",
				zap.String("notification_id", id),
				zap.String("order_id", notification.OrderID),
				zap.Error(result.Error))
			return fmt.Errorf("failed to supersede stale payment notifications: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			r.logger.Info("Superseded stale payment notifications",
				zap.String("notification_id", id),
				zap.String("order_id", notification.OrderID),
				zap.Int64("count", result.RowsAffected))
		}

		return nil
	})
}

// MarkIgnored marks a notification that needs no processing
func (r *notificationRepository) MarkIgnored(ctx context.Context, id string, reason string) error {
	now := r.now()
	return r.finish(r.db.WithContext(ctx), id, map[string]interface{}{
		"status":        model.NotificationStatusIgnored,
		"handled_at":    &now,
		"last_error":    &reason,
		"next_retry_at": nil,
	})
}

func (r *notificationRepository) finish(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.
		Model(&model.PaymentNotification{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		r.logger.Error("Failed to update payment notification",
			zap.String("notification_id", id),
			zap.Any("status", updates["status"]),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update payment notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("payment notification not found: %s", id)
	}

	return nil
}

// MarkFailed records the failure and schedules the next replay
func (r *notificationRepository) MarkFailed(ctx context.Context, id string, err error) error {
	var notification model.PaymentNotification
	if dbErr := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notification).Error; dbErr != nil {
		r.logger.Error("Failed to get payment notification for failure update",
			zap.String("notification_id", id),
			zap.Error(dbErr))
		return fmt.Errorf("failed to get payment notification: %w", dbErr)
	}

	retryCount := notification.RetryCount + 1
	nextRetry := r.now().Add(retryDelay(notification.RetryCount))
	errorMsg := err.Error()

	result := r.db.WithContext(ctx).
		Model(&model.PaymentNotification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        model.NotificationStatusFailed,
			"retry_count":   retryCount,
			"last_error":    &errorMsg,
			"next_retry_at": &nextRetry,
		})

	if result.Error != nil {
		r.logger.Error("Failed to mark payment notification as failed",
			zap.String("notification_id", id),
			zap.Error(result.Error))
		return fmt.Errorf("failed to mark payment notification as failed: %w", result.Error)
	}

	return nil
}

// GetRetryable retrieves failed notifications that are due for replay
func (r *notificationRepository) GetRetryable(ctx context.Context, limit, maxAttempts int) ([]*model.PaymentNotification, error) {
	var notifications []*model.PaymentNotification

	query := r.db.WithContext(ctx).
		Where("status = ? AND (next_retry_at IS NULL OR next_retry_at <= ?)",
			model.NotificationStatusFailed,
			r.now()).
		// a newer handled notification already carries the order's state
		Where("NOT EXISTS (?)",
			r.db.Table("payment_notifications AS newer").
				Select("1").
				Where("newer.order_id = payment_notifications.order_id AND newer.status = ? AND newer.created_at > payment_notifications.created_at",
					model.NotificationStatusHandled)).
		Order("created_at ASC")

	if maxAttempts > 0 {
		query = query.Where("retry_count < ?", maxAttempts)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notifications).Error; err != nil {
		r.logger.Error("Failed to get retryable payment notifications",
			zap.Error(err))
		return nil, fmt.Errorf("failed to get retryable payment notifications: %w", err)
	}

	return notifications, nil
}

// retryDelay is 5, 10, 20, 40... minutes after the nth failure, capped at a day.
func retryDelay(previousFailures int) time.Duration {
	minutes := retryMaxMinutes
	if previousFailures < 10 {
		minutes = retryBaseMinutes * (1 << previousFailures)
		if minutes > retryMaxMinutes {
			minutes = retryMaxMinutes
		}
	}
	return time.Duration(minutes) * time.Minute
}
