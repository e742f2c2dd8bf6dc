package usecase

import (
	"context"
	"encoding/json"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	domainErrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/errors"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
	"go.uber.org/zap"
)

// NotificationReplayer re-runs stored notifications whose reconciliation
// failed, e.g. during a database outage the gateway gave up on.
type NotificationReplayer struct {
	notificationLog repository.NotificationLogRepository
	reconciler      Reconciler
	logger          *zap.Logger
}

func NewNotificationReplayer(
	notificationLog repository.NotificationLogRepository,
	reconciler Reconciler,
	logger *zap.Logger,
) *NotificationReplayer {
	return &NotificationReplayer{
		notificationLog: notificationLog,
		reconciler:      reconciler,
		logger:          logger,
	}
}

// ReplayFailed reconciles up to limit due notifications.
func (r *NotificationReplayer) ReplayFailed(ctx context.Context, limit, maxAttempts int) (*dto.ReplayResult, error) {
	notifications, err := r.notificationLog.GetRetryable(ctx, limit, maxAttempts)
	if err != nil {
		return nil, domainErrors.NewPersistenceError("failed to load retryable notifications", err)
	}

	result := &dto.ReplayResult{}
	for _, stored := range notifications {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Attempted++

		var n dto.Notification
		if err := json.Unmarshal(stored.Payload, &n); err != nil || n.OrderID == "" {
			r.logger.Warn("NotificationReplayer: Dropping undecodable notification",
				zap.String("notification_id", stored.ID),
				zap.Error(err))
			if markErr := r.notificationLog.MarkIgnored(ctx, stored.ID, "undecodable payload"); markErr != nil {
				r.logger.Warn("NotificationReplayer: Failed to mark notification ignored",
					zap.String("notification_id", stored.ID),
					zap.Error(markErr))
			}
			result.Ignored++
			continue
		}
		n.Raw = json.RawMessage(stored.Payload)
		n.LogID = stored.ID

		res, err := r.reconciler.Reconcile(ctx, &n)
		switch {
		case err != nil && !domainErrors.IsType(err, domainErrors.ErrTypePersistence):
			r.logger.Warn("NotificationReplayer: Replay rejected",
				zap.String("notification_id", stored.ID),
				zap.String("order_id", n.OrderID),
				zap.Error(err))
			result.Ignored++
		case err != nil:
			r.logger.Warn("NotificationReplayer: Replay failed",
				zap.String("notification_id", stored.ID),
				zap.String("order_id", n.OrderID),
				zap.Int("retry_count", stored.RetryCount),
				zap.Error(err))
			result.Failed++
		case !res.Success:
			result.Ignored++
		default:
			result.Handled++
		}
	}

	r.logger.Info("NotificationReplayer: Replay finished",
		zap.Int("attempted", result.Attempted),
		zap.Int("handled", result.Handled),
		zap.Int("ignored", result.Ignored),
		zap.Int("failed", result.Failed))

	return result, nil
}
