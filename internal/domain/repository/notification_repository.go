package repository

import (
	"context"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
)

// NotificationLogRepository stores inbound gateway notifications and their
// processing outcome.
type NotificationLogRepository interface {
	Save(ctx context.Context, notification *model.PaymentNotification) error
	MarkHandled(ctx context.Context, id string) error
	MarkIgnored(ctx context.Context, id string, reason string) error
	// MarkFailed records the error and schedules the next attempt with
	// exponential backoff.
	MarkFailed(ctx context.Context, id string, err error) error
	// GetRetryable returns failed notifications that are due and have been
	// attempted fewer than maxAttempts times, oldest first.
	GetRetryable(ctx context.Context, limit, maxAttempts int) ([]*model.PaymentNotification, error)
}
